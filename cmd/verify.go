package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/credlens/credlens/internal/linkcheck"
)

var verifySnippet string

var verifyCmd = &cobra.Command{
	Use:   "verify URL...",
	Short: "Verify outbound links from the command line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		candidates := make([]linkcheck.Candidate, len(args))
		for i, u := range args {
			candidates[i] = linkcheck.Candidate{URL: u, Snippet: verifySnippet}
		}

		results := newVerifier().VerifyBatch(cmd.Context(), candidates, cfg.Verify.MaxURLs)

		out := cmd.OutOrStdout()
		for _, r := range results {
			if r.IsValid {
				fmt.Fprintf(out, "OK    %-4d %s\n", r.Status, r.FinalURL)
				continue
			}
			fmt.Fprintf(out, "DEAD  %-4d %s (%s)\n", r.Status, r.URL, r.Reason)
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifySnippet, "snippet", "", "snippet text used for relevance matching on generic redirects")
	rootCmd.AddCommand(verifyCmd)
}
