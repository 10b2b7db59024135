package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/credlens/credlens/internal/analysis"
)

var translateLang string

var translateCmd = &cobra.Command{
	Use:   "translate FILE",
	Short: "Translate the text fields of an analysis document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return eris.Wrap(err, "read analysis file")
		}

		var doc analysis.AnalysisResult
		if err := json.Unmarshal(data, &doc); err != nil {
			return eris.Wrap(err, "parse analysis file")
		}

		merged := newTranslator().Translate(cmd.Context(), doc, translateLang)

		out, err := json.MarshalIndent(merged, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal result")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	translateCmd.Flags().StringVar(&translateLang, "lang", "en", "target language code (en, fr, es, de, pt, it, ja, ko)")
	rootCmd.AddCommand(translateCmd)
}
