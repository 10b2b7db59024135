package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/credlens/credlens/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "credlens",
	Short: "Link verification and translation backend for content-credibility analysis",
	Long:  "Verifies outbound links cited in credibility analyses (liveness, relevance, dedup) and translates analysis documents while preserving their structural fields.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
