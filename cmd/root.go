package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brngo13/gee-tiles/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "gee-tiles",
	Short: "Generate Earth Engine tile URLs for census boundaries",
	Long:  "Authenticates with Google Earth Engine via a service account and emits tile-serving URL templates for TIGER/2010 boundary layers as JSON on stdout.",
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
