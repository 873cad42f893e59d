package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brngo13/gee-tiles/internal/layers"
)

var fullCmd = &cobra.Command{
	Use:   "full",
	Short: "Generate tract and block group boundary tile URLs",
	Long:  "Resolves the TIGER/2010 census tract and block group layers and prints both tile URL templates and map IDs as JSON.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := initClient(cmd.Context())
		if err != nil {
			return err
		}
		return runFull(cmd.Context(), layers.NewResolver(client), os.Stdout)
	},
}

func init() { rootCmd.AddCommand(fullCmd) }

// runFull resolves tracts then block groups, in that order, and writes the
// combined result to out. The first failure aborts the run with nothing on
// out; there is no partial success.
func runFull(ctx context.Context, r *layers.Resolver, out io.Writer) error {
	zap.L().Info("generating tile URLs for TIGER/2010 boundaries")

	tracts, err := r.Resolve(ctx, layers.TractsLayer())
	if err != nil {
		zap.L().Error("failed to generate tile URLs", zap.Error(err))
		return err
	}

	blockGroups, err := r.Resolve(ctx, layers.BlockGroupsLayer())
	if err != nil {
		zap.L().Error("failed to generate tile URLs", zap.Error(err))
		return err
	}

	zap.L().Info("all tile URLs generated successfully")
	return layers.Report(out, layers.FullResult{
		Success:            true,
		TractsTileURL:      tracts.TileURL,
		TractsMapID:        tracts.MapID,
		BlockGroupsTileURL: blockGroups.TileURL,
		BlockGroupsMapID:   blockGroups.MapID,
	})
}
