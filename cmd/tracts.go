package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brngo13/gee-tiles/internal/layers"
)

var tractsCmd = &cobra.Command{
	Use:   "tracts",
	Short: "Generate the census tract boundary tile URL",
	Long:  "Resolves the TIGER/2010 census tract layer and prints its tile URL template and map ID as JSON.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := initClient(cmd.Context())
		if err != nil {
			return err
		}
		return runTracts(cmd.Context(), layers.NewResolver(client), os.Stdout)
	},
}

func init() { rootCmd.AddCommand(tractsCmd) }

// runTracts resolves the tract layer and writes the success result to out.
// On failure nothing is written to out and the error propagates to the exit
// code.
func runTracts(ctx context.Context, r *layers.Resolver, out io.Writer) error {
	zap.L().Info("generating tile URL for census tract boundaries")

	result, err := r.Resolve(ctx, layers.TractsLayer())
	if err != nil {
		zap.L().Error("failed to generate tile URL", zap.Error(err))
		return err
	}

	zap.L().Info("tile URL generated successfully")
	return layers.Report(out, layers.SingleResult{
		Success: true,
		TileURL: result.TileURL,
		MapID:   result.MapID,
	})
}
