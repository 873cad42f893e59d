package layers

import (
	"context"
	"errors"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/brngo13/gee-tiles/pkg/earthengine"
)

// TileResult holds the tile-serving endpoint for one resolved layer.
// TileURL is a template with {z}/{x}/{y} placeholders.
type TileResult struct {
	TileURL string
	MapID   string
}

// Resolver turns layer descriptors into tile results against an
// authenticated Earth Engine client.
type Resolver struct {
	client earthengine.Client
}

// NewResolver creates a Resolver.
func NewResolver(client earthengine.Client) *Resolver {
	return &Resolver{client: client}
}

// Resolve probes the descriptor's candidate datasets in order, commits to
// the first that exists, applies the layer style, and requests a tile map.
// Later candidates are never probed once one succeeds. Any failure aborts
// the whole layer; there is no partial result.
func (r *Resolver) Resolve(ctx context.Context, desc Descriptor) (*TileResult, error) {
	selected := ""
	for i, id := range desc.AssetIDs {
		_, err := r.client.GetAsset(ctx, id)
		if err == nil {
			selected = id
			if i > 0 {
				zap.L().Warn("layers: fell back to alternate dataset",
					zap.String("layer", desc.Name),
					zap.String("dataset", id),
				)
			} else {
				zap.L().Info("layers: using dataset",
					zap.String("layer", desc.Name),
					zap.String("dataset", id),
				)
			}
			break
		}

		if errors.Is(err, earthengine.ErrAssetNotFound) {
			zap.L().Warn("layers: dataset not found",
				zap.String("layer", desc.Name),
				zap.String("dataset", id),
			)
		} else {
			zap.L().Warn("layers: dataset probe failed",
				zap.String("layer", desc.Name),
				zap.String("dataset", id),
				zap.Error(err),
			)
		}
	}
	if selected == "" {
		return nil, eris.Errorf("layers: no %s dataset available (tried %s)",
			desc.Name, strings.Join(desc.AssetIDs, ", "))
	}

	m, err := r.client.CreateTableMap(ctx, earthengine.TableMapRequest{
		AssetID: selected,
		Style: earthengine.TableStyle{
			Color:     desc.Style.Color,
			Width:     desc.Style.Width,
			FillColor: desc.Style.FillColor,
		},
	})
	if err != nil {
		return nil, eris.Wrapf(err, "layers: create %s map", desc.Name)
	}

	zap.L().Info("layers: tile URL generated",
		zap.String("layer", desc.Name),
		zap.String("map_id", m.MapID),
	)

	return &TileResult{TileURL: m.TileURL, MapID: m.MapID}, nil
}
