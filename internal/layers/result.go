package layers

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
)

// SingleResult is the stdout payload of a single-layer run. Field order is
// part of the output contract consumed downstream.
type SingleResult struct {
	Success bool   `json:"success"`
	TileURL string `json:"tile_url"`
	MapID   string `json:"map_id"`
}

// FullResult is the stdout payload of a dual-layer run, tracts first.
type FullResult struct {
	Success            bool   `json:"success"`
	TractsTileURL      string `json:"tracts_tile_url"`
	TractsMapID        string `json:"tracts_map_id"`
	BlockGroupsTileURL string `json:"block_groups_tile_url"`
	BlockGroupsMapID   string `json:"block_groups_map_id"`
}

// Report writes the run result to w as pretty-printed JSON, exactly once.
// w is the machine-readable sink; diagnostics never go through it.
func Report(w io.Writer, result any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return eris.Wrap(err, "layers: encode result")
	}
	return nil
}
