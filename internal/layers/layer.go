// Package layers resolves census boundary layers to Earth Engine tile URLs.
package layers

// Style is the boundary styling applied to a layer: a hex outline color,
// stroke width, and fill (fully transparent for boundary overlays).
type Style struct {
	Color     string
	Width     int
	FillColor string
}

// Descriptor maps a logical layer name to an ordered list of candidate
// dataset identifiers and a fixed style. Candidates are probed in order;
// the first that exists wins.
type Descriptor struct {
	Name     string
	AssetIDs []string
	Style    Style
}

// TractsLayer returns the TIGER/2010 census tract boundary layer.
func TractsLayer() Descriptor {
	return Descriptor{
		Name:     "tracts",
		AssetIDs: []string{"TIGER/2010/Tracts_DP1"},
		Style: Style{
			Color:     "1f77b4",
			Width:     1,
			FillColor: "00000000",
		},
	}
}

// BlockGroupsLayer returns the TIGER/2010 block group boundary layer.
// Block group coverage varies by catalog naming, so the descriptor carries
// fallbacks, ending with the blocks dataset as a last resort.
func BlockGroupsLayer() Descriptor {
	return Descriptor{
		Name: "block_groups",
		AssetIDs: []string{
			"TIGER/2010/BG",
			"TIGER/2010/BlockGroups",
			"TIGER/2010/Blocks_DP1",
		},
		Style: Style{
			Color:     "9333ea",
			Width:     1,
			FillColor: "00000000",
		},
	}
}
