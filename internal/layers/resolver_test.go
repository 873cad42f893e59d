package layers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/brngo13/gee-tiles/pkg/earthengine"
	"github.com/brngo13/gee-tiles/pkg/earthengine/mocks"
)

func TestResolve_FirstCandidate(t *testing.T) {
	client := new(mocks.MockClient)
	client.On("GetAsset", mock.Anything, "TIGER/2010/Tracts_DP1").
		Return(&earthengine.Asset{Type: "TABLE"}, nil)
	client.On("CreateTableMap", mock.Anything, earthengine.TableMapRequest{
		AssetID: "TIGER/2010/Tracts_DP1",
		Style:   earthengine.TableStyle{Color: "1f77b4", Width: 1, FillColor: "00000000"},
	}).Return(&earthengine.MapDescriptor{
		MapID:   "abc123",
		TileURL: "https://example.com/{z}/{x}/{y}.png",
	}, nil)

	r := NewResolver(client)
	result, err := r.Resolve(context.Background(), TractsLayer())

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/{z}/{x}/{y}.png", result.TileURL)
	assert.Equal(t, "abc123", result.MapID)
	client.AssertExpectations(t)
}

func TestResolve_FallbackSelectsSecondNeverThird(t *testing.T) {
	desc := Descriptor{
		Name:     "block_groups",
		AssetIDs: []string{"A", "B", "C"},
		Style:    Style{Color: "9333ea", Width: 1, FillColor: "00000000"},
	}

	client := new(mocks.MockClient)
	client.On("GetAsset", mock.Anything, "A").
		Return(nil, earthengine.ErrAssetNotFound)
	client.On("GetAsset", mock.Anything, "B").
		Return(&earthengine.Asset{Type: "TABLE"}, nil)
	client.On("CreateTableMap", mock.Anything, mock.MatchedBy(func(req earthengine.TableMapRequest) bool {
		return req.AssetID == "B"
	})).Return(&earthengine.MapDescriptor{MapID: "m2", TileURL: "t2"}, nil)

	r := NewResolver(client)
	result, err := r.Resolve(context.Background(), desc)

	require.NoError(t, err)
	assert.Equal(t, "m2", result.MapID)
	client.AssertExpectations(t)
	client.AssertNotCalled(t, "GetAsset", mock.Anything, "C")
}

func TestResolve_AllCandidatesMissing(t *testing.T) {
	desc := Descriptor{Name: "block_groups", AssetIDs: []string{"A", "B"}}

	client := new(mocks.MockClient)
	client.On("GetAsset", mock.Anything, mock.Anything).
		Return(nil, earthengine.ErrAssetNotFound)

	r := NewResolver(client)
	result, err := r.Resolve(context.Background(), desc)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no block_groups dataset available")
	client.AssertNotCalled(t, "CreateTableMap", mock.Anything, mock.Anything)
}

func TestResolve_MapCreationFails(t *testing.T) {
	client := new(mocks.MockClient)
	client.On("GetAsset", mock.Anything, "TIGER/2010/Tracts_DP1").
		Return(&earthengine.Asset{Type: "TABLE"}, nil)
	client.On("CreateTableMap", mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	r := NewResolver(client)
	result, err := r.Resolve(context.Background(), TractsLayer())

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create tracts map")
}

func TestResolve_StylePassedThrough(t *testing.T) {
	desc := BlockGroupsLayer()

	client := new(mocks.MockClient)
	client.On("GetAsset", mock.Anything, "TIGER/2010/BG").
		Return(&earthengine.Asset{Type: "TABLE"}, nil)
	client.On("CreateTableMap", mock.Anything, earthengine.TableMapRequest{
		AssetID: "TIGER/2010/BG",
		Style:   earthengine.TableStyle{Color: "9333ea", Width: 1, FillColor: "00000000"},
	}).Return(&earthengine.MapDescriptor{MapID: "bg", TileURL: "t"}, nil)

	r := NewResolver(client)
	_, err := r.Resolve(context.Background(), desc)

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestLayerDescriptors(t *testing.T) {
	tracts := TractsLayer()
	assert.Equal(t, "tracts", tracts.Name)
	assert.Equal(t, []string{"TIGER/2010/Tracts_DP1"}, tracts.AssetIDs)
	assert.Equal(t, "1f77b4", tracts.Style.Color)

	bg := BlockGroupsLayer()
	assert.Equal(t, "block_groups", bg.Name)
	assert.Equal(t, []string{"TIGER/2010/BG", "TIGER/2010/BlockGroups", "TIGER/2010/Blocks_DP1"}, bg.AssetIDs)
	assert.Equal(t, "9333ea", bg.Style.Color)
	assert.Equal(t, "00000000", bg.Style.FillColor)
}
