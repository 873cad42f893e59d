package earthengine

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://earthengine.googleapis.com/v1"

// publicAssetPrefix is where the Earth Engine public data catalog lives.
// Bare asset IDs like "TIGER/2010/Tracts_DP1" resolve under it.
const publicAssetPrefix = "projects/earthengine-public/assets/"

// ErrAssetNotFound indicates the requested asset does not exist.
var ErrAssetNotFound = eris.New("earthengine: asset not found")

// Client performs the Earth Engine operations the tile generator needs.
type Client interface {
	// GetAsset fetches asset metadata. Returns ErrAssetNotFound (wrapped)
	// when the platform reports the asset missing.
	GetAsset(ctx context.Context, assetID string) (*Asset, error)

	// CreateTableMap registers a styled map for a table asset and returns
	// its tile-serving descriptor.
	CreateTableMap(ctx context.Context, req TableMapRequest) (*MapDescriptor, error)
}

// Asset is the metadata of an Earth Engine asset.
type Asset struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// TableStyle is the vector styling applied when rendering a table asset.
type TableStyle struct {
	Color     string `json:"color"`
	Width     int    `json:"width"`
	FillColor string `json:"fillColor"`
}

// TableMapRequest asks for a rendered map of a styled table asset.
type TableMapRequest struct {
	AssetID string
	Style   TableStyle
}

// MapDescriptor identifies a rendered map and how to fetch its tiles.
// TileURL contains {z}/{x}/{y} placeholders for the tile client.
type MapDescriptor struct {
	Name    string
	MapID   string
	TileURL string
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit sets a per-second rate limit for API calls.
// A burst equal to the integer portion of rps is allowed.
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), max(int(rps), 1))
		}
	}
}

type httpClient struct {
	session *Session
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates an Earth Engine API client bound to an authenticated
// session.
func NewClient(session *Session, opts ...Option) Client {
	c := &httpClient{
		session: session,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// wait blocks until the rate limiter allows one event, or ctx is cancelled.
func (c *httpClient) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// assetName expands a bare catalog asset ID into its full resource name.
func assetName(assetID string) string {
	if strings.HasPrefix(assetID, "projects/") {
		return assetID
	}
	return publicAssetPrefix + assetID
}

func (c *httpClient) GetAsset(ctx context.Context, assetID string) (*Asset, error) {
	if err := c.wait(ctx); err != nil {
		return nil, eris.Wrap(err, "earthengine: rate limit")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+assetName(assetID), nil)
	if err != nil {
		return nil, eris.Wrap(err, "earthengine: create asset request")
	}
	req.Header.Set("Authorization", "Bearer "+c.session.Token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "earthengine: fetch asset "+assetID)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "earthengine: read asset response")
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, eris.Wrap(ErrAssetNotFound, assetID)
	case resp.StatusCode != http.StatusOK:
		return nil, eris.Errorf("earthengine: asset %s returned %d: %s", assetID, resp.StatusCode, string(body))
	}

	var asset Asset
	if err := json.Unmarshal(body, &asset); err != nil {
		return nil, eris.Wrap(err, "earthengine: unmarshal asset")
	}

	return &asset, nil
}

type createMapRequest struct {
	Asset      string     `json:"asset"`
	VisOptions TableStyle `json:"visOptions"`
}

type createMapResponse struct {
	Name  string `json:"name"`
	MapID string `json:"mapid"`
}

func (c *httpClient) CreateTableMap(ctx context.Context, r TableMapRequest) (*MapDescriptor, error) {
	if err := c.wait(ctx); err != nil {
		return nil, eris.Wrap(err, "earthengine: rate limit")
	}

	body, err := json.Marshal(createMapRequest{
		Asset:      assetName(r.AssetID),
		VisOptions: r.Style,
	})
	if err != nil {
		return nil, eris.Wrap(err, "earthengine: marshal map request")
	}

	endpoint := c.baseURL + "/projects/" + c.session.Project + "/maps"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "earthengine: create map request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.session.Token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "earthengine: create map for "+r.AssetID)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "earthengine: read map response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("earthengine: map creation for %s returned %d: %s", r.AssetID, resp.StatusCode, string(respBody))
	}

	var result createMapResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, eris.Wrap(err, "earthengine: unmarshal map response")
	}
	if result.Name == "" {
		return nil, eris.New("earthengine: map response has no name")
	}

	mapID := result.MapID
	if mapID == "" {
		mapID = "unknown"
	}

	return &MapDescriptor{
		Name:    result.Name,
		MapID:   mapID,
		TileURL: c.baseURL + "/" + result.Name + "/tiles/{z}/{x}/{y}",
	}, nil
}
