package main

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/brngo13/gee-tiles/pkg/earthengine"
)

// initClient authenticates with Earth Engine and returns a project-scoped
// client. On any failure the run is over: no layer is ever resolved with an
// unauthenticated session.
func initClient(ctx context.Context) (earthengine.Client, error) {
	creds, err := earthengine.LoadCredentials(cfg.EarthEngine.CredentialsPath)
	if err != nil {
		zap.L().Error("failed to authenticate with Earth Engine", zap.Error(err))
		return nil, err
	}

	authOpts := []earthengine.AuthOption{}
	if cfg.EarthEngine.TokenURL != "" {
		authOpts = append(authOpts, earthengine.WithTokenURL(cfg.EarthEngine.TokenURL))
	}
	auth := earthengine.NewAuthenticator(creds, cfg.EarthEngine.ServiceAccount, cfg.EarthEngine.Project, authOpts...)

	session, err := auth.Authenticate(ctx)
	if err != nil {
		zap.L().Error("failed to authenticate with Earth Engine", zap.Error(err))
		return nil, err
	}
	zap.L().Info("authenticated with Earth Engine",
		zap.String("account", cfg.EarthEngine.ServiceAccount),
		zap.String("project", cfg.EarthEngine.Project),
	)

	return earthengine.NewClient(session,
		earthengine.WithBaseURL(cfg.EarthEngine.BaseURL),
		earthengine.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.EarthEngine.TimeoutSecs) * time.Second,
		}),
		earthengine.WithRateLimit(cfg.EarthEngine.RateLimitPerSec),
	), nil
}
