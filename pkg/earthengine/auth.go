// Package earthengine provides service-account authenticated access to the
// Google Earth Engine REST API.
package earthengine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rotisserie/eris"
)

const (
	defaultTokenURL = "https://oauth2.googleapis.com/token"

	// oauthScope grants read access to Earth Engine assets and map creation.
	oauthScope = "https://www.googleapis.com/auth/earthengine"

	jwtBearerGrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"

	assertionLifetime = time.Hour
)

// Credentials holds the parts of a Google service-account key file the
// authenticator needs.
type Credentials struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri"`
}

// LoadCredentials reads and parses a service-account key file.
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "earthengine: read credentials file")
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, eris.Wrap(err, "earthengine: parse credentials file")
	}
	if creds.PrivateKey == "" {
		return nil, eris.New("earthengine: credentials file has no private key")
	}

	return &creds, nil
}

// Session is an authenticated, project-scoped connection to Earth Engine.
// It is created once per run and passed to every client operation.
type Session struct {
	Token   string
	Project string
}

// AuthOption configures the Authenticator.
type AuthOption func(*Authenticator)

// WithTokenURL overrides the OAuth token endpoint.
func WithTokenURL(u string) AuthOption {
	return func(a *Authenticator) {
		a.tokenURL = u
	}
}

// WithAuthHTTPClient overrides the default http.Client used for the
// token exchange.
func WithAuthHTTPClient(hc *http.Client) AuthOption {
	return func(a *Authenticator) {
		a.http = hc
	}
}

// Authenticator exchanges a signed service-account assertion for a Session.
type Authenticator struct {
	creds    *Credentials
	account  string
	project  string
	tokenURL string
	http     *http.Client
	now      func() time.Time
}

// NewAuthenticator creates an Authenticator for the given service account
// and project. The account identifier takes precedence over the key file's
// client_email when both are set.
func NewAuthenticator(creds *Credentials, account, project string, opts ...AuthOption) *Authenticator {
	a := &Authenticator{
		creds:    creds,
		account:  account,
		project:  project,
		tokenURL: defaultTokenURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		now: time.Now,
	}
	if a.account == "" {
		a.account = creds.ClientEmail
	}
	if creds.TokenURI != "" {
		a.tokenURL = creds.TokenURI
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// Authenticate signs a JWT-bearer assertion with the service-account key and
// exchanges it for a bearer token. A single attempt, no retry: any failure
// is terminal for the run.
func (a *Authenticator) Authenticate(ctx context.Context) (*Session, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(a.creds.PrivateKey))
	if err != nil {
		return nil, eris.Wrap(err, "earthengine: parse service account key")
	}

	now := a.now()
	claims := jwt.MapClaims{
		"iss":   a.account,
		"scope": oauthScope,
		"aud":   a.tokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionLifetime).Unix(),
	}
	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return nil, eris.Wrap(err, "earthengine: sign assertion")
	}

	form := url.Values{
		"grant_type": {jwtBearerGrantType},
		"assertion":  {assertion},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, eris.Wrap(err, "earthengine: create token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "earthengine: exchange assertion")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("earthengine: token endpoint returned %d", resp.StatusCode)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return nil, eris.Wrap(err, "earthengine: decode token response")
	}
	if tok.AccessToken == "" {
		return nil, eris.New("earthengine: token endpoint returned no access token")
	}

	return &Session{Token: tok.AccessToken, Project: a.project}, nil
}
