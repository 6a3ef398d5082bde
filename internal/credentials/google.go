package credentials

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// GoogleProvider derives access tokens from a service account key file.
// The token source caches tokens and refreshes them when they expire, so
// per-request calls are cheap after the first fetch.
type GoogleProvider struct {
	source oauth2.TokenSource
}

// NewGoogle reads the service account key file once at startup and builds
// a reusable token source scoped to the Cloud Platform API.
func NewGoogle(ctx context.Context, serviceAccountFile string) (*GoogleProvider, error) {
	data, err := os.ReadFile(serviceAccountFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account file: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}
	return &GoogleProvider{source: creds.TokenSource}, nil
}

func (p *GoogleProvider) GetAccessToken(_ context.Context) (string, error) {
	tok, err := p.source.Token()
	if err != nil {
		return "", fmt.Errorf("failed to obtain access token: %w", err)
	}
	return tok.AccessToken, nil
}
