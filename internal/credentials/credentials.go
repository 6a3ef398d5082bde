package credentials

import "context"

// Provider supplies a bearer token for the outbound model call.
// A failure here is fatal for the request; there is no fallback source.
type Provider interface {
	GetAccessToken(ctx context.Context) (string, error)
}
