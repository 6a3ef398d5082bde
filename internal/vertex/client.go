package vertex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"civicfix-ai/internal/credentials"
)

const defaultCallTimeout = 60 * time.Second

// Client calls a fixed Vertex Gemini model endpoint over HTTP.
// There is no retry or backoff; one request maps to one upstream call.
type Client struct {
	endpoint string
	creds    credentials.Provider
	httpc    *http.Client
}

// NewClient templates the generateContent endpoint from project, location,
// and model identifiers.
func NewClient(projectID, location, model string, creds credentials.Provider) *Client {
	endpoint := fmt.Sprintf(
		"https://%s-aiplatform.googleapis.com/v1/projects/%s/locations/%s/publishers/google/models/%s:generateContent",
		location, projectID, location, model,
	)
	return &Client{
		endpoint: endpoint,
		creds:    creds,
		httpc:    &http.Client{Timeout: defaultCallTimeout},
	}
}

// GenerateContent posts the request with a bearer token from the credential
// provider and returns the raw response body. A non-2xx status or an empty
// body fails with ErrUpstream.
func (c *Client) GenerateContent(ctx context.Context, req Request) ([]byte, error) {
	token, err := c.creds.GetAccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: credentials: %v", ErrUpstream, err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding request: %v", ErrUpstream, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrUpstream, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrUpstream, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices || len(raw) == 0 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	return raw, nil
}
