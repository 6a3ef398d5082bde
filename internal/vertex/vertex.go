// Package vertex speaks the Vertex AI generateContent REST contract.
// The request and response shapes are typed to the documented schema
// rather than built from loose maps.
package vertex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUpstream means the model call returned a non-success status,
	// an empty body, or failed at the transport level.
	ErrUpstream = errors.New("model call failed")
	// ErrMalformedResponse means the response body lacks the expected
	// candidates[0].content.parts[0].text path.
	ErrMalformedResponse = errors.New("model response missing text output")
)

// InlineData carries a base64-encoded media payload.
type InlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

// Part is one element of a content turn: either text or inline media.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// Content is a single role-attributed turn.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// GenerationConfig tunes model sampling.
type GenerationConfig struct {
	Temperature float64 `json:"temperature"`
}

// Request is the generateContent request body.
type Request struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

// Response is the subset of the generateContent response we navigate.
type Response struct {
	Candidates []Candidate `json:"candidates"`
}

type Candidate struct {
	Content Content `json:"content"`
}

// Caller issues a single generateContent call and returns the raw
// response body. Implementations make exactly one attempt per call.
type Caller interface {
	GenerateContent(ctx context.Context, req Request) ([]byte, error)
}

// ExtractText navigates to the first candidate's first part text.
// The raw body is carried in the error for operator logs; it must never
// be echoed back to callers.
func ExtractText(raw []byte) (string, error) {
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: %s", ErrMalformedResponse, raw)
	}
	text := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("%w: %s", ErrMalformedResponse, raw)
	}
	return text, nil
}
