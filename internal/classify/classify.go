package classify

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Priority levels the model may assign.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// IssueInvalid is the sentinel category for images that do not show a
// recognized civic issue, or for model answers outside the taxonomy.
const IssueInvalid = "INVALID"

const fallbackReason = "Model returned unexpected issue category"

// ErrParse means the model answer text is not the expected JSON shape.
var ErrParse = errors.New("model answer is not a valid issue classification")

// Result is the normalized classification returned to the caller.
type Result struct {
	Issue            string `json:"issue"`
	ConfidenceReason string `json:"confidence_reason"`
	Priority         string `json:"priority"`
}

var allowedIssues = map[string]struct{}{
	"Garbage":     {},
	"Pothole":     {},
	"Drainage":    {},
	"Streetlight": {},
	"WaterLeak":   {},
	IssueInvalid:  {},
}

// StripFence removes markdown code fence markers the model sometimes wraps
// its JSON answer in. Idempotent: clean text passes through unchanged.
func StripFence(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// ParseAndNormalize parses the cleaned model answer and forces the result
// into the allowed category set. An answer naming any category outside the
// set is rewritten wholesale to the INVALID fallback; a syntactically valid
// but out-of-taxonomy answer is never trusted.
func ParseAndNormalize(text string) (Result, error) {
	var res Result
	if err := json.Unmarshal([]byte(StripFence(text)), &res); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if res.Issue == "" || res.Priority == "" {
		return Result{}, fmt.Errorf("%w: missing fields", ErrParse)
	}
	if _, ok := allowedIssues[res.Issue]; !ok {
		return Result{
			Issue:            IssueInvalid,
			ConfidenceReason: fallbackReason,
			Priority:         PriorityLow,
		}, nil
	}
	return res, nil
}
