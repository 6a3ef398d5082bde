package vertex

import (
	"errors"
	"testing"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{
			name:     "happy path",
			raw:      `{"candidates":[{"content":{"parts":[{"text":"{\"issue\":\"Pothole\"}"}]}}]}`,
			expected: `{"issue":"Pothole"}`,
		},
		{
			name:     "surrounding whitespace trimmed",
			raw:      `{"candidates":[{"content":{"parts":[{"text":"\n  hello  \n"}]}}]}`,
			expected: "hello",
		},
		{
			name:     "only first part is read",
			raw:      `{"candidates":[{"content":{"parts":[{"text":"first"},{"text":"second"}]}}]}`,
			expected: "first",
		},
		{
			name:    "no candidates",
			raw:     `{"candidates":[]}`,
			wantErr: true,
		},
		{
			name:    "candidates missing entirely",
			raw:     `{"usageMetadata":{"totalTokenCount":42}}`,
			wantErr: true,
		},
		{
			name:    "empty parts",
			raw:     `{"candidates":[{"content":{"parts":[]}}]}`,
			wantErr: true,
		},
		{
			name:    "empty text",
			raw:     `{"candidates":[{"content":{"parts":[{"text":"  "}]}}]}`,
			wantErr: true,
		},
		{
			name:    "not json",
			raw:     "<html>502 Bad Gateway</html>",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := ExtractText([]byte(tt.raw))
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedResponse) {
					t.Fatalf("expected ErrMalformedResponse, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if text != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, text)
			}
		})
	}
}
