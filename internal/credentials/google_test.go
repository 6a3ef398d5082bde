package credentials

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestNewGoogleMissingFile(t *testing.T) {
	_, err := NewGoogle(context.Background(), filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err == nil {
		t.Error("expected error for missing service account file")
	}
}

func TestNewGoogleInvalidKeyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sa.json")
	if err := os.WriteFile(path, []byte("not a service account key"), 0o600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := NewGoogle(context.Background(), path)
	if err == nil {
		t.Error("expected error for unparseable service account file")
	}
}
