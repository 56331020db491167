package google

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const calendarScope = "https://www.googleapis.com/auth/calendar"

func TestNewHTTPClient(t *testing.T) {
	tmp := t.TempDir()
	badJSON := filepath.Join(tmp, "bad.json")
	if err := os.WriteFile(badJSON, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(tmp, "missing.json")},
		{"invalid json", badJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewHTTPClient(context.Background(), tt.path, "secretary@company.com", calendarScope); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestClientOption(t *testing.T) {
	if ClientOption("/some/path.json") == nil {
		t.Fatal("expected non-nil ClientOption")
	}
}
