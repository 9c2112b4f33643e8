package config

import (
	"strings"
	"testing"
)

func TestBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		env      string
		want     string
		wantErr  string
	}{
		{"explicit wins", "http://10.0.0.5:8000", "http://ignored", "http://10.0.0.5:8000", ""},
		{"env fallback", "", "http://192.168.1.65:8000", "http://192.168.1.65:8000", ""},
		{"trailing slash trimmed", "https://api.example.com/", "", "https://api.example.com", ""},
		{"missing", "", "", "", "no base URL"},
		{"not absolute", "192.168.1.65:8000", "", "", "must be absolute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvBaseURL, tt.env)

			got, err := BaseURL(tt.explicit)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
