// Package config resolves the client's single configuration value: the
// API base URL. A .env file is honoured when present, matching how the
// backend address is provisioned on devices.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvBaseURL names the environment variable carrying the API base URL.
const EnvBaseURL = "API_BASE_URL"

// BaseURL returns the API base URL. An explicit (flag-provided) value
// wins; otherwise the environment, seeded from .env when one exists, is
// consulted. The returned URL never has a trailing slash.
func BaseURL(explicit string) (string, error) {
	_ = godotenv.Load()

	v := strings.TrimSpace(explicit)
	if v == "" {
		v = strings.TrimSpace(os.Getenv(EnvBaseURL))
	}
	if v == "" {
		return "", fmt.Errorf("config: no base URL: pass -base-url or set %s", EnvBaseURL)
	}
	if !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") {
		return "", fmt.Errorf("config: base URL %q must be absolute (http:// or https://)", v)
	}
	return strings.TrimRight(v, "/"), nil
}
