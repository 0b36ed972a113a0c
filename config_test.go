package homeslice

import (
	"testing"
	"time"
)

func TestConfigFromEnvFailsClosedWithoutAPIURL(t *testing.T) {
	t.Setenv("HOMESLICE_API_URL", "")

	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("missing API URL must be an error, not a localhost fallback")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("HOMESLICE_API_URL", "https://api.homeslice.example")
	t.Setenv("HOMESLICE_HTTP_TIMEOUT", "10s")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.APIURL != "https://api.homeslice.example" {
		t.Fatalf("APIURL = %q", cfg.APIURL)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("HTTPTimeout = %v", cfg.HTTPTimeout)
	}
}
