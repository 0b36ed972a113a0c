package homeslice

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the environment-supplied client configuration. The API base
// URL is required: a missing value fails closed rather than silently
// falling back to a localhost backend.
type Config struct {
	// APIURL is the HomeSlice backend base URL (HOMESLICE_API_URL).
	APIURL string `envconfig:"API_URL" required:"true"`

	// HTTPTimeout bounds each HTTP request (HOMESLICE_HTTP_TIMEOUT).
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// IDPURL is the identity provider endpoint (HOMESLICE_IDP_URL).
	IDPURL string `envconfig:"IDP_URL" default:"https://identitytoolkit.googleapis.com"`

	// IDPKey is the identity provider API key (HOMESLICE_IDP_KEY).
	IDPKey string `envconfig:"IDP_KEY"`

	// IDToken optionally supplies a fixed bearer token for scripted use
	// against a local backend (HOMESLICE_ID_TOKEN).
	IDToken string `envconfig:"ID_TOKEN"`
}

// ConfigFromEnv loads Config from HOMESLICE_* environment variables.
func ConfigFromEnv() (Config, error) {
	var c Config
	err := envconfig.Process("HOMESLICE", &c)
	return c, err
}
