package openpanel

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names for configuration.
const (
	// EnvTrackURL is the environment variable for the ingestion endpoint.
	EnvTrackURL = "OPENPANEL_TRACK_URL"
	// EnvClientID is the environment variable for the client identifier.
	EnvClientID = "OPENPANEL_CLIENT_ID"
	// EnvClientSecret is the environment variable for the client secret.
	EnvClientSecret = "OPENPANEL_CLIENT_SECRET"
)

// Header names attached by Tracker.WithDefaultHeaders.
const (
	// HeaderClientID carries the client identifier on every request.
	HeaderClientID = "openpanel-client-id"
	// HeaderClientSecret carries the client secret on every request.
	HeaderClientSecret = "openpanel-client-secret"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Config holds the configuration for a Tracker. The zero value is not
// usable; TrackURL, ClientID, and ClientSecret are required.
type Config struct {
	// TrackURL is the ingestion endpoint (required).
	TrackURL string

	// ClientID is the OpenPanel client identifier (required).
	ClientID string

	// ClientSecret is the OpenPanel client secret (required).
	ClientSecret string

	// HTTPClient is the HTTP client to use for requests.
	// If not set, a default client with the configured timeout is used.
	HTTPClient *http.Client

	// Timeout is the request timeout. Defaults to 30 seconds.
	// Ignored when a custom HTTPClient is set.
	Timeout time.Duration

	// Debug enables debug logging of outgoing requests.
	Debug bool

	// StructuredLogger is used for SDK logging.
	// If nil, logging is disabled unless Debug is true, in which case
	// slog.Default() is used.
	StructuredLogger StructuredLogger

	// Headers are additional headers sent with every request.
	Headers map[string]string

	// GlobalProperties are merged into every track and identify payload.
	// Global values win on key conflict.
	GlobalProperties Properties

	// Disabled stops all network sends; operations return ErrDisabled.
	Disabled bool

	// HTTPHooks are called before and after each HTTP request.
	// Use hooks to add custom headers, log requests, or collect metrics.
	HTTPHooks []HTTPHook
}

// String returns a string representation of the config with masked
// credentials. This is safe to use in logs and debug output.
func (c *Config) String() string {
	return fmt.Sprintf("Config{TrackURL: %q, ClientID: %q, ClientSecret: %q, Disabled: %v}",
		c.TrackURL,
		MaskCredential(c.ClientID),
		MaskCredential(c.ClientSecret),
		c.Disabled,
	)
}

// applyDefaults sets default values for unset configuration options.
func (c *Config) applyDefaults() {
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}

	if c.StructuredLogger == nil {
		if c.Debug {
			c.StructuredLogger = NewSlogAdapter(nil)
		} else {
			c.StructuredLogger = NopLogger{}
		}
	}

	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
}

// validate checks that the configuration is valid.
func (c *Config) validate() error {
	if c.TrackURL == "" {
		return &ConfigError{Field: "TrackURL", Message: "track URL is required"}
	}
	if c.ClientID == "" {
		return &ConfigError{Field: "ClientID", Message: "client ID is required"}
	}
	if c.ClientSecret == "" {
		return &ConfigError{Field: "ClientSecret", Message: "client secret is required"}
	}

	u, err := url.Parse(c.TrackURL)
	if err != nil {
		return &ConfigError{Field: "TrackURL", Message: fmt.Sprintf("invalid URL: %v", err)}
	}
	if u.Scheme == "" || u.Host == "" {
		return &ConfigError{Field: "TrackURL", Message: fmt.Sprintf("URL must be absolute, got %q", c.TrackURL)}
	}

	if c.Timeout < 0 {
		return &ConfigError{Field: "Timeout", Message: "timeout cannot be negative"}
	}

	return nil
}

// NewFromEnv creates a new tracker using environment variables for
// configuration. It reads OPENPANEL_TRACK_URL, OPENPANEL_CLIENT_ID, and
// OPENPANEL_CLIENT_SECRET, loading a local .env file first when one exists.
// A missing or empty variable yields a *ConfigError.
//
// Example:
//
//	tracker, err := openpanel.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tracker = tracker.WithDefaultHeaders()
func NewFromEnv(opts ...ConfigOption) (*Tracker, error) {
	// A missing .env file is fine; only real read failures are surfaced.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, &ConfigError{Field: ".env", Message: err.Error()}
	}

	trackURL := os.Getenv(EnvTrackURL)
	clientID := os.Getenv(EnvClientID)
	clientSecret := os.Getenv(EnvClientSecret)

	if trackURL == "" {
		return nil, &ConfigError{Field: EnvTrackURL, Message: "environment variable is required"}
	}
	if clientID == "" {
		return nil, &ConfigError{Field: EnvClientID, Message: "environment variable is required"}
	}
	if clientSecret == "" {
		return nil, &ConfigError{Field: EnvClientSecret, Message: "environment variable is required"}
	}

	return New(trackURL, clientID, clientSecret, opts...)
}
