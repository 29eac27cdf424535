package openpanel

import (
	"net/http"
	"time"
)

// ConfigOption is a function that modifies a Config.
type ConfigOption func(*Config)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ConfigOption {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithDebug enables debug logging.
func WithDebug(debug bool) ConfigOption {
	return func(c *Config) {
		c.Debug = debug
	}
}

// WithStructuredLogger sets a structured logger.
//
// Example with slog:
//
//	tracker, _ := openpanel.New(url, id, secret,
//	    openpanel.WithStructuredLogger(openpanel.NewSlogAdapter(slog.Default())),
//	)
func WithStructuredLogger(logger StructuredLogger) ConfigOption {
	return func(c *Config) {
		c.StructuredLogger = logger
	}
}

// WithHeaders sets additional headers sent with every request.
func WithHeaders(headers map[string]string) ConfigOption {
	return func(c *Config) {
		c.Headers = headers
	}
}

// WithGlobalProperties sets properties merged into every track and identify
// payload.
func WithGlobalProperties(props Properties) ConfigOption {
	return func(c *Config) {
		c.GlobalProperties = props
	}
}

// WithDisabled creates the tracker in a disabled state; all operations
// return ErrDisabled without network I/O.
func WithDisabled(disabled bool) ConfigOption {
	return func(c *Config) {
		c.Disabled = disabled
	}
}

// WithHTTPHooks sets hooks called before and after each HTTP request.
func WithHTTPHooks(hooks ...HTTPHook) ConfigOption {
	return func(c *Config) {
		c.HTTPHooks = hooks
	}
}
