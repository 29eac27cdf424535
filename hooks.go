package openpanel

import (
	"context"
	"net/http"
	"time"
)

// HTTPHook allows customizing HTTP request/response handling.
// Hooks are called in order during request processing.
//
// Use hooks for:
//   - Adding custom headers to all requests
//   - Logging request/response details
//   - Collecting custom metrics
//
// Example:
//
//	tracker, _ := openpanel.New(url, id, secret,
//	    openpanel.WithHTTPHooks(openpanel.LoggingHook(logger)),
//	)
type HTTPHook interface {
	// BeforeRequest is called before sending the HTTP request.
	// It can modify the request (e.g., add headers) and return an error to abort.
	BeforeRequest(ctx context.Context, req *http.Request) error

	// AfterResponse is called after the HTTP round trip.
	// It receives the response, duration, and any error from the request.
	// The response may be nil when err is non-nil.
	AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error)
}

// HTTPHookFunc is a function adapter for simple hooks.
// It allows creating hooks from functions without implementing the full interface.
type HTTPHookFunc struct {
	Before func(ctx context.Context, req *http.Request) error
	After  func(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error)
}

// BeforeRequest implements HTTPHook.
func (f HTTPHookFunc) BeforeRequest(ctx context.Context, req *http.Request) error {
	if f.Before != nil {
		return f.Before(ctx, req)
	}
	return nil
}

// AfterResponse implements HTTPHook.
func (f HTTPHookFunc) AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
	if f.After != nil {
		f.After(ctx, req, resp, duration, err)
	}
}

var _ HTTPHook = HTTPHookFunc{}

// LoggingHook returns a hook that logs each request and response at debug
// level. Credentials in headers are never logged.
func LoggingHook(logger StructuredLogger) HTTPHook {
	return HTTPHookFunc{
		Before: func(ctx context.Context, req *http.Request) error {
			logger.Debug("openpanel: sending request",
				"method", req.Method,
				"url", req.URL.String(),
			)
			return nil
		},
		After: func(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
			if err != nil {
				logger.Debug("openpanel: request failed",
					"url", req.URL.String(),
					"duration", duration,
					"error", err,
				)
				return
			}
			logger.Debug("openpanel: received response",
				"url", req.URL.String(),
				"status", resp.StatusCode,
				"duration", duration,
			)
		},
	}
}

// HeaderHook returns a hook that sets a fixed header on every request.
func HeaderHook(key, value string) HTTPHook {
	return HTTPHookFunc{
		Before: func(ctx context.Context, req *http.Request) error {
			req.Header.Set(key, value)
			return nil
		},
	}
}
