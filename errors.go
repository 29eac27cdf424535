package openpanel

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of error for metrics and logging.
type ErrorCode string

// Error codes for categorization.
const (
	ErrCodeConfig        ErrorCode = "CONFIG"        // Configuration errors
	ErrCodeFiltered      ErrorCode = "FILTERED"      // Filter vetoed the event
	ErrCodeDisabled      ErrorCode = "DISABLED"      // Tracker is disabled
	ErrCodeNetwork       ErrorCode = "NETWORK"       // Network/transport errors
	ErrCodeSerialization ErrorCode = "SERIALIZATION" // Payload encoding/decoding errors
)

// TrackerError is the common interface for all SDK errors.
// Use this interface to handle errors generically while still accessing
// error-specific information.
//
// Example:
//
//	var trackerErr openpanel.TrackerError
//	if errors.As(err, &trackerErr) {
//	    log.Printf("error code: %s", trackerErr.Code())
//	}
type TrackerError interface {
	error

	// Code returns a machine-readable error code for categorization.
	Code() ErrorCode
}

// Sentinel errors.
var (
	// ErrNilConfig is returned when NewWithConfig receives a nil config.
	ErrNilConfig = errors.New("openpanel: config cannot be nil")

	// ErrDisabled is returned by all operations on a disabled tracker.
	// No network I/O is performed.
	ErrDisabled = errors.New("openpanel: tracker is disabled")

	// ErrFiltered is returned by Track when the caller's filter vetoed the
	// event. No network I/O is performed. Match with errors.Is; the concrete
	// *FilteredError carries the event name.
	ErrFiltered = errors.New("openpanel: event filtered")
)

// ConfigError reports a missing or invalid configuration value at
// construction time. The tracker cannot be created until the caller fixes
// the named field.
type ConfigError struct {
	// Field is the configuration field or environment variable at fault.
	Field string
	// Message describes what is wrong with it.
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("openpanel: invalid configuration for %s: %s", e.Field, e.Message)
}

// Code implements the TrackerError interface.
func (e *ConfigError) Code() ErrorCode { return ErrCodeConfig }

// FilteredError reports that a caller-supplied filter vetoed an event before
// any request was made. It matches ErrFiltered via errors.Is.
type FilteredError struct {
	// Event is the name of the suppressed event.
	Event string
}

// Error implements the error interface.
func (e *FilteredError) Error() string {
	return fmt.Sprintf("openpanel: event %q filtered", e.Event)
}

// Is implements error comparison for errors.Is, matching ErrFiltered.
func (e *FilteredError) Is(target error) bool { return target == ErrFiltered }

// Code implements the TrackerError interface.
func (e *FilteredError) Code() ErrorCode { return ErrCodeFiltered }

// TransportError reports a network-level failure while issuing a request.
// HTTP responses with non-2xx status codes are NOT transport errors; they
// are returned as a normal *Response.
type TransportError struct {
	// URL is the request URL that failed.
	URL string
	// Err is the underlying transport error.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("openpanel: request to %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error for error chain support.
func (e *TransportError) Unwrap() error { return e.Err }

// Code implements the TrackerError interface.
func (e *TransportError) Code() ErrorCode { return ErrCodeNetwork }

// SerializationError reports a failure to encode a payload or decode a
// response body.
type SerializationError struct {
	// Err is the underlying encoding error.
	Err error
}

// Error implements the error interface.
func (e *SerializationError) Error() string {
	return fmt.Sprintf("openpanel: serialization failed: %v", e.Err)
}

// Unwrap returns the underlying error for error chain support.
func (e *SerializationError) Unwrap() error { return e.Err }

// Code implements the TrackerError interface.
func (e *SerializationError) Code() ErrorCode { return ErrCodeSerialization }

// Ensure the typed errors implement TrackerError.
var (
	_ TrackerError = (*ConfigError)(nil)
	_ TrackerError = (*FilteredError)(nil)
	_ TrackerError = (*TransportError)(nil)
	_ TrackerError = (*SerializationError)(nil)
)

// AsConfigError extracts a ConfigError from the error chain.
// Returns the ConfigError and true if found, nil and false otherwise.
func AsConfigError(err error) (*ConfigError, bool) {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr, true
	}
	return nil, false
}

// IsFiltered returns true if the error reports a filter veto.
func IsFiltered(err error) bool { return errors.Is(err, ErrFiltered) }

// IsDisabled returns true if the error reports a disabled tracker.
func IsDisabled(err error) bool { return errors.Is(err, ErrDisabled) }
