package openpanel

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFilteredErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &FilteredError{Event: "signup"})

	if !errors.Is(err, ErrFiltered) {
		t.Error("errors.Is(err, ErrFiltered) = false")
	}
	if !IsFiltered(err) {
		t.Error("IsFiltered(err) = false")
	}

	var filteredErr *FilteredError
	if !errors.As(err, &filteredErr) {
		t.Fatal("errors.As failed to extract *FilteredError")
	}
	if filteredErr.Event != "signup" {
		t.Errorf("Event = %q, want signup", filteredErr.Event)
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{URL: "https://api.openpanel.dev/track", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("TransportError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() = %q, want cause included", err.Error())
	}
}

func TestSerializationErrorUnwrap(t *testing.T) {
	cause := errors.New("unsupported type")
	err := &SerializationError{Err: cause}

	if !errors.Is(err, cause) {
		t.Error("SerializationError should unwrap to its cause")
	}
}

func TestAsConfigError(t *testing.T) {
	err := fmt.Errorf("setup: %w", &ConfigError{Field: "TrackURL", Message: "track URL is required"})

	configErr, ok := AsConfigError(err)
	if !ok {
		t.Fatal("AsConfigError failed on wrapped ConfigError")
	}
	if configErr.Field != "TrackURL" {
		t.Errorf("Field = %q, want TrackURL", configErr.Field)
	}

	if _, ok := AsConfigError(errors.New("plain")); ok {
		t.Error("AsConfigError matched a plain error")
	}
}

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  TrackerError
		want ErrorCode
	}{
		{name: "config", err: &ConfigError{Field: "TrackURL"}, want: ErrCodeConfig},
		{name: "filtered", err: &FilteredError{Event: "x"}, want: ErrCodeFiltered},
		{name: "transport", err: &TransportError{URL: "http://x"}, want: ErrCodeNetwork},
		{name: "serialization", err: &SerializationError{}, want: ErrCodeSerialization},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Code(); got != tt.want {
				t.Errorf("Code() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestIsDisabled(t *testing.T) {
	if !IsDisabled(fmt.Errorf("call: %w", ErrDisabled)) {
		t.Error("IsDisabled failed on wrapped ErrDisabled")
	}
	if IsDisabled(ErrFiltered) {
		t.Error("IsDisabled matched ErrFiltered")
	}
}

func TestTrackerErrorInterface(t *testing.T) {
	var err error = &FilteredError{Event: "x"}

	var trackerErr TrackerError
	if !errors.As(err, &trackerErr) {
		t.Fatal("errors.As failed to extract TrackerError")
	}
	if trackerErr.Code() != ErrCodeFiltered {
		t.Errorf("Code() = %s, want %s", trackerErr.Code(), ErrCodeFiltered)
	}
}
