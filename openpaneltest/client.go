package openpaneltest

import (
	openpanel "github.com/openpanel-dev/openpanel-go"
)

// Test credentials used by NewTracker.
const (
	TestClientID     = "op_client_test"
	TestClientSecret = "op_secret_test"
)

// NewTracker creates a tracker pointed at the mock server, with the default
// OpenPanel headers attached.
func NewTracker(ms *MockServer, opts ...openpanel.ConfigOption) (*openpanel.Tracker, error) {
	tracker, err := openpanel.New(ms.URL, TestClientID, TestClientSecret, opts...)
	if err != nil {
		return nil, err
	}
	return tracker.WithDefaultHeaders(), nil
}
