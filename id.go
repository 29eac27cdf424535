package openpanel

import "github.com/google/uuid"

// NewDeviceID generates a client-side device identifier. Use it for callers
// that provision their own IDs before first contact with the API; DeviceID
// fetches the server-assigned one instead.
func NewDeviceID() string {
	return uuid.NewString()
}

// NewProfileID generates a random profile identifier for anonymous
// profiles.
func NewProfileID() string {
	return uuid.NewString()
}
