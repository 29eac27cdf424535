package openpanel

import "testing"

func TestNewDeviceID(t *testing.T) {
	a := NewDeviceID()
	b := NewDeviceID()

	if a == "" || b == "" {
		t.Fatal("NewDeviceID returned an empty string")
	}
	if a == b {
		t.Error("NewDeviceID returned duplicate IDs")
	}
}

func TestNewProfileID(t *testing.T) {
	if NewProfileID() == NewProfileID() {
		t.Error("NewProfileID returned duplicate IDs")
	}
}
