package openpanel

// TrackType identifies the kind of payload carried by a request envelope.
type TrackType string

// Track types understood by the OpenPanel ingestion API.
const (
	// TypeTrack records a named event with optional properties.
	TypeTrack TrackType = "track"
	// TypeIdentify associates a profile with descriptive attributes.
	TypeIdentify TrackType = "identify"
	// TypeIncrement raises a numeric property on a profile.
	TypeIncrement TrackType = "increment"
	// TypeDecrement lowers a numeric property on a profile.
	TypeDecrement TrackType = "decrement"
)

// String returns the wire representation of the track type.
func (t TrackType) String() string { return string(t) }

// Event is the payload body of a track call.
type Event struct {
	Name       string     `json:"name"`
	Properties Properties `json:"properties"`
}

// revenueEvent is the payload body of a revenue call. It is a track event
// with an additional top-level amount field.
type revenueEvent struct {
	Name       string     `json:"name"`
	Amount     int64      `json:"amount"`
	Properties Properties `json:"properties"`
}

// IdentifyUser is the payload body of an identify call.
type IdentifyUser struct {
	ProfileID  string     `json:"profileId"`
	Email      string     `json:"email"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Properties Properties `json:"properties"`
}

// PropertyDelta is the payload body of an increment or decrement call.
// The operation itself is carried by the envelope type, not by the sign of
// Value.
type PropertyDelta struct {
	ProfileID string `json:"profileId"`
	Property  string `json:"property"`
	Value     int64  `json:"value"`
}

// envelope is the wire format shared by all ingestion requests:
// {"type": "track", "payload": {...}}.
type envelope struct {
	Type    TrackType `json:"type"`
	Payload any       `json:"payload"`
}

// Filter decides whether an event should be suppressed. It receives the
// event properties merged with the tracker's global properties; returning
// true means "do not send".
type Filter func(Properties) bool

// Profile maps a caller-domain type onto the identify payload shape.
// Implement it on your own user type and pass it to IdentifyProfile:
//
//	type AppUser struct{ ID, Email string }
//
//	func (u AppUser) IdentifyUser() openpanel.IdentifyUser {
//	    return openpanel.IdentifyUser{ProfileID: u.ID, Email: u.Email}
//	}
//
//	tracker.IdentifyProfile(ctx, AppUser{ID: "u1", Email: "a@b.c"})
type Profile interface {
	IdentifyUser() IdentifyUser
}
