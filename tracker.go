package openpanel

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

// Tracker is the OpenPanel client. Tracker values are immutable; the
// builder methods (WithDefaultHeaders, WithHeader, WithGlobalProperties,
// Disable) return modified copies and never touch the receiver, so a single
// tracker can be shared freely across goroutines.
type Tracker struct {
	config      *Config
	http        *httpClient
	headers     http.Header
	globalProps Properties
	disabled    bool
}

// New creates a new tracker for the given endpoint and credentials.
//
// Example:
//
//	tracker, err := openpanel.New("https://api.openpanel.dev/track",
//	    clientID, clientSecret,
//	    openpanel.WithTimeout(10*time.Second),
//	)
func New(trackURL, clientID, clientSecret string, opts ...ConfigOption) (*Tracker, error) {
	cfg := &Config{
		TrackURL:     trackURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return NewWithConfig(cfg)
}

// NewWithConfig creates a new tracker from a Config struct. This is useful
// when you want to configure the tracker using a struct rather than
// functional options.
//
// Example:
//
//	tracker, err := openpanel.NewWithConfig(&openpanel.Config{
//	    TrackURL:     os.Getenv(openpanel.EnvTrackURL),
//	    ClientID:     os.Getenv(openpanel.EnvClientID),
//	    ClientSecret: os.Getenv(openpanel.EnvClientSecret),
//	})
func NewWithConfig(cfg *Config) (*Tracker, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	// Make a copy to avoid modifying the original
	cfgCopy := *cfg

	cfgCopy.applyDefaults()

	if err := cfgCopy.validate(); err != nil {
		return nil, err
	}

	headers := make(http.Header, len(cfgCopy.Headers))
	for key, value := range cfgCopy.Headers {
		headers.Set(key, value)
	}

	return &Tracker{
		config:      &cfgCopy,
		http:        newHTTPClient(&cfgCopy),
		headers:     headers,
		globalProps: cfgCopy.GlobalProperties.Clone(),
		disabled:    cfgCopy.Disabled,
	}, nil
}

// clone returns a copy of the tracker with its own header and property maps.
func (t *Tracker) clone() *Tracker {
	headers := make(http.Header, len(t.headers))
	for key, values := range t.headers {
		headers[key] = append([]string(nil), values...)
	}

	return &Tracker{
		config:      t.config,
		http:        t.http,
		headers:     headers,
		globalProps: t.globalProps.Clone(),
		disabled:    t.disabled,
	}
}

// WithDefaultHeaders returns a tracker that sends the standard OpenPanel
// headers on every request: the JSON content type plus the client ID and
// client secret headers.
func (t *Tracker) WithDefaultHeaders() *Tracker {
	c := t.clone()
	c.headers.Set("Content-Type", "application/json")
	c.headers.Set(HeaderClientID, t.config.ClientID)
	c.headers.Set(HeaderClientSecret, t.config.ClientSecret)
	return c
}

// WithHeader returns a tracker that sends an additional custom header on
// every request. Use this for headers such as geo location or user agent.
func (t *Tracker) WithHeader(key, value string) *Tracker {
	c := t.clone()
	c.headers.Set(key, value)
	return c
}

// WithGlobalProperties returns a tracker that merges the given properties
// into every track and identify payload. Global values win on key conflict.
func (t *Tracker) WithGlobalProperties(props Properties) *Tracker {
	c := t.clone()
	c.globalProps = props.Clone()
	return c
}

// Disable returns a tracker that performs no network I/O; every operation
// returns ErrDisabled.
func (t *Tracker) Disable() *Tracker {
	c := t.clone()
	c.disabled = true
	return c
}

// Headers returns a copy of the headers the tracker sends on every request.
func (t *Tracker) Headers() http.Header {
	headers := make(http.Header, len(t.headers))
	for key, values := range t.headers {
		headers[key] = append([]string(nil), values...)
	}
	return headers
}

// GlobalProperties returns a copy of the tracker's global properties.
func (t *Tracker) GlobalProperties() Properties {
	return t.globalProps.Clone()
}

// Disabled reports whether the tracker is disabled.
func (t *Tracker) Disabled() bool { return t.disabled }

// Track records a named event with optional properties.
//
// If filter is non-nil it is evaluated over the event properties merged
// with the tracker's global properties; when it returns true the event is
// suppressed and Track returns ErrFiltered without any network I/O.
// Otherwise the event envelope is POSTed to the track endpoint and the raw
// response is returned.
func (t *Tracker) Track(ctx context.Context, event string, properties Properties, filter Filter) (*Response, error) {
	merged := properties.merged(t.globalProps)

	if filter != nil && filter(merged) {
		return nil, &FilteredError{Event: event}
	}

	return t.send(ctx, TypeTrack, Event{Name: event, Properties: merged})
}

// Identify associates a profile with descriptive attributes. The tracker's
// global properties are merged into the user's properties before sending.
func (t *Tracker) Identify(ctx context.Context, user IdentifyUser) (*Response, error) {
	user.Properties = user.Properties.merged(t.globalProps)
	return t.send(ctx, TypeIdentify, user)
}

// IdentifyProfile identifies any caller type that can describe itself as an
// IdentifyUser. See the Profile interface for an example.
func (t *Tracker) IdentifyProfile(ctx context.Context, p Profile) (*Response, error) {
	return t.Identify(ctx, p.IdentifyUser())
}

// Increment raises a numeric property on a profile by value.
func (t *Tracker) Increment(ctx context.Context, profileID, property string, value int64) (*Response, error) {
	return t.send(ctx, TypeIncrement, PropertyDelta{
		ProfileID: profileID,
		Property:  property,
		Value:     value,
	})
}

// Decrement lowers a numeric property on a profile by value. The value is
// sent as given; the operation is carried by the envelope type.
func (t *Tracker) Decrement(ctx context.Context, profileID, property string, value int64) (*Response, error) {
	return t.send(ctx, TypeDecrement, PropertyDelta{
		ProfileID: profileID,
		Property:  property,
		Value:     value,
	})
}

// Revenue tracks a revenue event for the given amount. The amount is also
// exposed as an "amount" property alongside the tracker's global properties.
func (t *Tracker) Revenue(ctx context.Context, amount int64, properties Properties) (*Response, error) {
	props := properties.merged(t.globalProps)
	props["amount"] = strconv.FormatInt(amount, 10)

	return t.send(ctx, TypeTrack, revenueEvent{
		Name:       "revenue",
		Amount:     amount,
		Properties: props,
	})
}

// DeviceID fetches the server-assigned device ID from the /device-id
// endpoint. It returns an empty string when the server response carries no
// deviceId key.
func (t *Tracker) DeviceID(ctx context.Context) (string, error) {
	if t.disabled {
		return "", ErrDisabled
	}

	resp, err := t.http.get(ctx, "/device-id", t.headers)
	if err != nil {
		return "", err
	}

	var body map[string]string
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return "", &SerializationError{Err: err}
	}

	return body["deviceId"], nil
}

// send wraps the payload in the wire envelope and POSTs it.
func (t *Tracker) send(ctx context.Context, typ TrackType, payload any) (*Response, error) {
	if t.disabled {
		return nil, ErrDisabled
	}

	return t.http.post(ctx, envelope{Type: typ, Payload: payload}, t.headers)
}
