// Package openpanel provides a Go SDK for the OpenPanel analytics platform.
//
// The SDK sends analytics events (track, identify, increment, decrement) to
// an OpenPanel ingestion endpoint over HTTP. A Tracker holds the endpoint and
// client credentials; every operation is a single stateless request/response
// round trip.
//
// # Quick Start
//
// Create a tracker from the environment and track an event:
//
//	tracker, err := openpanel.NewFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tracker = tracker.WithDefaultHeaders()
//
//	resp, err := tracker.Track(context.Background(), "signup", openpanel.Properties{
//	    "plan": "pro",
//	}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Status)
//
// NewFromEnv reads OPENPANEL_TRACK_URL, OPENPANEL_CLIENT_ID, and
// OPENPANEL_CLIENT_SECRET, loading a local .env file first when one exists.
//
// # Configuration
//
// Trackers can also be built explicitly, from a struct, or from a YAML file:
//
//	tracker, err := openpanel.New(trackURL, clientID, clientSecret,
//	    openpanel.WithTimeout(10*time.Second),
//	    openpanel.WithDebug(true),
//	)
//
// Builder methods return new immutable tracker values; the receiver is never
// modified:
//
//	perApp := tracker.
//	    WithDefaultHeaders().
//	    WithGlobalProperties(openpanel.Properties{"app_version": "1.4.2"})
//
// # Filtering
//
// Track accepts an optional Filter predicate. When the filter returns true
// the event is suppressed and Track returns ErrFiltered without performing
// any network I/O:
//
//	noBots := func(p openpanel.Properties) bool { return p.Has("bot") }
//	_, err := tracker.Track(ctx, "page_view", props, noBots)
//	if errors.Is(err, openpanel.ErrFiltered) {
//	    // event was vetoed locally
//	}
//
// # Responses
//
// Operations return the raw *Response. The SDK does not interpret the body
// and does not convert non-2xx statuses into errors; callers inspect
// Response.Status themselves. Errors are reserved for configuration
// problems, filter vetoes, serialization failures, and transport failures.
//
// # Thread Safety
//
// Tracker values are immutable and safe for concurrent use. Calls issued
// concurrently are independent; no ordering guarantee exists between them.
package openpanel
