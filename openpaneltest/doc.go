// Package openpaneltest provides test helpers for code that uses the
// openpanel SDK.
//
// MockServer is an in-process HTTP server that records every request it
// receives and responds with configurable status codes and bodies:
//
//	ms := openpaneltest.NewMockServer()
//	defer ms.Close()
//
//	tracker, _ := openpaneltest.NewTracker(ms)
//	tracker.Track(ctx, "signup", nil, nil)
//
//	if ms.RequestCount() != 1 {
//	    t.Fatal("expected one request")
//	}
//	env, _ := ms.LastEnvelope()
package openpaneltest
