package openpanel

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"
)

// recordingLogger collects structured log calls for assertions.
type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) record(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

func (l *recordingLogger) Debug(msg string, args ...any) { l.record(msg) }
func (l *recordingLogger) Info(msg string, args ...any)  { l.record(msg) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.record(msg) }
func (l *recordingLogger) Error(msg string, args ...any) { l.record(msg) }

func (l *recordingLogger) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages)
}

func TestHeaderHook(t *testing.T) {
	server, requests := newTestServer(t, http.StatusOK, `{}`)
	tracker := newTestTracker(t, server.URL,
		WithHTTPHooks(HeaderHook("x-request-source", "backend")),
	)

	if _, err := tracker.Track(context.Background(), "test_event", nil, nil); err != nil {
		t.Fatalf("Track failed: %v", err)
	}

	if got := requests()[0].header.Get("x-request-source"); got != "backend" {
		t.Errorf("x-request-source = %q, want backend", got)
	}
}

func TestHookBeforeRequestAborts(t *testing.T) {
	server, requests := newTestServer(t, http.StatusOK, `{}`)

	abort := errors.New("abort request")
	tracker := newTestTracker(t, server.URL,
		WithHTTPHooks(HTTPHookFunc{
			Before: func(ctx context.Context, req *http.Request) error { return abort },
		}),
	)

	_, err := tracker.Track(context.Background(), "test_event", nil, nil)
	if !errors.Is(err, abort) {
		t.Errorf("err = %v, want the hook's error", err)
	}
	if n := len(requests()); n != 0 {
		t.Errorf("request count = %d, want 0 when BeforeRequest aborts", n)
	}
}

func TestHookAfterResponse(t *testing.T) {
	server, _ := newTestServer(t, http.StatusOK, `{}`)

	var (
		mu       sync.Mutex
		status   int
		duration time.Duration
	)
	tracker := newTestTracker(t, server.URL,
		WithHTTPHooks(HTTPHookFunc{
			After: func(ctx context.Context, req *http.Request, resp *http.Response, d time.Duration, err error) {
				mu.Lock()
				defer mu.Unlock()
				if resp != nil {
					status = resp.StatusCode
				}
				duration = d
			},
		}),
	)

	if _, err := tracker.Track(context.Background(), "test_event", nil, nil); err != nil {
		t.Fatalf("Track failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if status != 200 {
		t.Errorf("hook saw status %d, want 200", status)
	}
	if duration <= 0 {
		t.Errorf("hook saw duration %v, want > 0", duration)
	}
}

func TestLoggingHook(t *testing.T) {
	server, _ := newTestServer(t, http.StatusOK, `{}`)

	logger := &recordingLogger{}
	tracker := newTestTracker(t, server.URL, WithHTTPHooks(LoggingHook(logger)))

	if _, err := tracker.Track(context.Background(), "test_event", nil, nil); err != nil {
		t.Fatalf("Track failed: %v", err)
	}

	// One line for the request, one for the response.
	if got := logger.count(); got != 2 {
		t.Errorf("log count = %d, want 2", got)
	}
}
