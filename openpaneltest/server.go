package openpaneltest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// MockServer is a test HTTP server that records requests for verification.
type MockServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*RecordedRequest

	// ResponseFunc allows customizing responses. If nil, returns default success.
	ResponseFunc func(r *http.Request) (int, any)
}

// RecordedRequest represents a recorded HTTP request.
type RecordedRequest struct {
	Method      string
	Path        string
	Header      http.Header
	Body        []byte
	ContentType string
}

// Envelope is the decoded wire envelope of a recorded ingestion request.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// NewMockServer creates a new mock server for testing.
func NewMockServer() *MockServer {
	ms := &MockServer{
		requests: make([]*RecordedRequest, 0),
	}

	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		ms.mu.Lock()
		ms.requests = append(ms.requests, &RecordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			Header:      r.Header.Clone(),
			Body:        body,
			ContentType: r.Header.Get("Content-Type"),
		})
		ms.mu.Unlock()

		status := http.StatusOK
		var response any = map[string]string{"status": "ok"}

		if ms.ResponseFunc != nil {
			status, response = ms.ResponseFunc(r)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(response)
	}))

	return ms
}

// Requests returns all recorded requests.
func (ms *MockServer) Requests() []*RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([]*RecordedRequest{}, ms.requests...)
}

// RequestCount returns the number of recorded requests.
func (ms *MockServer) RequestCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.requests)
}

// Reset clears all recorded requests.
func (ms *MockServer) Reset() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.requests = make([]*RecordedRequest, 0)
}

// LastRequest returns the most recent request, or nil if none.
func (ms *MockServer) LastRequest() *RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if len(ms.requests) == 0 {
		return nil
	}
	return ms.requests[len(ms.requests)-1]
}

// LastEnvelope decodes the most recent request body as a wire envelope.
// It returns nil when no request was recorded.
func (ms *MockServer) LastEnvelope() (*Envelope, error) {
	req := ms.LastRequest()
	if req == nil {
		return nil, nil
	}

	env := &Envelope{}
	if err := json.Unmarshal(req.Body, env); err != nil {
		return nil, err
	}
	return env, nil
}

// SetResponseFunc sets the response function for customizing responses.
func (ms *MockServer) SetResponseFunc(fn func(r *http.Request) (int, any)) {
	ms.ResponseFunc = fn
}

// Response scenarios

// RespondWith configures the server to respond with a custom status and body.
func (ms *MockServer) RespondWith(statusCode int, body any) {
	ms.ResponseFunc = func(r *http.Request) (int, any) {
		return statusCode, body
	}
}

// RespondWithUnauthorized configures the server to respond with a 401.
func (ms *MockServer) RespondWithUnauthorized() {
	ms.ResponseFunc = func(r *http.Request) (int, any) {
		return http.StatusUnauthorized, map[string]string{
			"error": "invalid client credentials",
		}
	}
}

// RespondWithRateLimit configures the server to respond with a 429.
func (ms *MockServer) RespondWithRateLimit() {
	ms.ResponseFunc = func(r *http.Request) (int, any) {
		return http.StatusTooManyRequests, map[string]string{
			"error": "too many requests",
		}
	}
}

// RespondWithServerError configures the server to respond with a 500.
func (ms *MockServer) RespondWithServerError() {
	ms.ResponseFunc = func(r *http.Request) (int, any) {
		return http.StatusInternalServerError, map[string]string{
			"error": "internal server error",
		}
	}
}

// RespondWithDeviceID configures the server to serve /device-id lookups.
func (ms *MockServer) RespondWithDeviceID(id string) {
	ms.ResponseFunc = func(r *http.Request) (int, any) {
		if r.URL.Path == "/device-id" {
			return http.StatusOK, map[string]string{"deviceId": id}
		}
		return http.StatusOK, map[string]string{"status": "ok"}
	}
}

// HasRequestWithPath returns true if any request matched the given path.
func (ms *MockServer) HasRequestWithPath(path string) bool {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for _, req := range ms.requests {
		if req.Path == path {
			return true
		}
	}
	return false
}
