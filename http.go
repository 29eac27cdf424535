package openpanel

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// Response is the raw result of a tracker request. The SDK does not
// interpret the body and does not convert non-2xx statuses into errors;
// callers inspect Status themselves.
type Response struct {
	// Status is the HTTP status code.
	Status int
	// Header holds the response headers.
	Header http.Header
	// Body is the full response body.
	Body []byte
}

// IsSuccess reports whether Status is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

// httpClient performs single-shot requests against the track endpoint.
// Each call is an independent round trip; there are no retries and no
// shared mutable state.
type httpClient struct {
	client  *http.Client
	baseURL string
	debug   bool
	logger  StructuredLogger
	hooks   []HTTPHook
}

// newHTTPClient creates a new HTTP client from a validated config.
func newHTTPClient(cfg *Config) *httpClient {
	return &httpClient{
		client:  cfg.HTTPClient,
		baseURL: strings.TrimSuffix(cfg.TrackURL, "/"),
		debug:   cfg.Debug,
		logger:  cfg.StructuredLogger,
		hooks:   cfg.HTTPHooks,
	}
}

// post serializes body as JSON and POSTs it to the track endpoint.
func (h *httpClient) post(ctx context.Context, body any, headers http.Header) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{URL: h.baseURL, Err: err}
	}

	return h.do(ctx, req, headers)
}

// get issues a GET request to a path under the track endpoint.
func (h *httpClient) get(ctx context.Context, path string, headers http.Header) (*Response, error) {
	u := h.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}

	return h.do(ctx, req, headers)
}

// do attaches headers, runs hooks, and executes a single round trip.
func (h *httpClient) do(ctx context.Context, req *http.Request, headers http.Header) (*Response, error) {
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	for _, hook := range h.hooks {
		if err := hook.BeforeRequest(ctx, req); err != nil {
			return nil, err
		}
	}

	if h.debug {
		h.logger.Debug("openpanel: sending request",
			"method", req.Method,
			"url", req.URL.String(),
		)
	}

	start := time.Now()
	resp, err := h.client.Do(req)
	duration := time.Since(start)

	for _, hook := range h.hooks {
		hook.AfterResponse(ctx, req, resp, duration, err)
	}

	if err != nil {
		return nil, &TransportError{URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: req.URL.String(), Err: err}
	}

	if h.debug {
		h.logger.Debug("openpanel: received response",
			"status", resp.StatusCode,
			"duration", duration,
		)
	}

	return &Response{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   respBody,
	}, nil
}
