package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

type apiResponse struct {
	status int
	body   any
}

// ApiMock is a programmable HTTP server standing in for external sources.
// Unconfigured routes answer 404.
type ApiMock struct {
	mu               sync.Mutex
	server           *httptest.Server
	responses        map[string]apiResponse
	requestsReceived map[string][]map[string]string
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		responses:        map[string]apiResponse{},
		requestsReceived: map[string][]map[string]string{},
	}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

// SetResponse configures the answer for every request to method and path.
func (a *ApiMock) SetResponse(method, path string, status int, body any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[method+path] = apiResponse{status: status, body: body}
}

// RequestCount returns how many requests reached method and path.
func (a *ApiMock) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.requestsReceived[method+path])
}

// GetRequestHeaders returns the headers of the index-th request.
func (a *ApiMock) GetRequestHeaders(method, path string, index int) map[string]string {
	a.mu.Lock()
	defer a.mu.Unlock()
	requests := a.requestsReceived[method+path]
	if index < 0 || index >= len(requests) {
		return nil
	}
	return requests[index]
}

// Reset forgets every configured response and recorded request.
func (a *ApiMock) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses = map[string]apiResponse{}
	a.requestsReceived = map[string][]map[string]string{}
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	_, _ = io.Copy(io.Discard, r.Body)
	key := r.Method + r.URL.Path

	a.mu.Lock()
	headers := map[string]string{}
	for name, values := range r.Header {
		headers[name] = values[0]
	}
	a.requestsReceived[key] = append(a.requestsReceived[key], headers)
	resp, ok := a.responses[key]
	a.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	switch body := resp.body.(type) {
	case nil:
	case string:
		_, _ = w.Write([]byte(body))
	default:
		_ = json.NewEncoder(w).Encode(body)
	}
}
