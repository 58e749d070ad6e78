// Package testkit provides the HTTP test doubles used across the module's
// tests. A MockTransport is installed on the shared fetch client so no test
// ever performs a real network call:
//
//	mt := testkit.NewMockTransport()
//	mt.Stub("GET", "/menu", 200, menuJSON)
//	fetch.DefaultClient.Transport = mt
//	defer fetch.ResetTransport()
//	...
//	mt.AssertAllCalled(t)
package testkit

import (
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Stub describes one intercepted outgoing call: requests whose method matches
// and whose URL contains Match are answered with Status and Body.
type Stub struct {
	Method string
	Match  string
	Status int
	Body   string

	calls    int
	lastReq  *http.Request
	lastBody []byte
}

// MockTransport implements http.RoundTripper over a list of stubs.
type MockTransport struct {
	mu       sync.Mutex
	stubs    []*Stub
	requests int
}

func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// Stub registers a synthetic response and returns it for later inspection.
func (mt *MockTransport) Stub(method, match string, status int, body string) *Stub {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	s := &Stub{Method: method, Match: match, Status: status, Body: body}
	mt.stubs = append(mt.stubs, s)
	return s
}

// RoundTrip intercepts the outgoing request and returns the first matching
// stub's response, or a synthetic 404 when nothing matches.
func (mt *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.requests++

	for _, s := range mt.stubs {
		if s.Method != "" && s.Method != req.Method {
			continue
		}
		if s.Match != "" && !strings.Contains(req.URL.String(), s.Match) {
			continue
		}
		s.calls++
		s.lastReq = req
		if req.Body != nil {
			s.lastBody, _ = io.ReadAll(req.Body)
			req.Body.Close()
		}
		return &http.Response{
			StatusCode: s.Status,
			Body:       io.NopCloser(strings.NewReader(s.Body)),
			Header:     make(http.Header),
			Request:    req,
		}, nil
	}

	return &http.Response{
		StatusCode: http.StatusNotFound,
		Body:       io.NopCloser(strings.NewReader(`{"message":"no stub configured"}`)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

// Calls reports how many requests a stub answered.
func (s *Stub) Calls() int { return s.calls }

// LastRequest returns the last request a stub answered, nil when unused.
func (s *Stub) LastRequest() *http.Request { return s.lastReq }

// LastBody returns the body of the last request a stub answered.
func (s *Stub) LastBody() []byte { return s.lastBody }

// TotalCalls reports how many requests were intercepted in all, matched or
// not.
func (mt *MockTransport) TotalCalls() int {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return mt.requests
}

// AssertAllCalled fails the test when any stub was never triggered.
func (mt *MockTransport) AssertAllCalled(t *testing.T) {
	t.Helper()
	mt.mu.Lock()
	defer mt.mu.Unlock()
	for _, s := range mt.stubs {
		assert.NotZero(t, s.calls,
			"stub %s %q was never called", s.Method, s.Match)
	}
}
