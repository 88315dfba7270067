package todo

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

const testBaseURL = "http://jsonplaceholder.typicode.com"

// stubResponse is the canned outcome for one method and path.
type stubResponse struct {
	status int
	body   []byte
	err    error
}

// stubTransport is a Transport double that answers from a route table and
// records every request it receives.
type stubTransport struct {
	mu       sync.Mutex
	routes   map[string]stubResponse
	requests []*Request
}

func newStubTransport() *stubTransport {
	return &stubTransport{routes: make(map[string]stubResponse)}
}

func (s *stubTransport) stub(method, path string, resp stubResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[method+" "+path] = resp
}

func (s *stubTransport) Execute(ctx context.Context, req *Request, onComplete func(*Response)) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	RoundTripFunc(func(ctx context.Context, req *Request) *Response {
		u, err := url.Parse(req.URL)
		if err != nil {
			return &Response{Err: err}
		}

		s.mu.Lock()
		resp, ok := s.routes[req.Method+" "+u.EscapedPath()]
		s.mu.Unlock()
		if !ok {
			return &Response{Err: errors.New("no stub for " + req.Method + " " + u.EscapedPath())}
		}
		if resp.err != nil {
			return &Response{Err: resp.err}
		}
		return &Response{StatusCode: resp.status, Body: resp.body}
	}).Execute(ctx, req, onComplete)
}

func (s *stubTransport) lastRequest(t *testing.T) *Request {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		t.Fatal("expected at least one request")
	}
	return s.requests[len(s.requests)-1]
}

// newStubClient creates a client that talks to the given transport double.
func newStubClient(t *testing.T, transport Transport) *Client {
	t.Helper()
	client, err := NewClient(WithBaseURL(testBaseURL), WithTransport(transport))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

// awaitResult runs an operation and fails the test if no result arrives.
func awaitResult[T any](t *testing.T, start func(done func(Result[T]))) Result[T] {
	t.Helper()
	ch := make(chan Result[T], 1)
	start(func(r Result[T]) { ch <- r })
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for result")
		return Result[T]{}
	}
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", name, err)
	}
	return data
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		opts    []ClientOption
		wantURL string
		wantErr string
	}{
		{
			name:    "defaults",
			wantURL: DefaultBaseURL,
		},
		{
			name:    "custom base URL",
			opts:    []ClientOption{WithBaseURL("http://localhost:7433")},
			wantURL: "http://localhost:7433",
		},
		{
			name:    "trailing slash is stripped",
			opts:    []ClientOption{WithBaseURL("https://example.com/api/")},
			wantURL: "https://example.com/api",
		},
		{
			name:    "all options",
			opts:    []ClientOption{WithBaseURL("http://example.com"), WithTimeout(time.Second), WithLogger(log.Default())},
			wantURL: "http://example.com",
		},
		{
			name:    "empty base URL",
			opts:    []ClientOption{WithBaseURL("")},
			wantErr: "base URL is required",
		},
		{
			name:    "unsupported scheme",
			opts:    []ClientOption{WithBaseURL("ftp://example.com")},
			wantErr: "scheme must be http or https",
		},
		{
			name:    "missing host",
			opts:    []ClientOption{WithBaseURL("http://")},
			wantErr: "missing host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.opts...)
			if tt.wantErr != "" {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.wantErr)
					return
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if client.BaseURL() != tt.wantURL {
				t.Errorf("expected base URL %s, got %s", tt.wantURL, client.BaseURL())
			}
		})
	}
}

func TestSendsJSONHeaders(t *testing.T) {
	transport := newStubTransport()
	transport.stub(http.MethodGet, "/todos", stubResponse{status: http.StatusOK, body: []byte("[]")})
	client := newStubClient(t, transport)

	awaitResult(t, func(done func(Result[[]Task])) {
		client.GetAllTasks(context.Background(), done)
	})

	req := transport.lastRequest(t)
	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", got)
	}
	if got := req.Header.Get("Accept"); got != "application/json" {
		t.Errorf("expected Accept application/json, got %s", got)
	}
}

func TestLoggerReceivesExchange(t *testing.T) {
	transport := newStubTransport()
	transport.stub(http.MethodDelete, "/todos/2", stubResponse{status: http.StatusOK})

	var buf bytes.Buffer
	client, err := NewClient(WithTransport(transport), WithLogger(log.New(&buf, "", 0)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	awaitResult(t, func(done func(Result[Unit])) {
		client.DeleteTaskByID(context.Background(), "2", done)
	})

	if !strings.Contains(buf.String(), "DELETE "+DefaultBaseURL+"/todos/2 -> 200") {
		t.Errorf("expected exchange in log output, got %q", buf.String())
	}
}

// doubleTransport completes every request twice.
type doubleTransport struct {
	completed chan struct{}
}

func (d *doubleTransport) Execute(ctx context.Context, req *Request, onComplete func(*Response)) {
	go func() {
		onComplete(&Response{StatusCode: http.StatusOK, Body: []byte("[]")})
		onComplete(&Response{StatusCode: http.StatusInternalServerError})
		close(d.completed)
	}()
}

func TestCallbackFiresOnceWhenTransportCompletesTwice(t *testing.T) {
	transport := &doubleTransport{completed: make(chan struct{})}
	client := newStubClient(t, transport)

	var mu sync.Mutex
	var results []Result[[]Task]
	client.GetAllTasks(context.Background(), func(r Result[[]Task]) {
		mu.Lock()
		results = append(results, r)
		mu.Unlock()
	})

	select {
	case <-transport.completed:
	case <-time.After(5 * time.Second):
		t.Fatal("transport never completed")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(results) != 1 {
		t.Fatalf("expected exactly 1 result, got %d", len(results))
	}
	if !results[0].IsSuccess() {
		t.Errorf("expected the first completion to win, got %v", results[0].Err())
	}
}

func TestNilCallbackDoesNotPanic(t *testing.T) {
	transport := &doubleTransport{completed: make(chan struct{})}
	client := newStubClient(t, transport)

	client.GetAllTasks(context.Background(), nil)

	select {
	case <-transport.completed:
	case <-time.After(5 * time.Second):
		t.Fatal("transport never completed")
	}
}
