package todo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Request is a single HTTP exchange to be executed by a Transport.
type Request struct {
	Method string
	URL    string
	Header http.Header
	// Body is nil for requests without a payload.
	Body []byte
}

// Response is what a Transport reports once an exchange finishes.
//
// Err is set when the exchange could not be completed at all; StatusCode is
// then zero. Otherwise StatusCode is set and Body holds the full response
// body, which may be empty.
type Response struct {
	StatusCode int
	Body       []byte
	Err        error
}

// Transport executes requests asynchronously.
//
// Execute must return without waiting for the exchange and must invoke
// onComplete exactly once. Cancellation and timeouts are the transport's
// business; whatever it reports is all the client ever sees.
type Transport interface {
	Execute(ctx context.Context, req *Request, onComplete func(*Response))
}

// RoundTripFunc adapts a blocking request function into a Transport. Each
// call runs on its own goroutine.
type RoundTripFunc func(ctx context.Context, req *Request) *Response

// Execute implements Transport.
func (f RoundTripFunc) Execute(ctx context.Context, req *Request, onComplete func(*Response)) {
	go func() {
		onComplete(f(ctx, req))
	}()
}

// HTTPTransport is the default Transport, backed by *http.Client.
type HTTPTransport struct {
	client *http.Client
}

// Ensure HTTPTransport implements Transport at compile time.
var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport creates a transport using the given client. A nil client
// means http.DefaultClient.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{client: client}
}

// Execute implements Transport.
func (t *HTTPTransport) Execute(ctx context.Context, req *Request, onComplete func(*Response)) {
	RoundTripFunc(t.roundTrip).Execute(ctx, req, onComplete)
}

// roundTrip performs the exchange and reads the whole body. Every failure
// along the way, including reading the body, is a transport fault.
func (t *HTTPTransport) roundTrip(ctx context.Context, req *Request) *Response {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return &Response{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return &Response{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Response{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return &Response{StatusCode: resp.StatusCode, Body: data}
}
