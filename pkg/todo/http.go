package todo

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// todosPath is the collection resource of the API.
const todosPath = "/todos"

// errNoResponse is reported when a transport completes without a response.
var errNoResponse = errors.New("transport completed without a response")

// newRequest creates a request with the JSON headers every call carries.
func (c *Client) newRequest(method, path string, body []byte) *Request {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	header.Set("Accept", "application/json")

	return &Request{
		Method: method,
		URL:    c.baseURL + path,
		Header: header,
		Body:   body,
	}
}

// todoPath constructs the item-scoped path for id.
func todoPath(id string) string {
	return todosPath + "/" + url.PathEscape(id)
}

// dispatch executes req and delivers the classified outcome to done. done
// is called exactly once even if the transport misbehaves and completes the
// same request more than once.
func dispatch[T any](ctx context.Context, c *Client, req *Request, decode func([]byte) (T, error), done func(Result[T])) {
	if done == nil {
		done = func(Result[T]) {}
	}

	var once sync.Once
	start := time.Now()
	c.transport.Execute(ctx, req, func(resp *Response) {
		delivered := false
		once.Do(func() {
			delivered = true
			c.logExchange(req, resp, time.Since(start))
			done(classify(resp, decode))
		})
		if !delivered {
			c.logger.Printf("%s %s: ignoring duplicate completion", req.Method, req.URL)
		}
	})
}

// fail delivers a failure without touching the transport. It still runs on
// its own goroutine so that no operation ever calls back before returning.
func fail[T any](err *ClientError, done func(Result[T])) {
	if done == nil {
		return
	}
	go done(Failure[T](err))
}

// classify maps a transport outcome to a Result:
//
//   - transport fault: network error
//   - 2xx: decode the body; a decode fault is also a network error
//   - 404: item not found, whatever the body says
//   - anything else: unknown error carrying the status
func classify[T any](resp *Response, decode func([]byte) (T, error)) Result[T] {
	if resp == nil {
		return Failure[T](NetworkError(errNoResponse))
	}
	if resp.Err != nil {
		return Failure[T](NetworkError(resp.Err))
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		value, err := decode(resp.Body)
		if err != nil {
			return Failure[T](NetworkError(err))
		}
		return Success(value)
	case resp.StatusCode == http.StatusNotFound:
		return Failure[T](ItemNotFound())
	default:
		return Failure[T](UnknownError(resp.StatusCode))
	}
}

// logExchange writes one line per completed exchange.
func (c *Client) logExchange(req *Request, resp *Response, d time.Duration) {
	switch {
	case resp == nil:
		c.logger.Printf("%s %s -> no response (%v)", req.Method, req.URL, d)
	case resp.Err != nil:
		c.logger.Printf("%s %s -> %v (%v)", req.Method, req.URL, resp.Err, d)
	default:
		c.logger.Printf("%s %s -> %d (%v)", req.Method, req.URL, resp.StatusCode, d)
	}
}

// decodeUnit ignores the body; any 2xx is a successful delete.
func decodeUnit([]byte) (Unit, error) {
	return Unit{}, nil
}
