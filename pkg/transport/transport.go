package transport

import (
	"context"

	"jenkinsclient/pkg/endpoint"
)

// Transport performs one HTTP request against the Jenkins base URL and
// returns the response body. A nil params slice means no request body.
type Transport interface {
	Request(ctx context.Context, method, path string, params []endpoint.Param) (string, error)
}

// Result is the outcome of an asynchronous request.
type Result struct {
	Body string
	Err  error
}

// AsyncTransport starts a request and returns at once. The returned channel
// receives exactly one Result and is never closed before that.
type AsyncTransport interface {
	RequestAsync(ctx context.Context, method, path string, params []endpoint.Param) <-chan Result
}

// Response is the status and body of a completed exchange, copied out of
// the underlying client's buffers.
type Response interface {
	StatusCode() int
	Body() []byte
}

// Async runs every request of t on its own goroutine.
func Async(t Transport) AsyncTransport {
	if at, ok := t.(AsyncTransport); ok {
		return at
	}
	return asyncAdapter{t}
}

type asyncAdapter struct{ t Transport }

func (a asyncAdapter) RequestAsync(ctx context.Context, method, path string, params []endpoint.Param) <-chan Result {
	return Go(func() (string, error) {
		return a.t.Request(ctx, method, path, params)
	})
}

// Go runs fn on a new goroutine and delivers its outcome on a buffered channel.
func Go(fn func() (string, error)) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		body, err := fn()
		ch <- Result{Body: body, Err: err}
	}()
	return ch
}
