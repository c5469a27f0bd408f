// Package query binds an endpoint.Endpoint to a transport and decides how
// the response is read: decoded from JSON into a caller-chosen type, or
// returned as raw text.
//
// The same endpoint serves both forms:
//
//	q, err := query.Query[jenkins.Queue](ctx, endpoint.QueueLength{}, t)
//	text, err := query.RawQuery(ctx, endpoint.ConsoleText{Job: "app", Build: "12"}, t)
package query

import (
	"context"
	"encoding/json"
	"errors"

	"jenkinsclient/pkg/endpoint"
	"jenkinsclient/pkg/jenkins"
	"jenkinsclient/pkg/transport"

	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("invalid json")

// Result is the outcome of an asynchronous structured query.
type Result[T any] struct {
	Value T
	Err   error
}

// Query performs e on t and decodes the JSON body into T.
func Query[T any](ctx context.Context, e endpoint.Endpoint, t transport.Transport) (T, error) {
	body, err := RawQuery(ctx, e, t)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](e.Path(), body)
}

// RawQuery performs e on t and returns the body unmodified.
func RawQuery(ctx context.Context, e endpoint.Endpoint, t transport.Transport) (string, error) {
	return t.Request(ctx, e.Method(), e.Path(), endpoint.ParamsOf(e))
}

// QueryAsync is Query over an AsyncTransport. The channel receives one Result.
func QueryAsync[T any](ctx context.Context, e endpoint.Endpoint, t transport.AsyncTransport) <-chan Result[T] {
	raw := RawQueryAsync(ctx, e, t)
	out := make(chan Result[T], 1)
	go func() {
		res := <-raw
		if res.Err != nil {
			out <- Result[T]{Err: res.Err}
			return
		}
		v, err := decode[T](e.Path(), res.Body)
		out <- Result[T]{Value: v, Err: err}
	}()
	return out
}

// RawQueryAsync is RawQuery over an AsyncTransport.
func RawQueryAsync(ctx context.Context, e endpoint.Endpoint, t transport.AsyncTransport) <-chan transport.Result {
	return t.RequestAsync(ctx, e.Method(), e.Path(), endpoint.ParamsOf(e))
}

// Tree performs e on t and returns the body as a generic JSON tree.
func Tree(ctx context.Context, e endpoint.Endpoint, t transport.Transport) (gjson.Result, error) {
	body, err := RawQuery(ctx, e, t)
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.Valid(body) {
		return gjson.Result{}, &jenkins.DecodeError{Path: e.Path(), Err: errInvalidJSON}
	}
	return gjson.Parse(body), nil
}

func decode[T any](path, body string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		var zero T
		return zero, &jenkins.DecodeError{Path: path, Err: err}
	}
	return v, nil
}
