package jenkins

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport matches every failed HTTP exchange, including non-2xx answers.
	ErrTransport = errors.New("jenkins: transport failure")

	// ErrDecode matches a response body that does not fit the requested shape.
	ErrDecode = errors.New("jenkins: decode failure")

	// ErrInvalidMethod matches a malformed HTTP method token.
	ErrInvalidMethod = errors.New("jenkins: invalid method")

	// ErrInvalidParams matches a malformed parameter set.
	ErrInvalidParams = errors.New("jenkins: invalid parameters")
)

// TransportError is returned when the request could not be performed or the
// server answered with a non-2xx status. StatusCode is zero when no response
// was received; Body holds the server's answer verbatim otherwise.
type TransportError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("jenkins: %s %s: %v", e.Method, e.Path, e.Err)
	}
	return fmt.Sprintf("jenkins: %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// DecodeError is returned when a body cannot be decoded into the target type.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("jenkins: decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

type InvalidMethodError struct {
	Method string
}

func (e *InvalidMethodError) Error() string {
	return fmt.Sprintf("jenkins: invalid method %q", e.Method)
}

func (e *InvalidMethodError) Is(target error) bool { return target == ErrInvalidMethod }

type InvalidParamsError struct {
	Key    string
	Reason string
}

func (e *InvalidParamsError) Error() string {
	return fmt.Sprintf("jenkins: invalid parameter %q: %s", e.Key, e.Reason)
}

func (e *InvalidParamsError) Is(target error) bool { return target == ErrInvalidParams }
