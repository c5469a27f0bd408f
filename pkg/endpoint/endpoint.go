package endpoint

import (
	"strings"

	"jenkinsclient/pkg/jenkins"

	"golang.org/x/net/http/httpguts"
)

// Param is one form field sent with a request.
type Param struct {
	Key   string
	Value string
}

// Endpoint describes a single Jenkins API call. Path is relative to the
// server's base URL.
type Endpoint interface {
	Method() string
	Path() string
}

// ParamsProvider is implemented by endpoints that send form parameters.
type ParamsProvider interface {
	Endpoint
	Params() []Param
}

// ParamsOf returns the parameters of e, or nil when e sends none.
func ParamsOf(e Endpoint) []Param {
	if p, ok := e.(ParamsProvider); ok {
		return p.Params()
	}
	return nil
}

func ValidateMethod(method string) error {
	if method == "" || strings.IndexFunc(method, isNotToken) != -1 {
		return &jenkins.InvalidMethodError{Method: method}
	}
	return nil
}

func isNotToken(r rune) bool {
	return !httpguts.IsTokenRune(r)
}

func ValidateParams(params []Param) error {
	for _, p := range params {
		if p.Key == "" {
			return &jenkins.InvalidParamsError{Key: p.Key, Reason: "empty key"}
		}
	}
	return nil
}
