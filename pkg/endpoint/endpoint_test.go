package endpoint_test

import (
	"errors"
	"strings"
	"testing"

	"jenkinsclient/pkg/endpoint"
	"jenkinsclient/pkg/jenkins"

	"github.com/google/go-cmp/cmp"
)

func builtins() []endpoint.Endpoint {
	return []endpoint.Endpoint{
		endpoint.QueueLength{},
		endpoint.ExecutorsInfo{},
		endpoint.JobsInfo{},
		endpoint.ConsoleText{Job: "example-job", Build: "1"},
		endpoint.StopBuild{Job: "example-job", Build: "123"},
		endpoint.TriggerBuild{Job: "example-job", Parameters: map[string]any{"a": "x"}},
	}
}

func TestEndpoints_MethodAndPath(t *testing.T) {
	cases := []struct {
		e      endpoint.Endpoint
		method string
		path   string
	}{
		{endpoint.QueueLength{}, "GET", "queue/api/json"},
		{endpoint.ExecutorsInfo{}, "GET", "computer/api/json"},
		{endpoint.JobsInfo{}, "GET", "api/json?tree=jobs[name,url,color]"},
		{endpoint.ConsoleText{Job: "example-job", Build: "1"}, "GET", "job/example-job/1/consoleText"},
		{endpoint.StopBuild{Job: "example-job", Build: "123"}, "POST", "job/example-job/123/stop"},
		{endpoint.TriggerBuild{Job: "example-job"}, "POST", "job/example-job/buildWithParameters"},
		// job names are not escaped
		{endpoint.ConsoleText{Job: "folder/job/my%20job", Build: "2"}, "GET", "job/folder/job/my%20job/2/consoleText"},
		{endpoint.StopBuild{Job: "a b", Build: "3"}, "POST", "job/a b/3/stop"},
	}
	for _, c := range cases {
		if got := c.e.Method(); got != c.method {
			t.Errorf("%T method = %q, want %q", c.e, got, c.method)
		}
		if got := c.e.Path(); got != c.path {
			t.Errorf("%T path = %q, want %q", c.e, got, c.path)
		}
	}
}

func TestEndpoints_Invariants(t *testing.T) {
	for _, e := range builtins() {
		switch e.Method() {
		case "GET", "POST":
		default:
			t.Errorf("%T: unexpected method %q", e, e.Method())
		}
		if err := endpoint.ValidateMethod(e.Method()); err != nil {
			t.Errorf("%T: %v", e, err)
		}
		p := e.Path()
		if strings.HasPrefix(p, "/") || strings.Contains(p, "://") || strings.HasPrefix(p, "http") {
			t.Errorf("%T: path %q is not relative", e, p)
		}
	}
}

func TestParamsOf_DefaultsToNone(t *testing.T) {
	for _, e := range []endpoint.Endpoint{
		endpoint.QueueLength{},
		endpoint.ExecutorsInfo{},
		endpoint.JobsInfo{},
		endpoint.ConsoleText{Job: "j", Build: "1"},
		endpoint.StopBuild{Job: "j", Build: "1"},
	} {
		if p := endpoint.ParamsOf(e); p != nil {
			t.Errorf("%T: params = %v, want nil", e, p)
		}
	}
}

func TestTriggerBuild_Coercion(t *testing.T) {
	e := endpoint.TriggerBuild{Job: "j", Parameters: map[string]any{"a": "x", "b": 5}}
	want := []endpoint.Param{{Key: "a", Value: "x"}, {Key: "b", Value: ""}}
	if diff := cmp.Diff(want, endpoint.ParamsOf(e)); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestTriggerBuild_NonStringValuesBecomeEmpty(t *testing.T) {
	e := endpoint.TriggerBuild{Job: "j", Parameters: map[string]any{
		"str":    "v",
		"float":  1.5,
		"bool":   true,
		"null":   nil,
		"object": map[string]any{"k": "v"},
		"array":  []any{"v"},
	}}
	want := []endpoint.Param{
		{Key: "array", Value: ""},
		{Key: "bool", Value: ""},
		{Key: "float", Value: ""},
		{Key: "null", Value: ""},
		{Key: "object", Value: ""},
		{Key: "str", Value: "v"},
	}
	if diff := cmp.Diff(want, e.Params()); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestTriggerBuild_NilAndEmpty(t *testing.T) {
	if p := (endpoint.TriggerBuild{Job: "j"}).Params(); p != nil {
		t.Fatalf("nil map: params = %v, want nil", p)
	}
	p := (endpoint.TriggerBuild{Job: "j", Parameters: map[string]any{}}).Params()
	if p == nil || len(p) != 0 {
		t.Fatalf("empty map: params = %#v, want empty non-nil", p)
	}
}

func TestValidateMethod(t *testing.T) {
	for _, m := range []string{"GET", "POST", "PUT", "DELETE", "PATCH", "X-CUSTOM"} {
		if err := endpoint.ValidateMethod(m); err != nil {
			t.Errorf("%q: unexpected error %v", m, err)
		}
	}
	for _, m := range []string{"", "GE T", "POST\n", "GET/", "(GET)"} {
		err := endpoint.ValidateMethod(m)
		if !errors.Is(err, jenkins.ErrInvalidMethod) {
			t.Errorf("%q: err = %v, want invalid method", m, err)
		}
	}
}

func TestValidateParams(t *testing.T) {
	if err := endpoint.ValidateParams(nil); err != nil {
		t.Fatalf("nil params: %v", err)
	}
	if err := endpoint.ValidateParams([]endpoint.Param{{Key: "a", Value: ""}}); err != nil {
		t.Fatalf("empty value is allowed: %v", err)
	}
	err := endpoint.ValidateParams([]endpoint.Param{{Key: "a"}, {Key: "", Value: "x"}})
	if !errors.Is(err, jenkins.ErrInvalidParams) {
		t.Fatalf("err = %v, want invalid params", err)
	}
}
