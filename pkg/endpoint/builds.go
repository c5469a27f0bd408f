package endpoint

import (
	"fmt"
	"net/http"
	"sort"
)

// ConsoleText fetches the console log of one build as plain text.
//
// Job and Build go into the path verbatim. Names with spaces or folder jobs
// ("a/job/b") must already be escaped by the caller.
type ConsoleText struct {
	Job   string
	Build string
}

func (ConsoleText) Method() string { return http.MethodGet }

func (e ConsoleText) Path() string {
	return fmt.Sprintf("job/%s/%s/consoleText", e.Job, e.Build)
}

// StopBuild aborts a running build. Job is not escaped, see ConsoleText.
type StopBuild struct {
	Job   string
	Build string
}

func (StopBuild) Method() string { return http.MethodPost }

func (e StopBuild) Path() string {
	return fmt.Sprintf("job/%s/%s/stop", e.Job, e.Build)
}

// TriggerBuild starts a parameterized build of Job. Job is not escaped, see
// ConsoleText.
type TriggerBuild struct {
	Job        string
	Parameters map[string]any
}

func (TriggerBuild) Method() string { return http.MethodPost }

func (e TriggerBuild) Path() string {
	return fmt.Sprintf("job/%s/buildWithParameters", e.Job)
}

// Params returns one form field per key, sorted by key. Only string values
// are sent as is; any other value is sent as an empty string.
//
// NOTE: numbers and booleans are dropped to "" rather than formatted. Callers
// that need them must pass strings.
func (e TriggerBuild) Params() []Param {
	if e.Parameters == nil {
		return nil
	}
	keys := make([]string, 0, len(e.Parameters))
	for k := range e.Parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Param, 0, len(keys))
	for _, k := range keys {
		s, _ := e.Parameters[k].(string)
		out = append(out, Param{Key: k, Value: s})
	}
	return out
}
