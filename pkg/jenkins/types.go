package jenkins

import (
	"encoding/json"
	"fmt"
)

// Job is one entry of the jobs listing.
type Job struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Color string `json:"color"`
}

func (j *Job) UnmarshalJSON(b []byte) error {
	var raw struct {
		Name  *string `json:"name"`
		URL   *string `json:"url"`
		Color *string `json:"color"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch {
	case raw.Name == nil:
		return missingField("name")
	case raw.URL == nil:
		return missingField("url")
	case raw.Color == nil:
		return missingField("color")
	}
	*j = Job{Name: *raw.Name, URL: *raw.URL, Color: *raw.Color}
	return nil
}

// JobsInfo is the body of api/json?tree=jobs[name,url,color].
type JobsInfo struct {
	Jobs []Job `json:"jobs"`
}

// Queue is the body of queue/api/json. Items are kept undecoded.
type Queue struct {
	Items []json.RawMessage `json:"items"`
}

func (q Queue) Len() int { return len(q.Items) }

// ExecutorsInfo holds the executor pool statistics of computer/api/json.
//
// IdleExecutors is not sent by the server: it stays zero after decoding
// until CalculateIdle is called.
type ExecutorsInfo struct {
	TotalExecutors uint32 `json:"totalExecutors"`
	BusyExecutors  uint32 `json:"busyExecutors"`
	IdleExecutors  uint32 `json:"-"`
}

func (e *ExecutorsInfo) UnmarshalJSON(b []byte) error {
	var raw struct {
		TotalExecutors *uint32 `json:"totalExecutors"`
		BusyExecutors  *uint32 `json:"busyExecutors"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch {
	case raw.TotalExecutors == nil:
		return missingField("totalExecutors")
	case raw.BusyExecutors == nil:
		return missingField("busyExecutors")
	}
	*e = ExecutorsInfo{TotalExecutors: *raw.TotalExecutors, BusyExecutors: *raw.BusyExecutors}
	return nil
}

// CalculateIdle sets IdleExecutors to TotalExecutors - BusyExecutors,
// or to zero when the server reports more busy executors than it has.
func (e *ExecutorsInfo) CalculateIdle() {
	if e.BusyExecutors > e.TotalExecutors {
		e.IdleExecutors = 0
		return
	}
	e.IdleExecutors = e.TotalExecutors - e.BusyExecutors
}

func missingField(name string) error {
	return fmt.Errorf("missing field %q", name)
}
