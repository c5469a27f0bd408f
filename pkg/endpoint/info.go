package endpoint

import "net/http"

// QueueLength lists the build queue; decode into jenkins.Queue.
type QueueLength struct{}

func (QueueLength) Method() string { return http.MethodGet }
func (QueueLength) Path() string   { return "queue/api/json" }

// ExecutorsInfo reports executor pool statistics; decode into jenkins.ExecutorsInfo.
type ExecutorsInfo struct{}

func (ExecutorsInfo) Method() string { return http.MethodGet }
func (ExecutorsInfo) Path() string   { return "computer/api/json" }

// JobsInfo lists name, url and color of every top-level job; decode into jenkins.JobsInfo.
type JobsInfo struct{}

func (JobsInfo) Method() string { return http.MethodGet }
func (JobsInfo) Path() string   { return "api/json?tree=jobs[name,url,color]" }
