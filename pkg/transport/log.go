package transport

import (
	"time"

	"github.com/apex/log"
)

// Trace logs the outcome of one request. status is zero when no response
// was received.
func Trace(l log.Interface, method, path string, start time.Time, status int, err error) {
	entry := l.WithFields(log.Fields{
		"method":  method,
		"path":    path,
		"status":  status,
		"elapsed": time.Since(start).String(),
	})
	if err != nil {
		entry.WithError(err).Warn("jenkins: request failed")
		return
	}
	entry.Debug("jenkins: request")
}
