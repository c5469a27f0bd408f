// Package rr picks pool members in turn without locking.
package rr

import "sync/atomic"

// RR is safe for concurrent use; the zero value starts at index 0.
type RR struct{ n atomic.Uint64 }

// Next returns the next index in [0, size). A pool of one or fewer members
// always yields 0.
func (r *RR) Next(size int) int {
	x := r.n.Add(1)
	if size <= 1 {
		return 0
	}
	return int((x - 1) % uint64(size))
}
