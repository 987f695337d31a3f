// Package idgen hands out creation-time ids that stay unique within a
// session even when the clock does not advance between calls.
package idgen

import "time"

type Sequence struct {
	now  func() time.Time
	last int64
}

// New returns a sequence reading time from now, or time.Now when nil.
func New(now func() time.Time) *Sequence {
	if now == nil {
		now = time.Now
	}
	return &Sequence{now: now}
}

// Next returns the current time in milliseconds, bumped past the last id
// if needed, together with the timestamp it was derived from.
func (s *Sequence) Next() (int64, time.Time) {
	t := s.now()
	id := t.UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id, t
}
