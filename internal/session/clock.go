package session

import "sync/atomic"

// Clock is a monotonic logical clock stamping dispatched actions.
//
// Every action gets a strictly increasing seq number, which makes the
// happens-before order of persisted snapshots explicit in the logs: the
// save for seq N is always issued before action N+1 is processed.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations),
// although the session's single-writer design means only one goroutine
// typically calls Next().
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
