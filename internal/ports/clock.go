package ports

import "time"

// Clock provides the current time. Implementations must be monotonic
// for elapsed-time comparisons (time.Now carries a monotonic reading).
type Clock interface {
	Now() time.Time
}

// TimerHandle identifies a scheduled callback so it can be cancelled.
type TimerHandle uint64

// Scheduler runs deferred callbacks. Callbacks must be delivered on the
// same goroutine that drives key events; Scheduler never blocks.
type Scheduler interface {
	// Schedule arranges for fn to run after d and returns its handle
	Schedule(d time.Duration, fn func()) TimerHandle

	// Cancel prevents a pending callback from running. Unknown or
	// already-fired handles are ignored.
	Cancel(h TimerHandle)
}
