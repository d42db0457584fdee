package clock

import (
	"time"

	"github.com/rentdesk/rentdesk/internal/ports"
)

// SystemClock reads the wall clock
type SystemClock struct{}

var _ ports.Clock = SystemClock{}

// Now returns time.Now, which carries a monotonic reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Fixed is a clock stuck at one instant
type Fixed time.Time

// Now returns the fixed instant
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
