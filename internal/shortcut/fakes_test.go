package shortcut

import (
	"time"

	"github.com/rentdesk/rentdesk/internal/ports"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeTimer struct {
	at        time.Time
	cancelled bool
	fired     bool
	fn        func()
	handle    ports.TimerHandle
}

// fakeScheduler fires callbacks only when the test advances time
type fakeScheduler struct {
	clock  *fakeClock
	next   ports.TimerHandle
	timers []*fakeTimer
}

func newFakeScheduler(clock *fakeClock) *fakeScheduler {
	return &fakeScheduler{clock: clock}
}

func (s *fakeScheduler) Schedule(d time.Duration, fn func()) ports.TimerHandle {
	s.next++
	s.timers = append(s.timers, &fakeTimer{at: s.clock.now.Add(d), fn: fn, handle: s.next})
	return s.next
}

func (s *fakeScheduler) Cancel(h ports.TimerHandle) {
	for _, t := range s.timers {
		if t.handle == h {
			t.cancelled = true
		}
	}
}

// Advance moves the clock forward, firing due timers in order
func (s *fakeScheduler) Advance(d time.Duration) {
	target := s.clock.now.Add(d)
	for {
		var due *fakeTimer
		for _, t := range s.timers {
			if t.fired || t.cancelled || t.at.After(target) {
				continue
			}
			if due == nil || t.at.Before(due.at) {
				due = t
			}
		}
		if due == nil {
			break
		}
		s.clock.now = due.at
		due.fired = true
		due.fn()
	}
	s.clock.now = target
}

// ForceFire runs a callback even if it was cancelled, the way an
// already-queued tick message would still arrive
func (s *fakeScheduler) ForceFire(h ports.TimerHandle) {
	for _, t := range s.timers {
		if t.handle == h {
			t.fired = true
			t.fn()
		}
	}
}

// Armed counts timers that are neither fired nor cancelled
func (s *fakeScheduler) Armed() int {
	n := 0
	for _, t := range s.timers {
		if !t.fired && !t.cancelled {
			n++
		}
	}
	return n
}

func (s *fakeScheduler) Last() ports.TimerHandle { return s.next }

type fakeNotifier struct {
	active    map[ports.NotificationID]ports.Notification
	dismissed []ports.NotificationID
	next      ports.NotificationID
	shown     []ports.Notification
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{active: make(map[ports.NotificationID]ports.Notification)}
}

func (n *fakeNotifier) Show(notification ports.Notification) ports.NotificationID {
	n.next++
	n.shown = append(n.shown, notification)
	if notification.Sticky {
		n.active[n.next] = notification
	}
	return n.next
}

func (n *fakeNotifier) Dismiss(id ports.NotificationID) {
	n.dismissed = append(n.dismissed, id)
	delete(n.active, id)
}

func (n *fakeNotifier) Count(kind ports.NotificationKind) int {
	c := 0
	for _, s := range n.shown {
		if s.Kind == kind {
			c++
		}
	}
	return c
}

func (n *fakeNotifier) Last() ports.Notification {
	if len(n.shown) == 0 {
		return ports.Notification{}
	}
	return n.shown[len(n.shown)-1]
}

func press(key string) KeyEvent { return KeyEvent{Key: key} }
