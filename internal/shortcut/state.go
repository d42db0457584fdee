package shortcut

import (
	"time"

	"github.com/rentdesk/rentdesk/internal/ports"
)

// State is the chord machine state: Idle or Awaiting
type State interface {
	isState()
}

// Idle means no chord is pending
type Idle struct{}

// Awaiting means a first key was accepted and the timeout is armed.
// Seq identifies this particular pending sequence so a timer armed for
// an earlier one can be told apart.
type Awaiting struct {
	EnteredAt time.Time
	Feedback  ports.NotificationID
	FirstKey  rune
	Seq       uint64
}

func (Idle) isState()     {}
func (Awaiting) isState() {}

// Event drives the reducer
type Event interface {
	isEvent()
}

// KeyPressed is an eligible key event. Seq is unique per event.
type KeyPressed struct {
	At  time.Time
	Key string // normalized
	Seq uint64
}

// TimedOut is delivered when the timer armed for sequence Seq fires
type TimedOut struct {
	At  time.Time
	Seq uint64
}

func (KeyPressed) isEvent() {}
func (TimedOut) isEvent()   {}

// Effect is a side effect requested by the reducer and run by the Dispatcher
type Effect interface {
	isEffect()
}

type (
	// ShowAwaiting lists the valid second keys for FirstKey
	ShowAwaiting struct {
		Entries  []Entry
		FirstKey rune
	}
	// ArmTimer schedules a TimedOut for Seq after the given delay
	ArmTimer struct {
		After time.Duration
		Seq   uint64
	}
	// ClearTimer cancels the armed timer
	ClearTimer struct{}
	// DismissAwaiting removes the awaiting notification
	DismissAwaiting struct {
		Feedback ports.NotificationID
	}
	// ShowCancelled reports an escaped chord
	ShowCancelled struct {
		FirstKey rune
	}
	// ShowUnknown reports an unmatched second key
	ShowUnknown struct {
		FirstKey rune
		Key      string
	}
	// Invoke runs the resolved chord handler
	Invoke struct {
		Entry Entry
	}
)

func (ShowAwaiting) isEffect()    {}
func (ArmTimer) isEffect()        {}
func (ClearTimer) isEffect()      {}
func (DismissAwaiting) isEffect() {}
func (ShowCancelled) isEffect()   {}
func (ShowUnknown) isEffect()     {}
func (Invoke) isEffect()          {}

// Reducer is the pure chord state machine
type Reducer struct {
	Registry *Registry
	Timeout  time.Duration
}

// Reduce returns the next state and the effects to run, in order.
// It never mutates its inputs.
func (r Reducer) Reduce(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case KeyPressed:
		return r.onKey(s, ev)
	case TimedOut:
		return r.onTimeout(s, ev)
	}
	return s, nil
}

func (r Reducer) onKey(s State, ev KeyPressed) (State, []Effect) {
	st, ok := s.(Awaiting)
	if !ok {
		return r.fromIdle(ev)
	}

	leave := []Effect{ClearTimer{}, DismissAwaiting{Feedback: st.Feedback}}

	// The timer lost the race with this key: expire silently, then treat
	// the key as the start of a new sequence.
	if ev.At.Sub(st.EnteredAt) >= r.Timeout {
		next, effects := r.fromIdle(ev)
		return next, append(leave, effects...)
	}

	if ev.Key == KeyEscape {
		return Idle{}, append(leave, ShowCancelled{FirstKey: st.FirstKey})
	}

	if entry, found := r.Registry.LookupSecond(st.FirstKey, ev.Key); found {
		return Idle{}, append(leave, Invoke{Entry: entry})
	}

	return Idle{}, append(leave, ShowUnknown{FirstKey: st.FirstKey, Key: ev.Key})
}

func (r Reducer) fromIdle(ev KeyPressed) (State, []Effect) {
	entries := r.Registry.LookupByFirstKey(ev.Key)
	if len(entries) == 0 {
		return Idle{}, nil
	}
	first, _ := chordRune(ev.Key)
	next := Awaiting{
		EnteredAt: ev.At,
		FirstKey:  first,
		Seq:       ev.Seq,
	}
	return next, []Effect{
		ShowAwaiting{Entries: entries, FirstKey: first},
		ArmTimer{After: r.Timeout, Seq: ev.Seq},
	}
}

func (r Reducer) onTimeout(s State, ev TimedOut) (State, []Effect) {
	st, ok := s.(Awaiting)
	if !ok || st.Seq != ev.Seq {
		// stale timer
		return s, nil
	}
	if elapsed := ev.At.Sub(st.EnteredAt); elapsed < r.Timeout {
		return s, []Effect{ArmTimer{After: r.Timeout - elapsed, Seq: st.Seq}}
	}
	return Idle{}, []Effect{DismissAwaiting{Feedback: st.Feedback}}
}
