package shortcut

import (
	"errors"
	"fmt"
	"time"

	"github.com/rentdesk/rentdesk/internal/logging"
	"github.com/rentdesk/rentdesk/internal/ports"
)

var (
	ErrDoubleTapConflict = errors.New("double-tap key is also a chord prefix")
	ErrHandlerPanic      = errors.New("shortcut handler panicked")
	ErrReservedKey       = errors.New("key is reserved by the host")
)

// Default timings
const (
	DefaultDoubleTapTimeout = 300 * time.Millisecond
	DefaultSequenceTimeout  = 2000 * time.Millisecond
)

// Config configures a Dispatcher
type Config struct {
	// DoubleTapKey is the designated key for the double-tap gesture.
	// It may not be the first key of any chord.
	DoubleTapKey string

	// DoubleTapTimeout is the maximum gap between the two presses.
	DoubleTapTimeout time.Duration

	// ReservedKeys are plain keys the host handles itself. Neither a
	// chord first key nor the double-tap key may be one of them.
	ReservedKeys []string

	// SequenceTimeout is measured from the moment the first key is accepted.
	SequenceTimeout time.Duration
}

// CheckKeys reports a double-tap key that starts a chord, or a chord
// first key or double-tap key that collides with a reserved key.
func (c Config) CheckKeys(registry *Registry) error {
	doubleTap := NormalizeKey(c.DoubleTapKey)
	if registry.HasFirstKey(doubleTap) {
		return fmt.Errorf("%w: %q", ErrDoubleTapConflict, doubleTap)
	}
	for _, reserved := range c.ReservedKeys {
		reserved = NormalizeKey(reserved)
		if reserved == doubleTap {
			return fmt.Errorf("%w: double-tap key %q", ErrReservedKey, reserved)
		}
		if entries := registry.LookupByFirstKey(reserved); len(entries) > 0 {
			return fmt.Errorf("%w: %q starts chord %q", ErrReservedKey, reserved, entries[0].Sequence())
		}
	}
	return nil
}

// DefaultConfig returns the default timings with Shift as the double-tap key
func DefaultConfig() Config {
	return Config{
		DoubleTapKey:     KeyShift,
		DoubleTapTimeout: DefaultDoubleTapTimeout,
		SequenceTimeout:  DefaultSequenceTimeout,
	}
}

// Deps are the collaborators the dispatcher talks to
type Deps struct {
	Capabilities *Capabilities
	Clock        ports.Clock
	Focus        ports.FocusProbe
	Notifier     ports.Notifier
	Scheduler    ports.Scheduler
}

// Outcome tells the host what happened to a key event
type Outcome int

const (
	// Ignored: the gate rejected the event
	Ignored Outcome = iota
	// Passed: eligible but unused; the host may handle the key itself
	Passed
	// Consumed: the dispatcher used the key
	Consumed
)

// Dispatcher owns the chord state and the double-tap state for one
// mounted dashboard and routes every key event to both.
type Dispatcher struct {
	capabilities *Capabilities
	clock        ports.Clock
	closed       bool
	config       Config
	doubleTap    DoubleTap
	feedback     Feedback
	gate         Gate
	reducer      Reducer
	registry     *Registry
	scheduler    ports.Scheduler
	seq          uint64
	state        State
	timer        ports.TimerHandle
	timerArmed   bool
	timerSeq     uint64
}

// NewDispatcher mounts a dispatcher over registry
func NewDispatcher(registry *Registry, config Config, deps Deps) (*Dispatcher, error) {
	if registry == nil {
		return nil, fmt.Errorf("nil registry")
	}
	if deps.Clock == nil || deps.Scheduler == nil {
		return nil, fmt.Errorf("clock and scheduler are required")
	}
	defaults := DefaultConfig()
	if config.SequenceTimeout <= 0 {
		config.SequenceTimeout = defaults.SequenceTimeout
	}
	if config.DoubleTapTimeout <= 0 {
		config.DoubleTapTimeout = defaults.DoubleTapTimeout
	}
	if config.DoubleTapKey == "" {
		config.DoubleTapKey = defaults.DoubleTapKey
	}
	if err := config.CheckKeys(registry); err != nil {
		return nil, err
	}
	if deps.Capabilities == nil {
		deps.Capabilities = NewCapabilities()
	}

	return &Dispatcher{
		capabilities: deps.Capabilities,
		clock:        deps.Clock,
		config:       config,
		doubleTap:    NewDoubleTap(config.DoubleTapKey, config.DoubleTapTimeout),
		feedback:     NewFeedback(deps.Notifier),
		gate:         NewGate(deps.Focus),
		reducer:      Reducer{Registry: registry, Timeout: config.SequenceTimeout},
		registry:     registry,
		scheduler:    deps.Scheduler,
		state:        Idle{},
	}, nil
}

// HandleKey is the single event-routing function. The event goes through
// the gate, then to the chord machine, then to the double-tap
// recognizer. A key the chord machine acted on (or one that starts a
// chord) clears any pending double tap, as does a modified key the gate
// rejects. Keys typed into a focused field leave it alone.
func (d *Dispatcher) HandleKey(ev KeyEvent) Outcome {
	if d.closed {
		return Ignored
	}
	switch d.gate.Check(ev) {
	case RejectedFocus:
		return Ignored
	case RejectedModifier:
		d.doubleTap = d.doubleTap.Reset()
		return Ignored
	}

	now := d.clock.Now()
	name := ev.Name()
	d.seq++

	if d.apply(KeyPressed{At: now, Key: name, Seq: d.seq}) {
		d.doubleTap = d.doubleTap.Reset()
		return Consumed
	}

	var fired bool
	d.doubleTap, fired = d.doubleTap.Press(name, now)
	if !fired {
		return Passed
	}

	logging.Logger.Debug("Double tap recognized", "key", name)
	if err := d.invoke(func(b Bundle) error { return b.OpenQuickFind(true) }); err != nil {
		logging.Logger.Error("Double tap handler failed", "key", name, "error", err)
		d.feedback.Failure("search", err)
	}
	return Consumed
}

// State returns the current chord state
func (d *Dispatcher) State() State {
	return d.state
}

// Pending returns the first key of the pending chord, if any
func (d *Dispatcher) Pending() (rune, bool) {
	if st, ok := d.state.(Awaiting); ok {
		return st.FirstKey, true
	}
	return 0, false
}

// Registry returns the chord table
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Config returns the effective configuration
func (d *Dispatcher) Config() Config {
	return d.config
}

// Invoke runs e with the same feedback a completed chord gets. The
// command menu uses it for entries picked from a list.
func (d *Dispatcher) Invoke(e Entry) {
	if d.closed {
		return
	}
	d.invokeEntry(e)
}

// Close unmounts the dispatcher: the armed timer is cancelled, pending
// feedback dismissed and later events ignored.
func (d *Dispatcher) Close() {
	if d.closed {
		return
	}
	d.clearTimer()
	if st, ok := d.state.(Awaiting); ok {
		d.feedback.Dismiss(st.Feedback)
	}
	d.state = Idle{}
	d.doubleTap = d.doubleTap.Reset()
	d.closed = true
}

// apply runs one event through the reducer and executes its effects.
// It reports whether the event produced any effect.
func (d *Dispatcher) apply(ev Event) bool {
	prev := d.state
	next, effects := d.reducer.Reduce(prev, ev)
	if from, to := stateName(prev), stateName(next); from != to {
		logging.Logger.Debug("Chord state changed", logging.Transition(from, to, eventSeq(ev)))
	}
	d.state = next
	for _, eff := range effects {
		d.run(eff)
	}
	return len(effects) > 0
}

func (d *Dispatcher) run(eff Effect) {
	switch eff := eff.(type) {
	case ShowAwaiting:
		logging.Logger.Debug("Chord prefix accepted", logging.Chord(eff.FirstKey, ""), "candidates", len(eff.Entries))
		id := d.feedback.Awaiting(eff.FirstKey, eff.Entries)
		if st, ok := d.state.(Awaiting); ok {
			st.Feedback = id
			d.state = st
		}

	case ArmTimer:
		d.clearTimer()
		seq := eff.Seq
		d.timer = d.scheduler.Schedule(eff.After, func() { d.onTimer(seq) })
		d.timerArmed = true
		d.timerSeq = seq

	case ClearTimer:
		d.clearTimer()

	case DismissAwaiting:
		d.feedback.Dismiss(eff.Feedback)

	case ShowCancelled:
		logging.Logger.Debug("Chord cancelled", logging.Chord(eff.FirstKey, ""))
		d.feedback.Cancelled(eff.FirstKey)

	case ShowUnknown:
		logging.Logger.Debug("Unknown chord", logging.Chord(eff.FirstKey, eff.Key))
		d.feedback.Unknown(eff.FirstKey, eff.Key)

	case Invoke:
		d.invokeEntry(eff.Entry)
	}
}

func (d *Dispatcher) onTimer(seq uint64) {
	if d.closed {
		return
	}
	if d.timerArmed && d.timerSeq == seq {
		d.timerArmed = false
	}
	if d.apply(TimedOut{At: d.clock.Now(), Seq: seq}) {
		logging.Logger.Debug("Chord timed out", "seq", seq, "timeout", d.config.SequenceTimeout)
	}
}

func (d *Dispatcher) clearTimer() {
	if !d.timerArmed {
		return
	}
	d.scheduler.Cancel(d.timer)
	d.timerArmed = false
}

func (d *Dispatcher) invokeEntry(e Entry) {
	chord := logging.Chord(e.First, string(e.Second))
	logging.Logger.Debug("Invoking chord", chord, "description", e.Description)
	if err := d.invoke(e.Handler); err != nil {
		logging.Logger.Error("Chord handler failed", chord, "description", e.Description, "error", err)
		d.feedback.Failure(e.Description, err)
		return
	}
	d.feedback.Success(e.Description)
}

// invoke builds a fresh bundle and runs h, turning a panic into an error
func (d *Dispatcher) invoke(h Handler) (err error) {
	bundle := d.capabilities.Bundle()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()
	return h(bundle)
}

func stateName(s State) string {
	if _, ok := s.(Awaiting); ok {
		return "awaiting"
	}
	return "idle"
}

func eventSeq(ev Event) uint64 {
	switch ev := ev.(type) {
	case KeyPressed:
		return ev.Seq
	case TimedOut:
		return ev.Seq
	}
	return 0
}
