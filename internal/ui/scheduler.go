package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rentdesk/rentdesk/internal/ports"
)

// timerFiredMsg is delivered by tea.Tick when a scheduled callback is due
type timerFiredMsg struct {
	handle ports.TimerHandle
}

// TeaScheduler implements ports.Scheduler on top of tea.Tick. Callbacks
// run inside Update when their timerFiredMsg arrives, so they share the
// goroutine that delivers key events.
type TeaScheduler struct {
	cmds    []tea.Cmd
	mu      sync.Mutex
	next    ports.TimerHandle
	pending map[ports.TimerHandle]func()
}

// NewTeaScheduler creates an empty scheduler
func NewTeaScheduler() *TeaScheduler {
	return &TeaScheduler{pending: make(map[ports.TimerHandle]func())}
}

// Schedule registers fn and queues a tick command. The command is handed
// to bubbletea by the next Flush.
func (s *TeaScheduler) Schedule(d time.Duration, fn func()) ports.TimerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	handle := s.next
	s.pending[handle] = fn
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{handle: handle}
	}))
	return handle
}

// Cancel drops a pending callback. The tick still arrives and is ignored.
func (s *TeaScheduler) Cancel(h ports.TimerHandle) {
	s.mu.Lock()
	delete(s.pending, h)
	s.mu.Unlock()
}

// Fire runs the callback for h if it is still pending
func (s *TeaScheduler) Fire(h ports.TimerHandle) bool {
	s.mu.Lock()
	fn, ok := s.pending[h]
	delete(s.pending, h)
	s.mu.Unlock()

	if !ok {
		return false
	}
	fn()
	return true
}

// Pending returns the number of callbacks not yet fired or cancelled
func (s *TeaScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Flush returns the tick commands queued since the last call
func (s *TeaScheduler) Flush() tea.Cmd {
	s.mu.Lock()
	cmds := s.cmds
	s.cmds = nil
	s.mu.Unlock()

	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}
