package ui

import (
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rentdesk/rentdesk/internal/logging"
	"github.com/rentdesk/rentdesk/internal/ports"
	"github.com/rentdesk/rentdesk/internal/theme"
)

const (
	defaultToastDuration = 3 * time.Second
	maxVisibleToasts     = 3
)

// toastExpiredMsg is sent when a non-sticky toast reaches its lifetime
type toastExpiredMsg struct {
	id ports.NotificationID
}

type toast struct {
	id ports.NotificationID
	n  ports.Notification
}

// ToastManager is the notification sink shown in the corner of the
// dashboard. It implements ports.Notifier. Sticky toasts stay until
// dismissed; the rest expire after the configured duration.
type ToastManager struct {
	cmds     []tea.Cmd
	duration time.Duration
	mu       sync.Mutex
	next     ports.NotificationID
	toasts   []toast
}

// NewToastManager creates a ToastManager. A zero duration uses the default.
func NewToastManager(duration time.Duration) *ToastManager {
	if duration <= 0 {
		duration = defaultToastDuration
	}
	return &ToastManager{duration: duration}
}

// Show adds a toast and returns its id
func (tm *ToastManager) Show(n ports.Notification) ports.NotificationID {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.next++
	id := tm.next
	tm.toasts = append(tm.toasts, toast{id: id, n: n})
	logging.Logger.Debug("Toast shown", "id", id, "kind", n.Kind.String(), "title", n.Title)

	if !n.Sticky {
		tm.cmds = append(tm.cmds, tea.Tick(tm.duration, func(time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		}))
	}
	return id
}

// Dismiss removes a toast. Unknown ids are ignored.
func (tm *ToastManager) Dismiss(id ports.NotificationID) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.remove(id)
}

// Error shows err as a failure toast
func (tm *ToastManager) Error(title string, err error) {
	if err == nil {
		return
	}
	tm.Show(ports.Notification{Kind: ports.NotifyFailure, Message: err.Error(), Title: title})
}

// Success shows a short confirmation toast
func (tm *ToastManager) Success(title, message string) {
	tm.Show(ports.Notification{Kind: ports.NotifySuccess, Message: message, Title: title})
}

// Active returns the toasts currently shown, oldest first
func (tm *ToastManager) Active() []ports.Notification {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	out := make([]ports.Notification, 0, len(tm.toasts))
	for _, t := range tm.toasts {
		out = append(out, t.n)
	}
	return out
}

// Flush returns the expiry commands queued since the last call
func (tm *ToastManager) Flush() tea.Cmd {
	tm.mu.Lock()
	cmds := tm.cmds
	tm.cmds = nil
	tm.mu.Unlock()

	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func (tm *ToastManager) expire(id ports.NotificationID) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.remove(id)
}

func (tm *ToastManager) remove(id ports.NotificationID) {
	for i, t := range tm.toasts {
		if t.id == id {
			tm.toasts = append(tm.toasts[:i], tm.toasts[i+1:]...)
			return
		}
	}
}

// View renders the newest toasts stacked vertically, at most width wide
func (tm *ToastManager) View(width int) string {
	active := tm.Active()
	if len(active) == 0 {
		return ""
	}
	if len(active) > maxVisibleToasts {
		active = active[len(active)-maxVisibleToasts:]
	}

	boxWidth := width / 2
	if boxWidth < 30 {
		boxWidth = 30
	}

	boxes := make([]string, 0, len(active))
	for _, n := range active {
		boxes = append(boxes, renderToast(n, boxWidth))
	}
	return lipgloss.JoinVertical(lipgloss.Right, boxes...)
}

func renderToast(n ports.Notification, width int) string {
	accent := lipgloss.NewStyle().Foreground(theme.ToastColor(n.Kind)).Bold(true)

	var sb strings.Builder
	sb.WriteString(accent.Render(n.Title))
	if n.Message != "" {
		sb.WriteString("  ")
		message := n.Message
		if n.Kind == ports.NotifyFailure {
			message = wrapMessage(message, width-lipgloss.Width(n.Title)-6)
		}
		sb.WriteString(theme.NormalStyle.Render(message))
	}
	for _, h := range n.Hints {
		sb.WriteString("\n")
		sb.WriteString(theme.HintKeyStyle.Render(h.Key))
		sb.WriteString(" ")
		sb.WriteString(theme.HintLabelStyle.Render(h.Description))
	}
	return theme.ToastStyle(n.Kind).Width(width).Render(sb.String())
}
