package shortcut

import (
	"fmt"

	"github.com/rentdesk/rentdesk/internal/ports"
)

// Feedback turns state transitions into notifications on a ports.Notifier
type Feedback struct {
	notifier ports.Notifier
}

// NewFeedback wraps notifier; a nil notifier drops everything
func NewFeedback(notifier ports.Notifier) Feedback {
	return Feedback{notifier: notifier}
}

// Awaiting shows the sticky "waiting for second key" notification.
// entries is the registry snapshot taken at the transition.
func (f Feedback) Awaiting(first rune, entries []Entry) ports.NotificationID {
	if f.notifier == nil {
		return 0
	}
	hints := make([]ports.NotificationHint, 0, len(entries))
	for _, e := range entries {
		hints = append(hints, ports.NotificationHint{
			Description: e.Description,
			Key:         string(e.Second),
		})
	}
	return f.notifier.Show(ports.Notification{
		Hints:   hints,
		Kind:    ports.NotifyAwaiting,
		Message: "waiting for second key",
		Sticky:  true,
		Title:   string(first),
	})
}

// Dismiss removes a notification. Zero IDs are ignored.
func (f Feedback) Dismiss(id ports.NotificationID) {
	if f.notifier == nil || id == 0 {
		return
	}
	f.notifier.Dismiss(id)
}

func (f Feedback) Success(description string) {
	f.show(ports.NotifySuccess, description, "")
}

func (f Feedback) Cancelled(first rune) {
	f.show(ports.NotifyCancelled, string(first), "shortcut cancelled")
}

func (f Feedback) Unknown(first rune, key string) {
	f.show(ports.NotifyUnknown, fmt.Sprintf("%c %s", first, key), "unknown sequence")
}

func (f Feedback) Failure(description string, err error) {
	f.show(ports.NotifyFailure, description, err.Error())
}

func (f Feedback) show(kind ports.NotificationKind, title, message string) {
	if f.notifier == nil {
		return
	}
	f.notifier.Show(ports.Notification{Kind: kind, Message: message, Title: title})
}
