package ports

// NotificationKind classifies a transient notification
type NotificationKind int

const (
	NotifyAwaiting NotificationKind = iota
	NotifySuccess
	NotifyCancelled
	NotifyUnknown
	NotifyFailure
)

// String returns the kind name used in logs
func (k NotificationKind) String() string {
	switch k {
	case NotifyAwaiting:
		return "awaiting"
	case NotifySuccess:
		return "success"
	case NotifyCancelled:
		return "cancelled"
	case NotifyUnknown:
		return "unknown"
	case NotifyFailure:
		return "failure"
	}
	return "notification"
}

// NotificationHint is one candidate second key shown while a chord is pending
type NotificationHint struct {
	Description string
	Key         string
}

// Notification is a transient, non-authoritative message for the user.
// Sticky notifications stay until dismissed; others expire on their own.
type Notification struct {
	Hints   []NotificationHint
	Kind    NotificationKind
	Message string
	Sticky  bool
	Title   string
}

// NotificationID identifies a shown notification
type NotificationID uint64

// Notifier is the generic toast sink
type Notifier interface {
	Show(n Notification) NotificationID
	Dismiss(id NotificationID)
}

// FocusProbe reports whether a text-entry surface currently holds focus
type FocusProbe interface {
	TextEntryFocused() bool
}
