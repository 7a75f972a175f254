package drive

import (
	"sync"
	"time"
)

// NotificationKind distinguishes success from error toasts.
type NotificationKind string

const (
	NoteSuccess NotificationKind = "success"
	NoteError   NotificationKind = "error"
)

// Notification is one transient user-facing message.
type Notification struct {
	Message string
	Kind    NotificationKind
}

// DefaultNotificationTTL is how long a notification stays up before it is
// dismissed automatically.
const DefaultNotificationTTL = 3 * time.Second

// Notifier holds at most one active notification. Each notification owns a
// cancellable dismissal timer; showing a new one cancels the pending
// dismissal and replaces the message rather than stacking timers.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Notification
	timer   *time.Timer
	gen     uint64
}

// NewNotifier returns a notifier that auto-dismisses after ttl. A
// non-positive ttl falls back to DefaultNotificationTTL.
func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Notifier{ttl: ttl}
}

// Success shows a success notification.
func (n *Notifier) Success(message string) {
	n.show(message, NoteSuccess)
}

// Error shows an error notification.
func (n *Notifier) Error(message string) {
	n.show(message, NoteError)
}

func (n *Notifier) show(message string, kind NotificationKind) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}

	n.current = &Notification{Message: message, Kind: kind}
	n.gen++
	gen := n.gen

	n.timer = time.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		// A newer notification owns the slot now.
		if n.gen != gen {
			return
		}
		n.current = nil
	})
}

// Current returns a copy of the active notification, or nil when nothing is
// showing.
func (n *Notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return nil
	}
	c := *n.current
	return &c
}

// Dismiss clears the active notification and cancels its timer.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
	n.gen++
}
