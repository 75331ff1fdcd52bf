package tui

import (
	"github.com/rs/zerolog"

	"github.com/rxdesk/rxdesk/internal/logging"
)

// Severity classifies a notification.
type Severity string

// SeverityDestructive marks failure notifications.
const SeverityDestructive Severity = "destructive"

// Notification is a transient user-facing message. The list view emits
// exactly one per failed load attempt.
type Notification struct {
	Severity Severity
	Title    string
	Message  string
}

// Notifier consumes notifications. The TUI renders the most recent one as a
// banner; implementations may additionally log or forward them.
type Notifier interface {
	Notify(n Notification)
}

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a LogNotifier on top of the given logger.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logging.ComponentLogger(logger, "notify")}
}

// Notify logs the notification at a level matching its severity.
func (n *LogNotifier) Notify(notification Notification) {
	event := n.logger.Info()
	if notification.Severity == SeverityDestructive {
		event = n.logger.Error()
	}
	event.
		Str("severity", string(notification.Severity)).
		Str("title", notification.Title).
		Msg(notification.Message)
}
