// Package notify delivers stage-change emails to reviewer slot assignees.
// The engine treats delivery as a blocking collaborator call: no retry, no
// queueing, failures surface to the caller.
package notify

import (
	"context"
	"log/slog"
)

// Notifier accepts a recipient list, a subject, and an HTML body and delivers
// one email covering all recipients.
type Notifier interface {
	Send(ctx context.Context, recipients []string, subject, htmlBody string) error
}

// LogNotifier writes would-be notifications to the log. Used in development
// when SMTP is not configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(ctx context.Context, recipients []string, subject, _ string) error {
	n.logger.InfoContext(ctx, "notification suppressed, smtp not configured",
		"recipients", recipients, "subject", subject)
	return nil
}
