package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"paperflow/internal/platform/config"
)

// SMTPNotifier delivers notifications through an SMTP relay as a single
// message addressed to every recipient.
type SMTPNotifier struct {
	client *mail.Client
	from   string
}

// NewSMTPNotifier builds a notifier from SMTP config. Credentials are
// optional; relays on trusted networks may accept unauthenticated mail.
func NewSMTPNotifier(cfg config.SMTP) (*SMTPNotifier, error) {
	opts := []mail.Option{mail.WithPort(cfg.Port)}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("build smtp client: %w", err)
	}
	return &SMTPNotifier{client: client, from: cfg.From}, nil
}

func (n *SMTPNotifier) Send(ctx context.Context, recipients []string, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(recipients...); err != nil {
		return fmt.Errorf("set recipients: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}
