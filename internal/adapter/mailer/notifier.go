// Package mailer notifies customers that their instance is ready. Delivery
// is best-effort: a failed send is logged and reported as undelivered, it
// never aborts the provisioning run that triggered it.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"bcl-factory/internal/config/configs"
	"bcl-factory/internal/core/domain"
)

const subject = "Your BCL Activate instance is ready!"

// webhookBody is sent when the customer's lead source posts to a webhook:
// the customer has to wire the activation URL into their form or CRM.
const webhookBody = `Hello,

Your BCL Activate campaign has been provisioned successfully!

Please use the following webhook URL to connect your lead source:
%s/activate

Best regards,
Blue Digital Solutions team
`

// integrationBody is sent for managed integrations (Meta and similar)
// where the connection is already established on our side.
const integrationBody = `Hello,

Your BCL Activate campaign is live! Our system has already connected to
your account and new leads will be processed automatically.

Service URL: %s

Best regards,
Blue Digital Solutions team
`

// Notifier implements port.Notifier over SMTP. When SMTP is disabled via
// configuration the message is logged instead of sent, mirroring a dry
// run in development.
type Notifier struct {
	cfg    configs.SMTP
	logger *slog.Logger
}

// NewNotifier returns a notifier for cfg.
func NewNotifier(cfg configs.SMTP, logger *slog.Logger) *Notifier {
	return &Notifier{cfg: cfg, logger: logger}
}

// Notify sends the provisioning-complete message to email. The message
// body is chosen explicitly from the two enumerated templates by source.
func (n *Notifier) Notify(ctx context.Context, email, serviceURL string, source domain.LeadSourceType) bool {
	body := Body(serviceURL, source)

	if !n.cfg.Enabled {
		n.logger.Info("smtp disabled, logging notification instead",
			slog.String("to", email),
			slog.String("subject", subject),
			slog.String("body", body))
		return true
	}

	if err := n.send(ctx, email, body); err != nil {
		nerr := &domain.NotificationError{Recipient: email, Err: err}
		n.logger.Warn("notification delivery failed", slog.Any("error", nerr))
		return false
	}
	n.logger.Info("notification delivered", slog.String("to", email))
	return true
}

func (n *Notifier) send(ctx context.Context, email, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return err
	}
	if err := msg.To(email); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	client, err := gomail.NewClient(n.cfg.Host,
		gomail.WithPort(n.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(n.cfg.Username),
		gomail.WithPassword(n.cfg.Password),
	)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}

// Body renders the notification body for serviceURL. Exported so tests
// can assert template selection without an SMTP server.
func Body(serviceURL string, source domain.LeadSourceType) string {
	switch source {
	case domain.LeadSourceWebhook:
		return fmt.Sprintf(webhookBody, serviceURL)
	default:
		return fmt.Sprintf(integrationBody, serviceURL)
	}
}
