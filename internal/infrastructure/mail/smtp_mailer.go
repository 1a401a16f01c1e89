package mail

import (
	"context"
	"fmt"
	"io"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/notifications"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

// dialer is the part of gomail.Dialer used to deliver messages
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpMailer struct {
	dialer dialer
	from   string
	logger logger.Logger
}

// NewSMTPMailer creates a notifications.Mailer backed by an SMTP server
func NewSMTPMailer(settings *config.MailSettings, logger logger.Logger) (notifications.Mailer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	port := settings.Port
	if port == 0 {
		port = 587
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(settings.Host, port, settings.Username, settings.Password),
		from:   settings.From,
		logger: logger,
	}, nil
}

// Send builds a plain text message with its attachments and hands it to the SMTP server
func (m *smtpMailer) Send(ctx context.Context, message *notifications.Message) error {
	if message.To == "" {
		return fmt.Errorf("%w: message has no recipient", apperrors.ErrValidation)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", message.To)
	msg.SetHeader("Subject", message.Subject)
	msg.SetBody("text/plain", message.Body)
	for _, a := range message.Attachments {
		msg.Attach(a.FileName, attachmentSettings(a)...)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: failed to send mail to %s: %v", apperrors.ErrUnavailable, message.To, err)
	}
	m.logger.Info(fmt.Sprintf("Sent mail %q to %s with %d attachment(s)", message.Subject, message.To, len(message.Attachments)))
	return nil
}

func attachmentSettings(a notifications.Attachment) []gomail.FileSetting {
	data := a.Data
	settings := []gomail.FileSetting{
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}),
	}
	if a.ContentType != "" {
		settings = append(settings, gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}))
	}
	return settings
}
