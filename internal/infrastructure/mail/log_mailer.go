package mail

import (
	"context"
	"fmt"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/notifications"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"
)

type logMailer struct {
	logger logger.Logger
}

// NewLogMailer creates a notifications.Mailer that only logs what it would send
func NewLogMailer(logger logger.Logger) notifications.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(_ context.Context, message *notifications.Message) error {
	if message.To == "" {
		return fmt.Errorf("%w: message has no recipient", apperrors.ErrValidation)
	}
	m.logger.Warn(fmt.Sprintf("Mail disabled, not sending %q to %s (%d attachment(s))", message.Subject, message.To, len(message.Attachments)))
	return nil
}

// NewMailer returns an SMTP mailer when mail is enabled and a log mailer otherwise
func NewMailer(settings *config.MailSettings, logger logger.Logger) (notifications.Mailer, error) {
	if !settings.Enabled {
		return NewLogMailer(logger), nil
	}
	return NewSMTPMailer(settings, logger)
}
