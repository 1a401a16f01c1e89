//go:build unit
// +build unit

package mail

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/notifications"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func newTestMailer(t *testing.T, d dialer) *smtpMailer {
	return &smtpMailer{dialer: d, from: "geral@mariafaz.pt", logger: testutil.SetupTestLogger(t)}
}

func TestSMTPMailer_Send(t *testing.T) {
	d := &fakeDialer{}
	m := newTestMailer(t, d)

	err := m.Send(context.Background(), &notifications.Message{
		To:      "owner@example.com",
		Subject: "Relatório",
		Body:    "Segue em anexo.",
		Attachments: []notifications.Attachment{
			{FileName: "relatorio.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.3")},
		},
	})
	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	msg := d.sent[0]
	assert.Equal(t, []string{"geral@mariafaz.pt"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"owner@example.com"}, msg.GetHeader("To"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "relatorio.pdf")
	assert.Contains(t, buf.String(), "application/pdf")
}

func TestSMTPMailer_SendErrors(t *testing.T) {
	t.Run("missing recipient", func(t *testing.T) {
		m := newTestMailer(t, &fakeDialer{})
		err := m.Send(context.Background(), &notifications.Message{Subject: "x"})
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})

	t.Run("smtp failure", func(t *testing.T) {
		m := newTestMailer(t, &fakeDialer{err: errors.New("connection refused")})
		err := m.Send(context.Background(), &notifications.Message{To: "a@b.pt", Subject: "x"})
		assert.True(t, errors.Is(err, apperrors.ErrUnavailable))
	})

	t.Run("cancelled context", func(t *testing.T) {
		d := &fakeDialer{}
		m := newTestMailer(t, d)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := m.Send(ctx, &notifications.Message{To: "a@b.pt"})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, d.sent)
	})
}

func TestNewMailer(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	disabled, err := NewMailer(&config.MailSettings{}, log)
	require.NoError(t, err)
	assert.IsType(t, &logMailer{}, disabled)
	assert.NoError(t, disabled.Send(context.Background(), &notifications.Message{To: "a@b.pt"}))

	enabled, err := NewMailer(&config.MailSettings{Enabled: true, Host: "smtp.example.com", Port: 2525, From: "geral@mariafaz.pt"}, log)
	require.NoError(t, err)
	assert.IsType(t, &smtpMailer{}, enabled)

	_, err = NewMailer(&config.MailSettings{Enabled: true}, log)
	assert.Error(t, err)
}
