package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/config"
)

func newTestSender(t *testing.T) *gomailSender {
	t.Helper()

	cfg := &config.Config{
		SMTP: &config.SMTPConfig{
			Host: "smtp.example.com",
			Port: 587,
			From: "noreply@example.com",
		},
	}

	sender, err := NewGomailSender(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return sender.(*gomailSender)
}

func TestNewGomailSender_RequiresSMTPConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewGomailSender(&config.Config{}, logger)
	assert.Error(t, err)

	_, err = NewGomailSender(&config.Config{SMTP: &config.SMTPConfig{}}, logger)
	assert.Error(t, err)
}

func TestSend_CanceledContext(t *testing.T) {
	sender := newTestSender(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// An already-canceled context must fail before any dial is attempted.
	err := sender.Send(ctx, "buyer@example.com", "Password reset", "<p>hi</p>")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
