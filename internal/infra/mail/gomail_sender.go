// Package mail provides the SMTP-backed implementation of the MailSender service.
package mail

import (
	"context"
	"log/slog"

	"gopkg.in/gomail.v2"

	"bazaar/config"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
)

type gomailSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	logger   *slog.Logger
}

// NewGomailSender builds a MailSender that delivers through the configured
// SMTP relay.
func NewGomailSender(cfg *config.Config, logger *slog.Logger) (service.MailSender, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp configuration must be provided")
	}

	return &gomailSender{
		host:     cfg.SMTP.Host,
		port:     cfg.SMTP.Port,
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
		from:     cfg.SMTP.From,
		logger:   logger,
	}, nil
}

// Send delivers one HTML mail. gomail's dialer has no context support, so the
// dial-and-send runs in its own goroutine and the caller's cancellation wins
// the race; an abandoned send finishes (or fails) in the background.
func (s *gomailSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "mail send canceled")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	result := make(chan error, 1)
	go func() {
		result <- d.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "mail send canceled")
	case err := <-result:
		if err != nil {
			return errors.Wrap(err, "send mail via smtp")
		}
	}

	s.logger.Debug("mail sent", slog.String("to", to), slog.String("subject", subject))

	return nil
}
