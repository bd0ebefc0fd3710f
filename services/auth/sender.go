package auth

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Sender delivers a one-time code to the user. The real delivery channel
// (SMTP, push) lives outside this service.
type Sender interface {
	Send(ctx context.Context, email string, code string) error
}

// LogSender writes codes to the log. Default when no delivery channel is
// configured, useful for local development.
type LogSender struct{}

func (s *LogSender) Send(_ context.Context, email string, code string) error {
	log.WithField("email", email).WithField("code", code).Info("one-time code issued")
	return nil
}
