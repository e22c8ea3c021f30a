package email

import (
	"context"
	"log/slog"
	"os"
)

// ConsoleSender logs messages instead of delivering them. Used in development
// and whenever no provider key is configured.
type ConsoleSender struct {
	logger *slog.Logger
}

var _ Sender = (*ConsoleSender)(nil)

func NewConsoleSender(logger *slog.Logger) *ConsoleSender {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}
	return &ConsoleSender{logger: logger}
}

func (s *ConsoleSender) Send(_ context.Context, msg Message) error {
	if !msg.HasRecipients() || !msg.HasContent() {
		return ErrEmptyMessage
	}
	to := make([]string, 0, len(msg.To))
	for _, addr := range msg.To {
		to = append(to, addr.String())
	}
	s.logger.Info("email (console)", "to", to, "subject", msg.Subject, "text", msg.Text)
	return nil
}
