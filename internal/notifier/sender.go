package notifier

import (
	"context"

	"skillbot/internal/providers"
	"skillbot/internal/structures"
)

// SenderInterface delivers a plain text message to one user.
type SenderInterface interface {
	Send(ctx context.Context, recipientID, text string) error
}

// NewSender returns a Telegram sender when a bot token is configured, or a
// LogSender that only writes deliveries to the admin log.
func NewSender(conf *structures.Config, logger providers.Logger) SenderInterface {
	if conf.Telegram.Token == "" {
		logger.Warnf(providers.TypeApp, "Telegram token is not set, broadcasts go to the admin log only")
		return NewLogSender(logger)
	}
	return NewTelegramSender(conf.Telegram, logger)
}

type LogSender struct {
	logger providers.Logger
}

func NewLogSender(logger providers.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, recipientID, text string) error {
	s.logger.Infof(providers.TypeAdmin, "Message to %s: %s", recipientID, text)
	return nil
}
