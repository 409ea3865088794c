package middleware

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// WithThrottler caps the number of messages handled at the same time across all chats.
// A request that cannot get a slot before its context is done fails with the context error.
func WithThrottler(limit int) Middleware {
	if limit <= 0 {
		limit = 1
	}

	sem := make(chan struct{}, limit)

	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, message *tgbotapi.Message) (tgbotapi.MessageConfig, error) {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return tgbotapi.MessageConfig{}, ctx.Err()
			}

			defer func() { <-sem }()

			return next.Handle(ctx, message)
		})
	}
}
