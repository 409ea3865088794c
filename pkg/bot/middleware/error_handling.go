package middleware

import (
	"context"
	"errors"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const errorMessage = "😔 Something went wrong, please try again later.\n\nЧто-то пошло не так, попробуйте позже."

// WithErrorHandling logs handler failures and replies with a generic apology instead.
// Cancelled requests are passed through untouched.
func WithErrorHandling() Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, message *tgbotapi.Message) (tgbotapi.MessageConfig, error) {
			resp, err := next.Handle(ctx, message)
			if err == nil || errors.Is(err, context.Canceled) || message == nil {
				return resp, err
			}

			slog.ErrorContext(ctx, "Failed to handle message", slog.Any("error", err))

			return tgbotapi.NewMessage(message.Chat.ID, errorMessage), nil
		})
	}
}
