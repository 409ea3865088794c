package middleware

import (
	"context"
	"errors"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// chatLock serializes requests of one chat. waiters counts the requests holding or waiting for it.
type chatLock struct {
	ch      chan struct{}
	waiters int
}

// WithRequestSequencer handles messages of the same chat one at a time.
// The order among messages waiting for the same chat is not guaranteed.
// Messages from different chats are not blocked by each other.
// It returns an error if nil message is passed to the Handler.
func WithRequestSequencer() Middleware {
	var mu sync.Mutex
	locks := make(map[int64]*chatLock)

	release := func(chatID int64, l *chatLock) {
		mu.Lock()
		defer mu.Unlock()

		l.waiters--
		if l.waiters == 0 {
			delete(locks, chatID)
		}
	}

	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, message *tgbotapi.Message) (tgbotapi.MessageConfig, error) {
			if message == nil {
				return tgbotapi.MessageConfig{}, errors.New("message is nil")
			}

			chatID := message.Chat.ID

			mu.Lock()
			l, ok := locks[chatID]
			if !ok {
				l = &chatLock{ch: make(chan struct{}, 1)}
				locks[chatID] = l
			}
			l.waiters++
			mu.Unlock()

			defer release(chatID, l)

			select {
			case l.ch <- struct{}{}:
			case <-ctx.Done():
				return tgbotapi.MessageConfig{}, ctx.Err()
			}

			defer func() { <-l.ch }()

			return next.Handle(ctx, message)
		})
	}
}
