package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/core"
)

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 30 * time.Second
)

// tgClient is the part of the Telegram bot API the service relies on.
type tgClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	StopReceivingUpdates()
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

// SurveyService runs the survey conversation for a single user.
type SurveyService interface {
	Start(ctx context.Context, userID, languageCode string) (*core.Response, error)
	Help(ctx context.Context, userID string) (*core.Response, error)
	StartSurvey(ctx context.Context, userID string) (*core.Response, error)
	ObtainResult(ctx context.Context, userID, id string) (*core.Response, error)
	SetLocale(ctx context.Context, userID, lang string) (*core.Response, error)
	Cancel(ctx context.Context, userID string) (*core.Response, error)
	HandleMessage(ctx context.Context, userID, text string) (*core.Response, error)
}

// Config holds the configuration for the Telegram bot
type Config struct {
	TelegramToken string `mapstructure:"telegram_token"`
}

type Service struct {
	tg      tgClient
	svc     SurveyService
	handler Handler
	token   string
}

// New creates a bot service connected to the Telegram API with the given survey service behind it.
func New(cfg *Config, svc SurveyService) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("telegram token cannot be empty")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	s := &Service{
		token: cfg.TelegramToken,
		tg:    bot,
		svc:   svc,
	}

	s.handler = s.setupHandler()

	return s, nil
}

func (s *Service) processUpdate(ctx context.Context, update *tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	msg := update.Message

	// nolint:staticcheck // don't want to have dependecy on cmd package here for now
	ctx = context.WithValue(ctx, "chat_id", fmt.Sprintf("%d", msg.Chat.ID))

	msgConfig, err := s.handler.Handle(ctx, msg)

	if errors.Is(err, context.Canceled) {
		slog.InfoContext(ctx, "Request cancelled",
			slog.Int64("chat_id", msg.Chat.ID),
		)

		return
	} else if err != nil {
		slog.ErrorContext(ctx, "Unexpected error",
			slog.Any("error", err),
		)

		return
	}

	if msgConfig.Text == "" {
		return
	}

	if _, err := s.tg.Send(msgConfig); err != nil {
		slog.ErrorContext(ctx, "Failed to send message",
			slog.Any("error", err),
		)
	}
}

// Run long-polls Telegram for updates until ctx is cancelled. Every update is handled in its own goroutine.
func (s *Service) Run(ctx context.Context) error {
	slog.InfoContext(ctx, "Starting Telegram bot")

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30

	updates := s.tg.GetUpdatesChan(updateConfig)

	var wg sync.WaitGroup

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				wg.Wait()
				return nil
			}

			wg.Add(1)

			go func() {
				defer wg.Done()

				reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), requestTimeout)
				defer cancel()

				// nolint:staticcheck // don't want to have dependecy on cmd package here for now
				reqCtx = context.WithValue(reqCtx, "req_id", uuid.New().String())

				s.processUpdate(reqCtx, &update)
			}()

		case <-ctx.Done():
			slog.Info("Starting graceful shutdown")
			s.tg.StopReceivingUpdates()

			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()

			select {
			case <-done:
				slog.Info("Graceful shutdown completed")
			case <-time.After(shutdownTimeout):
				slog.Warn("Graceful shutdown timed out", slog.Duration("timeout", shutdownTimeout))
			}

			return nil
		}
	}
}
