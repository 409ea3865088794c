package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/bot/middleware"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/core"
)

const maxConcurrentRequests = 30

var errNoSender = errors.New("message has no sender")

// Handler processes an incoming Telegram message and returns the reply to send.
type Handler = middleware.Handler

// setupHandler wraps the service with the middleware stack: per-chat sequencing, a global
// concurrency cap and error replies. Messages waiting for their chat do not hold a concurrency slot.
func (s *Service) setupHandler() Handler {
	return middleware.Use(
		s,
		middleware.WithRequestSequencer(),
		middleware.WithThrottler(maxConcurrentRequests),
		middleware.WithErrorHandling(),
	)
}

// Handle routes commands to the matching survey operation and any other message to the conversation flow.
func (s *Service) Handle(ctx context.Context, msg *tgbotapi.Message) (tgbotapi.MessageConfig, error) {
	slog.DebugContext(ctx, "Handling message", slog.Any("message", msg))

	if msg.From == nil {
		return tgbotapi.MessageConfig{}, errNoSender
	}

	if msg.IsCommand() {
		resp, err := s.handleCommand(ctx, msg)
		if err != nil {
			return tgbotapi.MessageConfig{}, fmt.Errorf("failed to handle command: %w", err)
		}

		return newMessage(msg.Chat.ID, resp), nil
	}

	resp, err := s.svc.HandleMessage(ctx, userID(msg), msg.Text)
	if err != nil {
		return tgbotapi.MessageConfig{}, fmt.Errorf("failed to handle text message: %w", err)
	}

	return newMessage(msg.Chat.ID, resp), nil
}

func (s *Service) handleCommand(ctx context.Context, msg *tgbotapi.Message) (*core.Response, error) {
	uid := userID(msg)
	args := strings.TrimSpace(msg.CommandArguments())

	switch msg.Command() {
	case "start":
		return s.svc.Start(ctx, uid, msg.From.LanguageCode)
	case "help":
		return s.svc.Help(ctx, uid)
	case "survey":
		return s.svc.StartSurvey(ctx, uid)
	case "result":
		return s.svc.ObtainResult(ctx, uid, args)
	case "lang":
		return s.svc.SetLocale(ctx, uid, args)
	case "cancel":
		return s.svc.Cancel(ctx, uid)
	default:
		resp, err := s.svc.Help(ctx, uid)
		if err != nil {
			return nil, err
		}

		return &core.Response{Message: "❓ " + resp.Message}, nil
	}
}

func userID(msg *tgbotapi.Message) string {
	return strconv.FormatInt(msg.From.ID, 10)
}

// newMessage renders a response. Answers become a one-time reply keyboard with one button per row,
// a response without answers removes any keyboard left from a previous question.
func newMessage(chatID int64, resp *core.Response) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, resp.Message)

	if len(resp.Answers) == 0 {
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
		return msg
	}

	rows := make([][]tgbotapi.KeyboardButton, 0, len(resp.Answers))
	for _, a := range resp.Answers {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(a)))
	}

	keyboard := tgbotapi.NewOneTimeReplyKeyboard(rows...)
	keyboard.ResizeKeyboard = true
	msg.ReplyMarkup = keyboard

	return msg
}
