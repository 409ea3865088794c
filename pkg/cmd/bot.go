package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ksysoev/feedsurvey-tgbot/pkg/bot"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/core"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/prov"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/repo"
)

func runBot(ctx context.Context, arg *args) error {
	if err := initLogger(arg); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	cfg, err := loadConfig(arg)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	conversations := repo.New(cfg.Repo)

	defer func() {
		if err := conversations.Close(); err != nil {
			slog.Error("failed to close conversation store", slog.Any("error", err))
		}
	}()

	svc := core.New(conversations, prov.New(cfg.API))

	b, err := bot.New(&cfg.Bot, svc)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	return b.Run(ctx)
}
