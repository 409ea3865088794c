package core

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ksysoev/feedsurvey-tgbot/pkg/i18n"
)

// SetLocale switches the language of the user's conversation.
// An empty lang returns the language picker.
func (s *Service) SetLocale(ctx context.Context, userID, lang string) (*Response, error) {
	c, tbl, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	lang = strings.TrimSpace(lang)
	if lang == "" {
		answers := make([]string, 0, len(i18n.Supported))
		for _, l := range i18n.Supported {
			answers = append(answers, "/lang "+string(l))
		}

		return &Response{Message: tbl.T("lang.prompt"), Answers: answers}, nil
	}

	l, ok := i18n.ParseLocale(lang)
	if !ok {
		return &Response{Message: tbl.T("lang.unknown")}, nil
	}

	c.Locale = l

	if err := s.save(ctx, c); err != nil {
		slog.WarnContext(ctx, "failed to persist locale", slog.Any("error", err))
	}

	tbl = i18n.For(l)

	if !c.Active() {
		return &Response{Message: tbl.T("lang.changed")}, nil
	}

	return withNotice(tbl.T("lang.changed"), s.prompt(c, tbl)), nil
}
