package core

import (
	"context"
	"fmt"

	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/conv"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/i18n"
)

// StartSurvey asks for consent before a new survey. A survey already in progress is resumed instead.
func (s *Service) StartSurvey(ctx context.Context, userID string) (*Response, error) {
	c, tbl, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.startSurvey(ctx, c, tbl)
}

func (s *Service) startSurvey(ctx context.Context, c *conv.Conversation, tbl *i18n.Table) (*Response, error) {
	if c.Active() {
		return s.prompt(c, tbl), nil
	}

	if err := c.StartConsent(); err != nil {
		return nil, fmt.Errorf("failed to start consent: %w", err)
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}

	return s.prompt(c, tbl), nil
}

func (s *Service) handleConsent(ctx context.Context, c *conv.Conversation, tbl *i18n.Table, text string) (*Response, error) {
	switch text {
	case tbl.T("consent.agree"):
		if err := c.StartSurvey(s.catalog); err != nil {
			return nil, fmt.Errorf("failed to start survey: %w", err)
		}

		if err := s.save(ctx, c); err != nil {
			return nil, err
		}

		return s.prompt(c, tbl), nil
	case tbl.T("consent.decline"):
		c.Reset()

		if err := s.save(ctx, c); err != nil {
			return nil, err
		}

		return &Response{Message: tbl.T("declined.text")}, nil
	default:
		return withNotice(tbl.T("survey.chooseOption"), s.prompt(c, tbl)), nil
	}
}
