package core

import (
	"context"
	"fmt"

	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/conv"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/survey"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/i18n"
)

// handleDemographic stores the value entered for the current demographic field and moves on once it is valid.
// Progression past the demographic section is gated by a full demographic validation.
func (s *Service) handleDemographic(ctx context.Context, c *conv.Conversation, tbl *i18n.Table, text string) (*Response, error) {
	value := text
	if c.Field == survey.FieldGender {
		value = genderFromText(tbl, text)
	}

	if err := c.Survey.SetDemographic(c.Field, value); err != nil {
		return nil, fmt.Errorf("failed to set demographic: %w", err)
	}

	if verr := survey.ValidateField(c.Survey.Demographics, c.Field); verr != nil {
		if err := s.save(ctx, c); err != nil {
			return nil, err
		}

		return withNotice(validationMessage(tbl, verr), s.prompt(c, tbl)), nil
	}

	if done := c.NextField(); !done {
		if err := s.save(ctx, c); err != nil {
			return nil, err
		}

		return s.prompt(c, tbl), nil
	}

	if errs := survey.ValidateDemographics(c.Survey.Demographics); len(errs) > 0 {
		c.Field = errs[0].Field

		if err := s.save(ctx, c); err != nil {
			return nil, err
		}

		return withNotice(validationMessage(tbl, errs[0]), s.prompt(c, tbl)), nil
	}

	if err := c.EnterSection(s.catalog, 1); err != nil {
		return nil, fmt.Errorf("failed to enter section: %w", err)
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}

	return s.prompt(c, tbl), nil
}

// handleAnswer records a scale answer for the question under the cursor or performs section navigation.
func (s *Service) handleAnswer(ctx context.Context, c *conv.Conversation, tbl *i18n.Table, text string) (*Response, error) {
	var err error

	switch text {
	case tbl.T("survey.prevSection"):
		err = c.PrevSection(s.catalog)
	case tbl.T("survey.nextSection"):
		err = c.NextSection(s.catalog)
	default:
		label, ok := likertFromText(tbl, text)
		if !ok {
			return withNotice(tbl.T("survey.chooseOption"), s.prompt(c, tbl)), nil
		}

		if err := c.Survey.SetAnswer(c.Cursor, label); err != nil {
			return nil, fmt.Errorf("failed to set answer: %w", err)
		}

		if c.Revisiting {
			err = c.AdvanceUnanswered(s.catalog)
		} else {
			err = c.Advance(s.catalog)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to move cursor: %w", err)
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}

	return s.prompt(c, tbl), nil
}

func (s *Service) handleReview(ctx context.Context, c *conv.Conversation, tbl *i18n.Table, text string) (*Response, error) {
	switch text {
	case tbl.T("survey.submit"):
		return s.submit(ctx, c, tbl)
	case tbl.T("survey.prevSection"):
		if err := c.PrevSection(s.catalog); err != nil {
			return nil, fmt.Errorf("failed to move cursor: %w", err)
		}

		if err := s.save(ctx, c); err != nil {
			return nil, err
		}

		return s.prompt(c, tbl), nil
	default:
		return withNotice(tbl.T("survey.chooseOption"), s.prompt(c, tbl)), nil
	}
}

func validationMessage(tbl *i18n.Table, verr *survey.ValidationError) string {
	return "⚠️ " + tbl.T("survey.errors."+string(verr.Reason))
}
