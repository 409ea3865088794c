package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/conv"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/survey"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/i18n"
)

// submit sends a complete survey to the scoring backend.
// An incomplete survey sends the respondent back to the first unanswered question instead.
func (s *Service) submit(ctx context.Context, c *conv.Conversation, tbl *i18n.Table) (*Response, error) {
	if err := survey.ValidateCompleteness(c.Survey.Answers); err != nil {
		idx, _ := c.Survey.FirstUnanswered()

		if err := c.JumpTo(s.catalog, idx); err != nil {
			return nil, fmt.Errorf("failed to move cursor: %w", err)
		}

		c.Revisiting = true

		if err := s.save(ctx, c); err != nil {
			return nil, err
		}

		return withNotice("⚠️ "+tbl.T("survey.answerAll"), s.prompt(c, tbl)), nil
	}

	if errs := survey.ValidateDemographics(c.Survey.Demographics); len(errs) > 0 {
		if err := c.EnterSection(s.catalog, 0); err != nil {
			return nil, fmt.Errorf("failed to move cursor: %w", err)
		}

		c.Field = errs[0].Field

		if err := s.save(ctx, c); err != nil {
			return nil, err
		}

		return withNotice(validationMessage(tbl, errs[0]), s.prompt(c, tbl)), nil
	}

	payload := survey.BuildPayload(c.Survey.Demographics, c.Survey.Answers)

	id, err := s.prov.Submit(ctx, payload)

	var subErr *SubmissionError

	switch {
	case errors.As(err, &subErr):
		slog.WarnContext(ctx, "survey submission rejected", slog.Int("status", subErr.StatusCode), slog.String("detail", subErr.Detail))

		return &Response{
			Message: tbl.Tf("survey.submitFailed", subErr.Error()),
			Answers: reviewAnswers(tbl),
		}, nil
	case err != nil:
		return nil, fmt.Errorf("failed to submit survey: %w", err)
	}

	c.Finish(id)

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "survey submitted", slog.String("survey_id", id))

	return &Response{Message: tbl.Tf("survey.submitted", id, id)}, nil
}
