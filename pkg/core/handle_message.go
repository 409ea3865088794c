package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/conv"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/i18n"
)

// Start resets the user's conversation and returns the landing message.
// On first contact the locale is derived from the chat client's language code.
func (s *Service) Start(ctx context.Context, userID, languageCode string) (*Response, error) {
	c, _, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.Reset()

	if c.Locale == "" {
		c.Locale = i18n.Match(languageCode)
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}

	tbl := i18n.For(c.Locale)

	msg := strings.Join([]string{
		"🧠 " + tbl.T("landing.title"),
		tbl.T("landing.subtitle"),
		tbl.T("landing.body1"),
		tbl.T("landing.body2") + "\n" + tbl.T("landing.dimensions"),
		tbl.T("landing.note"),
	}, "\n\n")

	return &Response{
		Message: msg,
		Answers: []string{tbl.T("landing.takeTest"), tbl.T("landing.obtainResult")},
	}, nil
}

// Help returns the list of commands in the user's language.
func (s *Service) Help(ctx context.Context, userID string) (*Response, error) {
	_, tbl, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Response{Message: tbl.T("help.text")}, nil
}

// Cancel discards the survey in progress, if any.
func (s *Service) Cancel(ctx context.Context, userID string) (*Response, error) {
	c, tbl, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.Reset()

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}

	return &Response{Message: tbl.T("survey.cancelled")}, nil
}

// HandleMessage processes free text or a pressed answer button according to the conversation state.
func (s *Service) HandleMessage(ctx context.Context, userID, text string) (*Response, error) {
	c, tbl, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)

	var resp *Response

	switch c.State {
	case conv.StateIdle:
		resp, err = s.handleIdle(ctx, c, tbl, text)
	case conv.StateConsent:
		resp, err = s.handleConsent(ctx, c, tbl, text)
	case conv.StateDemographics:
		resp, err = s.handleDemographic(ctx, c, tbl, text)
	case conv.StateQuestions:
		resp, err = s.handleAnswer(ctx, c, tbl, text)
	case conv.StateReview:
		resp, err = s.handleReview(ctx, c, tbl, text)
	case conv.StateAwaitingResultID:
		resp, err = s.fetchResult(ctx, c, tbl, text)
	default:
		return nil, fmt.Errorf("unexpected conversation state %q", c.State)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to handle message: %w", err)
	}

	return resp, nil
}

func (s *Service) handleIdle(ctx context.Context, c *conv.Conversation, tbl *i18n.Table, text string) (*Response, error) {
	switch text {
	case tbl.T("landing.takeTest"):
		return s.startSurvey(ctx, c, tbl)
	case tbl.T("landing.obtainResult"):
		return s.askResultID(ctx, c, tbl)
	default:
		return &Response{Message: tbl.T("survey.notStarted")}, nil
	}
}

// withNotice prepends a notice, such as a validation error, to the next prompt.
func withNotice(notice string, resp *Response) *Response {
	return &Response{
		Message: notice + "\n\n" + resp.Message,
		Answers: resp.Answers,
	}
}
