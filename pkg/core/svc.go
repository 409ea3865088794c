package core

import (
	"context"
	"fmt"

	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/catalog"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/conv"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/survey"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/i18n"
)

// ConvRepo stores the conversation of each respondent between messages.
type ConvRepo interface {
	GetConversation(ctx context.Context, userID string) (*conv.Conversation, error)
	SaveConversation(ctx context.Context, c *conv.Conversation) error
}

// ResultProv submits completed surveys to the scoring backend and loads their results.
type ResultProv interface {
	Submit(ctx context.Context, payload survey.Payload) (string, error)
	FetchResult(ctx context.Context, id string) (Result, error)
}

// Response is a message for the respondent with an optional set of answer buttons.
type Response struct {
	Message string
	Answers []string
}

// Service drives the survey conversation. It keeps no state of its own between calls;
// everything a respondent has entered lives in the conversation stored in ConvRepo.
type Service struct {
	repo    ConvRepo
	prov    ResultProv
	catalog *catalog.Catalog
}

// New creates a Service for the default survey catalog.
func New(repo ConvRepo, prov ResultProv) *Service {
	return &Service{
		repo:    repo,
		prov:    prov,
		catalog: catalog.Default(),
	}
}

// load fetches the user's conversation together with the string table of its locale.
func (s *Service) load(ctx context.Context, userID string) (*conv.Conversation, *i18n.Table, error) {
	c, err := s.repo.GetConversation(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	return c, i18n.For(c.Locale), nil
}

func (s *Service) save(ctx context.Context, c *conv.Conversation) error {
	if err := s.repo.SaveConversation(ctx, c); err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}

	return nil
}
