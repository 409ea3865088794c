package conv

import (
	"errors"

	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/catalog"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/survey"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/i18n"
)

var (
	ErrSurveyInProgress = errors.New("survey is already in progress")
	ErrNotInConsent     = errors.New("conversation is not waiting for consent")
	ErrNoSurvey         = errors.New("conversation has no active survey")
)

// State is the step of the conversation the next message is interpreted in.
type State string

const (
	StateIdle             State = "idle"
	StateConsent          State = "consent"
	StateDemographics     State = "demographics"
	StateQuestions        State = "questions"
	StateReview           State = "review"
	StateAwaitingResultID State = "awaiting_result_id"
)

// Conversation is the per-user chat record: the survey session being filled plus where the respondent is in it.
// Revisiting is set while the respondent answers questions left empty at a submit attempt.
type Conversation struct {
	Survey       *survey.Session `json:"survey,omitempty"`
	ID           string          `json:"id"`
	State        State           `json:"state"`
	Locale       i18n.Locale     `json:"locale,omitempty"`
	Field        survey.Field    `json:"field,omitempty"`
	LastResultID string          `json:"last_result_id,omitempty"`
	Section      int             `json:"section"`
	Cursor       int             `json:"cursor"`
	Revisiting   bool            `json:"revisiting,omitempty"`
}

// New creates an idle conversation for the user id.
func New(id string) *Conversation {
	return &Conversation{
		ID:    id,
		State: StateIdle,
	}
}

// Active reports whether a survey session is being filled in.
func (c *Conversation) Active() bool {
	switch c.State {
	case StateDemographics, StateQuestions, StateReview:
		return c.Survey != nil
	default:
		return false
	}
}

// StartConsent moves the conversation to the consent question that precedes a new survey.
func (c *Conversation) StartConsent() error {
	if c.Active() {
		return ErrSurveyInProgress
	}

	c.State = StateConsent

	return nil
}

// StartSurvey creates a fresh survey session for the catalog and positions the respondent on the first demographic field.
// It returns an error if the respondent has not been asked for consent.
func (c *Conversation) StartSurvey(cat *catalog.Catalog) error {
	if c.State != StateConsent {
		return ErrNotInConsent
	}

	c.Survey = survey.NewSession(cat.Questions())
	c.enterDemographics()

	return nil
}

// Reset discards the survey session. The locale preference and the last result id are kept.
func (c *Conversation) Reset() {
	c.Survey = nil
	c.State = StateIdle
	c.Field = ""
	c.Section = 0
	c.Cursor = 0
	c.Revisiting = false
}

// AwaitResultID puts the conversation into the result lookup prompt.
func (c *Conversation) AwaitResultID() error {
	if c.Active() {
		return ErrSurveyInProgress
	}

	c.State = StateAwaitingResultID

	return nil
}

// Finish discards the submitted survey and remembers its result id.
func (c *Conversation) Finish(resultID string) {
	c.Reset()
	c.LastResultID = resultID
}

func (c *Conversation) enterDemographics() {
	c.State = StateDemographics
	c.Revisiting = false
	c.Field = survey.Fields[0]
	c.Section = 0
	c.Cursor = 0
}
