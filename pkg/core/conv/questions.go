package conv

import (
	"strings"

	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/catalog"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/survey"
)

// NextField moves to the demographic field after the current one.
// It returns true when the current field was the last one.
func (c *Conversation) NextField() bool {
	for i, f := range survey.Fields {
		if f != c.Field {
			continue
		}

		if i+1 < len(survey.Fields) {
			c.Field = survey.Fields[i+1]
			return false
		}

		return true
	}

	c.Field = survey.Fields[0]

	return false
}

// EnterSection positions the cursor on the first question of the given section.
// Empty sections are skipped forward; index 0 (or below) returns to the demographic fields
// and indices past the last section move to review.
func (c *Conversation) EnterSection(cat *catalog.Catalog, sectionIndex int) error {
	if c.Survey == nil {
		return ErrNoSurvey
	}

	if sectionIndex <= 0 {
		c.enterDemographics()
		return nil
	}

	for ; sectionIndex < cat.SectionCount(); sectionIndex++ {
		if len(cat.QuestionsForSection(sectionIndex).Questions) > 0 {
			c.State = StateQuestions
			c.Field = ""
			c.Revisiting = false
			c.Section = sectionIndex
			c.Cursor = cat.QuestionStartIndex(sectionIndex)

			return nil
		}
	}

	c.enterReview(cat)

	return nil
}

// JumpTo positions the cursor on an arbitrary question.
func (c *Conversation) JumpTo(cat *catalog.Catalog, flatIndex int) error {
	if c.Survey == nil {
		return ErrNoSurvey
	}

	if flatIndex < 0 || flatIndex >= cat.TotalQuestions() {
		return survey.ErrIndexOutOfRange
	}

	c.State = StateQuestions
	c.Field = ""
	c.Cursor = flatIndex
	c.Section = cat.SectionIndexForQuestion(flatIndex)

	return nil
}

// Advance moves the cursor to the next question, switching to review after the last one.
func (c *Conversation) Advance(cat *catalog.Catalog) error {
	if c.Survey == nil {
		return ErrNoSurvey
	}

	if c.Cursor+1 >= cat.TotalQuestions() {
		c.enterReview(cat)
		return nil
	}

	c.Cursor++
	c.Section = cat.SectionIndexForQuestion(c.Cursor)

	return nil
}

// AdvanceUnanswered moves the cursor to the next unanswered question after it, wrapping around
// to earlier ones. Once every question has an answer it switches to review.
func (c *Conversation) AdvanceUnanswered(cat *catalog.Catalog) error {
	if c.Survey == nil {
		return ErrNoSurvey
	}

	for i := c.Cursor + 1; i < len(c.Survey.Answers); i++ {
		if strings.TrimSpace(c.Survey.Answers[i].Answer) == "" {
			return c.JumpTo(cat, i)
		}
	}

	if idx, ok := c.Survey.FirstUnanswered(); ok {
		return c.JumpTo(cat, idx)
	}

	c.enterReview(cat)

	return nil
}

// NextSection skips the remaining questions of the current section.
func (c *Conversation) NextSection(cat *catalog.Catalog) error {
	return c.EnterSection(cat, c.Section+1)
}

// PrevSection returns to the start of the previous non-empty section, or to the demographic fields.
// From review it returns to the start of the last section.
func (c *Conversation) PrevSection(cat *catalog.Catalog) error {
	if c.Survey == nil {
		return ErrNoSurvey
	}

	target := c.Section - 1
	if c.State == StateReview {
		target = cat.SectionCount() - 1
	}

	for ; target > 0; target-- {
		if len(cat.QuestionsForSection(target).Questions) > 0 {
			return c.EnterSection(cat, target)
		}
	}

	c.enterDemographics()

	return nil
}

func (c *Conversation) enterReview(cat *catalog.Catalog) {
	c.State = StateReview
	c.Field = ""
	c.Revisiting = false
	c.Section = cat.SectionCount() - 1
	c.Cursor = cat.TotalQuestions()
}
