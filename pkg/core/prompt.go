package core

import (
	"strings"

	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/catalog"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/conv"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/survey"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/i18n"
)

var genderKeys = map[string]string{
	catalog.GenderMale:           "survey.male",
	catalog.GenderFemale:         "survey.female",
	catalog.GenderPreferNotToSay: "survey.preferNotToSay",
}

var fieldPromptKeys = map[survey.Field]string{
	survey.FieldAge:        "survey.agePrompt",
	survey.FieldGender:     "survey.genderPrompt",
	survey.FieldScreenTime: "survey.screenTimePrompt",
}

// prompt renders what the respondent should be asked next in the current conversation state.
func (s *Service) prompt(c *conv.Conversation, tbl *i18n.Table) *Response {
	switch c.State {
	case conv.StateConsent:
		return &Response{
			Message: tbl.T("consent.question"),
			Answers: []string{tbl.T("consent.agree"), tbl.T("consent.decline")},
		}
	case conv.StateDemographics:
		return s.demographicPrompt(c, tbl)
	case conv.StateQuestions:
		return s.questionPrompt(c, tbl)
	case conv.StateReview:
		return &Response{
			Message: tbl.T("survey.review"),
			Answers: reviewAnswers(tbl),
		}
	case conv.StateAwaitingResultID:
		return &Response{Message: tbl.T("obtain.description")}
	default:
		return &Response{Message: tbl.T("survey.notStarted")}
	}
}

func (s *Service) demographicPrompt(c *conv.Conversation, tbl *i18n.Table) *Response {
	var sb strings.Builder

	if c.Field == survey.Fields[0] {
		if sec, ok := s.catalog.Section(0); ok {
			writeSectionHeader(&sb, tbl, sec.ID, "")
		}
	}

	sb.WriteString(tbl.T(fieldPromptKeys[c.Field]))

	resp := &Response{Message: sb.String()}

	if c.Field == survey.FieldGender {
		for _, g := range catalog.GenderOptions {
			resp.Answers = append(resp.Answers, tbl.T(genderKeys[g]))
		}
	}

	return resp
}

func (s *Service) questionPrompt(c *conv.Conversation, tbl *i18n.Table) *Response {
	var sb strings.Builder

	if s.catalog.IsFirstQuestionInSection(c.Cursor) {
		sec := s.catalog.SectionForQuestion(c.Cursor)
		writeSectionHeader(&sb, tbl, sec.ID, tbl.T("survey.sectionInstruction"))
	}

	sb.WriteString(tbl.Tf("survey.questionCounter", c.Cursor+1, s.catalog.TotalQuestions()))
	sb.WriteString("\n\n")
	sb.WriteString(tbl.Question(c.Cursor))

	if current := c.Survey.Answer(c.Cursor); current != "" {
		sb.WriteString("\n\n")
		sb.WriteString(tbl.Tf("survey.currentAnswer", localizedLikert(tbl, current)))
	}

	answers := make([]string, 0, len(catalog.LikertOptions)+2)
	for _, o := range catalog.LikertOptions {
		answers = append(answers, tbl.LikertLabel(o.Score))
	}

	answers = append(answers, tbl.T("survey.prevSection"), tbl.T("survey.nextSection"))

	return &Response{
		Message: sb.String(),
		Answers: answers,
	}
}

func writeSectionHeader(sb *strings.Builder, tbl *i18n.Table, sectionID, instruction string) {
	sb.WriteString("📋 ")
	sb.WriteString(tbl.SectionTitle(sectionID))
	sb.WriteString("\n\n")

	if d := tbl.SectionDescription(sectionID); d != "" {
		sb.WriteString(d)
		sb.WriteString("\n\n")
	}

	if instruction != "" {
		sb.WriteString(instruction)
		sb.WriteString("\n\n")
	}
}

func reviewAnswers(tbl *i18n.Table) []string {
	return []string{tbl.T("survey.submit"), tbl.T("survey.prevSection")}
}

// likertFromText maps a localized or canonical scale label back to the canonical label sent to the backend.
func likertFromText(tbl *i18n.Table, text string) (string, bool) {
	for _, o := range catalog.LikertOptions {
		if text == o.Label || text == tbl.LikertLabel(o.Score) {
			return o.Label, true
		}
	}

	return "", false
}

func localizedLikert(tbl *i18n.Table, label string) string {
	for _, o := range catalog.LikertOptions {
		if o.Label == label {
			return tbl.LikertLabel(o.Score)
		}
	}

	return label
}

// genderFromText maps a localized gender button to its display label. Unknown text is returned unchanged.
func genderFromText(tbl *i18n.Table, text string) string {
	for _, g := range catalog.GenderOptions {
		if text == g || text == tbl.T(genderKeys[g]) {
			return g
		}
	}

	return text
}
