package i18n

import (
	"fmt"
	"strconv"
)

// Table holds the interface strings and question texts of one locale.
type Table struct {
	strings      map[string]string
	titles       map[string]string
	descriptions map[string]string
	fallback     *Table
	locale       Locale
	questions    []string
}

var tables = map[Locale]*Table{}

func init() {
	titles, descriptions := enSections()

	en := &Table{
		locale:       English,
		strings:      enStrings,
		titles:       titles,
		descriptions: descriptions,
		questions:    enQuestions(),
	}

	tables[English] = en
	tables[Russian] = &Table{
		locale:       Russian,
		strings:      ruStrings,
		titles:       ruSectionTitles,
		descriptions: ruSectionDescriptions,
		questions:    ruQuestions,
		fallback:     en,
	}
}

// For returns the table of the given locale, falling back to English for unknown locales.
func For(l Locale) *Table {
	if t, ok := tables[l]; ok {
		return t
	}

	return tables[English]
}

// Locale returns the locale the table was built for.
func (t *Table) Locale() Locale {
	return t.locale
}

// T looks up an interface string. Missing keys fall back to English and then to the key itself.
func (t *Table) T(key string) string {
	if s, ok := t.strings[key]; ok {
		return s
	}

	if t.fallback != nil {
		return t.fallback.T(key)
	}

	return key
}

// Tf formats the looked up string with args.
func (t *Table) Tf(key string, args ...any) string {
	return fmt.Sprintf(t.T(key), args...)
}

// Question returns the display text of the question at flatIndex.
func (t *Table) Question(flatIndex int) string {
	if flatIndex >= 0 && flatIndex < len(t.questions) {
		return t.questions[flatIndex]
	}

	if t.fallback != nil {
		return t.fallback.Question(flatIndex)
	}

	return ""
}

// SectionTitle returns the localized title of a section, or the id when none is known.
func (t *Table) SectionTitle(id string) string {
	if s, ok := t.titles[id]; ok {
		return s
	}

	if t.fallback != nil {
		return t.fallback.SectionTitle(id)
	}

	return id
}

// SectionDescription returns the localized introduction shown when a section starts.
func (t *Table) SectionDescription(id string) string {
	if s, ok := t.descriptions[id]; ok {
		return s
	}

	if t.fallback != nil {
		return t.fallback.SectionDescription(id)
	}

	return ""
}

// LikertLabel returns the localized label of a scale score.
func (t *Table) LikertLabel(score int) string {
	return t.T("likert." + strconv.Itoa(score))
}
