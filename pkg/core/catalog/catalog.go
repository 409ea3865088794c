package catalog

// Section is a named subdivision of the questionnaire.
// A section without questions hosts the demographic fields instead.
type Section struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Questions   []string `json:"questions"`
}

// SectionQuestions is the slice of the flat question list owned by one section.
type SectionQuestions struct {
	Questions  []string
	StartIndex int
}

// Catalog is an immutable, ordered set of sections with precomputed flat question offsets.
type Catalog struct {
	sections  []Section
	questions []string
	// offsets[i] is the number of questions declared before section i; offsets[len(sections)] is the total.
	offsets []int
}

// New builds a Catalog from the given sections. The sections slice is copied.
func New(sections []Section) *Catalog {
	c := &Catalog{
		sections: make([]Section, len(sections)),
		offsets:  make([]int, len(sections)+1),
	}

	for i, s := range sections {
		s.Questions = append([]string(nil), s.Questions...)
		c.sections[i] = s
		c.offsets[i+1] = c.offsets[i] + len(s.Questions)
		c.questions = append(c.questions, s.Questions...)
	}

	return c
}

// Sections returns a copy of the catalog sections in declaration order.
func (c *Catalog) Sections() []Section {
	return append([]Section(nil), c.sections...)
}

// Section returns the section at the given index.
func (c *Catalog) Section(sectionIndex int) (Section, bool) {
	if sectionIndex < 0 || sectionIndex >= len(c.sections) {
		return Section{}, false
	}

	return c.sections[sectionIndex], true
}

// SectionCount returns the number of sections, the demographic one included.
func (c *Catalog) SectionCount() int {
	return len(c.sections)
}

// TotalQuestions returns the size of the flat question list.
func (c *Catalog) TotalQuestions() int {
	return len(c.questions)
}

// Questions returns a copy of the flat question list.
func (c *Catalog) Questions() []string {
	return append([]string(nil), c.questions...)
}

// Question returns the question text at the given flat index.
func (c *Catalog) Question(flatIndex int) (string, bool) {
	if flatIndex < 0 || flatIndex >= len(c.questions) {
		return "", false
	}

	return c.questions[flatIndex], true
}

// QuestionStartIndex returns the flat index at which the questions of the given section start.
// It returns 0 for non-positive indices and the total question count for indices past the last section.
func (c *Catalog) QuestionStartIndex(sectionIndex int) int {
	switch {
	case sectionIndex <= 0:
		return 0
	case sectionIndex >= len(c.sections):
		return c.offsets[len(c.sections)]
	default:
		return c.offsets[sectionIndex]
	}
}

// QuestionsForSection returns the questions of the given section together with their flat start index.
// The demographic section and out-of-range indices yield no questions.
func (c *Catalog) QuestionsForSection(sectionIndex int) SectionQuestions {
	res := SectionQuestions{StartIndex: c.QuestionStartIndex(sectionIndex)}

	if s, ok := c.Section(sectionIndex); ok {
		res.Questions = s.Questions
	}

	return res
}

// SectionIndexForQuestion returns the index of the section owning the given flat question index.
// Sections without questions are skipped. Indices past the last question resolve to the last section.
func (c *Catalog) SectionIndexForQuestion(flatIndex int) int {
	for i, s := range c.sections {
		if len(s.Questions) == 0 {
			continue
		}

		if flatIndex < c.offsets[i+1] {
			return i
		}
	}

	return len(c.sections) - 1
}

// IsFirstQuestionInSection reports whether the flat index opens a non-empty section.
func (c *Catalog) IsFirstQuestionInSection(flatIndex int) bool {
	for i, s := range c.sections {
		if len(s.Questions) > 0 && c.offsets[i] == flatIndex {
			return true
		}
	}

	return false
}

// SectionForQuestion returns the section owning the given flat question index.
func (c *Catalog) SectionForQuestion(flatIndex int) Section {
	s, _ := c.Section(c.SectionIndexForQuestion(flatIndex))

	return s
}
