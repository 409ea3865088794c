package catalog

// LikertOption is one point of the answer scale. Label is the value sent to the scoring backend.
type LikertOption struct {
	Label string
	Score int
}

// LikertOptions is the seven-point agreement scale used by every question.
var LikertOptions = []LikertOption{
	{Score: 1, Label: "Strongly Disagree"},
	{Score: 2, Label: "Disagree"},
	{Score: 3, Label: "Somewhat Disagree"},
	{Score: 4, Label: "Neither Agree nor Disagree"},
	{Score: 5, Label: "Somewhat Agree"},
	{Score: 6, Label: "Agree"},
	{Score: 7, Label: "Strongly Agree"},
}

// Gender display labels accepted by the demographic section.
const (
	GenderMale           = "Male"
	GenderFemale         = "Female"
	GenderPreferNotToSay = "Prefer not to say"
)

// GenderOptions lists the gender labels in the order they are offered.
var GenderOptions = []string{GenderMale, GenderFemale, GenderPreferNotToSay}

// LikertLabel returns the canonical label for a score on the scale.
func LikertLabel(score int) (string, bool) {
	for _, o := range LikertOptions {
		if o.Score == score {
			return o.Label, true
		}
	}

	return "", false
}

// IsLikertLabel reports whether label is one of the canonical scale labels.
func IsLikertLabel(label string) bool {
	for _, o := range LikertOptions {
		if o.Label == label {
			return true
		}
	}

	return false
}

// IsGenderOption reports whether label is one of the accepted gender display labels.
func IsGenderOption(label string) bool {
	for _, g := range GenderOptions {
		if g == label {
			return true
		}
	}

	return false
}
