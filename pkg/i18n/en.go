package i18n

import "github.com/ksysoev/feedsurvey-tgbot/pkg/core/catalog"

// English display texts are the catalog texts themselves, which are also what the backend receives.
func enQuestions() []string {
	return catalog.Default().Questions()
}

func enSections() (titles, descriptions map[string]string) {
	titles = make(map[string]string)
	descriptions = make(map[string]string)

	for _, s := range catalog.Default().Sections() {
		titles[s.ID] = s.Title
		descriptions[s.ID] = s.Description
	}

	return titles, descriptions
}

var enStrings = map[string]string{
	"landing.title":    "Adolescents, Young Adults, and the Algorithm",
	"landing.subtitle": "Understanding How Personalization Shapes Digital Life",
	"landing.body1":    "This survey explores how algorithm-driven recommendation systems influence teenagers' and young adults' satisfaction, focus, emotions, and online social interactions.",
	"landing.body2":    "After completing the survey, you will receive personalized results across the following dimensions:",
	"landing.dimensions": "• Life Satisfaction\n• Digital Self-Regulation\n• Online Privacy & Control\n• Emotional Resilience\n" +
		"• Problematic Internet Use (PIU) / Anxiety\n• Community Engagement\n• Social Pressure\n• Recommendation Satisfaction",
	"landing.note":         "Your responses are anonymous and help research make technology more mindful and human-centered.",
	"landing.takeTest":     "Take the test",
	"landing.obtainResult": "Obtain result",

	"help.text": "Available commands:\n\n" +
		"/start - Show welcome message\n" +
		"/survey - Take the test\n" +
		"/result <id> - View results for a survey ID\n" +
		"/lang <en|ru> - Change language\n" +
		"/cancel - Stop the current survey\n" +
		"/help - Display this help message",

	"consent.question": "Before we start: do you agree that your anonymous answers are collected and processed for research?",
	"consent.agree":    "I agree",
	"consent.decline":  "I decline",
	"declined.text":    "You have not agreed to data collection. You can come back any time with /survey.",

	"survey.sectionInstruction": "Based on your experience, please indicate your level of agreement with each statement.",
	"survey.agePrompt":          "Age (e.g. 19)",
	"survey.genderPrompt":       "Gender",
	"survey.screenTimePrompt":   "Average screen time in hours per day (only number, e.g. 3 or 4.5)",
	"survey.male":               "Male",
	"survey.female":             "Female",
	"survey.preferNotToSay":     "Prefer not to say",

	"survey.errors.age_required":           "Age is required.",
	"survey.errors.age_not_number":         "Please enter a number only (no letters or symbols).",
	"survey.errors.age_out_of_range":       "Please enter a value between 18 and 22.",
	"survey.errors.gender_required":        "Please select your gender.",
	"survey.errors.screen_time_required":   "Average screen time is required.",
	"survey.errors.screen_time_not_number": "Please enter a number only (e.g. 3 or 4.5). No letters or other symbols.",
	"survey.errors.screen_time_negative":   "Please enter 0 or higher.",

	"survey.questionCounter": "Question %d of %d",
	"survey.currentAnswer":   "Current answer: %s",
	"survey.chooseOption":    "Please choose one of the options below.",
	"survey.prevSection":     "⬅ Previous section",
	"survey.nextSection":     "Next section ➡",
	"survey.submit":          "Submit",
	"survey.review":          "You have reached the end of the survey. Press Submit to send your answers.",
	"survey.answerAll":       "Please answer all questions before submitting.",
	"survey.submitted":       "Thank you! Your answers have been submitted.\n\nYour survey ID: %s\n\nKeep it to view your results later with /result %s",
	"survey.submitFailed":    "Survey submission failed: %s\n\nYou can try again.",
	"survey.notStarted":      "There is no survey in progress. Use /survey to take the test.",
	"survey.cancelled":       "The survey has been stopped. You can start over with /survey.",

	"result.title":     "📊 Your Survey Results",
	"result.id":        "ID: %s",
	"result.loadError": "Failed to load results. Please try again.",

	"obtain.description":     "Enter the survey ID you received after completing the test.",
	"obtain.errorIdRequired": "Please enter your survey ID.",
	"obtain.errorNotFound":   "No results found for this ID. Please check and try again.",

	"lang.prompt":  "Choose your language",
	"lang.changed": "Language set to English.",
	"lang.unknown": "Unsupported language. Available: en, ru.",

	"likert.1": "Strongly Disagree",
	"likert.2": "Disagree",
	"likert.3": "Somewhat Disagree",
	"likert.4": "Neither Agree nor Disagree",
	"likert.5": "Somewhat Agree",
	"likert.6": "Agree",
	"likert.7": "Strongly Agree",
}
