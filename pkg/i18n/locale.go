package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported interface language.
type Locale string

const (
	English Locale = "en"
	Russian Locale = "ru"
)

// Supported lists the available locales. The first entry is the default.
var Supported = []Locale{English, Russian}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Russian})

// ParseLocale accepts an exact locale code such as "en" or "RU".
func ParseLocale(s string) (Locale, bool) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))

	for _, sl := range Supported {
		if sl == l {
			return l, true
		}
	}

	return "", false
}

// Match picks the closest supported locale for a BCP 47 language code, e.g. the one reported by a chat client.
func Match(languageCode string) Locale {
	if languageCode == "" {
		return English
	}

	_, idx := language.MatchStrings(matcher, languageCode)
	if idx < 0 || idx >= len(Supported) {
		return English
	}

	return Supported[idx]
}
