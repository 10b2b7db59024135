package translate

import "strings"

// languageNames maps supported language codes to the display names used
// in the translation prompt.
var languageNames = map[string]string{
	"en": "ENGLISH",
	"fr": "FRENCH",
	"es": "SPANISH",
	"de": "GERMAN",
	"pt": "PORTUGUESE",
	"it": "ITALIAN",
	"ja": "JAPANESE",
	"ko": "KOREAN",
}

// LanguageName returns the prompt display name for a language code.
// Unrecognized codes fall back to ENGLISH.
func LanguageName(code string) string {
	if name, ok := languageNames[strings.ToLower(strings.TrimSpace(code))]; ok {
		return name
	}
	return "ENGLISH"
}
