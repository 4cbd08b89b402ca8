package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is the language a meaning is requested in.
type Language string

// Supported languages. English is the default.
const (
	LanguageEnglish Language = "english"
	LanguageHindi   Language = "hindi"
	LanguageMarathi Language = "marathi"
)

// Languages lists the supported languages in display order.
var Languages = []Language{LanguageEnglish, LanguageHindi, LanguageMarathi}

// ParseLanguage converts user input into a Language. The empty string selects
// English; matching is case-insensitive.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case "", LanguageEnglish:
		return LanguageEnglish, nil
	case LanguageHindi:
		return LanguageHindi, nil
	case LanguageMarathi:
		return LanguageMarathi, nil
	default:
		return "", NewValidationError("language", fmt.Sprintf("%q is not supported", s), ErrUnsupportedLanguage)
	}
}

// Directive is the instruction appended to the prompt for non-English
// languages. English has none.
func (l Language) Directive() string {
	switch l {
	case LanguageHindi:
		return "(respond in Hindi)"
	case LanguageMarathi:
		return "(respond in Marathi)"
	default:
		return ""
	}
}

// Tag returns the BCP 47 tag of the language.
func (l Language) Tag() language.Tag {
	switch l {
	case LanguageHindi:
		return language.Hindi
	case LanguageMarathi:
		return language.Marathi
	default:
		return language.English
	}
}

// IsValid reports whether l is one of the supported languages.
func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageHindi, LanguageMarathi:
		return true
	default:
		return false
	}
}
