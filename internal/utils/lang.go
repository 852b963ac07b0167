package utils

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// UnknownLang is used when language cannot be detected
const UnknownLang = "-"

// LanguageCode returns lowercase ISO 639-3 code of the language, e.g. "eng"
func LanguageCode(lang lingua.Language) string {
	if lang == lingua.Unknown {
		return UnknownLang
	}
	return strings.ToLower(lang.IsoCode639_3().String())
}
