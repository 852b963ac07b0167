package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/etkecc/go-kit"
)

// Truncate string to length runes, adding ellipsis if it was cut
func Truncate(s string, length int) string {
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	return string([]rune(s)[:max(length, 0)]) + "..."
}

// ParseLanguages converts list of comma-separated ISO 639-1 codes into uppercase codes without duplicates
func ParseLanguages(values []string) []string {
	langs := []string{}
	for _, value := range values {
		for _, lang := range strings.Split(value, ",") {
			lang = strings.ToUpper(strings.TrimSpace(lang))
			if lang != "" {
				langs = append(langs, lang)
			}
		}
	}

	return kit.Uniq(langs)
}
