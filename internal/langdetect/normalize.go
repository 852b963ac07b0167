package langdetect

import (
	"regexp"
	"strings"
	"unicode"
)

// keptPunctuation is the punctuation that survives character filtering
const keptPunctuation = `.,!?:;'"()-`

type normalizer struct {
	geo []*regexp.Regexp
}

func newNormalizer(geoTerms []string) *normalizer {
	n := &normalizer{geo: make([]*regexp.Regexp, 0, len(geoTerms))}
	for _, term := range geoTerms {
		quoted := regexp.QuoteMeta(term)
		n.geo = append(n.geo, regexp.MustCompile(`(?i)\b`+quoted+`\b|\b`+quoted+`s\b`))
	}
	return n
}

// Normalize strips document identifiers and geographical terms,
// then leaves only letters, whitespace and basic punctuation
func (n *normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = removeDocumentPatterns(text)
	text = n.removeGeoTerms(text)
	return filterChars(text)
}

// removeGeoTerms removes the first occurrence of each geographical term
func (n *normalizer) removeGeoTerms(text string) string {
	for _, pattern := range n.geo {
		loc := pattern.FindStringIndex(text)
		if loc == nil {
			continue
		}
		text = text[:loc[0]] + text[loc[1]:]
	}

	return collapseSpaces(text)
}

// filterChars replaces everything except letters, whitespace and basic punctuation with spaces
func filterChars(text string) string {
	filtered := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsSpace(r) || strings.ContainsRune(keptPunctuation, r) {
			return r
		}
		return ' '
	}, text)

	return collapseSpaces(filtered)
}

// collapseSpaces replaces whitespace runs with a single space and trims the result
func collapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
