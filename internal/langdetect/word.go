package langdetect

import (
	"regexp"
	"strings"

	"github.com/etkecc/langfilter/internal/model"
)

var (
	englishCharset = regexp.MustCompile(`^[a-zA-Z0-9'-]+$`)
	digitsOnly     = regexp.MustCompile(`^\d+$`)
)

// Dictionary of known English words
type Dictionary interface {
	Contains(word string) bool
	GeoTerms() []string
}

// IsEnglishWord decides if a single word is English, first matching rule wins:
// charset, numbers, non-English indicators, dictionary, contraction base
func IsEnglishWord(dict Dictionary, word string, opts model.Options) bool {
	if !englishCharset.MatchString(word) {
		return false
	}

	if opts.AllowNumbers && digitsOnly.MatchString(word) {
		return true
	}

	if HasObviousNonEnglishIndicators(word) {
		return false
	}

	if dict.Contains(word) {
		return true
	}

	if base, _, ok := strings.Cut(word, "'"); ok && dict.Contains(base) {
		return true
	}

	return false
}
