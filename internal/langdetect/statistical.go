package langdetect

import (
	"cmp"
	"errors"
	"strings"

	"github.com/pemistahl/lingua-go"
	"golang.org/x/exp/slices"
	"mvdan.cc/xurls/v2"

	"github.com/etkecc/langfilter/internal/utils"
)

// EnglishCode is ISO 639-3 code of English, as returned by detectors
const EnglishCode = "eng"

// AllLanguages to load all language models at once
const AllLanguages = "ALL"

// DefaultLanguages are ISO 639-1 codes of the languages covered by the word heuristics
var DefaultLanguages = []string{"EN", "DE", "FR", "ES", "IT", "NL", "PT", "TR", "DA", "NB", "NN", "SV", "PL"}

// ErrEmptyRanking is returned when a detector has no guesses for the text
var ErrEmptyRanking = errors.New("statistical detector returned no languages")

// Guess of the statistical detector
type Guess struct {
	Language   string  `json:"language"` // ISO 639-3 code, lowercase
	Confidence float64 `json:"confidence"`
}

// Detector ranks languages of the text, most confident first
type Detector interface {
	Rank(text string) ([]Guess, error)
}

// DetectorFunc is an adapter to use ordinary functions as a Detector
type DetectorFunc func(text string) ([]Guess, error)

// Rank calls f(text)
func (f DetectorFunc) Rank(text string) ([]Guess, error) {
	return f(text)
}

var urldetector = xurls.Relaxed()

// Lingua is a Detector backed by lingua-go
type Lingua struct {
	detector lingua.LanguageDetector
}

// NewLingua creates lingua-based detector for the languages (ISO 639-1 codes or ALL), English is always included
func NewLingua(inputLangs ...string) *Lingua {
	builder := lingua.NewLanguageDetectorBuilder()
	langs := make(map[string]bool, len(inputLangs)+1)
	for _, inputLang := range inputLangs {
		langs[strings.ToUpper(strings.TrimSpace(inputLang))] = true
	}
	if langs[AllLanguages] {
		return &Lingua{detector: builder.FromAllLanguages().Build()}
	}
	langs["EN"] = true

	enabled := make([]lingua.Language, 0, len(langs))
	for _, lang := range lingua.AllLanguages() {
		if langs[lang.IsoCode639_1().String()] {
			enabled = append(enabled, lang)
		}
	}
	// lingua requires at least two languages
	if len(enabled) < 2 {
		return NewLingua(DefaultLanguages...)
	}

	return &Lingua{detector: builder.FromLanguages(enabled...).Build()}
}

// Rank languages of the text, URLs are ignored.
// Confidences are relative to the most likely language, so the top guess always scores 1.0
func (l *Lingua) Rank(text string) ([]Guess, error) {
	text = urldetector.ReplaceAllString(text, "")
	cvs := l.detector.ComputeLanguageConfidenceValues(text)
	if len(cvs) == 0 {
		return nil, ErrEmptyRanking
	}

	guesses := make([]Guess, 0, len(cvs))
	for _, cv := range cvs {
		guesses = append(guesses, Guess{
			Language:   utils.LanguageCode(cv.Language()),
			Confidence: cv.Value(),
		})
	}
	slices.SortStableFunc(guesses, func(a, b Guess) int {
		return cmp.Compare(b.Confidence, a.Confidence)
	})

	top := guesses[0].Confidence
	if top <= 0 {
		return nil, ErrEmptyRanking
	}
	for i := range guesses {
		guesses[i].Confidence /= top
	}

	return guesses, nil
}
