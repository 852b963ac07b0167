package langdetect

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/etkecc/go-apm"

	"github.com/etkecc/langfilter/internal/metrics"
	"github.com/etkecc/langfilter/internal/model"
)

const (
	// ShortTextWords is the maximum number of words of a short text
	ShortTextWords = 4
	// ShortTextThreshold replaces the english threshold for short texts
	ShortTextThreshold = 0.6
	// StatisticalConfidence is the minimum confidence of the statistical detector to be trusted
	StatisticalConfidence = 0.9
	// StatisticalRatio is the minimum English ratio required to accept the statistical English verdict
	StatisticalRatio = 0.7
	// statisticalTop is the number of top guesses scanned for English
	statisticalTop = 5
)

// ErrNoDetector is returned when the classifier has no statistical detector
var ErrNoDetector = errors.New("statistical detector is not configured")

// wordPunctuation is removed from every word before lookup
const wordPunctuation = "'‘’-\"“”`~!@#$%^&*()+={}[]|\\:;<>?,./"

// Result of the classification with intermediate values
type Result struct {
	NonEnglish   bool    // true if the text is not English
	Ratio        float64 // share of English words
	Threshold    float64 // effective threshold
	Words        int     // words taken into account
	EnglishWords int     // words classified as English
	Statistical  *Guess  // statistical detector guess, nil if it was not consulted or failed
	Normalized   string  // text after normalization
}

// Classifier decides if a text is English, safe for concurrent use
type Classifier struct {
	dict        Dictionary
	detector    Detector
	normalizer  *normalizer
	statistical *fifoCache[Guess]
	words       *fifoCache[bool]
}

// Option of the classifier
type Option func(*classifierOptions)

type classifierOptions struct {
	statisticalSize int
	wordsSize       int
}

// WithCacheSizes sets capacities of the statistical results cache and the word verdicts cache
func WithCacheSizes(statistical, words int) Option {
	return func(o *classifierOptions) {
		if statistical > 0 {
			o.statisticalSize = statistical
		}
		if words > 0 {
			o.wordsSize = words
		}
	}
}

// New creates a classifier
func New(dict Dictionary, detector Detector, options ...Option) *Classifier {
	opts := &classifierOptions{
		statisticalSize: model.DefaultStatisticalCacheSize,
		wordsSize:       model.DefaultWordCacheSize,
	}
	for _, option := range options {
		option(opts)
	}

	return &Classifier{
		dict:        dict,
		detector:    detector,
		normalizer:  newNormalizer(dict.GeoTerms()),
		statistical: newFIFOCache[Guess](cacheStatistical, opts.statisticalSize),
		words:       newFIFOCache[bool](cacheWords, opts.wordsSize),
	}
}

// DetectNonEnglish returns true if the text is NOT English.
// Optional options replace the defaults (only the first one is used)
func (c *Classifier) DetectNonEnglish(ctx context.Context, text string, opts ...model.Options) bool {
	return c.Explain(ctx, text, opts...).NonEnglish
}

// IsEnglish returns true if the text is English
func (c *Classifier) IsEnglish(ctx context.Context, text string, opts ...model.Options) bool {
	return !c.DetectNonEnglish(ctx, text, opts...)
}

// Explain classifies the text and returns intermediate values
func (c *Classifier) Explain(ctx context.Context, text string, opts ...model.Options) *Result {
	options := model.DefaultOptions()
	if len(opts) > 0 {
		options = opts[0]
	}
	result := &Result{Ratio: 1.0, Threshold: options.EnglishThreshold}

	if strings.TrimSpace(text) == "" {
		return result
	}

	result.Normalized = c.normalizer.Normalize(text)
	if result.Normalized == "" {
		return result
	}

	words := strings.Split(strings.ToLower(result.Normalized), " ")
	if len(words) <= ShortTextWords {
		result.Threshold = ShortTextThreshold
	}

	for _, word := range words {
		word = strings.TrimSpace(stripPunctuation(word))
		if utf8.RuneCountInString(word) < options.MinWordLength {
			continue
		}

		result.Words++
		if c.isEnglishWordCached(word, options) {
			result.EnglishWords++
		}
	}
	if result.Words > 0 {
		result.Ratio = float64(result.EnglishWords) / float64(result.Words)
	}

	if result.Ratio >= result.Threshold {
		return result
	}

	metrics.StatisticalConsultations.Inc()
	guess, err := c.statisticalAnalysis(text)
	if err != nil {
		metrics.StatisticalFailures.Inc()
		apm.Log(ctx).Warn().Err(err).Float64("ratio", result.Ratio).Msg("statistical detector failed, deciding by ratio")
		result.NonEnglish = true
		return result
	}
	result.Statistical = &guess
	apm.Log(ctx).
		Debug().
		Float64("ratio", result.Ratio).
		Str("language", guess.Language).
		Float64("confidence", guess.Confidence).
		Msg("statistical detector consulted")

	if guess.Language == EnglishCode && guess.Confidence >= StatisticalConfidence && result.Ratio >= StatisticalRatio {
		return result
	}

	// both confident non-English and ambiguous guesses are non-English, as the ratio is already too low
	result.NonEnglish = true
	return result
}

// ClearCaches removes all cached word verdicts and statistical results
func (c *Classifier) ClearCaches() {
	c.statistical.Purge()
	c.words.Purge()
	metrics.CacheResets.Inc()
}

func (c *Classifier) isEnglishWordCached(word string, opts model.Options) bool {
	key := fmt.Sprintf("%s_%t_%t", word, opts.AllowNumbers, opts.AllowAbbreviations)
	if verdict, ok := c.words.Get(key); ok {
		return verdict
	}

	verdict := IsEnglishWord(c.dict, word, opts)
	c.words.Add(key, verdict)
	return verdict
}

// statisticalAnalysis returns English guess with high confidence from the top guesses, or the top guess otherwise.
// Results are cached by the raw text, failures are not cached
func (c *Classifier) statisticalAnalysis(text string) (Guess, error) {
	if guess, ok := c.statistical.Get(text); ok {
		return guess, nil
	}

	guesses, err := c.rank(text)
	if err != nil {
		return Guess{}, err
	}
	if len(guesses) == 0 {
		return Guess{}, ErrEmptyRanking
	}

	guess := guesses[0]
	top := guesses[:min(statisticalTop, len(guesses))]
	for _, candidate := range top {
		if candidate.Language == EnglishCode && candidate.Confidence >= StatisticalConfidence {
			guess = candidate
			break
		}
	}

	c.statistical.Add(text, guess)
	return guess, nil
}

// rank calls the detector, converting panics to errors
func (c *Classifier) rank(text string) (guesses []Guess, err error) {
	if c.detector == nil {
		return nil, ErrNoDetector
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("statistical detector panic: %v", r)
		}
	}()

	return c.detector.Rank(text)
}

func stripPunctuation(word string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(wordPunctuation, r) {
			return -1
		}
		return r
	}, word)
}
