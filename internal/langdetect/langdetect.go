// Package langdetect classifies short texts as English or non-English.
//
// Texts are normalized (document identifiers, geographical terms and non-letters are removed),
// each word is checked against the English dictionary and non-English signals,
// and the share of English words is compared with a threshold.
// A statistical detector is consulted only when the share is too low.
package langdetect

import (
	"context"
	"sync"

	"github.com/etkecc/langfilter/internal/dictionary"
	"github.com/etkecc/langfilter/internal/model"
)

var (
	defaultMu         sync.Mutex
	defaultClassifier *Classifier
)

// Default returns the shared classifier built from the embedded dictionary and lingua-go
func Default() *Classifier {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultClassifier == nil {
		defaultClassifier = New(dictionary.Default(), NewLingua(DefaultLanguages...))
	}
	return defaultClassifier
}

// SetDefault replaces the shared classifier
func SetDefault(classifier *Classifier) {
	defaultMu.Lock()
	defaultClassifier = classifier
	defaultMu.Unlock()
}

// DetectNonEnglishText returns true if the text is NOT English, using the shared classifier
func DetectNonEnglishText(text string, opts ...model.Options) bool {
	return Default().DetectNonEnglish(context.Background(), text, opts...)
}

// IsEnglish returns true if the text is English, using the shared classifier
func IsEnglish(text string, opts ...model.Options) bool {
	return !DetectNonEnglishText(text, opts...)
}

// ClearCaches of the shared classifier
func ClearCaches() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultClassifier != nil {
		defaultClassifier.ClearCaches()
	}
}
