package services

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/etkecc/langfilter/internal/dictionary"
	"github.com/etkecc/langfilter/internal/langdetect"
	"github.com/etkecc/langfilter/internal/model"
)

type countingClassifier struct {
	*langdetect.Classifier
	resets atomic.Int32
}

func (c *countingClassifier) ClearCaches() {
	c.resets.Add(1)
	c.Classifier.ClearCaches()
}

func newTestService(cfg *model.Config) (*Classification, *countingClassifier) {
	detector := langdetect.DetectorFunc(func(_ string) ([]langdetect.Guess, error) {
		return []langdetect.Guess{{Language: "deu", Confidence: 0.95}}, nil
	})
	lang := &countingClassifier{Classifier: langdetect.New(dictionary.New(), detector)}
	return NewClassification(NewConfigFrom(cfg), lang), lang
}

func ptr[T any](v T) *T {
	return &v
}

func TestClassification_Classify(t *testing.T) {
	svc, _ := newTestService(&model.Config{})
	ctx := context.Background()

	tests := []struct {
		name       string
		text       string
		html       bool
		nonEnglish bool
	}{
		{"empty", "", false, false},
		{"english", "The quick brown fox jumps over the lazy dog", false, false},
		{"german", "Das ist ein deutscher Satz und er ist lang genug", false, true},
		{"english html", "<p>The <b>quick</b> brown fox jumps over the <i>lazy</i> dog</p>", true, false},
		{"german html", "<div>Das ist ein deutscher Satz und er ist lang genug</div>", true, true},
		{"html entities", "<p>Coffee &amp; tea are good with bread and milk</p>", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Classify(ctx, tt.text, tt.html, nil)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if result.NonEnglish != tt.nonEnglish || result.English == result.NonEnglish {
				t.Errorf("Classify() = %+v, want non_english=%v", result, tt.nonEnglish)
			}
		})
	}
}

func TestClassification_Normalized(t *testing.T) {
	svc, _ := newTestService(&model.Config{})
	ctx := context.Background()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", ""},
		{"plain", "hello world", "hello world"},
		{"geo and document", "Trip to Sydney, AEM01 report!", "Trip to , report!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Classify(ctx, tt.text, false, nil)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if result.Normalized != tt.want {
				t.Errorf("Normalized = %q, want %q", result.Normalized, tt.want)
			}
		})
	}
}

func TestClassification_Statistical(t *testing.T) {
	svc, _ := newTestService(&model.Config{})
	result, err := svc.Classify(context.Background(), "Das ist ein deutscher Satz und er ist lang genug", false, nil)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if result.Statistical == nil || result.Statistical.Language != "deu" || result.Statistical.Confidence != 0.95 {
		t.Errorf("Statistical = %+v, want deu/0.95", result.Statistical)
	}
}

func TestClassification_Options(t *testing.T) {
	cfg := &model.Config{Classifier: model.ConfigClassifier{EnglishThreshold: ptr(0.5), AllowNumbers: ptr(false)}}
	svc, _ := newTestService(cfg)

	opts, err := svc.Options(nil)
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	if opts.EnglishThreshold != 0.5 || opts.AllowNumbers || opts.MinWordLength != model.DefaultMinWordLength {
		t.Errorf("Options() = %+v", opts)
	}

	opts, err = svc.Options(&model.OptionsOverride{EnglishThreshold: ptr(0.9), MinWordLength: ptr(3)})
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	if opts.EnglishThreshold != 0.9 || opts.MinWordLength != 3 || opts.AllowNumbers {
		t.Errorf("Options() = %+v", opts)
	}

	_, err = svc.Classify(context.Background(), "hello", false, &model.OptionsOverride{EnglishThreshold: ptr(2.0)})
	var merr model.Error
	if !errors.As(err, &merr) || merr.Code != model.ErrCodeBadOptions {
		t.Errorf("Classify() error = %v, want %s", err, model.ErrCodeBadOptions)
	}
}

func TestClassification_ClassifyBatch(t *testing.T) {
	cfg := &model.Config{Workers: model.ConfigWorkers{Batch: 4}}
	svc, _ := newTestService(cfg)
	texts := []string{
		"The quick brown fox jumps over the lazy dog",
		"Das ist ein deutscher Satz und er ist lang genug",
		"",
		"AEM01-WI-DSU06-SD01 is a valid reference",
		"Das ist ein deutscher Satz und er ist lang genug",
		"Hello, how are you today?",
	}
	want := []bool{false, true, false, false, true, false}

	results, err := svc.ClassifyBatch(context.Background(), texts, false, nil)
	if err != nil {
		t.Fatalf("ClassifyBatch() error = %v", err)
	}
	if len(results) != len(texts) {
		t.Fatalf("ClassifyBatch() returned %d results, want %d", len(results), len(texts))
	}
	for i, result := range results {
		if result.NonEnglish != want[i] {
			t.Errorf("results[%d].NonEnglish = %v, want %v", i, result.NonEnglish, want[i])
		}
	}
}

func TestClassification_ClassifyBatch_Limits(t *testing.T) {
	svc, _ := newTestService(&model.Config{Batch: model.ConfigBatch{Max: 2}})
	ctx := context.Background()

	results, err := svc.ClassifyBatch(ctx, nil, false, nil)
	if err != nil || len(results) != 0 {
		t.Errorf("ClassifyBatch(nil) = %v, %v", results, err)
	}

	_, err = svc.ClassifyBatch(ctx, strings.Fields("one two three"), false, nil)
	var merr model.Error
	if !errors.As(err, &merr) || merr.Code != model.ErrCodeTooLarge {
		t.Errorf("ClassifyBatch() error = %v, want %s", err, model.ErrCodeTooLarge)
	}

	_, err = svc.ClassifyBatch(ctx, []string{"one"}, false, &model.OptionsOverride{MinWordLength: ptr(-1)})
	if !errors.As(err, &merr) || merr.Code != model.ErrCodeBadOptions {
		t.Errorf("ClassifyBatch() error = %v, want %s", err, model.ErrCodeBadOptions)
	}
}

func TestClassification_ResetCaches(t *testing.T) {
	svc, lang := newTestService(&model.Config{})
	svc.ResetCaches(context.Background())
	if lang.resets.Load() != 1 {
		t.Errorf("resets = %d, want 1", lang.resets.Load())
	}
}

func TestClassification_MatchesDocumentPattern(t *testing.T) {
	svc, _ := newTestService(&model.Config{})
	if !svc.MatchesDocumentPattern("see AURG340-SF06") {
		t.Error("expected match")
	}
	if svc.MatchesDocumentPattern("nothing here") {
		t.Error("expected no match")
	}
}
