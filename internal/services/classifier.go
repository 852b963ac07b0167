package services

import (
	"context"
	"fmt"
	"html"

	"github.com/etkecc/go-apm"
	"github.com/etkecc/go-kit/workpool"
	"github.com/microcosm-cc/bluemonday"

	"github.com/etkecc/langfilter/internal/langdetect"
	"github.com/etkecc/langfilter/internal/metrics"
	"github.com/etkecc/langfilter/internal/model"
	"github.com/etkecc/langfilter/internal/model/mcontext"
	"github.com/etkecc/langfilter/internal/utils"
)

const (
	apiSingle = "single"
	apiBatch  = "batch"
)

// ConfigService provides the current config
type ConfigService interface {
	Get() *model.Config
}

// LangClassifier decides if texts are English
type LangClassifier interface {
	Explain(ctx context.Context, text string, opts ...model.Options) *langdetect.Result
	ClearCaches()
}

// Classification service
type Classification struct {
	cfg    ConfigService
	lang   LangClassifier
	policy *bluemonday.Policy
}

// NewClassification creates new classification service
func NewClassification(cfg ConfigService, lang LangClassifier) *Classification {
	return &Classification{
		cfg:    cfg,
		lang:   lang,
		policy: bluemonday.StrictPolicy(),
	}
}

// Options returns classification options from config with the request override applied
func (c *Classification) Options(override *model.OptionsOverride) (model.Options, error) {
	if err := override.Validate(); err != nil {
		return model.Options{}, err
	}
	return override.Apply(c.cfg.Get().Classifier.Options()), nil
}

// Classify a single text
func (c *Classification) Classify(ctx context.Context, text string, isHTML bool, override *model.OptionsOverride) (*model.Classification, error) {
	opts, err := c.Options(override)
	if err != nil {
		return nil, err
	}

	return c.classify(ctx, apiSingle, text, isHTML, opts), nil
}

// ClassifyBatch classifies texts in parallel, results are in the same order as texts
func (c *Classification) ClassifyBatch(ctx context.Context, texts []string, isHTML bool, override *model.OptionsOverride) ([]*model.Classification, error) {
	cfg := c.cfg.Get()
	if limit := cfg.Batch.Limit(); len(texts) > limit {
		return nil, model.Error{Code: model.ErrCodeTooLarge, Message: fmt.Sprintf("batch contains %d texts, maximum is %d", len(texts), limit)}
	}
	opts, err := c.Options(override)
	if err != nil {
		return nil, err
	}

	results := make([]*model.Classification, len(texts))
	if len(texts) == 0 {
		return results, nil
	}

	workers := cfg.Workers.Batch
	if workers <= 0 {
		workers = 1
	}
	if len(texts) < workers {
		workers = len(texts)
	}
	apm.Log(ctx).Debug().Int("texts", len(texts)).Int("workers", workers).Msg("classifying batch")

	wp := workpool.New(workers)
	for i, text := range texts {
		idx, txt := i, text
		wp.Do(func() {
			results[idx] = c.classify(ctx, apiBatch, txt, isHTML, opts)
		})
	}
	wp.Run()

	return results, nil
}

// MatchesDocumentPattern checks if the text contains a document identifier
func (c *Classification) MatchesDocumentPattern(text string) bool {
	return langdetect.MatchesDocumentPattern(text)
}

// ResetCaches removes all cached classification data
func (c *Classification) ResetCaches(ctx context.Context) {
	apm.Log(ctx).Info().Msg("resetting caches")
	c.lang.ClearCaches()
}

func (c *Classification) classify(ctx context.Context, api, text string, isHTML bool, opts model.Options) *model.Classification {
	if isHTML {
		text = html.UnescapeString(c.policy.Sanitize(text))
	}

	result := c.lang.Explain(ctx, text, opts)
	metrics.IncVerdicts(api, mcontext.GetOrigin(ctx), result.NonEnglish)
	apm.Log(ctx).
		Debug().
		Str("ip", mcontext.GetIP(ctx)).
		Str("text", utils.Truncate(text, 50)).
		Bool("non_english", result.NonEnglish).
		Float64("ratio", result.Ratio).
		Msg("text classified")

	return toClassification(result)
}

func toClassification(result *langdetect.Result) *model.Classification {
	classification := &model.Classification{
		English:      !result.NonEnglish,
		NonEnglish:   result.NonEnglish,
		Ratio:        result.Ratio,
		Threshold:    result.Threshold,
		Words:        result.Words,
		EnglishWords: result.EnglishWords,
		Normalized:   result.Normalized,
	}
	if result.Statistical != nil {
		classification.Statistical = &model.Statistical{
			Language:   result.Statistical.Language,
			Confidence: result.Statistical.Confidence,
		}
	}
	return classification
}
