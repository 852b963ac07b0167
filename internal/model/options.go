package model

const (
	// DefaultEnglishThreshold is the ratio of English words needed to classify text as English
	DefaultEnglishThreshold = 0.8
	// DefaultMinWordLength is the minimum word length (in runes) to take into account
	DefaultMinWordLength = 2
)

// Options of a single classification call
type Options struct {
	EnglishThreshold   float64 `json:"english_threshold" yaml:"english_threshold"`     // fraction in [0,1]
	MinWordLength      int     `json:"min_word_length" yaml:"min_word_length"`         // shorter words are skipped
	AllowNumbers       bool    `json:"allow_numbers" yaml:"allow_numbers"`             // treat digit-only words as English
	AllowAbbreviations bool    `json:"allow_abbreviations" yaml:"allow_abbreviations"` // reserved, has no effect on decisions
}

// DefaultOptions returns options with default values
func DefaultOptions() Options {
	return Options{
		EnglishThreshold:   DefaultEnglishThreshold,
		MinWordLength:      DefaultMinWordLength,
		AllowNumbers:       true,
		AllowAbbreviations: true,
	}
}

// OptionsOverride is a partial override of Options, nil fields are left as is
type OptionsOverride struct {
	EnglishThreshold   *float64 `json:"english_threshold,omitempty" yaml:"english_threshold,omitempty"`
	MinWordLength      *int     `json:"min_word_length,omitempty" yaml:"min_word_length,omitempty"`
	AllowNumbers       *bool    `json:"allow_numbers,omitempty" yaml:"allow_numbers,omitempty"`
	AllowAbbreviations *bool    `json:"allow_abbreviations,omitempty" yaml:"allow_abbreviations,omitempty"`
}

// Apply override to the base options and return the result
func (o *OptionsOverride) Apply(base Options) Options {
	if o == nil {
		return base
	}
	if o.EnglishThreshold != nil {
		base.EnglishThreshold = *o.EnglishThreshold
	}
	if o.MinWordLength != nil {
		base.MinWordLength = *o.MinWordLength
	}
	if o.AllowNumbers != nil {
		base.AllowNumbers = *o.AllowNumbers
	}
	if o.AllowAbbreviations != nil {
		base.AllowAbbreviations = *o.AllowAbbreviations
	}
	return base
}

// Validate override values
func (o *OptionsOverride) Validate() error {
	if o == nil {
		return nil
	}
	if o.EnglishThreshold != nil && (*o.EnglishThreshold < 0 || *o.EnglishThreshold > 1) {
		return Error{Code: ErrCodeBadOptions, Message: "english_threshold must be within [0,1]"}
	}
	if o.MinWordLength != nil && *o.MinWordLength < 0 {
		return Error{Code: ErrCodeBadOptions, Message: "min_word_length must not be negative"}
	}
	return nil
}
