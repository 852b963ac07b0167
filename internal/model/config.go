package model

import (
	echobasicauth "github.com/etkecc/go-echo-basic-auth"
)

const (
	// DefaultStatisticalCacheSize is the capacity of the statistical detector results cache
	DefaultStatisticalCacheSize = 1000
	// DefaultWordCacheSize is the capacity of the word verdicts cache
	DefaultWordCacheSize = 5000
	// DefaultBatchMax is the maximum number of texts in a single batch request
	DefaultBatchMax = 1000
)

// Config is langfilter configuration model
type Config struct {
	Port         string              `yaml:"port"`
	LogLevel     string              `yaml:"log_level"`
	SentryDSN    string              `yaml:"sentry_dsn"`
	Healthchecks *ConfigHealthchecks `yaml:"healthchecks"`
	Languages    []string            `yaml:"languages"`
	Classifier   ConfigClassifier    `yaml:"classifier"`
	Cache        ConfigCache         `yaml:"cache"`
	Dictionary   ConfigDictionary    `yaml:"dictionary"`
	Workers      ConfigWorkers       `yaml:"workers"`
	Batch        ConfigBatch         `yaml:"batch"`
	Cron         ConfigCron          `yaml:"cron"`
	Auth         ConfigAuth          `yaml:"auth"`
}

// ConfigHealthchecks - healthchecks.io configuration
type ConfigHealthchecks struct {
	URL  string `yaml:"url"`
	UUID string `yaml:"uuid"`
}

// ConfigClassifier - default classification options, partially overridable per request
type ConfigClassifier struct {
	EnglishThreshold   *float64 `yaml:"english_threshold"`
	MinWordLength      *int     `yaml:"min_word_length"`
	AllowNumbers       *bool    `yaml:"allow_numbers"`
	AllowAbbreviations *bool    `yaml:"allow_abbreviations"`
}

func (c ConfigClassifier) override() *OptionsOverride {
	return &OptionsOverride{
		EnglishThreshold:   c.EnglishThreshold,
		MinWordLength:      c.MinWordLength,
		AllowNumbers:       c.AllowNumbers,
		AllowAbbreviations: c.AllowAbbreviations,
	}
}

// Options converts classifier config to classification options, unset values are defaults
func (c ConfigClassifier) Options() Options {
	return c.override().Apply(DefaultOptions())
}

// Validate classifier config values
func (c ConfigClassifier) Validate() error {
	return c.override().Validate()
}

// ConfigCache - cache-related configuration
type ConfigCache struct {
	Statistical int `yaml:"statistical"`
	Words       int `yaml:"words"`
}

// StatisticalSize returns capacity of the statistical results cache
func (c ConfigCache) StatisticalSize() int {
	if c.Statistical <= 0 {
		return DefaultStatisticalCacheSize
	}
	return c.Statistical
}

// WordsSize returns capacity of the word verdicts cache
func (c ConfigCache) WordsSize() int {
	if c.Words <= 0 {
		return DefaultWordCacheSize
	}
	return c.Words
}

// ConfigDictionary - dictionary-related configuration
type ConfigDictionary struct {
	ExtraWords string `yaml:"extra_words"` // path to a file with additional English words, one per line
}

// ConfigWorkers - workers related configuration
type ConfigWorkers struct {
	Batch int `yaml:"batch"`
}

// ConfigBatch - batches related configuration
type ConfigBatch struct {
	Max int `yaml:"max"`
}

// Limit returns the maximum number of texts in a batch
func (c ConfigBatch) Limit() int {
	if c.Max <= 0 {
		return DefaultBatchMax
	}
	return c.Max
}

// ConfigCron - cronjobs config
type ConfigCron struct {
	Reset string `yaml:"reset"` // schedule of the caches reset
}

// ConfigAuth - auth-related configuration
type ConfigAuth struct {
	Admin   echobasicauth.Auth `yaml:"admin"`
	Metrics echobasicauth.Auth `yaml:"metrics"`
}
