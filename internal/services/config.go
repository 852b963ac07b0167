package services

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/etkecc/go-apm"
	"github.com/etkecc/go-fswatcher"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/etkecc/langfilter/internal/model"
)

// Config service
type Config struct {
	mu   *sync.Mutex
	fsw  *fswatcher.Watcher
	path string
	cfg  *model.Config
}

// NewConfig creates new config service, loads the config and watches it for changes
func NewConfig(path string) (*Config, error) {
	ctx := apm.NewContext()
	c := &Config{
		mu:   &sync.Mutex{},
		path: path,
	}
	if err := c.Read(ctx); err != nil {
		return nil, err
	}

	var err error
	c.fsw, err = fswatcher.New([]string{path}, 0)
	if err != nil {
		return nil, err
	}
	go c.fsw.Start(func(_ fsnotify.Event) {
		if err := c.Read(ctx); err != nil {
			apm.Log(ctx).Error().Err(err).Msg("cannot reload config, keeping the previous one")
		}
	})

	return c, nil
}

// NewConfigFrom creates config service from the already loaded config, without file watching
func NewConfigFrom(cfg *model.Config) *Config {
	return &Config{mu: &sync.Mutex{}, cfg: cfg}
}

// Get config
func (c *Config) Get() *model.Config {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cfg
}

// Read config
func (c *Config) Read(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	log := apm.Log(ctx)

	log.Info().Str("path", c.path).Msg("reading config")
	configb, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("cannot read config: %w", err)
	}
	var config *model.Config
	if err := yaml.Unmarshal(configb, &config); err != nil {
		return fmt.Errorf("cannot unmarshal config: %w", err)
	}
	if config == nil {
		config = &model.Config{}
	}
	if err := config.Classifier.Validate(); err != nil {
		return err
	}

	if _, err := zerolog.ParseLevel(config.LogLevel); err != nil {
		log.Warn().Err(err).Str("log_level", config.LogLevel).Msg("invalid log level, using info")
	}
	apm.SetLogLevel(config.LogLevel)
	c.cfg = config
	return nil
}

// Stop watching the config file
func (c *Config) Stop() {
	if c.fsw == nil {
		return
	}
	if err := c.fsw.Stop(); err != nil {
		apm.Log().Warn().Err(err).Msg("cannot stop config watcher")
	}
}
