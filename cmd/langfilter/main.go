package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/etkecc/go-apm"
	"github.com/etkecc/go-healthchecks/v2"
	"github.com/labstack/echo/v4"
	"github.com/mileusna/crontab"

	"github.com/etkecc/langfilter/internal/controllers"
	"github.com/etkecc/langfilter/internal/dictionary"
	"github.com/etkecc/langfilter/internal/langdetect"
	"github.com/etkecc/langfilter/internal/model"
	"github.com/etkecc/langfilter/internal/services"
	"github.com/etkecc/langfilter/internal/utils"
	"github.com/etkecc/langfilter/internal/version"
)

var (
	configPath string
	cfg        *services.Config
	hc         *healthchecks.Client
	cron       *crontab.Crontab
	e          *echo.Echo
)

func main() {
	quit := make(chan struct{})
	flag.StringVar(&configPath, "c", "config.yml", "Path to the config file")
	flag.Parse()

	apm.SetName(version.Name)
	log := apm.Log()

	var err error
	cfg, err = services.NewConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	apm.SetSentryDSN(cfg.Get().SentryDSN)
	initHealthchecks(cfg.Get().Healthchecks)

	dict, err := dictionary.Load(cfg.Get().Dictionary.ExtraWords)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load dictionary")
	}
	languages := utils.ParseLanguages(cfg.Get().Languages)
	if len(languages) == 0 {
		languages = langdetect.DefaultLanguages
	}
	log.Info().Strs("languages", languages).Int("words", dict.Len()).Msg("building language detector")
	classifier := langdetect.New(
		dict,
		langdetect.NewLingua(languages...),
		langdetect.WithCacheSizes(cfg.Get().Cache.StatisticalSize(), cfg.Get().Cache.WordsSize()),
	)
	langdetect.SetDefault(classifier)
	classifySvc := services.NewClassification(cfg, classifier)

	e = echo.New()
	e.Logger = apm.EchoLogger()
	controllers.ConfigureRouter(e, cfg, classifySvc)

	initCron(classifySvc)
	initShutdown(quit)

	if err := e.Start(":" + cfg.Get().Port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("shutting down the server")
	}

	<-quit
}

func initHealthchecks(hcCfg *model.ConfigHealthchecks) {
	if hcCfg == nil || hcCfg.UUID == "" {
		return
	}
	baseURL := hcCfg.URL
	if baseURL == "" {
		baseURL = "https://hc-ping.com"
	}
	hc = healthchecks.New(
		healthchecks.WithBaseURL(baseURL),
		healthchecks.WithCheckUUID(hcCfg.UUID),
	)
	hc.Start(strings.NewReader("starting " + version.Name))
	go hc.Auto(time.Minute)
	apm.SetHealthchecks(hc)
}

func initCron(classifySvc *services.Classification) {
	cron = crontab.New()
	if schedule := cfg.Get().Cron.Reset; schedule != "" {
		apm.Log().Info().Str("schedule", schedule).Msg("cron caches reset job enabled")
		cron.MustAddJob(schedule, func() {
			classifySvc.ResetCaches(apm.NewContext())
		})
	}
}

func initShutdown(quit chan struct{}) {
	listener := make(chan os.Signal, 1)
	signal.Notify(listener, os.Interrupt, syscall.SIGABRT, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

	go func() {
		<-listener
		defer close(quit)

		shutdown()
	}()
}

func shutdown() {
	log := apm.Log()
	log.Info().Msg("shutting down...")
	cron.Shutdown()
	cfg.Stop()
	if hc != nil {
		hc.Shutdown()
	}
	// api was not started yet
	if e == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot shutdown the server") //nolint:gocritic // that's intended
	}
}
