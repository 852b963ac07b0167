package controllers

import (
	"net/http"

	"github.com/etkecc/go-apm"
	echobasicauth "github.com/etkecc/go-echo-basic-auth"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/etkecc/langfilter/internal/metrics"
	"github.com/etkecc/langfilter/internal/model"
	"github.com/etkecc/langfilter/internal/version"
)

type configService interface {
	Get() *model.Config
}

// ConfigureRouter configures echo router
func ConfigureRouter(e *echo.Echo, cfg configService, classifySvc classificationService) {
	configureRouter(e)

	e.GET("/metrics", echo.WrapHandler(&metrics.Handler{}), echobasicauth.NewMiddleware(&cfg.Get().Auth.Metrics))

	rl := getRL(20)
	e.POST("/classify", classify(classifySvc), rl)
	e.POST("/classify/batch", classifyBatch(classifySvc), getRL(2))
	e.GET("/document-pattern", documentPattern(classifySvc), rl)

	a := e.Group("-")
	a.Use(echobasicauth.NewMiddleware(&cfg.Get().Auth.Admin))
	a.POST("/caches/reset", resetCaches(classifySvc))
}

func configureRouter(e *echo.Echo) {
	e.Use(middleware.Recover())
	e.Use(apm.WithSentry())
	e.Use(middleware.Secure())
	e.Use(middleware.BodyLimit("10M"))
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Skipper: func(c echo.Context) bool { return c.Path() == "/metrics" }}))
	e.Use(withMContext())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, version.Server)
			return next(c)
		}
	})
	e.HideBanner = true
	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(true),
		echo.TrustPrivateNet(true),
	)
	e.Any("/_health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/robots.txt", func(c echo.Context) error {
		return c.String(http.StatusOK, "User-agent: *\nDisallow: /")
	})
}
