package controllers

import (
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/etkecc/go-apm"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/etkecc/langfilter/internal/model"
	"github.com/etkecc/langfilter/internal/model/mcontext"
	"github.com/etkecc/langfilter/internal/utils"
)

var (
	rlsMu sync.Mutex
	rls   = map[rate.Limit]echo.MiddlewareFunc{}
)

// getOrigin returns hostname of the Origin header (if provided), or of the Referer header (if provided)
func getOrigin(r *http.Request) string {
	if parsed := utils.ParseURL(r.Header.Get("Origin")); parsed != nil && parsed.Hostname() != "" {
		return parsed.Hostname()
	}
	if parsed := utils.ParseURL(r.Header.Get("Referer")); parsed != nil {
		return parsed.Hostname()
	}
	return ""
}

func getRL(limit rate.Limit) echo.MiddlewareFunc {
	rlsMu.Lock()
	defer rlsMu.Unlock()

	rl, ok := rls[limit]
	if ok {
		return rl
	}
	cfg := middleware.DefaultRateLimiterConfig
	cfg.Skipper = func(c echo.Context) bool {
		return c.Request().Method == http.MethodOptions
	}
	cfg.ErrorHandler = func(c echo.Context, err error) error {
		message := "error while extracting identifier" // default message from middleware
		if err != nil {
			message = err.Error()
		}
		return errorResponse(c, http.StatusForbidden, model.Error{Code: model.ErrCodeForbidden, Message: message})
	}
	cfg.DenyHandler = func(c echo.Context, _ string, _ error) error {
		c.Response().Header().Set(echo.HeaderRetryAfter, "10")
		return errorResponse(c, http.StatusTooManyRequests, model.Error{Code: model.ErrCodeLimitExceeded, Message: "rate limit exceeded"})
	}
	cfg.Store = middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     int(limit),
		ExpiresIn: 5 * time.Minute,
	})
	rls[limit] = middleware.RateLimiterWithConfig(cfg)
	return rls[limit]
}

func withMContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := mcontext.WithRequest(apm.NewContext(req.Context()), c.RealIP(), getOrigin(req))
			log := apm.Log(ctx).With().Str("origin", mcontext.GetOrigin(ctx)).Logger()
			c.SetRequest(req.WithContext(log.WithContext(ctx)))
			return next(c)
		}
	}
}

// bindJSON reads request body and decodes it into the target
func bindJSON(c echo.Context, target any) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return model.Error{Code: model.ErrCodeBadRequest, Message: "cannot read request body"}
	}
	if err := utils.UnmarshalJSON(body, target); err != nil {
		return model.Error{Code: model.ErrCodeBadRequest, Message: "cannot parse request body: " + err.Error()}
	}
	return nil
}

// errorResponse writes model.Error as JSON, other errors are passed to echo
func errorResponse(c echo.Context, status int, err error) error {
	var merr model.Error
	if !errors.As(err, &merr) {
		return err
	}
	return c.JSONBlob(status, utils.MustJSON(merr))
}
