package controllers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/etkecc/langfilter/internal/model"
	"github.com/etkecc/langfilter/internal/utils"
)

type classificationService interface {
	Classify(ctx context.Context, text string, isHTML bool, override *model.OptionsOverride) (*model.Classification, error)
	ClassifyBatch(ctx context.Context, texts []string, isHTML bool, override *model.OptionsOverride) ([]*model.Classification, error)
	MatchesDocumentPattern(text string) bool
	ResetCaches(ctx context.Context)
}

func classify(svc classificationService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req *model.ClassifyRequest
		if err := bindJSON(c, &req); err != nil {
			return errorResponse(c, http.StatusBadRequest, err)
		}
		if req == nil {
			return errorResponse(c, http.StatusBadRequest, model.Error{Code: model.ErrCodeBadRequest, Message: "request body is empty"})
		}

		result, err := svc.Classify(c.Request().Context(), req.Text, req.HTML, req.Options)
		if err != nil {
			return errorResponse(c, http.StatusBadRequest, err)
		}
		return c.JSONBlob(http.StatusOK, utils.MustJSON(result))
	}
}

func classifyBatch(svc classificationService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req *model.ClassifyBatchRequest
		if err := bindJSON(c, &req); err != nil {
			return errorResponse(c, http.StatusBadRequest, err)
		}
		if req == nil {
			return errorResponse(c, http.StatusBadRequest, model.Error{Code: model.ErrCodeBadRequest, Message: "request body is empty"})
		}

		results, err := svc.ClassifyBatch(c.Request().Context(), req.Texts, req.HTML, req.Options)
		if err != nil {
			return errorResponse(c, http.StatusBadRequest, err)
		}
		return c.JSONBlob(http.StatusOK, utils.MustJSON(results))
	}
}

func documentPattern(svc classificationService) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, utils.MustJSON(&model.DocumentPatternResponse{
			Matches: svc.MatchesDocumentPattern(c.QueryParam("text")),
		}))
	}
}

func resetCaches(svc classificationService) echo.HandlerFunc {
	return func(c echo.Context) error {
		svc.ResetCaches(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	}
}
