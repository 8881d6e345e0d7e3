package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"igpress/internal/delivery/http/response"
	"igpress/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Instagram caps captions at 2200 characters; enforced here at the boundary
// so the pipeline is never reached with an oversized caption.
const maxCaptionLength = 2200

const defaultHistoryLimit = 20

// PublishHandler holds dependencies for publish handlers.
type PublishHandler struct {
	uc     usecase.PublishUsecase
	logger *slog.Logger
}

// NewPublishHandler is the constructor for PublishHandler, injected by Fx.
func NewPublishHandler(uc usecase.PublishUsecase, logger *slog.Logger) *PublishHandler {
	return &PublishHandler{uc: uc, logger: logger}
}

type publishRequest struct {
	InstagramAccountID string `json:"instagramAccountId" validate:"required"`
	Content            string `json:"content" validate:"required,max=2200"`
	ImageURL           string `json:"imageUrl" validate:"omitempty,url"`
}

// Publish runs the two-phase publish pipeline for the submitted caption.
func (h *PublishHandler) Publish(c echo.Context) error {
	var req publishRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid publish input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Publish(c.Request().Context(), &usecase.PublishInput{
		InstagramAccountID: req.InstagramAccountID,
		Content:            req.Content,
		ImageURL:           req.ImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Published successfully")
}

// ListPublications returns the publish history for one account.
func (h *PublishHandler) ListPublications(c echo.Context) error {
	accountID := c.QueryParam("accountId")
	if accountID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "accountId query parameter is required")
	}

	limit := int64(defaultHistoryLimit)
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be a positive integer")
		}
		limit = parsed
	}

	records, err := h.uc.ListPublications(c.Request().Context(), accountID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "Publications fetched successfully")
}
