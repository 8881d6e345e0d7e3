package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "igpress/internal/delivery/context"
	"igpress/internal/delivery/http/response"
	"igpress/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SummarizeHandler holds dependencies for the summarization handler.
type SummarizeHandler struct {
	uc     usecase.SummarizeUsecase
	logger *slog.Logger
}

// NewSummarizeHandler is the constructor for SummarizeHandler, injected by Fx.
func NewSummarizeHandler(uc usecase.SummarizeUsecase, logger *slog.Logger) *SummarizeHandler {
	return &SummarizeHandler{uc: uc, logger: logger}
}

type summarizeRequest struct {
	Content string `json:"content" validate:"required"`
}

// Summarize shortens the submitted text into an Instagram-sized caption.
func (h *SummarizeHandler) Summarize(c echo.Context) error {
	var req summarizeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid summarize input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Summarize(c.Request().Context(), deliverycontext.GetFacebookID(c), req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Content summarized successfully")
}
