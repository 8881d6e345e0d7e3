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

// ProfileHandler holds dependencies for user profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

// GetProfile fetches the caller's Facebook profile and refreshes the stored copy.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	output, err := h.uc.GetProfile(c.Request().Context(), deliverycontext.GetProviderToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile fetched successfully")
}
