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

// AccountHandler holds dependencies for page and account handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{uc: uc, logger: logger}
}

// ListPages returns the caller's Facebook pages, refreshing the stored copies.
func (h *AccountHandler) ListPages(c echo.Context) error {
	output, err := h.uc.ListPages(c.Request().Context(), deliverycontext.GetProviderToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Pages fetched successfully")
}

// ListAccounts resolves the Instagram business accounts available for publishing.
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	output, err := h.uc.ResolveAccounts(c.Request().Context(), deliverycontext.GetProviderToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Instagram accounts resolved successfully")
}
