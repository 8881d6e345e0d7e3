package handler

import (
	"log/slog"
	"net/http"

	"igpress/internal/delivery/http/response"
	"igpress/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the Facebook login flow.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

// FacebookLogin hands out the Facebook OAuth dialog URL, or redirects to it
// directly when ?redirect=true.
func (h *AuthHandler) FacebookLogin(c echo.Context) error {
	loginURL := h.uc.LoginURL(c.QueryParam("state"))

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, loginURL)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"oauth_url": loginURL,
	}, "Facebook OAuth URL generated successfully")
}

// FacebookCallback handles the OAuth redirect: exchanges the code for a
// session and returns the session token.
func (h *AuthHandler) FacebookCallback(c echo.Context) error {
	code := c.QueryParam("code")

	output, err := h.uc.HandleCallback(c.Request().Context(), code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}
