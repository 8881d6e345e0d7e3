// Package context provides helpers for request-scoped values shared between
// middleware and handlers.
package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyFacebookID is the key for the authenticated user's Facebook id.
	KeyFacebookID ContextKey = "facebook_id"

	// KeyProviderToken is the key for the Facebook user access token
	// extracted from the session.
	KeyProviderToken ContextKey = "provider_token"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetFacebookID extracts the authenticated user's Facebook id from echo.Context.
func GetFacebookID(c echo.Context) string {
	val := c.Get(string(KeyFacebookID))
	if id, ok := val.(string); ok {
		return id
	}

	return ""
}

// SetFacebookID sets the authenticated user's Facebook id in echo.Context.
func SetFacebookID(c echo.Context, facebookID string) {
	c.Set(string(KeyFacebookID), facebookID)
}

// GetProviderToken extracts the Facebook user access token from echo.Context.
func GetProviderToken(c echo.Context) string {
	val := c.Get(string(KeyProviderToken))
	if token, ok := val.(string); ok {
		return token
	}

	return ""
}

// SetProviderToken sets the Facebook user access token in echo.Context.
func SetProviderToken(c echo.Context, token string) {
	c.Set(string(KeyProviderToken), token)
}
