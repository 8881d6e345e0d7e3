package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "igpress/internal/delivery/context"
	"igpress/internal/domain/service"
	mockService "igpress/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateSessionToken("session-jwt").
		Return(&service.SessionClaims{FacebookID: "fb-1", ProviderToken: "provider-token"}, nil)

	mw := NewAuthMiddleware(tokenSvc)
	c, _ := newAuthTestContext("Bearer session-jwt")

	var gotFacebookID, gotProviderToken string
	next := func(c echo.Context) error {
		gotFacebookID = deliverycontext.GetFacebookID(c)
		gotProviderToken = deliverycontext.GetProviderToken(c)

		return nil
	}

	err := mw.Authenticate(next)(c)

	require.NoError(t, err)
	assert.Equal(t, "fb-1", gotFacebookID)
	assert.Equal(t, "provider-token", gotProviderToken)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	mw := NewAuthMiddleware(mockService.NewMockTokenService(t))
	c, rec := newAuthTestContext("")

	nextCalled := false
	err := mw.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	mw := NewAuthMiddleware(mockService.NewMockTokenService(t))
	c, rec := newAuthTestContext("Basic dXNlcjpwYXNz")

	err := mw.Authenticate(func(c echo.Context) error {
		t.Fatal("next should not run")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateSessionToken("bad-token").
		Return(nil, errors.New("token is expired"))

	mw := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext("Bearer bad-token")

	err := mw.Authenticate(func(c echo.Context) error {
		t.Fatal("next should not run")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
