package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"igpress/internal/delivery/http/validator"
	mockUsecase "igpress/internal/mocks/usecase"
	"igpress/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPublishTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder, *mockUsecase.MockPublishUsecase, *PublishHandler) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/api/publish", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc := mockUsecase.NewMockPublishUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewPublishHandler(uc, logger)

	return c, rec, uc, handler
}

func TestPublishHandler_Publish_Success(t *testing.T) {
	body := `{"instagramAccountId":"ig-1","content":"hello","imageUrl":"https://example.com/p.jpg"}`
	c, rec, uc, handler := newPublishTestContext(t, body)

	uc.EXPECT().
		Publish(mock.Anything, &usecase.PublishInput{
			InstagramAccountID: "ig-1",
			Content:            "hello",
			ImageURL:           "https://example.com/p.jpg",
		}).
		Return(&usecase.PublishOutput{MediaID: "media-42"}, nil)

	err := handler.Publish(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "media-42")
}

// A caption at exactly the Instagram limit is accepted.
func TestPublishHandler_Publish_CaptionAtLimit(t *testing.T) {
	caption := strings.Repeat("a", maxCaptionLength)
	body := `{"instagramAccountId":"ig-1","content":"` + caption + `"}`
	c, rec, uc, handler := newPublishTestContext(t, body)

	uc.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("*usecase.PublishInput")).
		Return(&usecase.PublishOutput{MediaID: "media-1"}, nil)

	err := handler.Publish(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// One character past the limit is rejected before the pipeline runs; the
// mock enforces that the usecase is never called.
func TestPublishHandler_Publish_CaptionOverLimit(t *testing.T) {
	caption := strings.Repeat("a", maxCaptionLength+1)
	body := `{"instagramAccountId":"ig-1","content":"` + caption + `"}`
	c, _, _, handler := newPublishTestContext(t, body)

	err := handler.Publish(c)

	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestPublishHandler_Publish_MissingAccountID(t *testing.T) {
	c, _, _, handler := newPublishTestContext(t, `{"content":"hello"}`)

	err := handler.Publish(c)

	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestPublishHandler_Publish_InvalidImageURL(t *testing.T) {
	c, _, _, handler := newPublishTestContext(t, `{"instagramAccountId":"ig-1","content":"hello","imageUrl":"not a url"}`)

	err := handler.Publish(c)

	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestPublishHandler_ListPublications_RequiresAccountID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/publications", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc := mockUsecase.NewMockPublishUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewPublishHandler(uc, logger)

	err := handler.ListPublications(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublishHandler_ListPublications_DefaultLimit(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/publications?accountId=ig-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc := mockUsecase.NewMockPublishUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewPublishHandler(uc, logger)

	uc.EXPECT().
		ListPublications(mock.Anything, "ig-1", int64(defaultHistoryLimit)).
		Return(nil, nil)

	err := handler.ListPublications(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPublishHandler_ListPublications_RejectsBadLimit(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/publications?accountId=ig-1&limit=-3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	uc := mockUsecase.NewMockPublishUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewPublishHandler(uc, logger)

	err := handler.ListPublications(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublishHandler_Publish_UsecaseErrorPropagates(t *testing.T) {
	c, _, uc, handler := newPublishTestContext(t, `{"instagramAccountId":"ig-1","content":"hello"}`)

	uc.EXPECT().
		Publish(mock.Anything, mock.AnythingOfType("*usecase.PublishInput")).
		Return(nil, errors.New("upstream broke"))

	err := handler.Publish(c)

	require.Error(t, err)
}
