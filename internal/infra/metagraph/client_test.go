package metagraph

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"igpress/config"
	domainerrors "igpress/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: time.Second},
		baseURL:     serverURL,
		version:     "v18.0",
		appID:       "app-1",
		appSecret:   "secret-1",
		redirectURI: "https://service.example.com/auth/facebook/callback",
	}
}

func TestClient_BuildLoginURL(t *testing.T) {
	client := newTestClient("http://unused")

	loginURL := client.BuildLoginURL("state-xyz")

	parsed, err := url.Parse(loginURL)
	require.NoError(t, err)
	assert.Equal(t, "www.facebook.com", parsed.Host)
	assert.Equal(t, "/dialog/oauth", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "app-1", query.Get("client_id"))
	assert.Equal(t, "https://service.example.com/auth/facebook/callback", query.Get("redirect_uri"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "state-xyz", query.Get("state"))
	assert.Contains(t, query.Get("scope"), "instagram_content_publish")
	assert.Contains(t, query.Get("scope"), "pages_show_list")
}

func TestClient_BuildLoginURL_NoState(t *testing.T) {
	client := newTestClient("http://unused")

	parsed, err := url.Parse(client.BuildLoginURL(""))
	require.NoError(t, err)
	assert.False(t, parsed.Query().Has("state"))
}

func TestClient_ExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v18.0/oauth/access_token", r.URL.Path)
		assert.Equal(t, "app-1", r.URL.Query().Get("client_id"))
		assert.Equal(t, "secret-1", r.URL.Query().Get("client_secret"))
		assert.Equal(t, "auth-code", r.URL.Query().Get("code"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"user-token","token_type":"bearer","expires_in":5183944}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	token, err := client.ExchangeCode(context.Background(), "auth-code")

	require.NoError(t, err)
	assert.Equal(t, "user-token", token)
}

func TestClient_FetchPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v18.0/me/accounts", r.URL.Path)
		assert.Equal(t, "user-token", r.URL.Query().Get("access_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"id":"page-1","name":"Shop One","access_token":"token-1"},
			{"id":"page-2","name":"Shop Two","access_token":"token-2"}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	pages, err := client.FetchPages(context.Background(), "user-token")

	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "page-1", pages[0].ID)
	assert.Equal(t, "token-1", pages[0].AccessToken)
	assert.Equal(t, "Shop Two", pages[1].Name)
}

func TestClient_FetchLinkedAccountRef_None(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v18.0/page-1", r.URL.Path)
		assert.Equal(t, "page-token", r.URL.Query().Get("access_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"page-1"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ref, err := client.FetchLinkedAccountRef(context.Background(), "page-1", "page-token")

	require.NoError(t, err)
	assert.Nil(t, ref)
}

func TestClient_FetchLinkedAccountRef_Present(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"instagram_business_account":{"id":"ig-1","name":"Shop","username":"shop"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	ref, err := client.FetchLinkedAccountRef(context.Background(), "page-1", "page-token")

	require.NoError(t, err)
	require.NotNil(t, ref)
	assert.Equal(t, "ig-1", ref.ID)
	assert.Equal(t, "shop", ref.Username)
}

func TestClient_CreateMediaContainer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v18.0/ig-1/media", r.URL.Path)
		assert.Equal(t, "https://example.com/a photo.jpg", r.URL.Query().Get("image_url"))
		assert.Equal(t, "caption with spaces & symbols", r.URL.Query().Get("caption"))
		assert.Equal(t, "page-token", r.URL.Query().Get("access_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"container-9"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	containerID, err := client.CreateMediaContainer(
		context.Background(), "ig-1", "page-token",
		"https://example.com/a photo.jpg", "caption with spaces & symbols")

	require.NoError(t, err)
	assert.Equal(t, "container-9", containerID)
}

func TestClient_CreateMediaContainer_NoID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	containerID, err := client.CreateMediaContainer(
		context.Background(), "ig-1", "page-token", "https://example.com/p.jpg", "caption")

	require.Error(t, err)
	assert.Empty(t, containerID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.HTTPCode())
}

func TestClient_PublishMediaContainer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v18.0/ig-1/media_publish", r.URL.Path)
		assert.Equal(t, "container-9", r.URL.Query().Get("creation_id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"media-42"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	mediaID, err := client.PublishMediaContainer(context.Background(), "ig-1", "page-token", "container-9")

	require.NoError(t, err)
	assert.Equal(t, "media-42", mediaID)
}

// The upstream error message must reach the caller word for word.
func TestClient_UpstreamErrorPassThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid OAuth access token.","type":"OAuthException","code":190}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchProfile(context.Background(), "bad-token")

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.HTTPCode())
	assert.Equal(t, "Invalid OAuth access token.", appErr.Message())
}

func TestClient_UpstreamErrorUndecodableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchProfile(context.Background(), "user-token")

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Unknown error", appErr.Message())
}

func TestNewClient_DefaultsFromConfig(t *testing.T) {
	cfg := &config.Config{
		MetaGraph: &config.MetaGraphConfig{
			AppID:       "app-1",
			AppSecret:   "secret-1",
			RedirectURI: "https://service.example.com/cb",
			Version:     "v18.0",
		},
	}

	graph := NewClient(cfg)

	client, ok := graph.(*Client)
	require.True(t, ok)
	assert.Equal(t, graphBaseURL, client.baseURL)
	assert.Equal(t, "v18.0", client.version)
}
