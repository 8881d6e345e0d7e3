// Package metagraph contains the Facebook Graph API client used for login,
// page discovery, Instagram account lookup and the two-phase media publish.
package metagraph

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"igpress/config"
	domainerrors "igpress/internal/domain/errors"
	"igpress/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	graphBaseURL   = "https://graph.facebook.com"
	dialogURL      = "https://www.facebook.com/dialog/oauth"
	loginScopes    = "email,pages_show_list,pages_read_engagement,instagram_basic,instagram_content_publish"
	defaultTimeout = 15 * time.Second
)

// Client implements service.ContentGraph against the Facebook Graph API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	version     string
	appID       string
	appSecret   string
	redirectURI string
}

// NewClient creates a Graph API client from the service configuration.
func NewClient(cfg *config.Config) service.ContentGraph {
	return &Client{
		httpClient:  &http.Client{Timeout: defaultTimeout},
		baseURL:     graphBaseURL,
		version:     cfg.MetaGraph.Version,
		appID:       cfg.MetaGraph.AppID,
		appSecret:   cfg.MetaGraph.AppSecret,
		redirectURI: cfg.MetaGraph.RedirectURI,
	}
}

// graphError is the structured error envelope the Graph API returns on
// non-success responses.
type graphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// BuildLoginURL constructs the Facebook OAuth dialog URL with the scopes the
// publish flow needs.
func (c *Client) BuildLoginURL(state string) string {
	params := url.Values{}
	params.Set("client_id", c.appID)
	params.Set("redirect_uri", c.redirectURI)
	params.Set("scope", loginScopes)
	params.Set("response_type", "code")
	if state != "" {
		params.Set("state", state)
	}

	return dialogURL + "?" + params.Encode()
}

// ExchangeCode exchanges an OAuth authorization code for a user access token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	params := url.Values{}
	params.Set("client_id", c.appID)
	params.Set("client_secret", c.appSecret)
	params.Set("redirect_uri", c.redirectURI)
	params.Set("code", code)

	var payload struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := c.get(ctx, "/oauth/access_token", params, &payload); err != nil {
		return "", err
	}

	return payload.AccessToken, nil
}

// FetchProfile reads the authenticated user's profile.
func (c *Client) FetchProfile(ctx context.Context, userToken string) (*service.GraphProfile, error) {
	params := url.Values{}
	params.Set("fields", "id,name,email")
	params.Set("access_token", userToken)

	var payload struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.get(ctx, "/me", params, &payload); err != nil {
		return nil, err
	}

	return &service.GraphProfile{
		ID:    payload.ID,
		Name:  payload.Name,
		Email: payload.Email,
	}, nil
}

// FetchPages lists the pages the user manages, in upstream order.
func (c *Client) FetchPages(ctx context.Context, userToken string) ([]service.GraphPage, error) {
	params := url.Values{}
	params.Set("fields", "id,name,access_token")
	params.Set("access_token", userToken)

	var payload struct {
		Data []struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/me/accounts", params, &payload); err != nil {
		return nil, err
	}

	pages := make([]service.GraphPage, 0, len(payload.Data))
	for _, page := range payload.Data {
		pages = append(pages, service.GraphPage{
			ID:          page.ID,
			Name:        page.Name,
			AccessToken: page.AccessToken,
		})
	}

	return pages, nil
}

// FetchLinkedAccountRef looks up the Instagram business account connected to
// a page, authenticated with the page's own token. Returns nil when the page
// has no linked account.
func (c *Client) FetchLinkedAccountRef(ctx context.Context, pageID, pageToken string) (*service.LinkedAccountRef, error) {
	params := url.Values{}
	params.Set("fields", "instagram_business_account{id,name,username}")
	params.Set("access_token", pageToken)

	var payload struct {
		InstagramBusinessAccount *struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Username string `json:"username"`
		} `json:"instagram_business_account"`
	}
	if err := c.get(ctx, "/"+pageID, params, &payload); err != nil {
		return nil, err
	}

	if payload.InstagramBusinessAccount == nil {
		return nil, nil
	}

	return &service.LinkedAccountRef{
		ID:       payload.InstagramBusinessAccount.ID,
		Name:     payload.InstagramBusinessAccount.Name,
		Username: payload.InstagramBusinessAccount.Username,
	}, nil
}

// FetchAccountDetails reads the extended profile of an Instagram account.
func (c *Client) FetchAccountDetails(ctx context.Context, instagramID, pageToken string) (*service.LinkedAccountDetails, error) {
	params := url.Values{}
	params.Set("fields", "id,name,username,profile_picture_url")
	params.Set("access_token", pageToken)

	var payload struct {
		ID                string `json:"id"`
		Name              string `json:"name"`
		Username          string `json:"username"`
		ProfilePictureURL string `json:"profile_picture_url"`
	}
	if err := c.get(ctx, "/"+instagramID, params, &payload); err != nil {
		return nil, err
	}

	return &service.LinkedAccountDetails{
		ID:                payload.ID,
		Name:              payload.Name,
		Username:          payload.Username,
		ProfilePictureURL: payload.ProfilePictureURL,
	}, nil
}

// CreateMediaContainer stages media and caption upstream and returns the
// container id. The container is not live until published.
func (c *Client) CreateMediaContainer(ctx context.Context, instagramID, pageToken, imageURL, caption string) (string, error) {
	params := url.Values{}
	params.Set("image_url", imageURL)
	params.Set("caption", caption)
	params.Set("access_token", pageToken)

	var payload struct {
		ID string `json:"id"`
	}
	if err := c.post(ctx, "/"+instagramID+"/media", params, &payload); err != nil {
		return "", err
	}
	if payload.ID == "" {
		return "", domainerrors.NewUpstreamError("media container response carried no id")
	}

	return payload.ID, nil
}

// PublishMediaContainer commits a staged container into a live post and
// returns the media id.
func (c *Client) PublishMediaContainer(ctx context.Context, instagramID, pageToken, containerID string) (string, error) {
	params := url.Values{}
	params.Set("creation_id", containerID)
	params.Set("access_token", pageToken)

	var payload struct {
		ID string `json:"id"`
	}
	if err := c.post(ctx, "/"+instagramID+"/media_publish", params, &payload); err != nil {
		return "", err
	}

	return payload.ID, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, params, out)
}

func (c *Client) post(ctx context.Context, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodPost, path, params, out)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, out any) error {
	endpoint := c.baseURL + "/" + c.version + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to create graph request for %s", path)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "graph request to %s failed", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeGraphError(resp.Body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode graph response from %s", path)
	}

	return nil
}

// decodeGraphError extracts the upstream error message so it can be surfaced
// to the caller unmodified. Undecodable bodies degrade to "Unknown error".
func decodeGraphError(body io.Reader) error {
	var envelope graphError
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return domainerrors.NewUpstreamError("")
	}

	return domainerrors.NewUpstreamError(envelope.Error.Message)
}
