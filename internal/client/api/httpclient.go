package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ahaducoin/tapcoin/internal/client/models"
	"github.com/ahaducoin/tapcoin/internal/events"
)

// Backend routes, relative to the base URL.
const (
	pathLogin            = "/api/v1/auth-login/"
	pathRegister         = "/api/v1/auth-register/"
	pathLogout           = "/api/v1/auth-logout"
	pathCurrentUser      = "/api/v1/users/me"
	pathIncrementBalance = "/api/v1/users/increment-balance"
	pathListUsers        = "/api/v1/users/list"
	pathListClans        = "/api/v1/clans/list"
	pathCreateClan       = "/api/v1/clans/create"
	pathJoinClan         = "/api/v1/clans/join"
	pathLeaveClan        = "/api/v1/clans/leave"
	pathDeleteClan       = "/api/v1/clans/delete"
)

// HTTPClient talks JSON over HTTPS to the tap-coin backend. Every request
// runs under the configured timeout so a hung request cannot pin the UI in
// its loading state.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	bus     *events.Bus
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, bus *events.Bus) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		bus:     bus,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type incrementRequest struct {
	Amount int64 `json:"amount"`
}

type clanRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type clanIDRequest struct {
	ClanID string `json:"clan_id"`
}

// errorResponse is the backend's error body; Detail carries the
// business-rule message when present.
type errorResponse struct {
	Detail string `json:"detail"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, pathLogin, loginRequest{Username: username, Password: password}, &resp, false)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) error {
	return c.do(ctx, http.MethodPost, pathRegister, reg, nil, false)
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, pathLogout, nil, nil, true)
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, pathCurrentUser, nil, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) IncrementBalance(ctx context.Context, amount int64) error {
	return c.do(ctx, http.MethodPost, pathIncrementBalance, incrementRequest{Amount: amount}, nil, true)
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, pathListUsers, nil, &users, true); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) ListClans(ctx context.Context) ([]models.Clan, error) {
	var clans []models.Clan
	if err := c.do(ctx, http.MethodGet, pathListClans, nil, &clans, true); err != nil {
		return nil, err
	}
	return clans, nil
}

func (c *HTTPClient) CreateClan(ctx context.Context, name, description string) (*models.Clan, error) {
	var clan models.Clan
	err := c.do(ctx, http.MethodPost, pathCreateClan, clanRequest{Name: name, Description: description}, &clan, true)
	if err != nil {
		return nil, err
	}
	return &clan, nil
}

func (c *HTTPClient) JoinClan(ctx context.Context, clanID string) error {
	return c.do(ctx, http.MethodPost, pathJoinClan, clanIDRequest{ClanID: clanID}, nil, true)
}

func (c *HTTPClient) LeaveClan(ctx context.Context, clanID string) error {
	return c.do(ctx, http.MethodPost, pathLeaveClan, clanIDRequest{ClanID: clanID}, nil, true)
}

func (c *HTTPClient) DeleteClan(ctx context.Context, clanID string) error {
	return c.do(ctx, http.MethodDelete, pathDeleteClan, clanIDRequest{ClanID: clanID}, nil, true)
}

// do performs one JSON request/response round trip. For authenticated routes
// it attaches the freshest stored token; the 401 path lives here and nowhere
// else, so the session is cleared and the invalidation event published
// exactly once however many call sites race.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if authed {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return err
		}
		if token == "" {
			return ErrUnauthorized
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil || len(data) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		if authed {
			c.invalidateSession(ctx)
		}
		return ErrUnauthorized

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var body errorResponse
		if err := json.Unmarshal(data, &body); err == nil && body.Detail != "" {
			return &DomainError{Status: resp.StatusCode, Message: body.Detail}
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)

	default:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
}

func (c *HTTPClient) invalidateSession(ctx context.Context) {
	cleared, err := c.tokens.Invalidate(ctx)
	if err != nil || !cleared {
		return
	}
	if c.bus != nil {
		c.bus.PublishSessionInvalidated("session rejected by server")
	}
}
