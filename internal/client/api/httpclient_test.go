package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahaducoin/tapcoin/internal/client/models"
	"github.com/ahaducoin/tapcoin/internal/events"
)

type fakeTokens struct {
	mu          sync.Mutex
	token       string
	invalidated int
}

func (f *fakeTokens) Token(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token, nil
}

func (f *fakeTokens) Invalidate(ctx context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated++
	if f.token == "" {
		return false, nil
	}
	f.token = ""
	return true, nil
}

func newTestClient(t *testing.T, handler http.Handler, token string) (*HTTPClient, *fakeTokens, *events.Bus) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := &fakeTokens{token: token}
	bus := events.New()
	return NewHTTPClient(srv.URL, 5*time.Second, tokens, bus), tokens, bus
}

func TestLogin_ReturnsToken(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/auth-login/", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice", body["username"])
		require.Equal(t, "secret1", body["password"])

		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok123"})
	})

	c, _, _ := newTestClient(t, handler, "")

	token, err := c.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)
}

func TestCurrentUser_SendsBearerToken(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(models.User{Username: "alice", CoinBalance: 42})
	})

	c, _, _ := newTestClient(t, handler, "tok123")

	user, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, int64(42), user.CoinBalance)
}

func TestDo_Unauthorized_ClearsSessionAndPublishesOnce(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	c, tokens, bus := newTestClient(t, handler, "stale")

	var mu sync.Mutex
	var reasons []string
	require.NoError(t, bus.SubscribeSessionInvalidated(func(reason string) {
		mu.Lock()
		defer mu.Unlock()
		reasons = append(reasons, reason)
	}))

	_, err := c.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)

	// The slot is already empty, so the second call fails locally
	// without publishing a second event.
	err = c.IncrementBalance(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnauthorized)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, reasons, 1)
	assert.Equal(t, "", tokens.token)
}

func TestDo_NoStoredToken_FailsWithoutRequest(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	c, _, _ := newTestClient(t, handler, "")

	_, err := c.ListClans(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, called)
}

func TestCreateClan_DomainErrorSurfacedVerbatim(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "User already belongs to a clan"})
	})

	c, tokens, _ := newTestClient(t, handler, "tok123")

	_, err := c.CreateClan(context.Background(), "Alpha", "desc")
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "User already belongs to a clan", domainErr.Message)
	assert.Equal(t, http.StatusBadRequest, domainErr.Status)

	// Business rejections never touch the session.
	assert.Equal(t, "tok123", tokens.token)
}

func TestDeleteClan_MethodAndBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/v1/clans/delete", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "c1", body["clan_id"])
	})

	c, _, _ := newTestClient(t, handler, "tok123")
	require.NoError(t, c.DeleteClan(context.Background(), "c1"))
}

func TestDo_ConnectionFailure_MapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	c := NewHTTPClient(srv.URL, time.Second, &fakeTokens{token: "tok123"}, events.New())

	_, err := c.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
