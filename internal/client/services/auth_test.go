package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahaducoin/tapcoin/internal/client/models"
)

func TestAuthService_Login_PersistsSession(t *testing.T) {
	store := NewTokenStore(setupDB(t), "machine-a")
	client := &fakeClient{loginToken: "tok123"}
	auth := NewAuthService(client, store, discardLogger())
	ctx := context.Background()

	require.NoError(t, auth.Login(ctx, "alice", "secret1"))
	assert.Equal(t, "alice", client.loginUser)
	assert.Equal(t, "secret1", client.loginPass)

	token, username, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)
	assert.Equal(t, "alice", username)
}

func TestAuthService_Login_FailureLeavesPriorSession(t *testing.T) {
	store := NewTokenStore(setupDB(t), "machine-a")
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "old-token", "alice"))

	client := &fakeClient{loginErr: errors.New("invalid credentials")}
	auth := NewAuthService(client, store, discardLogger())

	require.Error(t, auth.Login(ctx, "alice", "wrong"))

	token, _, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "old-token", token)
}

func TestAuthService_Register_ValidationStopsBeforeNetwork(t *testing.T) {
	client := &fakeClient{}
	auth := NewAuthService(client, NewTokenStore(setupDB(t), "machine-a"), discardLogger())

	reg := models.Registration{
		FirstName: "Alice", LastName: "Smith", Email: "alice@example.org",
		Username: "alice", Password: "abc", ConfirmPassword: "xyz",
	}

	err := auth.Register(context.Background(), reg)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrPasswordMismatch)
	assert.ErrorIs(t, err, models.ErrPasswordTooShort)
	assert.False(t, client.registerCalled)
}

func TestAuthService_Register_SubmitsValidForm(t *testing.T) {
	client := &fakeClient{}
	auth := NewAuthService(client, NewTokenStore(setupDB(t), "machine-a"), discardLogger())

	reg := models.Registration{
		FirstName: "Alice", LastName: "Smith", Email: "alice@example.org",
		Username: "alice", Password: "secret1", ConfirmPassword: "secret1",
	}

	require.NoError(t, auth.Register(context.Background(), reg))
	assert.True(t, client.registerCalled)
	assert.Equal(t, "alice", client.registered.Username)
}

func TestAuthService_Logout_ClearsSlotEvenWhenServerCallFails(t *testing.T) {
	store := NewTokenStore(setupDB(t), "machine-a")
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "tok123", "alice"))

	client := &fakeClient{logoutErr: errors.New("network down")}
	auth := NewAuthService(client, store, discardLogger())

	require.NoError(t, auth.Logout(ctx))
	assert.True(t, client.logoutCalled)

	token, _, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestAuthService_Restore(t *testing.T) {
	store := NewTokenStore(setupDB(t), "machine-a")
	auth := NewAuthService(&fakeClient{}, store, discardLogger())
	ctx := context.Background()

	// nothing stored
	_, ok, err := auth.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// opaque token: trusted as-is
	require.NoError(t, store.Save(ctx, "opaque-token", "alice"))
	username, ok, err := auth.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", username)
}

func TestAuthService_Restore_DiscardsExpiredJWT(t *testing.T) {
	store := NewTokenStore(setupDB(t), "machine-a")
	auth := NewAuthService(&fakeClient{}, store, discardLogger())
	ctx := context.Background()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	token, err := expired.SignedString([]byte("test-key"))
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, token, "alice"))

	_, ok, err := auth.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// slot was cleared
	stored, _, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestAuthService_Restore_KeepsUnexpiredJWT(t *testing.T) {
	store := NewTokenStore(setupDB(t), "machine-a")
	auth := NewAuthService(&fakeClient{}, store, discardLogger())
	ctx := context.Background()

	valid := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := valid.SignedString([]byte("test-key"))
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, token, "alice"))

	username, ok, err := auth.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", username)
}
