package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ahaducoin/tapcoin/internal/client/repositories/session"
	"github.com/ahaducoin/tapcoin/internal/cryptox"
	"github.com/ahaducoin/tapcoin/internal/dbx"
)

// Keys of the durable session slot.
const (
	keyToken    = "token"
	keyUsername = "username"
	keySalt     = "salt"
)

const sealSaltSize = 16

// TokenStore is the single process-wide session slot. The token is sealed at
// rest under a key derived from the machine fingerprint, so copying the
// database file to another machine yields nothing usable.
//
// TokenStore implements api.TokenSource: the API client reads the freshest
// stored token on every request and clears the slot on auth rejection.
type TokenStore struct {
	db          *sql.DB
	fingerprint string
}

func NewTokenStore(db *sql.DB, fingerprint string) *TokenStore {
	return &TokenStore{db: db, fingerprint: fingerprint}
}

func (s *TokenStore) repo(db dbx.DBTX) session.Repository {
	return session.NewSQLiteRepository(db)
}

// Save seals and persists the token together with the username, replacing
// whatever session was stored before, in a single transaction.
func (s *TokenStore) Save(ctx context.Context, token, username string) error {
	salt := cryptox.GenerateRandByteArray(sealSaltSize)
	key := cryptox.DeriveSealKey(s.fingerprint, salt)

	sealed, err := cryptox.Seal([]byte(token), key)
	if err != nil {
		return fmt.Errorf("seal token: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, keySalt, salt); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyToken, sealed); err != nil {
			return err
		}
		return repo.Set(ctx, keyUsername, []byte(username))
	})
}

// Load reads and unseals the stored session. A missing slot returns empty
// strings with no error. An unsealable slot (machine changed, corrupt data)
// is cleared and treated as no session.
func (s *TokenStore) Load(ctx context.Context) (token, username string, err error) {
	repo := s.repo(s.db)

	sealed, err := repo.Get(ctx, keyToken)
	if err != nil {
		return "", "", err
	}
	if sealed == nil {
		return "", "", nil
	}

	salt, err := repo.Get(ctx, keySalt)
	if err != nil {
		return "", "", err
	}

	plain, err := cryptox.Open(sealed, cryptox.DeriveSealKey(s.fingerprint, salt))
	if err != nil {
		_, clearErr := s.Clear(ctx)
		return "", "", clearErr
	}

	name, err := repo.Get(ctx, keyUsername)
	if err != nil {
		return "", "", err
	}

	return string(plain), string(name), nil
}

// Clear empties the slot and reports whether a token was actually cleared.
// The keyed delete decides existence atomically: when concurrent 401s race,
// exactly one caller wins and acts on the invalidation.
func (s *TokenStore) Clear(ctx context.Context) (bool, error) {
	repo := s.repo(s.db)

	deleted, err := repo.Delete(ctx, keyToken)
	if err != nil {
		return false, err
	}

	if err := repo.Clear(ctx); err != nil {
		return false, err
	}

	return deleted, nil
}

// Token implements api.TokenSource.
func (s *TokenStore) Token(ctx context.Context) (string, error) {
	token, _, err := s.Load(ctx)
	return token, err
}

// Invalidate implements api.TokenSource.
func (s *TokenStore) Invalidate(ctx context.Context) (bool, error) {
	return s.Clear(ctx)
}
