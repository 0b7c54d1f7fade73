package services

import (
	"context"
	"sync"

	"github.com/ahaducoin/tapcoin/internal/client/models"
)

// fakeClient is a configurable in-memory api.Client used across the service
// tests. All fields are guarded by mu because Tap fires goroutines.
type fakeClient struct {
	mu sync.Mutex

	loginToken string
	loginErr   error
	loginUser  string
	loginPass  string

	registerErr    error
	registerCalled bool
	registered     models.Registration

	logoutErr    error
	logoutCalled bool

	user    models.User
	userErr error

	incrementErr     error
	incrementAmounts []int64

	users    []models.User
	usersErr error

	clans        []models.Clan
	clansErr     error
	listCalls    int
	createErr    error
	createCalled bool
	joinErr      error
	joinedID     string
	leaveErr     error
	leftID       string
	deleteErr    error
	deletedID    string
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginUser, f.loginPass = username, password
	return f.loginToken, f.loginErr
}

func (f *fakeClient) Register(ctx context.Context, reg models.Registration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerCalled = true
	f.registered = reg
	return f.registerErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logoutCalled = true
	return f.logoutErr
}

func (f *fakeClient) CurrentUser(ctx context.Context) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.userErr != nil {
		return nil, f.userErr
	}
	u := f.user
	return &u, nil
}

func (f *fakeClient) IncrementBalance(ctx context.Context, amount int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.incrementAmounts = append(f.incrementAmounts, amount)
	return f.incrementErr
}

func (f *fakeClient) ListUsers(ctx context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users, f.usersErr
}

func (f *fakeClient) ListClans(ctx context.Context) ([]models.Clan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.clansErr != nil {
		return nil, f.clansErr
	}
	out := make([]models.Clan, len(f.clans))
	copy(out, f.clans)
	return out, nil
}

func (f *fakeClient) CreateClan(ctx context.Context, name, description string) (*models.Clan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalled = true
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Clan{ID: "new", Name: name, Description: description}, nil
}

func (f *fakeClient) JoinClan(ctx context.Context, clanID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.joinedID = clanID
	return f.joinErr
}

func (f *fakeClient) LeaveClan(ctx context.Context, clanID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.leftID = clanID
	return f.leaveErr
}

func (f *fakeClient) DeleteClan(ctx context.Context, clanID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedID = clanID
	return f.deleteErr
}

// setClans swaps the backing clan list, simulating a server-side change.
func (f *fakeClient) setClans(clans []models.Clan) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clans = clans
}
