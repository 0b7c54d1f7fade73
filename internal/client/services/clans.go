package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/ahaducoin/tapcoin/internal/client/api"
	"github.com/ahaducoin/tapcoin/internal/client/models"
	"github.com/ahaducoin/tapcoin/internal/logging"
)

// ErrClanFieldsRequired is reported before any network call when the
// clan-creation form is incomplete.
var ErrClanFieldsRequired = errors.New("Clan name and description are required.")

// ClanViewState is the explicit state of the clan list view. The view is
// never described by ad hoc flag combinations: it is Loading, Loaded or
// Errored, nothing else.
type ClanViewState int

const (
	StateLoading ClanViewState = iota
	StateLoaded
	StateErrored
)

// ClanView is a snapshot of the clan list view. Expanded holds the id of the
// single expanded clan, or "" when all are collapsed.
type ClanView struct {
	State    ClanViewState
	Clans    []models.Clan
	Expanded string
	ErrMsg   string
}

// Empty reports the distinguished "no clans yet" condition: a successful
// fetch that returned nothing. It is informational, not an error.
func (v ClanView) Empty() bool {
	return v.State == StateLoaded && len(v.Clans) == 0
}

// ClanService keeps the client-visible clan collection consistent with the
// backend. Every successful mutation is followed by an unconditional
// full-list refetch — membership changes affect other users too, so partial
// patching would drift.
type ClanService interface {
	Refresh(ctx context.Context) error
	Create(ctx context.Context, name, description string) error
	Join(ctx context.Context, clanID string) error
	Leave(ctx context.Context, clanID string) error
	Delete(ctx context.Context, clanID string) error

	// ToggleExpand expands the given clan, collapsing any other; toggling
	// the already-expanded id collapses it. Returns the resulting expanded
	// id ("" when collapsed).
	ToggleExpand(clanID string) string

	View() ClanView
}

type clanService struct {
	client api.Client
	log    logging.Logger

	mu   sync.Mutex
	view ClanView
}

func NewClanService(client api.Client, log logging.Logger) ClanService {
	return &clanService{
		client: client,
		log:    log,
		view:   ClanView{State: StateLoading},
	}
}

// Refresh replaces the whole collection with a fresh fetch. An empty result
// lands in Loaded (the "no clans" condition), never in Errored.
func (s *clanService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.view.State = StateLoading
	s.view.ErrMsg = ""
	s.mu.Unlock()

	clans, err := s.client.ListClans(ctx)
	if err != nil {
		s.mu.Lock()
		s.view.State = StateErrored
		s.view.ErrMsg = err.Error()
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.view.State = StateLoaded
	s.view.Clans = clans
	if s.view.Expanded != "" && !containsClan(clans, s.view.Expanded) {
		s.view.Expanded = ""
	}
	s.mu.Unlock()

	s.log.Info(ctx, "clan list refreshed", "count", len(clans))
	return nil
}

func (s *clanService) Create(ctx context.Context, name, description string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return ErrClanFieldsRequired
	}

	if _, err := s.client.CreateClan(ctx, name, description); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *clanService) Join(ctx context.Context, clanID string) error {
	if err := s.client.JoinClan(ctx, clanID); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *clanService) Leave(ctx context.Context, clanID string) error {
	if err := s.client.LeaveClan(ctx, clanID); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// Delete is only offered to leaders by the UI, but the backend re-validates;
// the client does not.
func (s *clanService) Delete(ctx context.Context, clanID string) error {
	if err := s.client.DeleteClan(ctx, clanID); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *clanService) ToggleExpand(clanID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view.State != StateLoaded || !containsClan(s.view.Clans, clanID) {
		return s.view.Expanded
	}
	if s.view.Expanded == clanID {
		s.view.Expanded = ""
	} else {
		s.view.Expanded = clanID
	}
	return s.view.Expanded
}

// View returns a copy of the current snapshot.
func (s *clanService) View() ClanView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.view
	v.Clans = make([]models.Clan, len(s.view.Clans))
	copy(v.Clans, s.view.Clans)
	return v
}

func containsClan(clans []models.Clan, id string) bool {
	for _, c := range clans {
		if c.ID == id {
			return true
		}
	}
	return false
}
