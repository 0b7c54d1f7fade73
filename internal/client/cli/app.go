package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/ahaducoin/tapcoin/internal/client/api"
	"github.com/ahaducoin/tapcoin/internal/client/config"
	"github.com/ahaducoin/tapcoin/internal/client/services"
	"github.com/ahaducoin/tapcoin/internal/client/storage"
	"github.com/ahaducoin/tapcoin/internal/devicex"
	"github.com/ahaducoin/tapcoin/internal/events"
	"github.com/ahaducoin/tapcoin/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config      *config.Config
	auth        services.AuthService
	clans       services.ClanService
	balance     services.BalanceService
	leaderboard services.LeaderboardService
	bus         *events.Bus
	reader      *bufio.Reader

	mu         sync.Mutex
	userName   string
	stopTicker context.CancelFunc
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	logger := logging.NewSlogLogger(slog.Default())

	store := services.NewTokenStore(db, devicex.Fingerprint())
	bus := events.New()
	apiClient := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, store, bus)

	app := &App{
		config:      cfg,
		auth:        services.NewAuthService(apiClient, store, logger),
		clans:       services.NewClanService(apiClient, logger),
		balance:     services.NewBalanceService(apiClient, logger, cfg.PollInterval),
		leaderboard: services.NewLeaderboardService(apiClient, logger),
		bus:         bus,
		reader:      bufio.NewReader(os.Stdin),
	}

	if err := bus.SubscribeSessionInvalidated(app.onSessionInvalidated); err != nil {
		return nil, err
	}

	return app, nil
}

// Run restores any persisted session and then drives the REPL until the user
// exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	if username, ok, err := a.auth.Restore(ctx); err != nil {
		fmt.Printf("Could not restore session: %v\n", err)
	} else if ok {
		fmt.Printf("Welcome back, %s!\n", username)
		a.beginSession(ctx, username)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)

	// The REPL is gone; stop reacting to invalidation events before tearing
	// the session down.
	_ = a.bus.UnsubscribeSessionInvalidated(a.onSessionInvalidated)
	a.endSession()
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.userName != ""
}

func (a *App) currentUser() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.userName
}

// beginSession marks the user as authenticated and starts the balance ticker
// in a scope that ends with the session, so the poll goroutine can never
// outlive it.
func (a *App) beginSession(ctx context.Context, username string) {
	a.endSession()

	tickerCtx, cancel := context.WithCancel(ctx)

	a.mu.Lock()
	a.userName = username
	a.stopTicker = cancel
	a.mu.Unlock()

	go a.balance.Run(tickerCtx)
}

// endSession stops the balance ticker and forgets the user. Safe to call
// when no session is active.
func (a *App) endSession() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopTicker != nil {
		a.stopTicker()
		a.stopTicker = nil
	}
	a.userName = ""
}

// onSessionInvalidated fires when an authenticated call was rejected and the
// stored token has been cleared. The event is published once per
// invalidation, so the user is routed to the login prompt exactly once.
func (a *App) onSessionInvalidated(reason string) {
	a.endSession()
	printlnFn("Session expired, please login again.")
}
