package services

import (
	"context"
	"sync"
	"time"

	"github.com/ahaducoin/tapcoin/internal/client/api"
	"github.com/ahaducoin/tapcoin/internal/logging"
)

// BalanceService maintains the displayed coin balance: an optimistic local
// counter incremented on every tap and periodically reconciled with the
// authoritative server value.
type BalanceService interface {
	// Run fetches the profile once, then polls it on the configured interval
	// until ctx is cancelled. It blocks; run it in its own goroutine scoped
	// to the authenticated session.
	Run(ctx context.Context)

	// Tap increments the displayed balance immediately and fires an
	// asynchronous increment request carrying the new total. A failed
	// request is logged, never rolled back; the next poll corrects drift.
	Tap(ctx context.Context) int64

	// Displayed returns the current balance and whether a server value has
	// been loaded at least once.
	Displayed() (int64, bool)

	Username() string
}

type balanceService struct {
	client   api.Client
	log      logging.Logger
	interval time.Duration

	mu         sync.Mutex
	displayed  int64
	username   string
	loaded     bool
	nextSeq    uint64
	appliedSeq uint64
}

func NewBalanceService(client api.Client, log logging.Logger, interval time.Duration) BalanceService {
	return &balanceService{client: client, log: log, interval: interval}
}

func (b *balanceService) Run(ctx context.Context) {
	b.refresh(ctx)

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			b.refresh(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// refresh fetches the profile and applies it. Each fetch takes a sequence
// number before the request goes out; a response that would land behind a
// newer applied one is dropped, so a slow poll can never overwrite a fresher
// server value.
func (b *balanceService) refresh(ctx context.Context) {
	b.mu.Lock()
	b.nextSeq++
	seq := b.nextSeq
	b.mu.Unlock()

	user, err := b.client.CurrentUser(ctx)
	if err != nil {
		b.log.Warn(ctx, "balance poll failed", "error", err)
		return
	}

	b.apply(seq, user.CoinBalance, user.Username)
}

func (b *balanceService) apply(seq uint64, balance int64, username string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if seq < b.appliedSeq {
		return
	}
	b.appliedSeq = seq
	b.displayed = balance
	b.username = username
	b.loaded = true
}

func (b *balanceService) Tap(ctx context.Context) int64 {
	b.mu.Lock()
	b.displayed++
	total := b.displayed
	b.mu.Unlock()

	go func() {
		if err := b.client.IncrementBalance(ctx, total); err != nil {
			b.log.Warn(ctx, "balance increment failed, server will catch up on next poll", "error", err)
		}
	}()

	return total
}

func (b *balanceService) Displayed() (int64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.displayed, b.loaded
}

func (b *balanceService) Username() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.username
}
