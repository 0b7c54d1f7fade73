package cli

import (
	"context"
	"fmt"
)

// Tap registers count taps. Each tap bumps the displayed balance
// immediately; the matching server updates run in the background and drift
// is corrected by the next poll.
func (a *App) Tap(ctx context.Context, count int) error {
	var total int64
	for i := 0; i < count; i++ {
		total = a.balance.Tap(ctx)
	}
	printlnFn(fmt.Sprintf("+%d! Balance: %d coins", count, total))
	return nil
}

// Balance shows the currently displayed balance. Before the first successful
// poll there is nothing to show yet.
func (a *App) Balance(ctx context.Context) error {
	displayed, loaded := a.balance.Displayed()
	if !loaded {
		printlnFn("Balance not loaded yet, try again in a moment.")
		return nil
	}
	printlnFn(fmt.Sprintf("Balance: %d coins", displayed))
	return nil
}
