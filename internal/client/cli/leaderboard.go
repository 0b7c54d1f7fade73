package cli

import (
	"context"
	"fmt"
)

// Top fetches and renders the global leaderboard, ranked by coin balance.
func (a *App) Top(ctx context.Context) error {
	users, err := a.leaderboard.Top(ctx)
	if err != nil {
		printlnFn("Could not load leaderboard:", err.Error())
		return err
	}

	if len(users) == 0 {
		printlnFn("Nobody on the leaderboard yet.")
		return nil
	}

	printlnFn("Leaderboard:")
	for i, u := range users {
		printlnFn(fmt.Sprintf("%d. %s: %d coins", i+1, u.Username, u.CoinBalance))
	}
	return nil
}
