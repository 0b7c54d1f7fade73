package cli

import (
	"context"
	"fmt"

	"github.com/ahaducoin/tapcoin/internal/client/models"
)

// Boosts shows the boost shop catalog. The shop is display-only.
func (a *App) Boosts(ctx context.Context) error {
	printlnFn("Boost shop:")
	for _, b := range models.BoostCatalog() {
		printlnFn(fmt.Sprintf("%d. %s (%s) - %d coins", b.ID, b.Name, b.Duration, b.Price))
	}
	return nil
}

// Earn shows the available earn offerings.
func (a *App) Earn(ctx context.Context) error {
	printlnFn("Ways to earn:")
	for _, o := range models.EarnOptions() {
		printlnFn(" -", o)
	}
	return nil
}
