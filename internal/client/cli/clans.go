package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ahaducoin/tapcoin/internal/client/services"
)

// Clans refetches the clan list and renders the resulting snapshot.
func (a *App) Clans(ctx context.Context) error {
	if err := a.clans.Refresh(ctx); err != nil {
		// The view carries the error message; render it like any other state.
		a.printClanView()
		return err
	}
	a.printClanView()
	return nil
}

// ToggleClan expands the given clan (collapsing any other) or collapses it
// when it is already expanded, then re-renders the list.
func (a *App) ToggleClan(ctx context.Context, clanID string) error {
	a.clans.ToggleExpand(clanID)
	a.printClanView()
	return nil
}

// CreateClan prompts for a name and description, creates the clan and shows
// the refreshed list.
func (a *App) CreateClan(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Clan name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.clans.Create(ctx, name, description); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Clan created.")
	a.printClanView()
	return nil
}

// JoinClan joins the clan and shows the refreshed list. A backend rejection
// (for example when the user already belongs to a clan) is shown verbatim.
func (a *App) JoinClan(ctx context.Context, clanID string) error {
	if err := a.clans.Join(ctx, clanID); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Joined clan.")
	a.printClanView()
	return nil
}

// LeaveClan leaves the clan and shows the refreshed list.
func (a *App) LeaveClan(ctx context.Context, clanID string) error {
	if err := a.clans.Leave(ctx, clanID); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Left clan.")
	a.printClanView()
	return nil
}

// DeleteClan deletes the clan and shows the refreshed list. The backend
// enforces that only the leader may delete.
func (a *App) DeleteClan(ctx context.Context, clanID string) error {
	if err := a.clans.Delete(ctx, clanID); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Clan deleted.")
	a.printClanView()
	return nil
}

// printClanView renders the current clan snapshot: one line per clan plus,
// for the expanded clan, its details and the single action available to the
// viewer.
func (a *App) printClanView() {
	view := a.clans.View()

	switch view.State {
	case services.StateLoading:
		printlnFn("Loading clans...")
		return
	case services.StateErrored:
		printlnFn("Could not load clans:", view.ErrMsg)
		return
	}

	if view.Empty() {
		printlnFn("No clans yet. Create the first one with 'createclan'.")
		return
	}

	viewer := a.currentUser()
	for _, c := range view.Clans {
		printlnFn(fmt.Sprintf("[%s] %s (%d members)", c.ID, c.Name, len(c.Members)))
		if view.Expanded != c.ID {
			continue
		}
		printlnFn("    Leader:", c.Leader)
		printlnFn("    About:", c.Description)
		if len(c.Members) > 0 {
			printlnFn("    Members:", strings.Join(c.Members, ", "))
		}
		printlnFn("    Action:", c.ActionFor(viewer).String())
	}
}
