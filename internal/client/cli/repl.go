package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Tap(ctx context.Context, count int) error
	Balance(ctx context.Context) error
	Clans(ctx context.Context) error
	ToggleClan(ctx context.Context, id string) error
	CreateClan(ctx context.Context) error
	JoinClan(ctx context.Context, id string) error
	LeaveClan(ctx context.Context, id string) error
	DeleteClan(ctx context.Context, id string) error
	Top(ctx context.Context) error
	Boosts(ctx context.Context) error
	Earn(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the tapcoin CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - tap [n]        — tap the coin n times (default 1)
//	  - balance        — show the displayed balance
//	  - clans          — refresh and show the clan list
//	  - clan <id>      — expand/collapse a clan
//	  - createclan     — create a clan (interactive prompts)
//	  - join <id>      — join a clan
//	  - leave <id>     — leave a clan
//	  - deleteclan <id> — delete a clan you lead
//	  - top            — show the leaderboard
//	  - boosts         — show the boost shop
//	  - earn           — show earn offerings
//	  - whoami         — show the logged-in user
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	// Commands that operate on the authenticated session. Everything else is
	// available before login.
	sessionCommands := map[string]bool{
		"tap": true, "balance": true, "clans": true, "clan": true,
		"createclan": true, "join": true, "leave": true, "deleteclan": true,
		"top": true, "leaderboard": true, "boosts": true, "earn": true,
		"whoami": true, "logout": true,
	}

	for {
		printlnFn(fmt.Sprintf("tapcoin %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if sessionCommands[cmd] && !a.isLoggedIn() {
			printlnFn("Please login first.")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: tap [n], balance, clans, clan <id>, createclan, join <id>, leave <id>, deleteclan <id>, top, boosts, earn, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "tap":
			count := 1
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					printlnFn("Usage: tap [n]")
					continue
				}
				count = n
			}
			_ = a.Tap(ctx, count)

		case "balance":
			_ = a.Balance(ctx)

		case "clans":
			_ = a.Clans(ctx)

		case "clan":
			if len(args) == 0 {
				printlnFn("Usage: clan <id>")
				continue
			}
			_ = a.ToggleClan(ctx, args[0])

		case "createclan":
			_ = a.CreateClan(ctx)

		case "join":
			if len(args) == 0 {
				printlnFn("Usage: join <id>")
				continue
			}
			_ = a.JoinClan(ctx, args[0])

		case "leave":
			if len(args) == 0 {
				printlnFn("Usage: leave <id>")
				continue
			}
			_ = a.LeaveClan(ctx, args[0])

		case "deleteclan":
			if len(args) == 0 {
				printlnFn("Usage: deleteclan <id>")
				continue
			}
			_ = a.DeleteClan(ctx, args[0])

		case "top", "leaderboard":
			_ = a.Top(ctx)

		case "boosts":
			_ = a.Boosts(ctx)

		case "earn":
			_ = a.Earn(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
