package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ListEvents(ctx context.Context) error
	CreateEvent(ctx context.Context) error
	RemoveEvent(ctx context.Context) error
	OpenEvent(ctx context.Context) error
	ShowEvent(ctx context.Context) error
	ShowStats(ctx context.Context) error
	AddGuest(ctx context.Context) error
	DeleteGuest(ctx context.Context) error
	GuestLink(ctx context.Context) error
	EditInvitation(ctx context.Context) error
	SaveEvent(ctx context.Context) error
	CloseEvent(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Planvite CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pv> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, create, remove, open, show, stats, addguest, delguest, link, invite, save, close, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "l", "list":
			_ = a.ListEvents(ctx)

		case "create":
			_ = a.CreateEvent(ctx)

		case "remove":
			_ = a.RemoveEvent(ctx)

		case "open":
			_ = a.OpenEvent(ctx)

		case "show":
			_ = a.ShowEvent(ctx)

		case "stats":
			_ = a.ShowStats(ctx)

		case "addguest":
			_ = a.AddGuest(ctx)

		case "delguest":
			_ = a.DeleteGuest(ctx)

		case "link":
			_ = a.GuestLink(ctx)

		case "invite":
			_ = a.EditInvitation(ctx)

		case "save":
			_ = a.SaveEvent(ctx)

		case "close":
			_ = a.CloseEvent(ctx)

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
