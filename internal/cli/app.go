// Package cli is the terminal surface of the Planvite client: a REPL whose
// commands drive the session manager and the entity stores. All domain and
// session logic lives below this package; handlers only collect input,
// dispatch, and print.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/danakir/planvite/internal/api"
	"github.com/danakir/planvite/internal/config"
	"github.com/danakir/planvite/internal/credstore"
	"github.com/danakir/planvite/internal/logging"
	"github.com/danakir/planvite/internal/notify"
	"github.com/danakir/planvite/internal/session"
	"github.com/danakir/planvite/internal/store"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	session *session.Manager
	events  *store.EventsStore
	current *store.CurrentEventStore
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp wires the full client: logger, API gateway, credential store,
// session, and entity stores. The gateway is created before the session and
// receives it as token source afterwards; that ordering breaks the circular
// init dependency between the two.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	sink := notify.NewLogSink(log)

	apiClient := api.NewRESTClient(cfg.BaseURL, cfg.RequestTimeout, log)

	db, err := credstore.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init credential database: %w", err)
	}

	sessionManager := session.NewManager(apiClient, credstore.NewSQLiteStore(db), sink, log, cfg.TokenTTL)
	apiClient.SetTokenSource(sessionManager)

	app := &App{
		config:  cfg,
		session: sessionManager,
		events:  store.NewEventsStore(apiClient, sessionManager, sink, log),
		current: store.NewCurrentEventStore(apiClient, sink, log),
		log:     log.With("component", "cli"),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	// Routing collaborator: dropping back to the anonymous region tears down
	// the detail view.
	sessionManager.SetAuthChangeListener(func(authenticated bool) {
		if !authenticated {
			app.current.Clear()
		}
	})

	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if user, ok := a.session.User(); ok {
		return fmt.Sprintf("(%s)", user.Email)
	}
	return ""
}

// Run hydrates the session from the durable slot and enters the REPL.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Hydrate(ctx); err != nil {
		a.log.Warn(ctx, "session hydration failed", "error", err)
	}

	fmt.Fprintln(a.out, "Welcome to Planvite CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// checkAuth handles the session-expiry obligation: a 401 from any
// authenticated call means the token is no longer accepted, and the client
// must drop to the anonymous state itself; the gateway only reports it.
func (a *App) checkAuth(ctx context.Context, err error) {
	if api.IsAuthError(err) && a.session.IsAuthenticated() {
		a.log.Info(ctx, "session rejected by server, logging out")
		a.session.Logout(ctx)
	}
}
