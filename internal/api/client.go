// Package api is the single outbound request pipeline of the client. It
// attaches the current session token to every call, centralizes base-URL
// configuration, and normalizes HTTP and transport failures into
// *RequestError values. It never retries; retry policy belongs to callers.
package api

import (
	"context"
	"encoding/json"

	"github.com/danakir/planvite/internal/models"
)

// TokenSource supplies the bearer token attached to outbound requests.
// It is consulted at call time, not at construction time, because the
// session can change between client creation and any given call.
type TokenSource interface {
	Token() string
}

// Client is the surface of the Planvite backend as seen by the stores and
// the session manager. One method per REST call.
type Client interface {
	// Login exchanges credentials for a signed session token.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// Register creates an account. It does not authenticate.
	Register(ctx context.Context, creds models.Credentials) error

	// FetchEvents lists the caller's events as summaries.
	FetchEvents(ctx context.Context) ([]models.EventSummary, error)

	// GenerateEvent asks the AI endpoint for an event draft. The draft is
	// opaque to the client and is passed to CreateEvent verbatim; the server
	// owns its shape.
	GenerateEvent(ctx context.Context, prompt string) (json.RawMessage, error)

	// CreateEvent persists a generated draft and returns the stored entity
	// with its server-assigned id.
	CreateEvent(ctx context.Context, draft json.RawMessage) (*models.Event, error)

	// FetchEvent loads one event with its guests folded in.
	FetchEvent(ctx context.Context, id int64) (*models.Event, error)

	// UpdateEvent pushes a full event and returns the server's canonical
	// representation.
	UpdateEvent(ctx context.Context, event *models.Event) (*models.Event, error)

	// DeleteEvent removes an event.
	DeleteEvent(ctx context.Context, id int64) error

	// AddGuest creates a guest under an event and returns it with its
	// server-assigned id.
	AddGuest(ctx context.Context, eventID int64, name, phone string) (*models.Guest, error)

	// DeleteGuest removes a guest.
	DeleteGuest(ctx context.Context, guestID int64) error
}
