package store

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/danakir/planvite/internal/logging"
	"github.com/danakir/planvite/internal/models"
)

// fakeAPI implements api.Client with per-method function hooks so tests can
// observe mid-flight state and sequence settlements. Unset hooks return
// zero values.
type fakeAPI struct {
	loginFn       func(ctx context.Context, creds models.Credentials) (string, error)
	registerFn    func(ctx context.Context, creds models.Credentials) error
	fetchEventsFn func(ctx context.Context) ([]models.EventSummary, error)
	generateFn    func(ctx context.Context, prompt string) (json.RawMessage, error)
	createFn      func(ctx context.Context, draft json.RawMessage) (*models.Event, error)
	fetchEventFn  func(ctx context.Context, id int64) (*models.Event, error)
	updateFn      func(ctx context.Context, event *models.Event) (*models.Event, error)
	deleteEventFn func(ctx context.Context, id int64) error
	addGuestFn    func(ctx context.Context, eventID int64, name, phone string) (*models.Guest, error)
	deleteGuestFn func(ctx context.Context, guestID int64) error

	fetchEventsCalls int
	createCalls      int
}

func (f *fakeAPI) Login(ctx context.Context, creds models.Credentials) (string, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, creds)
	}
	return "", nil
}

func (f *fakeAPI) Register(ctx context.Context, creds models.Credentials) error {
	if f.registerFn != nil {
		return f.registerFn(ctx, creds)
	}
	return nil
}

func (f *fakeAPI) FetchEvents(ctx context.Context) ([]models.EventSummary, error) {
	f.fetchEventsCalls++
	if f.fetchEventsFn != nil {
		return f.fetchEventsFn(ctx)
	}
	return nil, nil
}

func (f *fakeAPI) GenerateEvent(ctx context.Context, prompt string) (json.RawMessage, error) {
	if f.generateFn != nil {
		return f.generateFn(ctx, prompt)
	}
	return nil, nil
}

func (f *fakeAPI) CreateEvent(ctx context.Context, draft json.RawMessage) (*models.Event, error) {
	f.createCalls++
	if f.createFn != nil {
		return f.createFn(ctx, draft)
	}
	return &models.Event{}, nil
}

func (f *fakeAPI) FetchEvent(ctx context.Context, id int64) (*models.Event, error) {
	if f.fetchEventFn != nil {
		return f.fetchEventFn(ctx, id)
	}
	return &models.Event{}, nil
}

func (f *fakeAPI) UpdateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, event)
	}
	return event, nil
}

func (f *fakeAPI) DeleteEvent(ctx context.Context, id int64) error {
	if f.deleteEventFn != nil {
		return f.deleteEventFn(ctx, id)
	}
	return nil
}

func (f *fakeAPI) AddGuest(ctx context.Context, eventID int64, name, phone string) (*models.Guest, error) {
	if f.addGuestFn != nil {
		return f.addGuestFn(ctx, eventID, name, phone)
	}
	return &models.Guest{}, nil
}

func (f *fakeAPI) DeleteGuest(ctx context.Context, guestID int64) error {
	if f.deleteGuestFn != nil {
		return f.deleteGuestFn(ctx, guestID)
	}
	return nil
}

type fakeAuth struct {
	authenticated bool
}

func (f *fakeAuth) IsAuthenticated() bool { return f.authenticated }

type recorderSink struct {
	successes []string
	errors    []string
}

func (r *recorderSink) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recorderSink) Error(msg string)   { r.errors = append(r.errors, msg) }

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
