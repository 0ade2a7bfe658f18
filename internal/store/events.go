package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/danakir/planvite/internal/api"
	"github.com/danakir/planvite/internal/common"
	"github.com/danakir/planvite/internal/logging"
	"github.com/danakir/planvite/internal/models"
	"github.com/danakir/planvite/internal/notify"
)

// Auth is the read-only view of the session the stores gate on.
type Auth interface {
	IsAuthenticated() bool
}

// EventsStore caches the summaries of the caller's events. It never holds
// full entities; those belong to the current-event store.
type EventsStore struct {
	api    api.Client
	auth   Auth
	notify notify.Sink
	log    logging.Logger

	mu        sync.RWMutex
	state     QueryState
	summaries []models.EventSummary
}

func NewEventsStore(apiClient api.Client, auth Auth, sink notify.Sink, log logging.Logger) *EventsStore {
	return &EventsStore{
		api:    apiClient,
		auth:   auth,
		notify: sink,
		log:    log.With("store", "events"),
		state:  QueryState{Status: StatusIdle},
	}
}

// State returns the current query-state envelope.
func (s *EventsStore) State() QueryState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Summaries returns a copy of the cached collection.
func (s *EventsStore) Summaries() []models.EventSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.EventSummary, len(s.summaries))
	copy(out, s.summaries)
	return out
}

// FetchAll reloads the collection. While anonymous it is an immediate no-op:
// no request is issued and the cache is untouched. On failure the previous
// successful payload is retained (stale but visible) under an error state.
// Two overlapping fetches are not deduplicated; the last settlement wins.
func (s *EventsStore) FetchAll(ctx context.Context) error {
	if !s.auth.IsAuthenticated() {
		s.log.Debug(ctx, "fetch skipped, not authenticated")
		return nil
	}

	s.setStatus(StatusLoading, nil)

	summaries, err := s.api.FetchEvents(ctx)
	if err != nil {
		s.setStatus(StatusError, err)
		s.log.Error(ctx, "failed to fetch events", "error", err)
		return err
	}

	s.mu.Lock()
	s.summaries = summaries
	s.state = QueryState{Status: StatusReady}
	s.mu.Unlock()
	return nil
}

// Create is the two-phase creation flow: request an AI-generated draft, then
// persist it. If generation fails nothing happens locally. If persistence
// fails the draft is discarded; no partial entity is ever visible. On full
// success the stored entity is appended at the end of the collection.
func (s *EventsStore) Create(ctx context.Context, prompt string) (*models.Event, error) {
	if strings.TrimSpace(prompt) == "" {
		err := fmt.Errorf("%w: empty prompt", common.ErrValidation)
		s.notify.Error("Failed to create event.")
		return nil, err
	}

	draft, err := s.api.GenerateEvent(ctx, prompt)
	if err != nil {
		s.notify.Error("Failed to create event.")
		s.log.Error(ctx, "event generation failed", "error", err)
		return nil, err
	}

	event, err := s.api.CreateEvent(ctx, draft)
	if err != nil {
		s.notify.Error("Failed to create event.")
		s.log.Error(ctx, "event creation failed", "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.summaries = append(s.summaries, event.Summary())
	s.mu.Unlock()

	s.notify.Success("Event created successfully!")
	return event, nil
}

// Remove deletes an event server-side first and splices it out of the cache
// only once the server confirms.
func (s *EventsStore) Remove(ctx context.Context, eventID int64) error {
	if err := s.api.DeleteEvent(ctx, eventID); err != nil {
		s.notify.Error("Failed to delete event.")
		s.log.Error(ctx, "event deletion failed", "id", eventID, "error", err)
		return err
	}

	s.mu.Lock()
	kept := s.summaries[:0:0]
	for _, summary := range s.summaries {
		if summary.ID != eventID {
			kept = append(kept, summary)
		}
	}
	s.summaries = kept
	s.mu.Unlock()

	s.notify.Success("Event deleted successfully")
	return nil
}

func (s *EventsStore) setStatus(status Status, err error) {
	s.mu.Lock()
	s.state = QueryState{Status: status, Err: err}
	s.mu.Unlock()
}
