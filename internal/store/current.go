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

// CurrentEventStore owns the one fully-loaded event detail, guests and
// invitation included. Settlements arriving after Clear (the detail view is
// gone) silently no-op instead of resurrecting state.
type CurrentEventStore struct {
	api    api.Client
	notify notify.Sink
	log    logging.Logger

	mu    sync.RWMutex
	state QueryState
	event *models.Event
}

func NewCurrentEventStore(apiClient api.Client, sink notify.Sink, log logging.Logger) *CurrentEventStore {
	return &CurrentEventStore{
		api:    apiClient,
		notify: sink,
		log:    log.With("store", "current_event"),
		state:  QueryState{Status: StatusIdle},
	}
}

// State returns the current query-state envelope.
func (s *CurrentEventStore) State() QueryState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Event returns a copy of the loaded event, ok=false when none is loaded.
func (s *CurrentEventStore) Event() (models.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.event == nil {
		return models.Event{}, false
	}
	out := *s.event
	out.Guests = make([]models.Guest, len(s.event.Guests))
	copy(out.Guests, s.event.Guests)
	return out, true
}

// Load replaces the whole detail state with server data. The loading status
// is set before the request so a pending state is observable. Load failure
// is foundational: the previous detail is discarded, not kept stale.
func (s *CurrentEventStore) Load(ctx context.Context, eventID int64) error {
	s.mu.Lock()
	s.state = QueryState{Status: StatusLoading}
	s.mu.Unlock()

	event, err := s.api.FetchEvent(ctx, eventID)
	if err != nil {
		s.mu.Lock()
		s.event = nil
		s.state = QueryState{Status: StatusError, Err: err}
		s.mu.Unlock()
		s.log.Error(ctx, "failed to load event", "id", eventID, "error", err)
		return err
	}

	s.mu.Lock()
	s.event = event
	s.state = QueryState{Status: StatusReady}
	s.mu.Unlock()
	return nil
}

// Save pushes the full draft and, on success, replaces the cache with the
// server's canonical representation (replace, not merge). If the store was
// cleared or switched to another event while the call was in flight, the
// settlement is dropped.
func (s *CurrentEventStore) Save(ctx context.Context, draft models.Event) error {
	updated, err := s.api.UpdateEvent(ctx, &draft)
	if err != nil {
		s.notify.Error("Failed to save changes.")
		s.log.Error(ctx, "failed to save event", "id", draft.ID, "error", err)
		return err
	}

	s.mu.Lock()
	if s.event != nil && s.event.ID == updated.ID {
		s.event = updated
	}
	s.mu.Unlock()

	s.notify.Success("Event details saved!")
	return nil
}

// AddGuest creates the guest server-side and appends it only once the
// server returns it with its assigned id.
func (s *CurrentEventStore) AddGuest(ctx context.Context, eventID int64, name, phone string) (*models.Guest, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" {
		err := fmt.Errorf("%w: guest name and phone are required", common.ErrValidation)
		s.notify.Error("Failed to add guest.")
		return nil, err
	}

	guest, err := s.api.AddGuest(ctx, eventID, name, phone)
	if err != nil {
		s.notify.Error("Failed to add guest.")
		s.log.Error(ctx, "failed to add guest", "event_id", eventID, "error", err)
		return nil, err
	}

	s.mu.Lock()
	if s.event != nil && s.event.ID == eventID {
		s.event.Guests = append(s.event.Guests, *guest)
	}
	s.mu.Unlock()

	s.notify.Success("Guest added successfully!")
	return guest, nil
}

// RemoveGuest deletes the guest server-side and filters it out of the cache
// by identity once confirmed.
func (s *CurrentEventStore) RemoveGuest(ctx context.Context, guestID int64) error {
	if err := s.api.DeleteGuest(ctx, guestID); err != nil {
		s.notify.Error("Failed to delete guest.")
		s.log.Error(ctx, "failed to delete guest", "guest_id", guestID, "error", err)
		return err
	}

	s.mu.Lock()
	if s.event != nil {
		kept := s.event.Guests[:0:0]
		for _, g := range s.event.Guests {
			if g.ID != guestID {
				kept = append(kept, g)
			}
		}
		s.event.Guests = kept
	}
	s.mu.Unlock()

	s.notify.Success("Guest deleted successfully!")
	return nil
}

// UpdateInvitationDraft merges the patch into the cached invitation. Purely
// local: invitation editing is a multi-field draft that should not
// round-trip the server on every keystroke. An explicit Save persists it.
// No-op when nothing is loaded.
func (s *CurrentEventStore) UpdateInvitationDraft(patch models.InvitationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event == nil {
		return
	}
	patch.Apply(&s.event.Invitation)
}

// Stats aggregates the loaded event's guests by canonical status. Guests
// with an unknown status literal count as Pending and are logged as
// anomalies.
func (s *CurrentEventStore) Stats() models.GuestStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.event == nil {
		return models.GuestStats{}
	}
	stats := models.CountGuests(s.event.Guests)
	if stats.Anomalies > 0 {
		s.log.Warn(context.Background(), "guests with unrecognized status counted as pending",
			"event_id", s.event.ID, "count", stats.Anomalies)
	}
	return stats
}

// Clear resets the detail state; called when leaving an event's detail
// context. Idempotent.
func (s *CurrentEventStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.event = nil
	s.state = QueryState{Status: StatusIdle}
}
