package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danakir/planvite/internal/common"
	"github.com/danakir/planvite/internal/models"
)

func newEventsStore(apiClient *fakeAPI, authenticated bool) (*EventsStore, *recorderSink) {
	sink := &recorderSink{}
	return NewEventsStore(apiClient, &fakeAuth{authenticated: authenticated}, sink, discardLogger()), sink
}

func TestEventsStore_FetchAll_UnauthenticatedIsNoOp(t *testing.T) {
	apiClient := &fakeAPI{}
	s, _ := newEventsStore(apiClient, false)

	require.NoError(t, s.FetchAll(context.Background()))

	assert.Zero(t, apiClient.fetchEventsCalls, "no network call while anonymous")
	assert.Equal(t, StatusIdle, s.State().Status)
}

func TestEventsStore_FetchAll_Success(t *testing.T) {
	want := []models.EventSummary{{ID: 1, Name: "wedding"}, {ID: 2, Name: "birthday"}}
	apiClient := &fakeAPI{}
	s, _ := newEventsStore(apiClient, true)

	apiClient.fetchEventsFn = func(ctx context.Context) ([]models.EventSummary, error) {
		assert.Equal(t, StatusLoading, s.State().Status, "loading visible while the call is in flight")
		return want, nil
	}

	require.NoError(t, s.FetchAll(context.Background()))

	assert.Equal(t, StatusReady, s.State().Status)
	assert.Equal(t, want, s.Summaries())
}

func TestEventsStore_FetchAll_FailureRetainsStalePayload(t *testing.T) {
	apiClient := &fakeAPI{}
	s, _ := newEventsStore(apiClient, true)

	apiClient.fetchEventsFn = func(ctx context.Context) ([]models.EventSummary, error) {
		return []models.EventSummary{{ID: 1, Name: "wedding"}}, nil
	}
	require.NoError(t, s.FetchAll(context.Background()))

	boom := errors.New("boom")
	apiClient.fetchEventsFn = func(ctx context.Context) ([]models.EventSummary, error) {
		return nil, boom
	}
	require.Error(t, s.FetchAll(context.Background()))

	state := s.State()
	assert.Equal(t, StatusError, state.Status)
	assert.ErrorIs(t, state.Err, boom)
	assert.Len(t, s.Summaries(), 1, "stale payload stays visible")
}

func TestEventsStore_FetchAll_LastSettlementWins(t *testing.T) {
	apiClient := &fakeAPI{}
	s, _ := newEventsStore(apiClient, true)

	firstEntered := make(chan struct{})
	releaseFirst := make(chan struct{})
	call := 0
	var mu sync.Mutex

	apiClient.fetchEventsFn = func(ctx context.Context) ([]models.EventSummary, error) {
		mu.Lock()
		call++
		n := call
		mu.Unlock()
		if n == 1 {
			close(firstEntered)
			<-releaseFirst
			return []models.EventSummary{{ID: 1, Name: "first"}}, nil
		}
		return []models.EventSummary{{ID: 2, Name: "second"}}, nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.FetchAll(context.Background())
	}()

	<-firstEntered
	require.NoError(t, s.FetchAll(context.Background())) // issued later, settles first
	close(releaseFirst)
	<-done

	// The first call settled last, so its payload is the one left standing.
	assert.Equal(t, StatusReady, s.State().Status)
	assert.Equal(t, []models.EventSummary{{ID: 1, Name: "first"}}, s.Summaries())
}

func TestEventsStore_Create_EmptyPrompt(t *testing.T) {
	apiClient := &fakeAPI{}
	s, sink := newEventsStore(apiClient, true)

	_, err := s.Create(context.Background(), "   ")

	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Zero(t, apiClient.createCalls)
	assert.Len(t, sink.errors, 1)
}

func TestEventsStore_Create_GenerationFailureAborts(t *testing.T) {
	apiClient := &fakeAPI{
		generateFn: func(ctx context.Context, prompt string) (json.RawMessage, error) {
			return nil, errors.New("generation failed")
		},
	}
	s, sink := newEventsStore(apiClient, true)

	_, err := s.Create(context.Background(), "beach party")

	require.Error(t, err)
	assert.Zero(t, apiClient.createCalls, "phase two never starts")
	assert.Empty(t, s.Summaries())
	assert.Equal(t, []string{"Failed to create event."}, sink.errors)
}

func TestEventsStore_Create_PersistFailureDiscardsDraft(t *testing.T) {
	apiClient := &fakeAPI{
		generateFn: func(ctx context.Context, prompt string) (json.RawMessage, error) {
			return json.RawMessage(`{"name":"Beach Bash"}`), nil
		},
		createFn: func(ctx context.Context, draft json.RawMessage) (*models.Event, error) {
			return nil, errors.New("persist failed")
		},
	}
	s, sink := newEventsStore(apiClient, true)

	_, err := s.Create(context.Background(), "beach party")

	require.Error(t, err)
	assert.Empty(t, s.Summaries(), "no partial entity appended")
	assert.Equal(t, []string{"Failed to create event."}, sink.errors)
}

func TestEventsStore_Create_AppendsAtEnd(t *testing.T) {
	apiClient := &fakeAPI{
		generateFn: func(ctx context.Context, prompt string) (json.RawMessage, error) {
			return json.RawMessage(`{"name":"Beach Bash","concept":"beach"}`), nil
		},
		createFn: func(ctx context.Context, draft json.RawMessage) (*models.Event, error) {
			return &models.Event{ID: 42, Name: "Beach Bash", Concept: "beach"}, nil
		},
		fetchEventsFn: func(ctx context.Context) ([]models.EventSummary, error) {
			return []models.EventSummary{{ID: 1, Name: "wedding"}}, nil
		},
	}
	s, sink := newEventsStore(apiClient, true)
	require.NoError(t, s.FetchAll(context.Background()))

	event, err := s.Create(context.Background(), "beach party")

	require.NoError(t, err)
	assert.Equal(t, int64(42), event.ID)
	assert.Equal(t, []models.EventSummary{
		{ID: 1, Name: "wedding"},
		{ID: 42, Name: "Beach Bash", Concept: "beach"},
	}, s.Summaries(), "append at end, not sorted")
	assert.Equal(t, []string{"Event created successfully!"}, sink.successes)
}

func TestEventsStore_Remove_FailureLeavesCache(t *testing.T) {
	apiClient := &fakeAPI{
		fetchEventsFn: func(ctx context.Context) ([]models.EventSummary, error) {
			return []models.EventSummary{{ID: 1}, {ID: 2}}, nil
		},
		deleteEventFn: func(ctx context.Context, id int64) error {
			return errors.New("delete failed")
		},
	}
	s, sink := newEventsStore(apiClient, true)
	require.NoError(t, s.FetchAll(context.Background()))

	require.Error(t, s.Remove(context.Background(), 1))

	assert.Len(t, s.Summaries(), 2, "pessimistic delete: cache untouched on failure")
	assert.Equal(t, []string{"Failed to delete event."}, sink.errors)
}

func TestEventsStore_Remove_SplicesByIdentity(t *testing.T) {
	apiClient := &fakeAPI{
		fetchEventsFn: func(ctx context.Context) ([]models.EventSummary, error) {
			return []models.EventSummary{{ID: 1}, {ID: 2}, {ID: 3}}, nil
		},
	}
	s, sink := newEventsStore(apiClient, true)
	require.NoError(t, s.FetchAll(context.Background()))

	require.NoError(t, s.Remove(context.Background(), 2))

	assert.Equal(t, []models.EventSummary{{ID: 1}, {ID: 3}}, s.Summaries())
	assert.Equal(t, []string{"Event deleted successfully"}, sink.successes)
}
