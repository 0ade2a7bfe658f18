// Package store holds the in-memory caches of remote entities: the events
// collection and the current-event detail. Each cache pairs its payload with
// a query-state envelope and exposes mutation operations that call the API
// gateway and reconcile the cache on settlement.
//
// Mutations are pessimistic: the cache changes only after the server
// confirms, never before. Failed fetches leave a standing error state;
// failed mutations leave the cache exactly as before the attempt and are
// surfaced through the notification sink and the returned error.
package store

// Status is the lifecycle of a cache with respect to its backing request.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// QueryState is the envelope attached to each cache. Err is set only while
// Status is StatusError.
type QueryState struct {
	Status Status
	Err    error
}
