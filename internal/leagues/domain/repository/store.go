package repository

import "context"

// Snapshot is a point-in-time read of a single document. Exists reports
// whether the document was present; absence is not an error.
type Snapshot struct {
	ID     string
	Exists bool
	Data   map[string]interface{}
}

// serverTimestampSentinel is the type of the ServerTimestamp marker.
type serverTimestampSentinel struct{}

// ServerTimestamp is a sentinel field value. A store implementation
// replaces it with the write-time UTC instant, so creation timestamps
// are assigned by the store, once, and never overwritten.
var ServerTimestamp = serverTimestampSentinel{}

// IsServerTimestamp reports whether v is the ServerTimestamp sentinel.
func IsServerTimestamp(v interface{}) bool {
	_, ok := v.(serverTimestampSentinel)
	return ok
}

// Store is the document-store client port. Collections are addressed by
// slash-separated paths ("leagues", "leagues/{id}/teams"); nested
// collections under a non-existent parent are silently addressable.
// Every operation performs a single non-transactional document access.
type Store interface {
	// Add persists a new document and returns its generated ID.
	Add(ctx context.Context, path string, data map[string]interface{}) (string, error)

	// GetAll returns every document in the collection, in store-native order.
	GetAll(ctx context.Context, path string) ([]Snapshot, error)

	// GetByID reads a single document; a missing ID yields Exists=false.
	GetByID(ctx context.Context, path, id string) (Snapshot, error)

	// UpdateByID applies a partial patch to an existing document. A
	// not-found error is returned when the ID does not resolve.
	UpdateByID(ctx context.Context, path, id string, patch map[string]interface{}) error

	// DeleteByID removes a single document. Deleting an absent document
	// is not an error.
	DeleteByID(ctx context.Context, path, id string) error
}

// TeamNameCache is an optional read-through cache for team names used
// during match enrichment. Implementations must treat all failures as
// misses; a cache outage never fails a listing.
type TeamNameCache interface {
	Get(ctx context.Context, leagueID, teamID string) (name string, ok bool)
	Set(ctx context.Context, leagueID, teamID, name string)
}

// Collection path builders for the persisted league hierarchy.

// LeaguesPath addresses the top-level league collection.
func LeaguesPath() string {
	return "leagues"
}

// TeamsPath addresses the teams subcollection of a league.
func TeamsPath(leagueID string) string {
	return "leagues/" + leagueID + "/teams"
}

// MatchesPath addresses the matches subcollection of a league.
func MatchesPath(leagueID string) string {
	return "leagues/" + leagueID + "/matches"
}
