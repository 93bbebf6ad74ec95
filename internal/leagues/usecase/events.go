package usecase

// Domain event types published on the shared event bus after successful
// writes. Publishing is fire-and-forget; subscribers never affect the
// outcome of the write.
const (
	EventLeagueCreated = "league.created"
	EventLeagueUpdated = "league.updated"
	EventLeagueDeleted = "league.deleted"
	EventTeamCreated   = "team.created"
	EventMatchCreated  = "match.created"
	EventMatchUpdated  = "match.updated"
)

// AllEventTypes lists every event type this module publishes, in a
// stable order, for subscribers that want the full stream.
func AllEventTypes() []string {
	return []string{
		EventLeagueCreated,
		EventLeagueUpdated,
		EventLeagueDeleted,
		EventTeamCreated,
		EventMatchCreated,
		EventMatchUpdated,
	}
}
