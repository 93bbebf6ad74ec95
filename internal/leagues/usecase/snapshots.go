package usecase

import (
	"time"

	"league-backend/internal/leagues/domain/model"
	"league-backend/internal/leagues/domain/repository"
)

// Snapshot field decoding. Stored documents are schemaless maps; these
// helpers tolerate absent or mistyped fields and fall back to zero
// values rather than failing a whole listing.

func stringField(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func timeField(data map[string]interface{}, key string) time.Time {
	if v, ok := data[key].(time.Time); ok {
		return v
	}
	return time.Time{}
}

func intField(data map[string]interface{}, key string) (int, bool) {
	switch v := data[key].(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func stringSliceField(data map[string]interface{}, key string) []string {
	switch v := data[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func leagueFromSnapshot(s repository.Snapshot) model.League {
	league := model.League{
		ID:          s.ID,
		Name:        stringField(s.Data, "name"),
		Description: stringField(s.Data, "description"),
		StartDate:   timeField(s.Data, "startDate"),
		EndDate:     timeField(s.Data, "endDate"),
		CreatedAt:   timeField(s.Data, "createdAt"),
	}
	if maxTeams, ok := intField(s.Data, "maxTeams"); ok {
		league.MaxTeams = &maxTeams
	}
	return league
}

func teamFromSnapshot(s repository.Snapshot) model.Team {
	return model.Team{
		ID:        s.ID,
		Name:      stringField(s.Data, "name"),
		CreatedAt: timeField(s.Data, "createdAt"),
	}
}

func matchFromSnapshot(s repository.Snapshot) model.Match {
	match := model.Match{
		ID:        s.ID,
		TeamIDs:   stringSliceField(s.Data, "teams"),
		StartDate: timeField(s.Data, "startDate"),
		Place:     stringField(s.Data, "place"),
		CreatedAt: timeField(s.Data, "createdAt"),
	}
	if score, ok := s.Data["score"].(map[string]interface{}); ok {
		if team1, ok := intField(score, "team1"); ok {
			match.Score.Team1 = team1
		}
		if team2, ok := intField(score, "team2"); ok {
			match.Score.Team2 = team2
		}
	}
	return match
}
