package model

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	apperrors "league-backend/internal/shared/errors"
)

// UnknownTeamName substitutes for a dangling team reference during
// enrichment instead of failing the listing.
const UnknownTeamName = "Unknown Team"

// Match is a contest between two teams of the same league. TeamIDs is an
// ordered pair; referential integrity against the league's team
// collection is not enforced at write time.
type Match struct {
	ID        string    `json:"id"`
	TeamIDs   []string  `json:"teams"`
	StartDate time.Time `json:"startDate"`
	Place     string    `json:"place"`
	Score     Score     `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

// Score holds the goal/point counts for both sides of a match.
type Score struct {
	Team1 int `json:"team1"`
	Team2 int `json:"team2"`
}

// TeamRef is a resolved team reference in an enriched match.
type TeamRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MatchTeams pairs the resolved references for both sides.
type MatchTeams struct {
	Team1 TeamRef `json:"team1"`
	Team2 TeamRef `json:"team2"`
}

// MatchView is the display-ready match record produced by enrichment.
// Timestamps are rendered as ISO-8601 strings.
type MatchView struct {
	ID        string     `json:"id"`
	Teams     MatchTeams `json:"teams"`
	StartDate string     `json:"startDate"`
	Place     string     `json:"place"`
	Score     Score      `json:"score"`
	CreatedAt string     `json:"createdAt"`
}

// ScoreInput carries caller-supplied score counts before type checking.
// Fields stay untyped so that a non-integer payload is rejected with a
// validation error rather than a transport decode failure.
type ScoreInput struct {
	Team1 interface{} `json:"team1"`
	Team2 interface{} `json:"team2"`
}

// Resolve type-checks both counts and returns the typed score.
func (in ScoreInput) Resolve() (Score, error) {
	team1, ok := asInt(in.Team1)
	if !ok {
		return Score{}, apperrors.NewValidationError("score.team1 must be an integer")
	}
	team2, ok := asInt(in.Team2)
	if !ok {
		return Score{}, apperrors.NewValidationError("score.team2 must be an integer")
	}
	return Score{Team1: team1, Team2: team2}, nil
}

// asInt accepts the integer representations a JSON decode can produce.
func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

// CreateMatchInput carries the typed payload for match creation.
type CreateMatchInput struct {
	Teams     []string    `json:"teams"`
	StartDate string      `json:"startDate"`
	Place     string      `json:"place"`
	Score     *ScoreInput `json:"score"`
}

// Validate checks the team pair, required fields and score shape. A
// missing score defaults to 0-0.
func (in CreateMatchInput) Validate() (start time.Time, score Score, err error) {
	if len(in.Teams) != 2 {
		return time.Time{}, Score{}, apperrors.NewValidationError("teams must contain exactly two team IDs")
	}
	var missing []string
	if in.StartDate == "" {
		missing = append(missing, "startDate")
	}
	if in.Place == "" {
		missing = append(missing, "place")
	}
	if len(missing) > 0 {
		return time.Time{}, Score{}, apperrors.NewValidationError(strings.Join(missing, ", ") + " required")
	}

	start, err = ParseDate(in.StartDate, "startDate")
	if err != nil {
		return time.Time{}, Score{}, err
	}

	if in.Score != nil {
		score, err = in.Score.Resolve()
		if err != nil {
			return time.Time{}, Score{}, err
		}
	}
	return start, score, nil
}

// UpdateMatchInput carries the partial patch for a match. Nil fields are
// left untouched.
type UpdateMatchInput struct {
	StartDate *string     `json:"startDate"`
	Place     *string     `json:"place"`
	Score     *ScoreInput `json:"score"`
}

// Validate rejects an empty patch and type-checks any supplied fields.
// The score check on update matches the one on create.
func (in UpdateMatchInput) Validate() (start *time.Time, score *Score, err error) {
	if in.StartDate == nil && in.Place == nil && in.Score == nil {
		return nil, nil, apperrors.NewValidationError("at least one of startDate, score, place required")
	}
	if in.StartDate != nil {
		parsed, err := ParseDate(*in.StartDate, "startDate")
		if err != nil {
			return nil, nil, err
		}
		start = &parsed
	}
	if in.Score != nil {
		resolved, err := in.Score.Resolve()
		if err != nil {
			return nil, nil, err
		}
		score = &resolved
	}
	return start, score, nil
}
