package model

import (
	"strings"
	"time"

	apperrors "league-backend/internal/shared/errors"
)

// League is the top-level tournament container owning teams and matches.
// Deleting a league does not cascade to its children; teams and matches
// remain addressable under the same league ID.
type League struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	MaxTeams    *int      `json:"maxTeams,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateLeagueInput carries the typed payload for league creation.
type CreateLeagueInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	MaxTeams    *int   `json:"maxTeams"`
}

// Validate checks required fields and parses both dates, returning the
// parsed pair on success. No startDate <= endDate ordering is enforced.
func (in CreateLeagueInput) Validate() (start, end time.Time, err error) {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.StartDate == "" {
		missing = append(missing, "startDate")
	}
	if in.EndDate == "" {
		missing = append(missing, "endDate")
	}
	if len(missing) > 0 {
		return time.Time{}, time.Time{}, apperrors.NewValidationError(strings.Join(missing, ", ") + " required")
	}

	start, err = ParseDate(in.StartDate, "startDate")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = ParseDate(in.EndDate, "endDate")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// UpdateLeagueInput carries the partial patch for a league. Nil fields
// are left untouched.
type UpdateLeagueInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Validate rejects an empty patch before any store mutation happens.
func (in UpdateLeagueInput) Validate() error {
	if in.Name == nil && in.Description == nil {
		return apperrors.NewValidationError("at least one of name, description required")
	}
	return nil
}
