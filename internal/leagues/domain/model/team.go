package model

import (
	"time"

	apperrors "league-backend/internal/shared/errors"
)

// Team is a named participant scoped to exactly one league for its
// entire lifetime. No update or delete operation is exposed.
type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateTeamInput carries the typed payload for team creation.
type CreateTeamInput struct {
	Name string `json:"name"`
}

// Validate checks the required name field.
func (in CreateTeamInput) Validate() error {
	if in.Name == "" {
		return apperrors.NewValidationError("name required")
	}
	return nil
}
