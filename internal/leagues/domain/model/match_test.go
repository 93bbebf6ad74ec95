package model

import (
	"encoding/json"
	"testing"
	"time"

	apperrors "league-backend/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMatchInputValidate(t *testing.T) {
	valid := CreateMatchInput{
		Teams:     []string{"team-1", "team-2"},
		StartDate: "2026-09-01T15:00:00Z",
		Place:     "City Arena",
	}

	t.Run("valid input defaults score to 0-0", func(t *testing.T) {
		start, score, err := valid.Validate()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC), start)
		assert.Equal(t, Score{Team1: 0, Team2: 0}, score)
	})

	t.Run("team pair size", func(t *testing.T) {
		for _, teams := range [][]string{nil, {"only-one"}, {"a", "b", "c"}} {
			input := valid
			input.Teams = teams
			_, _, err := input.Validate()
			require.Error(t, err, "teams=%v", teams)
			assert.True(t, apperrors.IsValidation(err))
		}
	})

	t.Run("missing startDate and place", func(t *testing.T) {
		input := CreateMatchInput{Teams: []string{"a", "b"}}
		_, _, err := input.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "startDate")
		assert.Contains(t, err.Error(), "place")
	})

	t.Run("explicit score is kept", func(t *testing.T) {
		input := valid
		input.Score = &ScoreInput{Team1: float64(2), Team2: float64(1)}
		_, score, err := input.Validate()
		require.NoError(t, err)
		assert.Equal(t, Score{Team1: 2, Team2: 1}, score)
	})

	t.Run("non-integer score rejected", func(t *testing.T) {
		input := valid
		input.Score = &ScoreInput{Team1: "a", Team2: float64(1)}
		_, _, err := input.Validate()
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "score.team1")
	})
}

func TestScoreInputResolve(t *testing.T) {
	tests := []struct {
		name    string
		input   ScoreInput
		want    Score
		wantErr bool
	}{
		{"json floats", ScoreInput{Team1: float64(3), Team2: float64(0)}, Score{3, 0}, false},
		{"ints", ScoreInput{Team1: 1, Team2: 2}, Score{1, 2}, false},
		{"json.Number", ScoreInput{Team1: json.Number("4"), Team2: json.Number("2")}, Score{4, 2}, false},
		{"string team1", ScoreInput{Team1: "a", Team2: 1}, Score{}, true},
		{"fractional", ScoreInput{Team1: 1.5, Team2: 0}, Score{}, true},
		{"nil team2", ScoreInput{Team1: 1, Team2: nil}, Score{}, true},
		{"bool", ScoreInput{Team1: true, Team2: 0}, Score{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.Resolve()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdateMatchInputValidate(t *testing.T) {
	t.Run("empty patch rejected", func(t *testing.T) {
		_, _, err := UpdateMatchInput{}.Validate()
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("place only", func(t *testing.T) {
		place := "New Venue"
		start, score, err := UpdateMatchInput{Place: &place}.Validate()
		require.NoError(t, err)
		assert.Nil(t, start)
		assert.Nil(t, score)
	})

	t.Run("startDate parsed", func(t *testing.T) {
		date := "2026-10-01"
		start, _, err := UpdateMatchInput{StartDate: &date}.Validate()
		require.NoError(t, err)
		require.NotNil(t, start)
		assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), *start)
	})

	t.Run("score type-checked like create", func(t *testing.T) {
		_, _, err := UpdateMatchInput{Score: &ScoreInput{Team1: "a", Team2: 1}}.Validate()
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("bad startDate", func(t *testing.T) {
		date := "not-a-date"
		_, _, err := UpdateMatchInput{StartDate: &date}.Validate()
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})
}
