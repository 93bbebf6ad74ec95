package model

import (
	"testing"
	"time"

	apperrors "league-backend/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLeagueInputValidate(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		input := CreateLeagueInput{
			Name:      "Premier League",
			StartDate: "2026-08-01",
			EndDate:   "2027-05-20",
		}
		start, end, err := input.Validate()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2027, 5, 20, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("missing fields named in message", func(t *testing.T) {
		_, _, err := CreateLeagueInput{Description: "no name or dates"}.Validate()
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "startDate")
		assert.Contains(t, err.Error(), "endDate")
	})

	t.Run("unparseable startDate", func(t *testing.T) {
		input := CreateLeagueInput{
			Name:      "League",
			StartDate: "not-a-date",
			EndDate:   "2027-05-20",
		}
		_, _, err := input.Validate()
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "startDate")
	})

	t.Run("startDate after endDate is accepted", func(t *testing.T) {
		input := CreateLeagueInput{
			Name:      "League",
			StartDate: "2027-05-20",
			EndDate:   "2026-08-01",
		}
		_, _, err := input.Validate()
		assert.NoError(t, err)
	})
}

func TestUpdateLeagueInputValidate(t *testing.T) {
	name := "Renamed"

	assert.NoError(t, UpdateLeagueInput{Name: &name}.Validate())

	err := UpdateLeagueInput{}.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"plain date", "2026-03-15", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", "2026-03-15T18:30:00Z", time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)},
		{"rfc3339 with offset", "2026-03-15T18:30:00+02:00", time.Date(2026, 3, 15, 16, 30, 0, 0, time.UTC)},
		{"no offset", "2026-03-15T18:30:00", time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.value, "startDate")
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, err := ParseDate("", "endDate")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "endDate")
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseDate("yesterday-ish", "startDate")
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestFormatTimestamp(t *testing.T) {
	instant := time.Date(2026, 3, 15, 18, 30, 0, 0, time.FixedZone("CET", 3600))
	assert.Equal(t, "2026-03-15T17:30:00Z", FormatTimestamp(instant))
}
