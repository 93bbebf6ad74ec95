package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"league-backend/internal/leagues/domain/model"
	apperrors "league-backend/internal/shared/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockTeamUsecase implements usecase.TeamUsecase for handler tests.
type mockTeamUsecase struct {
	CreateTeamFn func(ctx context.Context, leagueID string, input model.CreateTeamInput) (string, error)
	ListTeamsFn  func(ctx context.Context, leagueID string) ([]model.Team, error)
}

func (m *mockTeamUsecase) CreateTeam(ctx context.Context, leagueID string, input model.CreateTeamInput) (string, error) {
	return m.CreateTeamFn(ctx, leagueID, input)
}
func (m *mockTeamUsecase) ListTeams(ctx context.Context, leagueID string) ([]model.Team, error) {
	return m.ListTeamsFn(ctx, leagueID)
}

func newTeamApp(mock *mockTeamUsecase) *fiber.App {
	app := fiber.New()
	NewTeamHandler(mock).RegisterRoutes(app)
	return app
}

func TestCreateTeamHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		app := newTeamApp(&mockTeamUsecase{
			CreateTeamFn: func(ctx context.Context, leagueID string, input model.CreateTeamInput) (string, error) {
				assert.Equal(t, "league-1", leagueID)
				assert.Equal(t, "Reds", input.Name)
				return "team-42", nil
			},
		})

		body, _ := json.Marshal(map[string]string{"name": "Reds"})
		req := httptest.NewRequest("POST", "/leagues/league-1/teams", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var result map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "team-42", result["id"])
	})

	t.Run("missing name is 400", func(t *testing.T) {
		app := newTeamApp(&mockTeamUsecase{
			CreateTeamFn: func(ctx context.Context, leagueID string, input model.CreateTeamInput) (string, error) {
				return "", apperrors.NewValidationError("name required")
			},
		})

		req := httptest.NewRequest("POST", "/leagues/league-1/teams", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestListTeamsHandler(t *testing.T) {
	app := newTeamApp(&mockTeamUsecase{
		ListTeamsFn: func(ctx context.Context, leagueID string) ([]model.Team, error) {
			assert.Equal(t, "league-1", leagueID)
			return []model.Team{
				{ID: "team-1", Name: "Reds", CreatedAt: time.Now().UTC()},
				{ID: "team-2", Name: "Blues", CreatedAt: time.Now().UTC()},
			}, nil
		},
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/leagues/league-1/teams", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var teams []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&teams))
	require.Len(t, teams, 2)
	assert.Equal(t, "Reds", teams[0]["name"])
}
