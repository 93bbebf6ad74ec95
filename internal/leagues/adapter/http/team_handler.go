package http

import (
	"league-backend/internal/leagues/domain/model"
	"league-backend/internal/leagues/usecase"

	"github.com/gofiber/fiber/v2"
)

// TeamHandler exposes the team endpoints nested under a league.
type TeamHandler struct {
	uc usecase.TeamUsecase
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(uc usecase.TeamUsecase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

// RegisterRoutes registers the team routes on the given router.
func (h *TeamHandler) RegisterRoutes(router fiber.Router) {
	teams := router.Group("/leagues/:leagueId/teams")
	teams.Post("/", h.CreateTeam) // POST /leagues/{leagueId}/teams
	teams.Get("/", h.ListTeams)   // GET /leagues/{leagueId}/teams
}

// CreateTeam creates a team under a league
// POST /leagues/{leagueId}/teams
func (h *TeamHandler) CreateTeam(c *fiber.Ctx) error {
	leagueID := c.Params("leagueId")

	var input model.CreateTeamInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}

	id, err := h.uc.CreateTeam(c.UserContext(), leagueID, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": "Team added with ID: " + id,
	})
}

// ListTeams returns all teams under a league
// GET /leagues/{leagueId}/teams
func (h *TeamHandler) ListTeams(c *fiber.Ctx) error {
	teams, err := h.uc.ListTeams(c.UserContext(), c.Params("leagueId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(teams)
}
