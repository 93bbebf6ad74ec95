package http

import (
	"league-backend/internal/leagues/domain/model"
	"league-backend/internal/leagues/usecase"

	"github.com/gofiber/fiber/v2"
)

// LeagueHandler exposes the league endpoints.
type LeagueHandler struct {
	uc usecase.LeagueUsecase
}

// NewLeagueHandler creates a new league handler.
func NewLeagueHandler(uc usecase.LeagueUsecase) *LeagueHandler {
	return &LeagueHandler{uc: uc}
}

// RegisterRoutes registers the league routes on the given router.
func (h *LeagueHandler) RegisterRoutes(router fiber.Router) {
	leagues := router.Group("/leagues")
	leagues.Post("/", h.CreateLeague)            // POST /leagues
	leagues.Get("/", h.ListLeagues)              // GET /leagues
	leagues.Put("/:leagueId", h.UpdateLeague)    // PUT /leagues/{leagueId}
	leagues.Delete("/:leagueId", h.DeleteLeague) // DELETE /leagues/{leagueId}
}

// CreateLeague creates a new league
// POST /leagues
func (h *LeagueHandler) CreateLeague(c *fiber.Ctx) error {
	var input model.CreateLeagueInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}

	id, err := h.uc.CreateLeague(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": "League added with ID: " + id,
	})
}

// ListLeagues returns all leagues
// GET /leagues
func (h *LeagueHandler) ListLeagues(c *fiber.Ctx) error {
	leagues, err := h.uc.ListLeagues(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(leagues)
}

// UpdateLeague applies a partial patch to a league
// PUT /leagues/{leagueId}
func (h *LeagueHandler) UpdateLeague(c *fiber.Ctx) error {
	leagueID := c.Params("leagueId")

	var input model.UpdateLeagueInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}

	if err := h.uc.UpdateLeague(c.UserContext(), leagueID, input); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "League " + leagueID + " updated",
	})
}

// DeleteLeague removes a league document. Teams and matches under it
// are not deleted.
// DELETE /leagues/{leagueId}
func (h *LeagueHandler) DeleteLeague(c *fiber.Ctx) error {
	leagueID := c.Params("leagueId")

	if err := h.uc.DeleteLeague(c.UserContext(), leagueID); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "League " + leagueID + " deleted",
	})
}
