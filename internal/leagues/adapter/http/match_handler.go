package http

import (
	"time"

	"league-backend/internal/leagues/domain/model"
	"league-backend/internal/leagues/usecase"

	"github.com/gofiber/fiber/v2"
)

// MatchHandler exposes the match endpoints nested under a league.
type MatchHandler struct {
	uc usecase.MatchUsecase
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

// RegisterRoutes registers the match routes on the given router. The
// fixed segments are registered before the :matchId parameter so that
// "upcoming" and "finished" are never captured as match IDs.
func (h *MatchHandler) RegisterRoutes(router fiber.Router) {
	matches := router.Group("/leagues/:leagueId/matches")
	matches.Post("/", h.CreateMatch)         // POST /leagues/{leagueId}/matches
	matches.Get("/", h.ListMatches)          // GET /leagues/{leagueId}/matches
	matches.Get("/upcoming", h.ListUpcoming) // GET /leagues/{leagueId}/matches/upcoming
	matches.Get("/finished", h.ListFinished) // GET /leagues/{leagueId}/matches/finished
	matches.Put("/:matchId", h.UpdateMatch)  // PUT /leagues/{leagueId}/matches/{matchId}
}

// CreateMatch creates a match under a league
// POST /leagues/{leagueId}/matches
func (h *MatchHandler) CreateMatch(c *fiber.Ctx) error {
	leagueID := c.Params("leagueId")

	var input model.CreateMatchInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}

	id, err := h.uc.CreateMatch(c.UserContext(), leagueID, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": "Match added with ID: " + id,
	})
}

// ListMatches returns all matches under a league, enriched with team names
// GET /leagues/{leagueId}/matches
func (h *MatchHandler) ListMatches(c *fiber.Ctx) error {
	matches, err := h.uc.ListMatches(c.UserContext(), c.Params("leagueId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(matches)
}

// ListUpcoming returns matches starting after the moment of the call
// GET /leagues/{leagueId}/matches/upcoming
func (h *MatchHandler) ListUpcoming(c *fiber.Ctx) error {
	matches, err := h.uc.ListUpcomingMatches(c.UserContext(), c.Params("leagueId"), time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(matches)
}

// ListFinished returns matches that started before the moment of the call
// GET /leagues/{leagueId}/matches/finished
func (h *MatchHandler) ListFinished(c *fiber.Ctx) error {
	matches, err := h.uc.ListFinishedMatches(c.UserContext(), c.Params("leagueId"), time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(matches)
}

// UpdateMatch applies a partial patch to a match
// PUT /leagues/{leagueId}/matches/{matchId}
func (h *MatchHandler) UpdateMatch(c *fiber.Ctx) error {
	leagueID := c.Params("leagueId")
	matchID := c.Params("matchId")

	var input model.UpdateMatchInput
	if err := c.BodyParser(&input); err != nil {
		return respondBadBody(c)
	}

	if err := h.uc.UpdateMatch(c.UserContext(), leagueID, matchID, input); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Match " + matchID + " updated",
	})
}
