// Package leagues wires the sports-league bounded context: the document
// store adapter, the league/team/match usecases and the HTTP handlers.
package leagues

import (
	httpadapter "league-backend/internal/leagues/adapter/http"
	"league-backend/internal/leagues/adapter/persistence/mongodb"
	"league-backend/internal/leagues/adapter/persistence/rediscache"
	"league-backend/internal/leagues/config"
	"league-backend/internal/leagues/domain/repository"
	"league-backend/internal/leagues/usecase"
	"league-backend/internal/shared/eventbus"
	"league-backend/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Module bundles the leagues bounded context.
type Module struct {
	Config *config.Config
	Store  repository.Store

	LeagueUsecase usecase.LeagueUsecase
	TeamUsecase   usecase.TeamUsecase
	MatchUsecase  usecase.MatchUsecase

	leagueHandler *httpadapter.LeagueHandler
	teamHandler   *httpadapter.TeamHandler
	matchHandler  *httpadapter.MatchHandler

	logger logger.Logger
}

// NewModule creates and wires the leagues module. redisClient may be
// nil; enrichment then always reads team names from the store.
func NewModule(
	cfg *config.Config,
	db *mongo.Database,
	redisClient *redis.Client,
	bus *eventbus.EventBus,
	log logger.Logger,
) *Module {
	store := mongodb.NewDocumentStore(db, log)

	var cache repository.TeamNameCache
	if redisClient != nil {
		cache = rediscache.NewTeamNameCache(redisClient, cfg.Redis.CacheTTL, log)
	}

	leagueUC := usecase.NewLeagueUsecase(store, bus, log)
	teamUC := usecase.NewTeamUsecase(store, bus, log)
	matchUC := usecase.NewMatchUsecase(store, cache, bus, log)

	return &Module{
		Config:        cfg,
		Store:         store,
		LeagueUsecase: leagueUC,
		TeamUsecase:   teamUC,
		MatchUsecase:  matchUC,
		leagueHandler: httpadapter.NewLeagueHandler(leagueUC),
		teamHandler:   httpadapter.NewTeamHandler(teamUC),
		matchHandler:  httpadapter.NewMatchHandler(matchUC),
		logger:        log.WithComponent("leagues-module"),
	}
}

// RegisterRoutes mounts all league, team and match routes plus the
// request-scoped middleware.
func (m *Module) RegisterRoutes(app *fiber.App) {
	app.Use(httpadapter.RequestIDMiddleware())
	app.Use(httpadapter.RequestLoggerMiddleware(m.logger))

	m.leagueHandler.RegisterRoutes(app)
	m.teamHandler.RegisterRoutes(app)
	m.matchHandler.RegisterRoutes(app)

	m.logger.Info("League, team and match routes registered")
}
