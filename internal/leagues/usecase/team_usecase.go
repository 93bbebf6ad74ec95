package usecase

import (
	"context"

	"league-backend/internal/leagues/domain/model"
	"league-backend/internal/leagues/domain/repository"
	"league-backend/internal/shared/eventbus"
	"league-backend/internal/shared/logger"
)

// TeamUsecase defines the operations over a league's team subcollection.
type TeamUsecase interface {
	CreateTeam(ctx context.Context, leagueID string, input model.CreateTeamInput) (string, error)
	ListTeams(ctx context.Context, leagueID string) ([]model.Team, error)
}

type teamUsecase struct {
	store repository.Store
	bus   *eventbus.EventBus
	log   logger.Logger
}

// NewTeamUsecase creates a new TeamUsecase backed by the given store.
func NewTeamUsecase(store repository.Store, bus *eventbus.EventBus, log logger.Logger) TeamUsecase {
	return &teamUsecase{
		store: store,
		bus:   bus,
		log:   log.WithComponent("team-usecase"),
	}
}

// CreateTeam persists a team under the given league. The league's
// existence is deliberately not verified; a team written under an
// unknown league ID is silently accepted, matching store semantics.
func (uc *teamUsecase) CreateTeam(ctx context.Context, leagueID string, input model.CreateTeamInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	id, err := uc.store.Add(ctx, repository.TeamsPath(leagueID), map[string]interface{}{
		"name":      input.Name,
		"createdAt": repository.ServerTimestamp,
	})
	if err != nil {
		return "", err
	}

	uc.log.WithContext(ctx).Infof("Created team %s in league %s", id, leagueID)
	if uc.bus != nil {
		uc.bus.PublishAndForget(ctx, eventbus.NewDomainEvent(EventTeamCreated, "team-usecase",
			map[string]interface{}{"leagueId": leagueID, "teamId": id, "name": input.Name}))
	}
	return id, nil
}

// ListTeams returns all teams under the league in store-native order.
func (uc *teamUsecase) ListTeams(ctx context.Context, leagueID string) ([]model.Team, error) {
	snapshots, err := uc.store.GetAll(ctx, repository.TeamsPath(leagueID))
	if err != nil {
		return nil, err
	}

	teams := make([]model.Team, 0, len(snapshots))
	for _, s := range snapshots {
		teams = append(teams, teamFromSnapshot(s))
	}
	return teams, nil
}
