package usecase

import (
	"context"

	"league-backend/internal/leagues/domain/model"
	"league-backend/internal/leagues/domain/repository"
	"league-backend/internal/shared/eventbus"
	"league-backend/internal/shared/logger"
)

// LeagueUsecase defines the operations over the top-level league collection.
type LeagueUsecase interface {
	CreateLeague(ctx context.Context, input model.CreateLeagueInput) (string, error)
	ListLeagues(ctx context.Context) ([]model.League, error)
	UpdateLeague(ctx context.Context, id string, input model.UpdateLeagueInput) error
	DeleteLeague(ctx context.Context, id string) error
}

type leagueUsecase struct {
	store repository.Store
	bus   *eventbus.EventBus
	log   logger.Logger
}

// NewLeagueUsecase creates a new LeagueUsecase backed by the given store.
func NewLeagueUsecase(store repository.Store, bus *eventbus.EventBus, log logger.Logger) LeagueUsecase {
	return &leagueUsecase{
		store: store,
		bus:   bus,
		log:   log.WithComponent("league-usecase"),
	}
}

// CreateLeague validates the input and persists a new league with a
// store-assigned creation timestamp. Returns the new league's ID.
func (uc *leagueUsecase) CreateLeague(ctx context.Context, input model.CreateLeagueInput) (string, error) {
	start, end, err := input.Validate()
	if err != nil {
		return "", err
	}

	data := map[string]interface{}{
		"name":        input.Name,
		"description": input.Description,
		"startDate":   start,
		"endDate":     end,
		"createdAt":   repository.ServerTimestamp,
	}
	if input.MaxTeams != nil {
		data["maxTeams"] = *input.MaxTeams
	}

	id, err := uc.store.Add(ctx, repository.LeaguesPath(), data)
	if err != nil {
		return "", err
	}

	uc.log.WithContext(ctx).Infof("Created league %s", id)
	uc.publish(ctx, EventLeagueCreated, map[string]interface{}{"leagueId": id, "name": input.Name})
	return id, nil
}

// ListLeagues returns all leagues in store-native order.
func (uc *leagueUsecase) ListLeagues(ctx context.Context) ([]model.League, error) {
	snapshots, err := uc.store.GetAll(ctx, repository.LeaguesPath())
	if err != nil {
		return nil, err
	}

	leagues := make([]model.League, 0, len(snapshots))
	for _, s := range snapshots {
		leagues = append(leagues, leagueFromSnapshot(s))
	}
	return leagues, nil
}

// UpdateLeague applies a partial patch of name/description. The patch is
// validated before the store is touched; an unknown ID propagates as a
// not-found error from the store.
func (uc *leagueUsecase) UpdateLeague(ctx context.Context, id string, input model.UpdateLeagueInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	patch := map[string]interface{}{}
	if input.Name != nil {
		patch["name"] = *input.Name
	}
	if input.Description != nil {
		patch["description"] = *input.Description
	}

	if err := uc.store.UpdateByID(ctx, repository.LeaguesPath(), id, patch); err != nil {
		return err
	}

	uc.log.WithContext(ctx).Infof("Updated league %s", id)
	uc.publish(ctx, EventLeagueUpdated, map[string]interface{}{"leagueId": id})
	return nil
}

// DeleteLeague removes the league document only. Child teams and
// matches are not cascaded and remain addressable under the league ID.
func (uc *leagueUsecase) DeleteLeague(ctx context.Context, id string) error {
	if err := uc.store.DeleteByID(ctx, repository.LeaguesPath(), id); err != nil {
		return err
	}

	uc.log.WithContext(ctx).Infof("Deleted league %s", id)
	uc.publish(ctx, EventLeagueDeleted, map[string]interface{}{"leagueId": id})
	return nil
}

func (uc *leagueUsecase) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if uc.bus == nil {
		return
	}
	uc.bus.PublishAndForget(ctx, eventbus.NewDomainEvent(eventType, "league-usecase", data))
}
