package usecase

import (
	"context"
	"time"

	"league-backend/internal/leagues/domain/model"
	"league-backend/internal/leagues/domain/repository"
	"league-backend/internal/shared/eventbus"
	"league-backend/internal/shared/logger"

	"golang.org/x/sync/errgroup"
)

// MatchUsecase defines the operations over a league's match
// subcollection, including the time-windowed listings.
type MatchUsecase interface {
	CreateMatch(ctx context.Context, leagueID string, input model.CreateMatchInput) (string, error)
	ListMatches(ctx context.Context, leagueID string) ([]model.MatchView, error)
	ListUpcomingMatches(ctx context.Context, leagueID string, now time.Time) ([]model.MatchView, error)
	ListFinishedMatches(ctx context.Context, leagueID string, now time.Time) ([]model.MatchView, error)
	UpdateMatch(ctx context.Context, leagueID, matchID string, input model.UpdateMatchInput) error
}

type matchUsecase struct {
	store repository.Store
	cache repository.TeamNameCache
	bus   *eventbus.EventBus
	log   logger.Logger
}

// NewMatchUsecase creates a new MatchUsecase. cache may be nil, in which
// case every enrichment lookup goes to the store.
func NewMatchUsecase(store repository.Store, cache repository.TeamNameCache, bus *eventbus.EventBus, log logger.Logger) MatchUsecase {
	return &matchUsecase{
		store: store,
		cache: cache,
		bus:   bus,
		log:   log.WithComponent("match-usecase"),
	}
}

// CreateMatch validates the input and persists a match under the given
// league. The referenced team IDs are not checked for existence; a
// missing score defaults to 0-0.
func (uc *matchUsecase) CreateMatch(ctx context.Context, leagueID string, input model.CreateMatchInput) (string, error) {
	start, score, err := input.Validate()
	if err != nil {
		return "", err
	}

	id, err := uc.store.Add(ctx, repository.MatchesPath(leagueID), map[string]interface{}{
		"teams":     input.Teams,
		"startDate": start,
		"place":     input.Place,
		"score":     map[string]interface{}{"team1": score.Team1, "team2": score.Team2},
		"createdAt": repository.ServerTimestamp,
	})
	if err != nil {
		return "", err
	}

	uc.log.WithContext(ctx).Infof("Created match %s in league %s", id, leagueID)
	if uc.bus != nil {
		uc.bus.PublishAndForget(ctx, eventbus.NewDomainEvent(EventMatchCreated, "match-usecase",
			map[string]interface{}{"leagueId": leagueID, "matchId": id}))
	}
	return id, nil
}

// ListMatches returns every match under the league, enriched.
func (uc *matchUsecase) ListMatches(ctx context.Context, leagueID string) ([]model.MatchView, error) {
	matches, err := uc.loadMatches(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return uc.enrich(ctx, leagueID, matches)
}

// ListUpcomingMatches returns matches strictly after now, enriched. A
// match starting exactly at now is excluded here and in
// ListFinishedMatches.
func (uc *matchUsecase) ListUpcomingMatches(ctx context.Context, leagueID string, now time.Time) ([]model.MatchView, error) {
	matches, err := uc.loadMatches(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	upcoming := matches[:0]
	for _, m := range matches {
		if m.StartDate.After(now) {
			upcoming = append(upcoming, m)
		}
	}
	return uc.enrich(ctx, leagueID, upcoming)
}

// ListFinishedMatches returns matches strictly before now, enriched.
func (uc *matchUsecase) ListFinishedMatches(ctx context.Context, leagueID string, now time.Time) ([]model.MatchView, error) {
	matches, err := uc.loadMatches(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	finished := matches[:0]
	for _, m := range matches {
		if m.StartDate.Before(now) {
			finished = append(finished, m)
		}
	}
	return uc.enrich(ctx, leagueID, finished)
}

// UpdateMatch applies a partial patch of startDate/score/place. The
// patch is validated, including the score shape, before the store is
// touched; an unknown match ID propagates as a not-found error.
func (uc *matchUsecase) UpdateMatch(ctx context.Context, leagueID, matchID string, input model.UpdateMatchInput) error {
	start, score, err := input.Validate()
	if err != nil {
		return err
	}

	patch := map[string]interface{}{}
	if start != nil {
		patch["startDate"] = *start
	}
	if input.Place != nil {
		patch["place"] = *input.Place
	}
	if score != nil {
		patch["score"] = map[string]interface{}{"team1": score.Team1, "team2": score.Team2}
	}

	if err := uc.store.UpdateByID(ctx, repository.MatchesPath(leagueID), matchID, patch); err != nil {
		return err
	}

	uc.log.WithContext(ctx).Infof("Updated match %s in league %s", matchID, leagueID)
	if uc.bus != nil {
		uc.bus.PublishAndForget(ctx, eventbus.NewDomainEvent(EventMatchUpdated, "match-usecase",
			map[string]interface{}{"leagueId": leagueID, "matchId": matchID}))
	}
	return nil
}

func (uc *matchUsecase) loadMatches(ctx context.Context, leagueID string) ([]model.Match, error) {
	snapshots, err := uc.store.GetAll(ctx, repository.MatchesPath(leagueID))
	if err != nil {
		return nil, err
	}
	matches := make([]model.Match, 0, len(snapshots))
	for _, s := range snapshots {
		matches = append(matches, matchFromSnapshot(s))
	}
	return matches, nil
}

// enrich resolves both team references of every match concurrently and
// joins before returning. Output order matches input order. A dangling
// team reference degrades to a placeholder name; a failed store read
// fails the whole batch.
func (uc *matchUsecase) enrich(ctx context.Context, leagueID string, matches []model.Match) ([]model.MatchView, error) {
	views := make([]model.MatchView, len(matches))
	g, gctx := errgroup.WithContext(ctx)

	for i, match := range matches {
		i, match := i, match
		views[i] = model.MatchView{
			ID:        match.ID,
			StartDate: model.FormatTimestamp(match.StartDate),
			Place:     match.Place,
			Score:     match.Score,
			CreatedAt: model.FormatTimestamp(match.CreatedAt),
		}

		teamIDs := match.TeamIDs
		g.Go(func() error {
			ref, err := uc.resolveTeamRef(gctx, leagueID, teamID(teamIDs, 0))
			if err != nil {
				return err
			}
			views[i].Teams.Team1 = ref
			return nil
		})
		g.Go(func() error {
			ref, err := uc.resolveTeamRef(gctx, leagueID, teamID(teamIDs, 1))
			if err != nil {
				return err
			}
			views[i].Teams.Team2 = ref
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

// resolveTeamRef looks a team up through the cache, then the store. A
// missing document is not an error: the reference resolves to the
// placeholder name.
func (uc *matchUsecase) resolveTeamRef(ctx context.Context, leagueID, teamID string) (model.TeamRef, error) {
	if teamID == "" {
		return model.TeamRef{ID: teamID, Name: model.UnknownTeamName}, nil
	}
	if uc.cache != nil {
		if name, ok := uc.cache.Get(ctx, leagueID, teamID); ok {
			return model.TeamRef{ID: teamID, Name: name}, nil
		}
	}

	snapshot, err := uc.store.GetByID(ctx, repository.TeamsPath(leagueID), teamID)
	if err != nil {
		return model.TeamRef{}, err
	}
	if !snapshot.Exists {
		return model.TeamRef{ID: teamID, Name: model.UnknownTeamName}, nil
	}

	name := stringField(snapshot.Data, "name")
	if name == "" {
		name = model.UnknownTeamName
	}
	if uc.cache != nil {
		uc.cache.Set(ctx, leagueID, teamID, name)
	}
	return model.TeamRef{ID: teamID, Name: name}, nil
}

// teamID indexes a team pair; stored data predating the two-team rule
// can be shorter than two entries.
func teamID(ids []string, index int) string {
	if index < len(ids) {
		return ids[index]
	}
	return ""
}
