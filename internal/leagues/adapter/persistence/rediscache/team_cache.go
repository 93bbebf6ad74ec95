// Package rediscache provides the optional Redis-backed team-name cache
// consulted during match enrichment.
package rediscache

import (
	"context"
	"fmt"
	"time"

	"league-backend/internal/shared/logger"

	"github.com/redis/go-redis/v9"
)

// TeamNameCache caches resolved team names with a short TTL. All Redis
// failures are treated as cache misses; enrichment falls back to the
// store and keeps going.
type TeamNameCache struct {
	client *redis.Client
	ttl    time.Duration
	log    logger.Logger
}

// NewTeamNameCache creates a cache with the given entry TTL.
func NewTeamNameCache(client *redis.Client, ttl time.Duration, log logger.Logger) *TeamNameCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &TeamNameCache{
		client: client,
		ttl:    ttl,
		log:    log.WithComponent("team-name-cache"),
	}
}

func teamNameKey(leagueID, teamID string) string {
	return fmt.Sprintf("league:%s:team:%s:name", leagueID, teamID)
}

// Get looks up a cached team name.
func (c *TeamNameCache) Get(ctx context.Context, leagueID, teamID string) (string, bool) {
	name, err := c.client.Get(ctx, teamNameKey(leagueID, teamID)).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.log.WithContext(ctx).Warnf("Cache read failed for team %s: %v", teamID, err)
		return "", false
	}
	return name, true
}

// Set stores a resolved team name. A write failure is logged and dropped.
func (c *TeamNameCache) Set(ctx context.Context, leagueID, teamID, name string) {
	if err := c.client.Set(ctx, teamNameKey(leagueID, teamID), name, c.ttl).Err(); err != nil {
		c.log.WithContext(ctx).Warnf("Cache write failed for team %s: %v", teamID, err)
	}
}
