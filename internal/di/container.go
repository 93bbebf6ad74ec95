// Package di assembles the process-wide dependencies: configuration,
// logger, MongoDB, the optional Redis cache, the event bus and the
// leagues module.
package di

import (
	"context"
	"fmt"
	"sync"

	"league-backend/internal/leagues"
	"league-backend/internal/leagues/config"
	"league-backend/internal/leagues/usecase"
	"league-backend/internal/shared/eventbus"
	"league-backend/internal/shared/logger"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Container holds the wired application dependencies with proper
// lifecycle management.
type Container struct {
	mu sync.Mutex

	Config        *config.Config
	Logger        logger.Logger
	Bus           *eventbus.EventBus
	MongoClient   *mongo.Client
	MongoDB       *mongo.Database
	RedisClient   *redis.Client
	LeaguesModule *leagues.Module
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{}
}

// Initialize connects to the backing services and wires the leagues
// module. Mongo connectivity is verified with a ping; Redis is optional
// and only connected when enabled in the configuration.
func (c *Container) Initialize(ctx context.Context, cfg *config.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Config = cfg
	c.Logger = logger.NewLoggerWithConfig(cfg.LogLevel, cfg.LogFormat)
	c.Bus = eventbus.NewEventBus(c.Logger)

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	c.MongoClient = mongoClient
	c.MongoDB = mongoClient.Database(cfg.MongoDatabase)
	c.Logger.Info("MongoDB connection established")

	if cfg.Redis.Enabled {
		c.RedisClient = config.NewRedisClient(cfg.Redis)
		if err := c.RedisClient.Ping(ctx).Err(); err != nil {
			// Start without the cache rather than abort.
			c.Logger.Warnf("Redis unreachable, team-name cache disabled: %v", err)
			c.RedisClient = nil
		} else {
			c.Logger.Info("Redis connection established, team-name cache enabled")
		}
	}

	c.LeaguesModule = leagues.NewModule(cfg, c.MongoDB, c.RedisClient, c.Bus, c.Logger)
	c.registerAuditLog()
	return nil
}

// registerAuditLog subscribes a logging handler to every domain event
// the leagues module publishes.
func (c *Container) registerAuditLog() {
	auditLog := c.Logger.WithComponent("audit")
	for _, eventType := range usecase.AllEventTypes() {
		c.Bus.Subscribe(eventType, func(ctx context.Context, event eventbus.Event) error {
			auditLog.WithContext(ctx).WithFields(map[string]interface{}{
				"event":  event.Type(),
				"source": event.Source(),
				"data":   event.Data(),
			}).Info("domain event")
			return nil
		})
	}
}

// HealthCheck pings the backing services.
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.MongoClient == nil {
		return fmt.Errorf("MongoDB is not initialized")
	}
	if err := c.MongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis ping failed: %w", err)
		}
	}
	return nil
}

// Close releases all connections held by the container.
func (c *Container) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close Redis client: %w", err)
		}
	}
	if c.MongoClient != nil {
		if err := c.MongoClient.Disconnect(ctx); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to disconnect MongoDB: %w", err)
		}
	}
	return firstErr
}
