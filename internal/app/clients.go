package app

import (
	"context"
	"fmt"

	"github.com/yungbote/team-alchemy-backend/internal/platform/cache"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
)

type Clients struct {
	Cache cache.Cache
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	// Redis; an empty url disables caching
	c, err := cache.New(ctx, cfg.RedisURL, log)
	if err != nil {
		return Clients{}, fmt.Errorf("init cache: %w", err)
	}
	return Clients{Cache: c}, nil
}

func (c Clients) Close() error {
	if c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}
