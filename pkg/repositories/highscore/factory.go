package highscore

import (
	"context"
	"fmt"

	"github.com/fadedpez/wildcatblackjack/internal/config"
	"github.com/fadedpez/wildcatblackjack/internal/logging"
)

// New opens the repository selected by cfg.StorageType
func New(ctx context.Context, cfg *config.Config, logger *logging.Logger) (Repository, error) {
	switch cfg.StorageType {
	case config.StorageMemory:
		return NewMemoryRepository(), nil
	case config.StorageFile, "":
		return NewFileRepository(cfg.HighScorePath, logger)
	case config.StorageSQLite:
		return NewSQLiteRepository(cfg.SQLitePath, logger)
	case config.StorageRedis:
		return NewRedisRepository(cfg.RedisURL, cfg.RedisKey)
	case config.StorageElasticsearch:
		return NewElasticsearchRepository(ctx, ElasticsearchConfig{
			URL:      cfg.ElasticsearchURL,
			Username: cfg.ElasticsearchUsername,
			Password: cfg.ElasticsearchPassword,
			Index:    cfg.ElasticsearchIndex,
		})
	case config.StoragePostgres:
		return NewPostgresRepository(ctx, cfg.PostgresDSN, logger)
	}
	return nil, fmt.Errorf("unknown storage type: %q", cfg.StorageType)
}
