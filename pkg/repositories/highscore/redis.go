package highscore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fadedpez/wildcatblackjack/pkg/entities"
)

// DefaultRedisKey holds the "<name>|<score>" record
const DefaultRedisKey = "wildcat:highscore"

// RedisRepository keeps the record under a single key
type RedisRepository struct {
	client *redis.Client
	key    string
}

// NewRedisRepository connects to url and checks the connection
func NewRedisRepository(url, key string) (*RedisRepository, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}

	return NewRedisRepositoryWithClient(client, key), nil
}

// NewRedisRepositoryWithClient wraps an existing client (for testing)
func NewRedisRepositoryWithClient(client *redis.Client, key string) *RedisRepository {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisRepository{client: client, key: key}
}

// Load implements Repository
func (r *RedisRepository) Load(ctx context.Context) (*entities.HighScore, error) {
	raw, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return &entities.HighScore{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading high score: %w", err)
	}
	return entities.ParseHighScore(raw), nil
}

// Save implements Repository
func (r *RedisRepository) Save(ctx context.Context, score *entities.HighScore) error {
	if err := r.client.Set(ctx, r.key, score.String(), 0).Err(); err != nil {
		return fmt.Errorf("error saving high score: %w", err)
	}
	return nil
}

// Close implements Repository
func (r *RedisRepository) Close() error {
	return r.client.Close()
}
