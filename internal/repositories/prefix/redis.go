package prefix

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const prefixKeyPrefix = "prefix:"

// ErrPrefixNotFound is returned when a guild has no persisted prefix
var ErrPrefixNotFound = errors.New("prefix not found")

// Config holds configuration for the Redis prefix repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed prefix repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetPrefix retrieves the prefix configured for a guild
func (r *redisRepository) GetPrefix(ctx context.Context, input *GetPrefixInput) (*GetPrefixOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", prefixKeyPrefix, input.GuildID)
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPrefixNotFound
		}
		return nil, fmt.Errorf("failed to get prefix: %w", err)
	}

	return &GetPrefixOutput{
		Prefix: value,
	}, nil
}

// SetPrefix persists the prefix for a guild
func (r *redisRepository) SetPrefix(ctx context.Context, input *SetPrefixInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	if input.Prefix == "" {
		return errors.New("prefix cannot be empty")
	}

	key := fmt.Sprintf("%s%s", prefixKeyPrefix, input.GuildID)
	if err := r.client.Set(ctx, key, input.Prefix, 0).Err(); err != nil {
		return fmt.Errorf("failed to set prefix: %w", err)
	}

	return nil
}

// DeletePrefix removes the persisted prefix for a guild
func (r *redisRepository) DeletePrefix(ctx context.Context, input *DeletePrefixInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", prefixKeyPrefix, input.GuildID)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete prefix: %w", err)
	}

	return nil
}

// GetAllPrefixes retrieves every persisted guild prefix
func (r *redisRepository) GetAllPrefixes(ctx context.Context) (*GetAllPrefixesOutput, error) {
	prefixes := make(map[string]string)

	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, prefixKeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan prefixes: %w", err)
		}

		for _, key := range keys {
			value, err := r.client.Get(ctx, key).Result()
			if err != nil {
				if err == redis.Nil {
					// Deleted between scan and get
					continue
				}
				return nil, fmt.Errorf("failed to get prefix %s: %w", key, err)
			}
			guildID := strings.TrimPrefix(key, prefixKeyPrefix)
			prefixes[guildID] = value
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return &GetAllPrefixesOutput{
		Prefixes: prefixes,
	}, nil
}
