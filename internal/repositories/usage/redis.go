package usage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

const usageKeyPrefix = "command_usage:"

// Config holds configuration for the Redis usage repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed usage repository
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

// IncrementUsage adds one to the invocation counter for a command
func (r *redisRepository) IncrementUsage(ctx context.Context, input *IncrementUsageInput) error {
	if input == nil || input.CommandName == "" {
		return errors.New("input and command name cannot be empty")
	}

	key := fmt.Sprintf("%s%s", usageKeyPrefix, input.CommandName)
	if err := r.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to increment usage: %w", err)
	}

	return nil
}

// GetUsage retrieves the invocation counter for a command. A command that
// was never invoked has a count of zero.
func (r *redisRepository) GetUsage(ctx context.Context, input *GetUsageInput) (*GetUsageOutput, error) {
	if input == nil || input.CommandName == "" {
		return nil, errors.New("input and command name cannot be empty")
	}

	key := fmt.Sprintf("%s%s", usageKeyPrefix, input.CommandName)
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetUsageOutput{Count: 0}, nil
		}
		return nil, fmt.Errorf("failed to get usage: %w", err)
	}

	count, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse usage count: %w", err)
	}

	return &GetUsageOutput{
		Count: count,
	}, nil
}

// GetAllUsage retrieves every command counter
func (r *redisRepository) GetAllUsage(ctx context.Context) (*GetAllUsageOutput, error) {
	counts := make(map[string]int64)

	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, usageKeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan usage counters: %w", err)
		}

		for _, key := range keys {
			value, err := r.client.Get(ctx, key).Result()
			if err != nil {
				if err == redis.Nil {
					continue
				}
				return nil, fmt.Errorf("failed to get usage %s: %w", key, err)
			}

			count, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse usage count for %s: %w", key, err)
			}

			name := strings.TrimPrefix(key, usageKeyPrefix)
			counts[name] = count
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return &GetAllUsageOutput{
		Counts: counts,
	}, nil
}
