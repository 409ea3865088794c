package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/conv"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 30 * 24 * time.Hour

type Config struct {
	RedisAddr string        `mapstructure:"redis_addr"`
	Password  string        `mapstructure:"redis_password"`
	KeyPrefix string        `mapstructure:"key_prefix"`
	TTL       time.Duration `mapstructure:"ttl"`
}

// Conversations keeps per-user survey conversations in Redis.
type Conversations struct {
	db        *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// New initializes a Redis backed conversation store. A zero TTL falls back to 30 days.
func New(cfg Config) *Conversations {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.Password,
	})

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &Conversations{
		db:        rdb,
		keyPrefix: cfg.KeyPrefix,
		ttl:       ttl,
	}
}

// Close terminates the connection to the Redis database and returns an error if the operation fails.
func (r *Conversations) Close() error {
	return r.db.Close()
}

// GetConversation loads the user's conversation. A user without a stored record gets a new idle conversation.
func (r *Conversations) GetConversation(ctx context.Context, userID string) (*conv.Conversation, error) {
	data, err := r.db.Get(ctx, r.key(userID)).Bytes()

	switch {
	case errors.Is(err, redis.Nil):
		return conv.New(userID), nil
	case err != nil:
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	var c conv.Conversation
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation: %w", err)
	}

	return &c, nil
}

// SaveConversation stores the conversation and refreshes its expiration.
func (r *Conversations) SaveConversation(ctx context.Context, c *conv.Conversation) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation: %w", err)
	}

	if err := r.db.Set(ctx, r.key(c.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}

	return nil
}

func (r *Conversations) key(userID string) string {
	return r.keyPrefix + "conv:" + userID
}
