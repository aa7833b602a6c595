package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = time.Hour

// PromptCache stores AI generation results keyed by prompt hash, so repeated
// identical prompts skip the upstream call.
// Key format: ai:prompt:<sha256-hex>
type PromptCache struct {
	client *redis.Client
}

// NewPromptCache creates a PromptCache wrapping the given Redis client.
func NewPromptCache(client *redis.Client) *PromptCache {
	return &PromptCache{client: client}
}

// Lookup returns the cached result for prompt, reporting ok=false on a miss.
func (p *PromptCache) Lookup(ctx context.Context, prompt string) (string, bool, error) {
	result, err := p.client.Get(ctx, p.key(prompt)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("prompt cache get: %w", err)
	}
	return result, true, nil
}

// Store records the result for prompt (expires after cacheTTL).
func (p *PromptCache) Store(ctx context.Context, prompt, result string) error {
	return p.client.Set(ctx, p.key(prompt), result, cacheTTL).Err()
}

func (p *PromptCache) key(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "ai:prompt:" + hex.EncodeToString(sum[:])
}
