package pagenav

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	defaultCacheTTL       = time.Hour
	navigationCachePrefix = "pagenav|"
)

// NavigationCache memoizes BuildNavigation results in redis.
//
// Entries are keyed by the render options and the pager fingerprint, so two
// pagers in the same state share an entry. Redis failures never fail a
// build: they are logged and the navigation is built uncached.
type NavigationCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger zerolog.Logger
}

func NewNavigationCache(client redis.Cmdable, ttl time.Duration) *NavigationCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &NavigationCache{
		client: client,
		ttl:    ttl,
		logger: zerolog.Nop(),
	}
}

// WithLogger sets the logger used to report cache failures.
func (c *NavigationCache) WithLogger(logger zerolog.Logger) *NavigationCache {
	if c == nil {
		c = NewNavigationCache(nil, defaultCacheTTL)
	}

	c.logger = logger

	return c
}

// CacheKey returns the key the navigation for state and opts is stored under.
func CacheKey(state PageState, opts RenderOptions) (string, error) {
	encodedOpts, err := json.Marshal(opts)
	if err != nil {
		return "", fmt.Errorf("failed to encode render options: %w", err)
	}

	return navigationCachePrefix + string(encodedOpts) + "." + state.String(), nil
}

// Build returns the cached navigation for state and opts, building and
// storing it on a miss. Only invalid options are reported as errors.
// Without a redis client the navigation is always built uncached.
func (c *NavigationCache) Build(ctx context.Context, state PageState, opts RenderOptions) (*Navigation, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if c == nil || c.client == nil {
		return BuildNavigation(state, opts)
	}

	key, err := CacheKey(state, opts)
	if err != nil {
		return nil, err
	}

	logger := c.logger.With().Str("key", key).Logger()

	nav, err := c.get(ctx, key)
	switch {
	case err == nil:
		logger.Debug().Msg("pagenav: navigation cache hit")
		return nav, nil
	case errors.Is(err, redis.Nil):
		logger.Debug().Msg("pagenav: navigation cache miss")
	default:
		logger.Warn().Err(err).Msg("pagenav: navigation cache read failed")
	}

	nav, err = BuildNavigation(state, opts)
	if err != nil {
		return nil, err
	}

	if err = c.set(ctx, key, nav); err != nil {
		logger.Warn().Err(err).Msg("pagenav: navigation cache write failed")
	}

	return nav, nil
}

func (c *NavigationCache) get(ctx context.Context, key string) (*Navigation, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var nav Navigation
	if err = json.Unmarshal(data, &nav); err != nil {
		return nil, fmt.Errorf("failed to decode cached navigation: %w", err)
	}

	return &nav, nil
}

func (c *NavigationCache) set(ctx context.Context, key string, nav *Navigation) error {
	data, err := json.Marshal(nav)
	if err != nil {
		return fmt.Errorf("failed to encode navigation: %w", err)
	}

	if err = c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store navigation: %w", err)
	}

	return nil
}
