package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	// roleCachePrefix is the Redis key prefix for cached user roles.
	roleCachePrefix = "auth:role:"
	// roleCacheTTL bounds how stale a cached role may be. A freshly
	// granted admin role is visible at the latest after this interval,
	// sooner when the grant path invalidates the entry.
	roleCacheTTL = 5 * time.Minute
)

// GetRole retrieves a cached role for an email.
// The second return value reports whether the lookup was a cache hit;
// a miss is not an error.
func (c *Cache) GetRole(ctx context.Context, email string) (string, bool, error) {
	role, err := c.client.Get(ctx, roleCachePrefix+email).Result()
	if err != nil {
		// Cache miss and transport errors are both treated as a miss;
		// the caller falls through to the store.
		return "", false, nil //nolint:nilerr
	}
	return role, true, nil
}

// SetRole caches a role for an email. An empty role is cached too,
// so repeated lookups for non-admin accounts stay off the store.
func (c *Cache) SetRole(ctx context.Context, email, role string) error {
	if err := c.client.Set(ctx, roleCachePrefix+email, role, roleCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache role: %w", err)
	}
	return nil
}

// DeleteRole removes a cached role. Called when a role changes.
func (c *Cache) DeleteRole(ctx context.Context, email string) error {
	return c.client.Del(ctx, roleCachePrefix+email).Err()
}
