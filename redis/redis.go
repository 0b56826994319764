package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// InitRedis connects to the Redis instance backing the revoked-token list.
// Redis is optional: without REDIS_ADDR, logout becomes a no-op and tokens
// simply expire on their own.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		fmt.Println("REDIS_ADDR not set, token revocation disabled")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// RevokeToken denylists a bearer token until its natural expiry.
func RevokeToken(token string, ttl time.Duration) error {
	if Client == nil || ttl <= 0 {
		return nil
	}
	return Client.Set(Ctx, "revoked:"+token, 1, ttl).Err()
}

// IsTokenRevoked reports whether the token was revoked by a logout. Errors
// count as not revoked; the denylist is best-effort.
func IsTokenRevoked(token string) bool {
	if Client == nil {
		return false
	}
	n, err := Client.Exists(Ctx, "revoked:"+token).Result()
	return err == nil && n > 0
}
