// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"careconnect/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (resource listings etc.).
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the Redis client for authorization caching (using DB from AppConfig for auth cache).
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// CacheAuthToken stores a token hash for the given user in the auth cache.
// Best effort: a nil client (e.g. in tests) is treated as a no-op.
func CacheAuthToken(userID, tokenHash string) {
	if AuthCacheClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := AuthCacheClient.Set(ctx, AuthCachePrefix+userID, tokenHash, AuthCacheTTL).Err(); err != nil {
		GetLogger().Sugar().Warnf("failed to cache auth token for user %s: %v", userID, err)
	}
}

// DropAuthToken removes any cached token hash for the given user.
func DropAuthToken(userID string) {
	if AuthCacheClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := AuthCacheClient.Del(ctx, AuthCachePrefix+userID).Err(); err != nil {
		GetLogger().Sugar().Warnf("failed to drop auth token for user %s: %v", userID, err)
	}
}
