package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"tutorly/config"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for resolved-identity caching.
	AuthCacheClient *redis.Client
	// ReminderQueueClient points at the reminder queue's logical DB. The
	// queue itself is driven through asynq; this client only exists so the
	// health monitor can probe that DB directly.
	ReminderQueueClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
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

// InitAuthCache initializes the Redis client for identity caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for identity caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitReminderQueue initializes the Redis client for the reminder queue DB.
func InitReminderQueue() {
	ReminderQueueClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ReminderQueueClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Reminder Queue): %v", err)
	}
}

// GetReminderQueueClient returns the Redis client for the reminder queue DB.
func GetReminderQueueClient() *redis.Client {
	if ReminderQueueClient == nil {
		InitReminderQueue()
	}
	return ReminderQueueClient
}

// InitRedis brings up every Redis client this service uses.
func InitRedis() {
	InitCache()
	InitAuthCache()
	InitReminderQueue()
}
