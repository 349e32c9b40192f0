package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest dependency snapshot served by /health. Each
// Redis role is reported separately; a dead reminder queue degrades
// reminders only, while a dead auth cache slows every request.
type HealthStatus struct {
	Mongo         bool      `json:"mongo"`
	CacheRedis    bool      `json:"cacheRedis"`
	AuthRedis     bool      `json:"authRedis"`
	ReminderQueue bool      `json:"reminderQueue"`
	CheckedAt     time.Time `json:"checkedAt"`
}

// HealthProbes holds one ping function per dependency the service needs.
type HealthProbes struct {
	Mongo         func(context.Context) error
	Cache         func(context.Context) error
	Auth          func(context.Context) error
	ReminderQueue func(context.Context) error
}

// RedisProbe wraps a Redis client into a probe function.
func RedisProbe(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

// MongoProbe wraps the Mongo client into a probe function.
func MongoProbe(client *mongo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	}
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

func (p HealthProbes) snapshot(ctx context.Context) HealthStatus {
	ok := func(probe func(context.Context) error) bool {
		return probe != nil && probe(ctx) == nil
	}
	return HealthStatus{
		Mongo:         ok(p.Mongo),
		CacheRedis:    ok(p.Cache),
		AuthRedis:     ok(p.Auth),
		ReminderQueue: ok(p.ReminderQueue),
		CheckedAt:     time.Now(),
	}
}

// StartHealthMonitor probes every dependency once a minute and keeps the
// snapshot in memory for the health endpoint.
func StartHealthMonitor(probes HealthProbes) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			status := probes.snapshot(ctx)

			mu.Lock()
			currentHealth = status
			mu.Unlock()
		}
	}()
}
