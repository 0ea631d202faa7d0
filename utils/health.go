package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

const healthCheckInterval = 60 * time.Second

// HealthStatus is the snapshot served on /health: the booking store plus each
// Redis client (cache, auth, workflow) in the order they were registered.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the most recent snapshot. It never blocks on a
// probe; the monitor goroutine refreshes the state in the background.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings the booking store and the given Redis clients on a
// fixed interval and keeps the snapshot current.
func StartHealthMonitor(redisClients []*redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			redisHealth := make([]bool, 0, len(redisClients))
			for _, client := range redisClients {
				redisHealth = append(redisHealth, client.Ping(ctx).Err() == nil)
			}

			mongoHealthy := mongoClient.Ping(ctx, nil) == nil

			healthMu.Lock()
			currentHealth = HealthStatus{
				Mongo:     mongoHealthy,
				Redis:     redisHealth,
				CheckedAt: time.Now(),
			}
			healthMu.Unlock()
		}
	}()
}
