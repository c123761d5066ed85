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

// ActiveQueueKey caches the rendered live queue between status changes.
const ActiveQueueKey = "queue:active"

// QueueCacheTTL bounds staleness if an invalidation is ever missed.
const QueueCacheTTL = 30 * time.Second

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// InvalidateQueue drops the cached queue after any visit status change.
func InvalidateQueue() {
	if Client == nil {
		return
	}
	Client.Del(Ctx, ActiveQueueKey)
}
