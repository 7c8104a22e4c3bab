package testutils

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// RedisAddrEnv points tests at an already running Redis
	RedisAddrEnv = "POSSESS_TEST_REDIS_ADDR"
	// RedisImage is started when no Redis address is configured
	RedisImage = "redis:7-alpine"
	testDB     = 15 // Use DB 15 for tests to avoid conflicts
)

// NewRedisClient connects to addr and flushes the test database. The test
// is skipped when Redis cannot be reached.
func NewRedisClient(t *testing.T, addr string) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   testDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available for testing: %v", err)
	}

	require.NoError(t, client.FlushDB(ctx).Err(), "Failed to flush test Redis database")

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})

	return client
}

// RedisClientOrContainer connects to the Redis named by RedisAddrEnv, or
// starts a throwaway container when the variable is unset
func RedisClientOrContainer(t *testing.T) *redis.Client {
	t.Helper()

	if addr := os.Getenv(RedisAddrEnv); addr != "" {
		return NewRedisClient(t, addr)
	}
	return NewRedisClient(t, StartRedisContainer(t))
}

// StartRedisContainer runs RedisImage and returns its host:port. The
// container is terminated when the test ends. The test is skipped when no
// container runtime is available.
func StartRedisContainer(t *testing.T) string {
	t.Helper()

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        RedisImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("Redis container not available: %v", err)
	}

	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err, "Failed to resolve Redis container endpoint")

	return endpoint
}

// Subscribe listens on channel and returns the delivery channel once the
// subscription is confirmed
func Subscribe(t *testing.T, client *redis.Client, channel string) <-chan *redis.Message {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pubsub := client.Subscribe(ctx, channel)
	_, err := pubsub.Receive(ctx)
	require.NoError(t, err, "Failed to subscribe to %s", channel)

	t.Cleanup(func() {
		_ = pubsub.Close()
	})

	return pubsub.Channel()
}
