//go:build integration

package testutils

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const redisImage = "redis:7-alpine"

// RedisForTest returns a clean Redis client. It uses REDIS_TEST_ADDR when
// set and otherwise starts a container.
func RedisForTest(tb testing.TB) redis.UniversalClient {
	tb.Helper()
	if os.Getenv(RedisAddrEnv) != "" {
		return CreateTestRedisClient(tb, DefaultTestRedisConfig())
	}
	return StartRedisContainer(tb)
}

// StartRedisContainer runs a throwaway Redis in Docker and returns a client
// for it. The container is terminated when the test finishes.
func StartRedisContainer(tb testing.TB) redis.UniversalClient {
	tb.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        redisImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		tb.Fatalf("starting redis container: %v", err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			tb.Logf("terminating redis container: %v", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		tb.Fatalf("getting redis endpoint: %v", err)
	}

	if err := WaitForRedis(endpoint, 10*time.Second); err != nil {
		tb.Fatalf("waiting for redis: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	tb.Cleanup(func() { _ = client.Close() })

	return client
}
