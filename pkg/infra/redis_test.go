package infra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestNewRedisConnection(t *testing.T) {
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, testcontainers.TerminateContainer(redisContainer))
	})

	host, err := redisContainer.Host(ctx)
	require.NoError(t, err)
	port, err := redisContainer.MappedPort(ctx, "6379")
	require.NoError(t, err)

	testCases := []struct {
		name        string
		input       RedisConfig
		expectedErr bool
	}{
		{
			name:  "valid config",
			input: RedisConfig{Host: host, Port: port.Int()},
		},
		{
			name:        "invalid config",
			input:       RedisConfig{Host: host, Port: 1},
			expectedErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, e := NewRedisConnection(ctx, tc.input)
			if tc.expectedErr {
				assert.Error(t, e)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, e)
			defer client.Close()
			assert.NoError(t, client.Set(ctx, "status:ping", "pong", 0).Err())
		})
	}
}
