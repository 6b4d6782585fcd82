// Package testutils provides test helpers shared across packages.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/realmforge/catalog-api/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis server and a client
// connected to it. The returned miniredis handle allows direct inspection
// of keys; the cleanup func shuts the server down.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	cleanup := func() {
		mr.Close()
	}

	return client, mr, cleanup
}
