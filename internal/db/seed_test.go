package db

import (
	"context"
	"net/url"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/config/configs"
)

func TestSeedIsIdempotent(t *testing.T) {
	addr := os.Getenv("CROWDFUND_TEST_PSQL_ADDRESS")
	if addr == "" {
		t.Skip("CROWDFUND_TEST_PSQL_ADDRESS not set")
	}
	require.NoError(t, Migrate(addr))
	u, err := url.Parse(addr)
	require.NoError(t, err)
	ctx := context.Background()
	pool, err := NewPostgresPool(ctx, configs.Postgres{Addr: *u})
	require.NoError(t, err)
	defer pool.Close()

	account := "seed-" + uuid.NewString()
	grants := map[string]int64{account: 500}
	require.NoError(t, Seed(ctx, pool, grants))
	require.NoError(t, Seed(ctx, pool, grants))

	var balance int64
	require.NoError(t, pool.QueryRow(ctx, `SELECT balance FROM accounts WHERE id = $1`, account).Scan(&balance))
	assert.Equal(t, int64(500), balance)
}
