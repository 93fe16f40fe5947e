//go:build integration_test || all_tests

package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/vstanisic/fitpal/internal/db"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStoreSetup(t *testing.T) (*PostgresStore, func()) {
	t.Helper()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	t.Logf("using postgres host: %s", host)

	dbPool, err := db.NewDBPool(timeoutCtx, db.NewDBPoolParams{
		DBHost:         host,
		DBPort:         "5432",
		DBName:         "fitpal",
		TracingEnabled: false,
	})
	require.NoError(t, err)

	s := NewPostgresStore(dbPool)
	require.NoError(t, s.CreateSchema(timeoutCtx))

	return s, func() {
		dbPool.Close()
	}
}

func TestPostgresStore_GetSet(t *testing.T) {
	s, cleanup := testStoreSetup(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	key := "test-key-" + gofakeit.UUID()
	defer func() {
		_, err := s.db.Exec(ctx, `DELETE FROM app_state WHERE key = $1;`, key)
		require.NoError(t, err)
	}()

	_, err := s.Get(ctx, key)
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, key, `{"glasses":3}`))

	value, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"glasses":3}`, value)

	// overwrite, last write wins
	require.NoError(t, s.Set(ctx, key, `{"glasses":4}`))

	value, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"glasses":4}`, value)
}
