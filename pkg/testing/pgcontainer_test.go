//go:build integration

package testing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

func TestNewPGContainer(t *testing.T) {
	ctx := context.Background()
	pattern := filepath.Join(os.TempDir(), "migrations-*.sql")

	before, err := filepath.Glob(pattern)
	require.NoError(t, err)

	pg, err := NewPGContainer(ctx, PGConfig{
		Database: "rules_test_db",
		Username: "test",
		Password: "test",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(pg.Container)
	})

	after, err := filepath.Glob(pattern)
	require.NoError(t, err)
	assert.ElementsMatch(t, before, after, "migration script left in temp dir")

	conn, err := pgx.Connect(ctx, pg.ConnString)
	require.NoError(t, err)
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT to_regclass('catalog_types') IS NOT NULL").Scan(&exists)
	require.NoError(t, err)
	assert.True(t, exists, "migrations applied")
}
