//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-management/library/migrations"
	pg "github.com/Astemirdum/library-management/pkg/postgres"
)

// setupRepository starts a throwaway PostgreSQL, applies the migrations and returns a repository on it.
func setupRepository(t *testing.T) (*repository, *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("library"),
		postgres.WithUsername("library"),
		postgres.WithPassword("library"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	uri, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pg.NewPostgresDB(ctx, &pg.DB{URI: uri, MaxConns: 8}, migrations.MigrationFiles)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo, err := NewRepository(pool, zap.NewNop())
	require.NoError(t, err)
	return repo, pool
}
