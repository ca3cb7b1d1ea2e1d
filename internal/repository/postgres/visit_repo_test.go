package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository/postgres"
	"portfolio-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real database only when TEST_DATABASE_URL is set.
func TestVisitRepository(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := database.NewPostgresConnection(dsn)
	require.NoError(t, err)
	defer pool.Close()

	ctx := context.Background()
	require.NoError(t, postgres.EnsureVisitSchema(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE visits`)
	require.NoError(t, err)

	repo := postgres.NewVisitRepository(pool)
	now := time.Now().UTC()

	visits := []domain.Visit{
		{HashedIP: "a", Path: "/v1/content", CreatedAt: now},
		{HashedIP: "a", Path: "/v1/content", CreatedAt: now},
		{HashedIP: "b", Path: "/resume.pdf", CreatedAt: now.Add(-10 * 24 * time.Hour)},
	}
	for i := range visits {
		visits[i].ID = uuid.NewString()
		require.NoError(t, repo.Create(ctx, &visits[i]))
	}

	stats, err := repo.Stats(ctx, now, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalVisits)
	assert.Equal(t, int64(2), stats.UniqueVisitors)
	assert.Equal(t, int64(2), stats.VisitsThisWeek)
	require.NotEmpty(t, stats.TopPaths)
	assert.Equal(t, domain.PathCount{Path: "/v1/content", Count: 2}, stats.TopPaths[0])
}
