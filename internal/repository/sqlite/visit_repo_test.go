package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitRepository(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewSQLiteConnection(ctx, filepath.Join(t.TempDir(), "visits.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, EnsureVisitSchema(ctx, db))

	repo := NewVisitRepository(db)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	visits := []struct {
		ip, path string
		at       time.Time
	}{
		{"a", "/v1/content", now.Add(-time.Hour)},
		{"a", "/v1/content", now.Add(-2 * time.Hour)},
		{"b", "/resume.pdf", now.Add(-48 * time.Hour)},
		{"c", "/v1/content", now.Add(-30 * 24 * time.Hour)},
	}
	for _, v := range visits {
		require.NoError(t, repo.Create(ctx, &domain.Visit{
			ID: uuid.NewString(), HashedIP: v.ip, Path: v.path, CreatedAt: v.at,
		}))
	}

	stats, err := repo.Stats(ctx, now, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalVisits)
	assert.Equal(t, int64(3), stats.UniqueVisitors)
	assert.Equal(t, int64(2), stats.VisitsToday)
	assert.Equal(t, int64(3), stats.VisitsThisWeek)
	assert.Equal(t, []domain.PathCount{{Path: "/v1/content", Count: 3}}, stats.TopPaths)
}

func TestVisitRepositoryEmpty(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewSQLiteConnection(ctx, filepath.Join(t.TempDir(), "visits.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, EnsureVisitSchema(ctx, db))

	stats, err := NewVisitRepository(db).Stats(ctx, time.Now(), 10)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalVisits)
	assert.Empty(t, stats.TopPaths)
}
