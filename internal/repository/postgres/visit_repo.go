package postgres

import (
	"context"
	"fmt"
	"portfolio-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const visitSchema = `
CREATE TABLE IF NOT EXISTS visits (
    id          UUID PRIMARY KEY,
    hashed_ip   TEXT NOT NULL,
    path        TEXT NOT NULL,
    user_agent  TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS visits_created_at_idx ON visits (created_at);`

type visitRepo struct {
	db *pgxpool.Pool
}

func NewVisitRepository(db *pgxpool.Pool) domain.VisitRepository {
	return &visitRepo{db: db}
}

// EnsureVisitSchema creates the visits table when missing
func EnsureVisitSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, visitSchema); err != nil {
		return fmt.Errorf("failed to create visits schema: %w", err)
	}
	return nil
}

func (r *visitRepo) Create(ctx context.Context, visit *domain.Visit) error {
	query := `INSERT INTO visits (id, hashed_ip, path, user_agent, created_at)
              VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, visit.ID, visit.HashedIP, visit.Path, visit.UserAgent, visit.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert visit: %w", err)
	}
	return nil
}

func (r *visitRepo) Stats(ctx context.Context, now time.Time, topN int) (*domain.VisitStats, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.Add(-7 * 24 * time.Hour)

	var stats domain.VisitStats
	query := `SELECT
                COUNT(*),
                COUNT(DISTINCT hashed_ip),
                COUNT(*) FILTER (WHERE created_at >= $1),
                COUNT(*) FILTER (WHERE created_at >= $2)
              FROM visits`
	err := r.db.QueryRow(ctx, query, startOfDay, weekAgo).Scan(
		&stats.TotalVisits, &stats.UniqueVisitors, &stats.VisitsToday, &stats.VisitsThisWeek,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate visits: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT path, COUNT(*) AS hits FROM visits GROUP BY path ORDER BY hits DESC, path LIMIT $1`, topN)
	if err != nil {
		return nil, fmt.Errorf("failed to query top paths: %w", err)
	}
	defer rows.Close()

	stats.TopPaths = []domain.PathCount{}
	for rows.Next() {
		var pc domain.PathCount
		if err := rows.Scan(&pc.Path, &pc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan top path: %w", err)
		}
		stats.TopPaths = append(stats.TopPaths, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate top paths: %w", err)
	}

	return &stats, nil
}
