package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"portfolio-backend/internal/domain"
	"time"
)

const visitSchema = `
CREATE TABLE IF NOT EXISTS visits (
    id          TEXT PRIMARY KEY,
    hashed_ip   TEXT NOT NULL,
    path        TEXT NOT NULL,
    user_agent  TEXT NOT NULL DEFAULT '',
    created_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visits_created_at_idx ON visits (created_at);`

// created_at holds unix milliseconds so range filters compare integers.
type visitRepo struct {
	db *sql.DB
}

func NewVisitRepository(db *sql.DB) domain.VisitRepository {
	return &visitRepo{db: db}
}

// EnsureVisitSchema creates the visits table when missing
func EnsureVisitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, visitSchema); err != nil {
		return fmt.Errorf("failed to create visits schema: %w", err)
	}
	return nil
}

func (r *visitRepo) Create(ctx context.Context, visit *domain.Visit) error {
	query := `INSERT INTO visits (id, hashed_ip, path, user_agent, created_at)
              VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, visit.ID, visit.HashedIP, visit.Path, visit.UserAgent, visit.CreatedAt.UnixMilli())
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
                COUNT(CASE WHEN created_at >= ? THEN 1 END),
                COUNT(CASE WHEN created_at >= ? THEN 1 END)
              FROM visits`
	err := r.db.QueryRowContext(ctx, query, startOfDay.UnixMilli(), weekAgo.UnixMilli()).Scan(
		&stats.TotalVisits, &stats.UniqueVisitors, &stats.VisitsToday, &stats.VisitsThisWeek,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate visits: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT path, COUNT(*) AS hits FROM visits GROUP BY path ORDER BY hits DESC, path LIMIT ?`, topN)
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
