package domain

import (
	"context"
	"time"
)

// Visit is one recorded page view. The client IP is stored only as a salted hash.
type Visit struct {
	ID        string    `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	Path      string    `json:"path"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

type PathCount struct {
	Path  string `json:"path"`
	Count int64  `json:"count"`
}

type VisitStats struct {
	TotalVisits    int64       `json:"total_visits"`
	UniqueVisitors int64       `json:"unique_visitors"`
	VisitsToday    int64       `json:"visits_today"`
	VisitsThisWeek int64       `json:"visits_this_week"`
	TopPaths       []PathCount `json:"top_paths"`
}

type VisitRepository interface {
	Create(ctx context.Context, visit *Visit) error
	Stats(ctx context.Context, now time.Time, topN int) (*VisitStats, error)
}

type AnalyticsUsecase interface {
	// RecordVisit stores a page view; clientIP is hashed before it leaves the usecase.
	RecordVisit(ctx context.Context, clientIP, path, userAgent string) error
	GetStats(ctx context.Context) (*VisitStats, error)
	// ExportStats renders the stats as "xlsx" (default) or "csv" and returns the file name to use.
	ExportStats(ctx context.Context, format string) ([]byte, string, error)
	Enabled() bool
}
