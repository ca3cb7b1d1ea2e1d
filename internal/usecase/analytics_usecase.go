package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"portfolio-backend/internal/domain"
	"time"

	"github.com/google/uuid"
)

const topPathsLimit = 10

var (
	ErrAnalyticsDisabled = errors.New("analytics is not configured")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

type analyticsUsecase struct {
	repo domain.VisitRepository
	salt string
	now  func() time.Time
}

// NewAnalyticsUsecase records visits into repo. A nil repo disables analytics.
func NewAnalyticsUsecase(repo domain.VisitRepository, salt string) domain.AnalyticsUsecase {
	return &analyticsUsecase{
		repo: repo,
		salt: salt,
		now:  time.Now,
	}
}

func (uc *analyticsUsecase) Enabled() bool {
	return uc.repo != nil
}

func (uc *analyticsUsecase) RecordVisit(ctx context.Context, clientIP, path, userAgent string) error {
	if uc.repo == nil {
		return ErrAnalyticsDisabled
	}
	visit := &domain.Visit{
		ID:        uuid.NewString(),
		HashedIP:  HashIP(clientIP, uc.salt),
		Path:      path,
		UserAgent: truncate(userAgent, 512),
		CreatedAt: uc.now().UTC(),
	}
	return uc.repo.Create(ctx, visit)
}

func (uc *analyticsUsecase) GetStats(ctx context.Context) (*domain.VisitStats, error) {
	if uc.repo == nil {
		return nil, ErrAnalyticsDisabled
	}
	return uc.repo.Stats(ctx, uc.now().UTC(), topPathsLimit)
}

// HashIP returns a short salted digest so raw addresses are never stored
func HashIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
