package usecase

import (
	"context"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/navigation"
)

type navigationUsecase struct {
	sections []string
}

func NewNavigationUsecase(sections []string) domain.NavigationUsecase {
	return &navigationUsecase{sections: append([]string(nil), sections...)}
}

func (uc *navigationUsecase) Resolve(ctx context.Context, path, hash string) domain.SectionState {
	return domain.SectionState{
		Section:  navigation.ResolveSection(path, hash, uc.sections),
		Sections: uc.sections,
	}
}

func (uc *navigationUsecase) Visible(ctx context.Context, report domain.VisibilityReport) domain.SectionState {
	threshold := report.Threshold
	if threshold <= 0 || threshold > 1 {
		threshold = navigation.DefaultVisibilityThreshold
	}
	current := report.Current
	if current == "" {
		current = navigation.SectionHome
	}
	return domain.SectionState{
		Section:  navigation.PickVisible(report.Ratios, uc.sections, current, threshold),
		Sections: uc.sections,
	}
}
