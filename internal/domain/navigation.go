package domain

import "context"

// SectionState is the navigation highlight for a location.
type SectionState struct {
	Section  string   `json:"section"`
	Sections []string `json:"sections"`
}

// VisibilityReport carries the visible fraction of each section as observed by the client.
type VisibilityReport struct {
	Current   string             `json:"current"`
	Ratios    map[string]float64 `json:"ratios" binding:"required"`
	Threshold float64            `json:"threshold"`
}

type NavigationUsecase interface {
	Resolve(ctx context.Context, path, hash string) SectionState
	Visible(ctx context.Context, report VisibilityReport) SectionState
}
