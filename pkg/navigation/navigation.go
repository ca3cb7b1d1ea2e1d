// Package navigation decides which navigation item is highlighted.
// Callers extract the path, hash and visibility figures from their host
// environment; nothing here reads ambient state.
package navigation

import (
	"slices"
	"strings"
)

const (
	SectionHome   = "home"
	SectionResume = "resume"

	RootPath   = "/"
	ResumePath = "/resume"

	// DefaultVisibilityThreshold is the visible fraction a section needs before it can become active.
	DefaultVisibilityThreshold = 0.4
)

// ResolveSection returns the section active on first load of path#hash.
func ResolveSection(path, hash string, known []string) string {
	switch path {
	case ResumePath:
		return SectionResume
	case RootPath:
		cleaned := strings.TrimPrefix(hash, "#")
		if cleaned != "" && slices.Contains(known, cleaned) {
			return cleaned
		}
		return SectionHome
	default:
		return SectionHome
	}
}

// PickVisible returns the section that should become active given the visible
// fraction of each section. Only sections in order are considered, and a
// section must reach threshold. A tie for the highest ratio, or no section
// above threshold, keeps current.
func PickVisible(ratios map[string]float64, order []string, current string, threshold float64) string {
	best := ""
	bestRatio := 0.0
	tied := false

	for _, section := range order {
		ratio, ok := ratios[section]
		if !ok || ratio < threshold {
			continue
		}
		switch {
		case best == "" || ratio > bestRatio:
			best, bestRatio, tied = section, ratio, false
		case ratio == bestRatio:
			tied = true
		}
	}

	if best == "" || tied {
		return current
	}
	return best
}
