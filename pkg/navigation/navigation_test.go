package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sections = []string{"home", "about", "experience", "skills", "contact"}

func TestResolveSection(t *testing.T) {
	tests := []struct {
		name string
		path string
		hash string
		want string
	}{
		{"resume route", "/resume", "", "resume"},
		{"resume route ignores hash", "/resume", "#skills", "resume"},
		{"hash with prefix", "/", "#skills", "skills"},
		{"hash without prefix", "/", "experience", "experience"},
		{"empty hash", "/", "", "home"},
		{"lone hash sign", "/", "#", "home"},
		{"unknown hash", "/", "#unknown", "home"},
		{"other route", "/not-found", "", "home"},
		{"other route with hash", "/blog/post", "#skills", "home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSection(tt.path, tt.hash, sections))
		})
	}
}

func TestResolveSectionUsesCallerSections(t *testing.T) {
	assert.Equal(t, "home", ResolveSection("/", "#projects", sections))
	assert.Equal(t, "projects", ResolveSection("/", "#projects", []string{"home", "projects"}))
	assert.Equal(t, "home", ResolveSection("/", "#skills", nil))
}

func TestPickVisible(t *testing.T) {
	t.Run("Should pick the most visible section above threshold", func(t *testing.T) {
		got := PickVisible(map[string]float64{"about": 0.5, "experience": 0.7}, sections, "home", DefaultVisibilityThreshold)
		assert.Equal(t, "experience", got)
	})

	t.Run("Should keep current when nothing reaches threshold", func(t *testing.T) {
		got := PickVisible(map[string]float64{"about": 0.39, "skills": 0.1}, sections, "home", DefaultVisibilityThreshold)
		assert.Equal(t, "home", got)
	})

	t.Run("Should keep current on a tie", func(t *testing.T) {
		got := PickVisible(map[string]float64{"about": 0.6, "skills": 0.6}, sections, "contact", DefaultVisibilityThreshold)
		assert.Equal(t, "contact", got)
	})

	t.Run("Should ignore sections outside the known order", func(t *testing.T) {
		got := PickVisible(map[string]float64{"footer": 1.0, "skills": 0.45}, sections, "home", DefaultVisibilityThreshold)
		assert.Equal(t, "skills", got)
	})
}
