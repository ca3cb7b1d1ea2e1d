package content

import (
	"errors"
	"fmt"
	"os"

	"portfolio-backend/internal/domain"

	"gopkg.in/yaml.v3"
)

// Load returns the built-in portfolio with any sections present in the YAML
// file at path replacing their defaults. An empty path or a missing file
// yields the built-in content unchanged.
func Load(path string) (domain.Portfolio, error) {
	portfolio := Portfolio()
	if path == "" {
		return portfolio, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return portfolio, nil
	}
	if err != nil {
		return portfolio, fmt.Errorf("cannot read content file: %w", err)
	}

	var override domain.Portfolio
	if err := yaml.Unmarshal(data, &override); err != nil {
		return portfolio, fmt.Errorf("content file parse error: %w", err)
	}

	merge(&portfolio, override)
	return portfolio, nil
}

func merge(dst *domain.Portfolio, src domain.Portfolio) {
	if src.Profile.Name != "" {
		dst.Profile = src.Profile
	}
	if src.Experience != nil {
		dst.Experience = src.Experience
	}
	if src.Skills != nil {
		dst.Skills = src.Skills
	}
	if src.Education != nil {
		dst.Education = src.Education
	}
	if src.Certifications != nil {
		dst.Certifications = src.Certifications
	}
	if src.Resume.FileName != "" {
		dst.Resume = src.Resume
	}
}
