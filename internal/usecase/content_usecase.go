package usecase

import (
	"context"
	"fmt"
	"net/url"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type contentUsecase struct {
	portfolio domain.Portfolio
	siteURL   string
}

// NewContentUsecase serves a fixed portfolio. siteURL is the canonical origin used in JSON-LD.
func NewContentUsecase(portfolio domain.Portfolio, siteURL string) domain.ContentUsecase {
	return &contentUsecase{
		portfolio: portfolio,
		siteURL:   siteURL,
	}
}

func (uc *contentUsecase) GetPortfolio(ctx context.Context) domain.Portfolio {
	return uc.portfolio
}

func (uc *contentUsecase) GetSection(ctx context.Context, key string) (any, error) {
	switch key {
	case domain.ContentProfile:
		return uc.portfolio.Profile, nil
	case domain.ContentExperience:
		return uc.portfolio.Experience, nil
	case domain.ContentSkills:
		return uc.portfolio.Skills, nil
	case domain.ContentEducation:
		return uc.portfolio.Education, nil
	case domain.ContentCertifications:
		return uc.portfolio.Certifications, nil
	case domain.ContentResume:
		return uc.portfolio.Resume, nil
	default:
		return nil, apperror.NotFound(fmt.Sprintf("Unknown content section %q", key))
	}
}

// StructuredData builds the schema.org Person and WebSite documents
func (uc *contentUsecase) StructuredData(ctx context.Context) []map[string]any {
	p := uc.portfolio.Profile

	sameAs := make([]string, 0, len(p.Links))
	for _, l := range p.Links {
		sameAs = append(sameAs, l.URL)
	}

	person := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     p.Name,
		"url":      uc.siteURL,
		"image":    uc.siteURL + p.ImagePath,
		"jobTitle": p.Title,
		"sameAs":   sameAs,
		"address": map[string]any{
			"@type":           "PostalAddress",
			"addressLocality": p.Location,
			"addressCountry":  p.Country,
		},
		"email":     "mailto:" + p.Email,
		"telephone": p.Phone,
	}

	website := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     p.Name,
		"url":      uc.siteURL,
		"potentialAction": map[string]any{
			"@type":       "SearchAction",
			"target":      "https://www.google.com/search?q=site%3A" + hostOf(uc.siteURL) + "+{search_term_string}",
			"query-input": "required name=search_term_string",
		},
	}

	return []map[string]any{person, website}
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
