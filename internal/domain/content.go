package domain

import "context"

// Link is an external profile (LinkedIn, GitHub, ...).
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Profile is the hero and about content.
type Profile struct {
	Name        string   `json:"name" yaml:"name"`
	Title       string   `json:"title" yaml:"title"`
	Tagline     string   `json:"tagline" yaml:"tagline"`
	Description string   `json:"description" yaml:"description"`
	Location    string   `json:"location" yaml:"location"`
	Country     string   `json:"country" yaml:"country"`
	Email       string   `json:"email" yaml:"email"`
	Phone       string   `json:"phone" yaml:"phone"`
	ImagePath   string   `json:"image_path" yaml:"image_path"`
	About       []string `json:"about" yaml:"about"`
	Highlights  []string `json:"highlights" yaml:"highlights"`
	Links       []Link   `json:"links" yaml:"links"`
}

type Experience struct {
	ID           string   `json:"id" yaml:"id"`
	Company      string   `json:"company" yaml:"company"`
	Position     string   `json:"position" yaml:"position"`
	Period       string   `json:"period" yaml:"period"`
	Location     string   `json:"location" yaml:"location"`
	Type         string   `json:"type" yaml:"type"`
	Achievements []string `json:"achievements" yaml:"achievements"`
}

type SkillCategory struct {
	Title  string   `json:"title" yaml:"title"`
	Icon   string   `json:"icon" yaml:"icon"`
	Skills []string `json:"skills" yaml:"skills"`
}

type Education struct {
	ID          string `json:"id" yaml:"id"`
	Institution string `json:"institution" yaml:"institution"`
	Degree      string `json:"degree" yaml:"degree"`
	Period      string `json:"period" yaml:"period"`
	Location    string `json:"location" yaml:"location"`
}

type Certification struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Issuer string `json:"issuer" yaml:"issuer"`
	Date   string `json:"date" yaml:"date"`
	URL    string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Resume describes the downloadable CV.
type Resume struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	DownloadURL string `json:"download_url" yaml:"download_url"`
	FileName    string `json:"file_name" yaml:"file_name"`
}

// Portfolio is the complete static content of the site.
type Portfolio struct {
	Profile        Profile         `json:"profile" yaml:"profile"`
	Experience     []Experience    `json:"experience" yaml:"experience"`
	Skills         []SkillCategory `json:"skills" yaml:"skills"`
	Education      []Education     `json:"education" yaml:"education"`
	Certifications []Certification `json:"certifications" yaml:"certifications"`
	Resume         Resume          `json:"resume" yaml:"resume"`
}

// Content section keys accepted by ContentUsecase.GetSection.
const (
	ContentProfile        = "profile"
	ContentExperience     = "experience"
	ContentSkills         = "skills"
	ContentEducation      = "education"
	ContentCertifications = "certifications"
	ContentResume         = "resume"
)

type ContentUsecase interface {
	GetPortfolio(ctx context.Context) Portfolio
	// GetSection returns one slice of the portfolio, or an error for unknown keys.
	GetSection(ctx context.Context, key string) (any, error)
	// StructuredData returns the schema.org JSON-LD documents for the site.
	StructuredData(ctx context.Context) []map[string]any
}
