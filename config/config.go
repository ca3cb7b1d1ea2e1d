package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultSections is the ordered list of in-page sections the navigation bar knows about.
var DefaultSections = []string{"home", "about", "experience", "skills", "contact"}

type Config struct {
	Env         string
	Port        string
	LogLevel    string
	SiteURL     string
	FrontendURL string
	// Postgres (optional, visit analytics)
	DBUrl string
	// SQLite file used for visit analytics when DBUrl is empty
	SQLitePath string
	// SMTP Configuration
	SMTPHost           string
	SMTPPort           string
	SMTPUsername       string
	SMTPPassword       string
	SMTPTimeoutSeconds int
	ContactEmailTo     string // Operator recipient of contact form messages
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitGlobalThreshold  int
	RateLimitContactThreshold int
	// Static assets
	ResumePath       string
	ProfileImagePath string
	StaticDir        string
	ContentPath      string // Optional YAML overriding the built-in portfolio content
	// S3-compatible asset bucket; when set, ResumePath and ProfileImagePath are object keys
	AssetsBucket      string
	S3Provider        string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	// Admin / analytics
	AdminJWTSecret string
	VisitHashSalt  string
	Sections       []string
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment wins
	_ = godotenv.Load()

	cfg := &Config{
		Env:         getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		SiteURL:     strings.TrimRight(getEnv("SITE_URL", "https://agustincassani.com"), "/"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("SQLITE_PATH", ""),
		// SMTP Configuration
		SMTPHost:           getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           getEnv("SMTP_PORT", "587"),
		SMTPUsername:       getEnv("SMTP_USERNAME", getEnv("EMAIL_SENDER", "")),
		SMTPPassword:       getEnv("SMTP_PASSWORD", getEnv("GOOGLE_APP_PASSWORD", "")),
		SMTPTimeoutSeconds: getEnvInt("SMTP_TIMEOUT_SECONDS", 15),
		ContactEmailTo:     getEnv("CONTACT_EMAIL_TO", getEnv("EMAIL_RECIPIENT", "agustinscassani@gmail.com")),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5),
		// Static assets
		ResumePath:       getEnv("RESUME_PATH", "./public/AgustinCassaniCV.pdf"),
		ProfileImagePath: getEnv("PROFILE_IMAGE_PATH", "./public/profile-image.jpeg"),
		StaticDir:        getEnv("STATIC_DIR", "./public"),
		ContentPath:      getEnv("CONTENT_PATH", ""),
		// S3-compatible asset bucket
		AssetsBucket:      getEnv("ASSETS_BUCKET", ""),
		S3Provider:        getEnv("S3_PROVIDER", "aws"),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		// Admin / analytics
		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
		VisitHashSalt:  getEnv("VISIT_HASH_SALT", ""),
		Sections:       getEnvList("NAV_SECTIONS", DefaultSections),
	}

	if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		log.Println("WARNING: SMTP credentials missing. Contact messages will only be logged.")
	}

	if cfg.DBUrl == "" && cfg.SQLitePath == "" {
		log.Println("WARNING: DATABASE_URL and SQLITE_PATH not configured. Visit analytics disabled.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether APP_ENV is "production"
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return append([]string(nil), fallback...)
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), fallback...)
	}
	return out
}
