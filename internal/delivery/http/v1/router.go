package v1

import (
	"context"
	"net/http"
	"os"
	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/imaging"
	"portfolio-backend/pkg/storage"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC    domain.ContactUsecase
	ContentUC    domain.ContentUsecase
	NavigationUC domain.NavigationUsecase
	AnalyticsUC  domain.AnalyticsUsecase
	HealthUC     usecase.HealthUsecase
	RateLimiter  *middleware.RateLimiter
	Assets       storage.Source
	ProfileImage *imaging.Resizer
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	cfg := deps.Config
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(allowedOrigins(cfg), cfg.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(deps.RateLimiter.Middleware(middleware.DefaultRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		status, healthy := deps.HealthUC.Check(c.Request.Context())
		if !healthy {
			response.Fail(c, http.StatusServiceUnavailable, "Dependency unavailable", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	tracked := v1.Group("")
	tracked.Use(middleware.VisitTracker(deps.AnalyticsUC))
	{
		NewContentHandler(tracked, deps.ContentUC)
	}
	NewNavigationHandler(v1, deps.NavigationUC)
	NewContactHandler(v1, deps.ContactUC,
		deps.RateLimiter.Middleware(middleware.ContactRateLimitConfig(cfg.RateLimitContactThreshold, window)))

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg.AdminJWTSecret))
	{
		NewAdminHandler(admin, deps.AnalyticsUC)
	}

	// Site assets
	site := r.Group("")
	site.Use(middleware.VisitTracker(deps.AnalyticsUC))
	NewMediaHandler(site, deps.Assets, cfg.ResumePath, deps.ContentUC.GetPortfolio(context.Background()).Resume.FileName, deps.ProfileImage)

	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		r.NoRoute(middleware.StaticCacheControl(), staticFallback(http.Dir(cfg.StaticDir)))
	}

	return r
}

// staticFallback serves files from dir for GET and HEAD requests no route matched.
func staticFallback(dir http.FileSystem) gin.HandlerFunc {
	fileServer := http.FileServer(dir)
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			response.Error(c, http.StatusNotFound, "Not found", nil)
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, "/v1/") {
			response.Error(c, http.StatusNotFound, "Not found", nil)
			return
		}
		if !servable(dir, c.Request.URL.Path) {
			response.Error(c, http.StatusNotFound, "Not found", nil)
			return
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}

// servable reports whether name is a file, or a directory with an index page.
func servable(dir http.FileSystem, name string) bool {
	f, err := dir.Open(name)
	if err != nil {
		return false
	}
	info, err := f.Stat()
	_ = f.Close()
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}
	index, err := dir.Open(strings.TrimSuffix(name, "/") + "/index.html")
	if err != nil {
		return false
	}
	_ = index.Close()
	return true
}

func allowedOrigins(cfg *config.Config) []string {
	origins := []string{cfg.FrontendURL, cfg.SiteURL}
	if strings.HasPrefix(cfg.SiteURL, "https://") && !strings.Contains(cfg.SiteURL, "://www.") {
		origins = append(origins, strings.Replace(cfg.SiteURL, "https://", "https://www.", 1))
	}
	return origins
}
