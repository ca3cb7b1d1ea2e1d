package middleware

import (
	"context"
	"net/http"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const visitRecordTimeout = 3 * time.Second

// VisitTracker records successful GETs after the response is written.
// Recording runs in the background and never delays or fails the request.
func VisitTracker(analytics domain.AnalyticsUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if analytics == nil || !analytics.Enabled() {
			return
		}
		if c.Request.Method != http.MethodGet || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		ip := c.ClientIP()
		path := c.Request.URL.Path
		ua := c.Request.UserAgent()

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), visitRecordTimeout)
			defer cancel()
			if err := analytics.RecordVisit(ctx, ip, path, ua); err != nil {
				logger.Log.Warn("failed to record visit", "error", err, "path", path)
			}
		}()
	}
}
