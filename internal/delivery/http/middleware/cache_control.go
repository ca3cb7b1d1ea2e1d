package middleware

import (
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ImmutableAssetCache = "public, max-age=31536000, immutable"
	ResumeCache         = "public, max-age=604800"
)

var immutableExtensions = map[string]bool{
	".js": true, ".css": true, ".png": true, ".jpg": true, ".jpeg": true,
	".gif": true, ".svg": true, ".webp": true, ".avif": true, ".ico": true,
}

// StaticCacheControl marks fingerprinted static assets as immutable.
func StaticCacheControl() gin.HandlerFunc {
	return func(c *gin.Context) {
		ext := strings.ToLower(path.Ext(c.Request.URL.Path))
		if immutableExtensions[ext] {
			c.Header("Cache-Control", ImmutableAssetCache)
		}
		c.Next()
	}
}

// CacheFor sets a fixed Cache-Control value on a route.
func CacheFor(value string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", value)
		c.Next()
	}
}
