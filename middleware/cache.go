package middleware

import "github.com/gin-gonic/gin"

// CacheControlMiddleware marks a route's responses cacheable for duration
// seconds. Used on the stats report, which tolerates slightly stale reads.
func CacheControlMiddleware(duration string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age="+duration)
		c.Next()
	}
}
