package middleware

import (
	"time"

	"github.com/Lasya-02/Mama-Sync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger writes one structured log line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		if utils.Logger == nil {
			return
		}

		utils.Logger.Info("http_request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Float64("duration", time.Since(start).Seconds()),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
