package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// CorrelationIDHeader is the header used to propagate correlation IDs
	CorrelationIDHeader = "X-Correlation-ID"
	correlationIDKey    = "correlationID"
)

// CorrelationIDMiddleware reuses the caller's X-Correlation-ID or generates
// one, stores it on the context and echoes it in the response.
func CorrelationIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader(CorrelationIDHeader)
		if correlationID == "" {
			correlationID = uuid.New().String()
		}
		c.Set(correlationIDKey, correlationID)
		c.Header(CorrelationIDHeader, correlationID)
		c.Next()
	}
}

// correlationID returns the ID stored by CorrelationIDMiddleware
func correlationID(c *gin.Context) string {
	if id, exists := c.Get(correlationIDKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// LogRequest logs one line per request once the handler chain finishes.
func LogRequest(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("op", "http"),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("correlation_id", correlationID(c)),
		}
		switch {
		case c.Writer.Status() >= 500:
			logger.Error("request failed", fields...)
		case c.Writer.Status() >= 400:
			logger.Warn("request rejected", fields...)
		default:
			logger.Info("request completed", fields...)
		}
	}
}

// configureCORS returns a configured CORS middleware. An empty origin list or
// a "*" entry allows every origin.
func configureCORS(origins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", CorrelationIDHeader}
	corsConfig.ExposeHeaders = []string{CorrelationIDHeader}

	return cors.New(corsConfig)
}
