package ui

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Response headers set by the server
const (
	HeaderRequestID  = "X-Request-ID"
	HeaderDataSource = "X-Data-Source"
)

const requestIDKey = "request_id"

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(RequestID())
	s.router.Use(AccessLog(s.logger))
	s.router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		s.logger.Error("panic while serving request",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(requestIDKey)))
		c.String(500, msgTableUnavailable)
	}))
}

// RequestID keeps an incoming X-Request-ID or assigns a new one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// AccessLog writes one structured line per request
func AccessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("data_source", c.Writer.Header().Get(HeaderDataSource)),
			zap.String("request_id", c.GetString(requestIDKey)))
	}
}
