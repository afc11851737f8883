package api

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/outlierSlug/dubhacks2025/internal/apperrors"
	"github.com/outlierSlug/dubhacks2025/internal/auth"
	"github.com/sirupsen/logrus"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	sessionKey      = "session"
)

// RequestLogger tags every request with an id and writes one access line per request.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)

		begin := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"latency":    time.Since(begin).String(),
			"client_ip":  c.ClientIP(),
		})
		if c.Writer.Status() >= 500 {
			entry.Warn("request")
		} else {
			entry.Info("request")
		}
	}
}

// RequireSession accepts "Authorization: Bearer <token>" and stores the session on the context.
func RequireSession(issuer *auth.Issuer, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			respondError(c, logger, "session", apperrors.New(apperrors.CodeUnauthenticated, "missing bearer token"))
			return
		}
		s, err := issuer.Parse(strings.TrimSpace(token))
		if err != nil {
			respondError(c, logger, "session", err)
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

func sessionFrom(c *gin.Context) *auth.Session {
	v, _ := c.Get(sessionKey)
	s, _ := v.(*auth.Session)
	return s
}
