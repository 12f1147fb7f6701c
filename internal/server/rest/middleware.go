package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/gin-gonic/gin"
)

const (
	msgNoToken      = "No token, authorization denied"
	msgInvalidToken = "Token is not valid"
)

type ctxKey string

const userIDKey ctxKey = "userID"

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// UserIDFromContext returns the id stored by the auth gate.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// authGate admits requests carrying a valid x-auth-token header and records
// the caller's id on both the gin and the request context.
func (s *Server) authGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(common.AuthTokenHeaderName)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": msgNoToken})
			return
		}

		userID, err := s.deps.Tokens.Verify(token)
		if err != nil {
			s.logger.Debug(c.Request.Context(), "token rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": msgInvalidToken})
			return
		}

		c.Set(string(userIDKey), userID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), userIDKey, userID))
		c.Next()
	}
}

// requestID keeps a caller-supplied X-Request-ID or generates one, and
// echoes it in the response.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			var err error
			if id, err = common.MakeRandHexString(8); err != nil {
				id = "unknown"
			}
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"request_id", c.GetString(requestIDKey),
		)
	}
}

func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		err := fmt.Errorf("panic: %v", recovered)
		s.logger.Error(c.Request.Context(), "handler panicked", "error", err, "path", c.Request.URL.Path)
		s.report(err, "panic", c)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
	})
}
