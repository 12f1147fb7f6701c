package rest

import (
	"net/http"

	"github.com/dmitrijs2005/contactkeeper/internal/apperr"
	"github.com/gin-gonic/gin"
)

const msgInvalidBody = "Invalid request body"

var kindStatus = map[apperr.Kind]int{
	apperr.KindValidation: http.StatusBadRequest,
	apperr.KindConflict:   http.StatusBadRequest,
	apperr.KindAuth:       http.StatusUnauthorized,
	apperr.KindNotFound:   http.StatusNotFound,
	apperr.KindInternal:   http.StatusInternalServerError,
}

func statusForKind(k apperr.Kind) int {
	if status, ok := kindStatus[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// writeError renders err. Internal causes are logged and reported, never
// sent to the client.
func (s *Server) writeError(c *gin.Context, handler string, err error) {
	e := apperr.From(err)
	status := statusForKind(e.Kind)

	switch e.Kind {
	case apperr.KindValidation:
		c.JSON(status, gin.H{"errors": e.Fields})
	case apperr.KindInternal:
		s.logger.Error(c.Request.Context(), "request failed", "handler", handler, "error", err)
		s.report(err, handler, c)
		c.JSON(status, gin.H{"msg": apperr.InternalMessage})
	default:
		c.JSON(status, gin.H{"msg": e.Message})
	}
}

func (s *Server) report(err error, handler string, c *gin.Context) {
	if s.deps.Reporter == nil {
		return
	}
	tags := map[string]string{
		"handler": handler,
		"method":  c.Request.Method,
		"path":    c.FullPath(),
	}
	if reqID := c.GetString(requestIDKey); reqID != "" {
		tags["request_id"] = reqID
	}
	s.deps.Reporter.Capture(err, tags)
}

func badBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"msg": msgInvalidBody})
}
