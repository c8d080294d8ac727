package web

import (
	"net/http"
	"time"

	"github.com/BerylCAtieno/creator-command-center/internal/logger"
	"github.com/BerylCAtieno/creator-command-center/internal/session"
	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "ccc_session"
	sessionKey    = "session"
)

// RequestLogger logs one line per request. Bodies are never read here: form
// posts can carry the API key.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		}
		if s, ok := c.Get(sessionKey); ok {
			fields = append(fields, "session_id", s.(*session.Session).ID)
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// Sessions attaches the caller's session to the context, starting a new one
// when the cookie is missing or its session has expired.
func Sessions(m *session.Manager, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(SessionCookie)
		s, ok := m.Get(id)
		if !ok {
			s = m.Create()
			setSessionCookie(c, s.ID, secure)
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

func setSessionCookie(c *gin.Context, id string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, id, 0, "/", "", secure, true)
}

func sessionFrom(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}
