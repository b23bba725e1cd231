package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"daily-task-manager/pkg/response"
)

// CronAuth requires "Authorization: Bearer <secret>" when a cron secret is
// configured. With no secret the route stays open.
func (m Middleware) CronAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.cronSecret == "" {
			c.Next()
			return
		}

		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(m.cronSecret)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.CronAuth: rejected %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
