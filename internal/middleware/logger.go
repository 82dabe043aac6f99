package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per request once the handler chain has finished.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		line := fmt.Sprintf("%s %s %d %s %s", c.Request.Method, path, status, time.Since(start), c.ClientIP())
		if v := APIVersionFrom(c); v != "" {
			line += " api=" + v
		}

		switch {
		case status >= 500:
			m.l.Error(ctx, line)
		case status >= 400:
			m.l.Warn(ctx, line)
		default:
			m.l.Info(ctx, line)
		}
	}
}
