package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		user := "-"
		if u := CurrentUser(c); u != nil {
			user = u.Username
		}
		log.Printf("%s %s %d %s ip=%s user=%s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), latency, c.ClientIP(), user)
	}
}
