package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// RealIP stores the client IP under "real_ip" for the rate limiter and the
// access log. CF-Connecting-IP wins over the left-most X-Forwarded-For entry;
// c.ClientIP() is the fallback.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := parseIP(c.GetHeader("CF-Connecting-IP"))
		if ip == "" {
			xff, _, _ := strings.Cut(c.GetHeader("X-Forwarded-For"), ",")
			ip = parseIP(xff)
		}
		if ip == "" {
			ip = c.ClientIP()
		}
		c.Set("real_ip", ip)
		c.Next()
	}
}

func parseIP(s string) string {
	if ip := net.ParseIP(strings.TrimSpace(s)); ip != nil {
		return ip.String()
	}
	return ""
}
