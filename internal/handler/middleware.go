package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminPIN gates operator routes behind a shared PIN sent in the
// X-Admin-Pin header. This is a placeholder inherited from the original
// system, not real access control: anyone holding the PIN is an
// operator. An empty configured PIN disables the gate entirely.
func AdminPIN(pin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pin == "" {
			c.Next()
			return
		}
		got := c.GetHeader("X-Admin-Pin")
		if subtle.ConstantTimeCompare([]byte(got), []byte(pin)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid admin pin"})
			return
		}
		c.Next()
	}
}
