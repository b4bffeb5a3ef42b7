package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// AuthMiddleware gates every protected route. The Authorization header
// must be literally "Bearer <token>"; anything else is 401 before the
// token is even looked at.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			jsonError(c, http.StatusUnauthorized, "Sem autorização")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			jsonError(c, http.StatusUnauthorized, "Sem autorização")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
		if err := VerifyToken(secret, tokenString); err != nil {
			jsonError(c, http.StatusUnauthorized, "Token inválido ou expirado")
			c.Abort()
			return
		}

		// Mark the request as carrying an authenticated admin.
		c.Set("admin_authenticated", true)

		c.Next()
	}
}
