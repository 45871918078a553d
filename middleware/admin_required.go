// Package middleware provides request filters and security checks for the application.
// File: middleware/admin_required.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"yala-safari-web/logger"
	"yala-safari-web/services"
)

// AdminRequired gates the admin screens on a locally stored admin token.
// The token's presence is trusted without a server round-trip; an expired
// token surfaces as a 401 on the next protected backend call.
// Unauthenticated requests are redirected to the login screen.
func AdminRequired(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := services.NewGinSessionStore(sessions.Default(c))

		if !auth.IsAuthenticated(store) {
			logger.Warn.Printf("AdminRequired: unauthenticated request to %s, redirecting to login", c.Request.URL.Path)
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		c.Next()
	}
}
