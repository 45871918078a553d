// Package controllers controllers/auth_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yala-safari-web/logger"
)

// ShowAdminLogin renders the admin login screen. When a token is already
// present locally the user is sent straight to the admin area without
// re-authenticating; a remembered email pre-fills the form otherwise.
func ShowAdminLogin(c *gin.Context) {
	store := sessionStore(c)

	if auth.IsAuthenticated(store) {
		c.Redirect(http.StatusFound, "/admin/tours")
		return
	}

	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"Email":    auth.SavedEmail(store),
		"Remember": auth.SavedEmail(store) != "",
	})
}

// PerformAdminLogin authenticates against the backend and establishes the
// admin session. Failures re-render the form with the entered email kept.
func PerformAdminLogin(c *gin.Context) {
	store := sessionStore(c)

	email := c.PostForm("email")
	password := c.PostForm("password")
	remember := c.PostForm("remember") != ""

	if email == "" || password == "" {
		c.HTML(http.StatusBadRequest, "admin_login.html", gin.H{
			"Error":    "Please fill in all fields.",
			"Email":    email,
			"Remember": remember,
		})
		return
	}

	if err := auth.Login(c.Request.Context(), store, email, password, remember); err != nil {
		logger.Warn.Printf("PerformAdminLogin: login failed for %s: %v", email, err)
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
			"Error":    err.Error(),
			"Email":    email,
			"Remember": remember,
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/tours")
}

// AdminLogout clears the admin token and returns to the login screen. The
// remembered email is left alone; it only clears when a later login is
// submitted without remember.
func AdminLogout(c *gin.Context) {
	auth.Logout(sessionStore(c))
	logger.Info.Println("AdminLogout: session cleared")
	c.Redirect(http.StatusFound, "/admin/login")
}
