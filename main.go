// main.go
package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"yala-safari-web/config"
	"yala-safari-web/controllers"
	"yala-safari-web/logger"
	"yala-safari-web/middleware"
)

func main() {
	cfg := config.Load()

	logger.SetLogLevel(cfg.Env)
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	controllers.Setup(cfg)

	router := gin.Default()

	// Session cookie for the admin token and remembered email.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("safarisession", store))

	router.LoadHTMLGlob("templates/*.html")
	router.Static("/static", "./static")

	// Public pages
	router.GET("/health", controllers.Health)
	router.GET("/", controllers.Home)
	router.GET("/tours", controllers.Tours)
	router.GET("/packages", controllers.Packages)
	router.GET("/rentals", controllers.Rentals)
	router.GET("/gallery", controllers.Gallery)
	router.GET("/contact", controllers.Contact)
	router.POST("/contact", controllers.ContactSend)
	router.GET("/contact/qrcode", controllers.ContactQRCode)

	// Admin auth
	router.GET("/admin/login", controllers.ShowAdminLogin)
	router.POST("/admin/login", controllers.PerformAdminLogin)
	router.GET("/admin/logout", controllers.AdminLogout)

	// Admin CRUD screens, gated on the admin token
	admin := router.Group("/admin", middleware.AdminRequired(controllers.AuthService()))
	{
		admin.GET("/tours", controllers.AdminTours)
		admin.POST("/tours/save", controllers.AdminToursSave)
		admin.POST("/tours/delete", controllers.AdminToursDelete)

		admin.GET("/packages", controllers.AdminPackages)
		admin.POST("/packages/save", controllers.AdminPackagesSave)
		admin.POST("/packages/delete", controllers.AdminPackagesDelete)

		admin.GET("/rentals", controllers.AdminRentals)
		admin.POST("/rentals/save", controllers.AdminRentalsSave)
		admin.POST("/rentals/delete", controllers.AdminRentalsDelete)

		admin.GET("/gallery", controllers.AdminGallery)
		admin.POST("/gallery/save", controllers.AdminGallerySave)
		admin.POST("/gallery/delete", controllers.AdminGalleryDelete)
	}

	logger.Info.Printf("Starting server on %s (backend %s)", cfg.ListenAddr, cfg.BackendBaseURL)
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
