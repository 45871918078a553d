// Package controllers wires the web screens to the catalog services.
// File: controllers/controllers.go
package controllers

import (
	"context"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"yala-safari-web/config"
	"yala-safari-web/models"
	"yala-safari-web/services"
)

// Package-level wiring, set once by Setup before routes are registered.
var (
	backend  *services.BackendClient
	resolver *services.ImageResolver
	auth     *services.AuthService

	contactNumber string

	tourCatalog    *services.Catalog[models.Tour]
	packageCatalog *services.Catalog[models.Package]
	rentalCatalog  *services.Catalog[models.Rental]
	galleryCatalog *services.Catalog[models.GalleryItem]

	tourForm    *services.FormController
	packageForm *services.FormController
	rentalForm  *services.FormController
	galleryForm *services.FormController
)

// Setup builds the shared services and the per-entity catalog/form pairs.
// Every admin screen shares the same machinery; only the form spec and the
// fetch endpoint differ per entity.
func Setup(cfg config.Config) {
	backend = services.NewBackendClient(cfg.BackendBaseURL)
	resolver = services.NewImageResolver(cfg.BackendBaseURL, cfg.PlaceholderImageURL)
	auth = services.NewAuthService(backend)
	contactNumber = cfg.ContactNumber

	tourCatalog = services.NewCatalog("tours", func(ctx context.Context) ([]models.Tour, error) {
		return services.List[models.Tour](ctx, backend, "/tours")
	})
	packageCatalog = services.NewCatalog("packages", func(ctx context.Context) ([]models.Package, error) {
		return services.List[models.Package](ctx, backend, "/packages")
	})
	rentalCatalog = services.NewCatalog("rentals", func(ctx context.Context) ([]models.Rental, error) {
		return services.List[models.Rental](ctx, backend, "/rentals")
	})
	galleryCatalog = services.NewCatalog("gallery", func(ctx context.Context) ([]models.GalleryItem, error) {
		return services.List[models.GalleryItem](ctx, backend, "/gallery")
	})

	tourForm = services.NewFormController(services.TourFormSpec(), backend, func() {
		_ = tourCatalog.Load(context.Background())
	})
	packageForm = services.NewFormController(services.PackageFormSpec(), backend, func() {
		_ = packageCatalog.Load(context.Background())
	})
	rentalForm = services.NewFormController(services.RentalFormSpec(), backend, func() {
		_ = rentalCatalog.Load(context.Background())
	})
	galleryForm = services.NewFormController(services.GalleryFormSpec(), backend, func() {
		_ = galleryCatalog.Load(context.Background())
	})

	setupAdminScreens()
}

// AuthService exposes the shared auth service for middleware wiring.
func AuthService() *services.AuthService {
	return auth
}

// sessionStore returns the SessionStore for the current request.
func sessionStore(c *gin.Context) services.SessionStore {
	return services.NewGinSessionStore(sessions.Default(c))
}

// loadErrorText formats a list-load failure for inline display, empty when
// the last load succeeded.
func loadErrorText(err error, what string) string {
	if err == nil {
		return ""
	}
	return "error loading " + what + ": " + services.UserMessage(err, err.Error())
}
