// Package controllers file: controllers/admin_screens.go
package controllers

import (
	"github.com/gin-gonic/gin"

	"yala-safari-web/models"
	"yala-safari-web/services"
)

// The four admin screens, built by setupAdminScreens from the shared
// catalog/form pairs.
var (
	tourScreen    *adminScreen[models.Tour]
	packageScreen *adminScreen[models.Package]
	rentalScreen  *adminScreen[models.Rental]
	galleryScreen *adminScreen[models.GalleryItem]
)

func setupAdminScreens() {
	tourScreen = &adminScreen[models.Tour]{
		name:     "tour",
		plural:   "tours",
		template: "admin_tours.html",
		redirect: "/admin/tours",
		catalog:  tourCatalog,
		form:     tourForm,
		spec:     services.TourFormSpec(),
		idOf:     func(t models.Tour) string { return t.ID },
		imageOf:  func(t models.Tour) string { return t.Image },
		seed:     services.TourFormValues,
	}

	packageScreen = &adminScreen[models.Package]{
		name:     "package",
		plural:   "packages",
		template: "admin_packages.html",
		redirect: "/admin/packages",
		catalog:  packageCatalog,
		form:     packageForm,
		spec:     services.PackageFormSpec(),
		idOf:     func(p models.Package) string { return p.ID },
		imageOf:  func(p models.Package) string { return p.Image },
		seed:     services.PackageFormValues,
	}

	rentalScreen = &adminScreen[models.Rental]{
		name:     "rental",
		plural:   "rentals",
		template: "admin_rentals.html",
		redirect: "/admin/rentals",
		catalog:  rentalCatalog,
		form:     rentalForm,
		spec:     services.RentalFormSpec(),
		idOf:     func(r models.Rental) string { return r.ID },
		imageOf:  func(r models.Rental) string { return r.Image },
		seed:     services.RentalFormValues,
		extras: func() gin.H {
			return gin.H{
				"VehicleTypes": models.VehicleTypes,
				"FuelTypes":    models.FuelTypes,
			}
		},
	}

	galleryScreen = &adminScreen[models.GalleryItem]{
		name:     "gallery item",
		plural:   "gallery",
		template: "admin_gallery.html",
		redirect: "/admin/gallery",
		catalog:  galleryCatalog,
		form:     galleryForm,
		spec:     services.GalleryFormSpec(),
		idOf:     func(g models.GalleryItem) string { return g.ID },
		imageOf:  func(g models.GalleryItem) string { return g.Image },
		seed:     services.GalleryFormValues,
	}
}

// ------------------- route handlers -------------------

// AdminTours renders the tour admin screen.
func AdminTours(c *gin.Context) { tourScreen.show(c) }

// AdminToursSave creates or updates a tour.
func AdminToursSave(c *gin.Context) { tourScreen.save(c) }

// AdminToursDelete deletes a tour.
func AdminToursDelete(c *gin.Context) { tourScreen.remove(c) }

// AdminPackages renders the package admin screen.
func AdminPackages(c *gin.Context) { packageScreen.show(c) }

// AdminPackagesSave creates or updates a package.
func AdminPackagesSave(c *gin.Context) { packageScreen.save(c) }

// AdminPackagesDelete deletes a package.
func AdminPackagesDelete(c *gin.Context) { packageScreen.remove(c) }

// AdminRentals renders the rental admin screen.
func AdminRentals(c *gin.Context) { rentalScreen.show(c) }

// AdminRentalsSave creates or updates a rental.
func AdminRentalsSave(c *gin.Context) { rentalScreen.save(c) }

// AdminRentalsDelete deletes a rental.
func AdminRentalsDelete(c *gin.Context) { rentalScreen.remove(c) }

// AdminGallery renders the gallery admin screen.
func AdminGallery(c *gin.Context) { galleryScreen.show(c) }

// AdminGallerySave creates or updates a gallery item.
func AdminGallerySave(c *gin.Context) { galleryScreen.save(c) }

// AdminGalleryDelete deletes a gallery item.
func AdminGalleryDelete(c *gin.Context) { galleryScreen.remove(c) }
