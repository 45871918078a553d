// Package controllers file: controllers/page_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"yala-safari-web/logger"
	"yala-safari-web/models"
	"yala-safari-web/services"
)

// Health answers load balancer health checks.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// Home renders the landing page.
func Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"WhatsAppLink": services.WhatsAppLink(contactNumber, "Hi! I'd like to plan a safari trip."),
	})
}

// Tours renders the public tour list with optional search.
func Tours(c *gin.Context) {
	loadErr := tourCatalog.Load(c.Request.Context())

	term := c.Query("q")
	items := tourCatalog.Filter(term)
	cards := make([]gin.H, 0, len(items))
	for _, t := range items {
		cards = append(cards, gin.H{"Tour": t, "ImageURL": resolver.Resolve(t.Image)})
	}

	c.HTML(http.StatusOK, "tours.html", gin.H{
		"Tours":     cards,
		"Search":    term,
		"LoadError": loadErrorText(loadErr, "tours"),
	})
}

// Packages renders the public package list with optional search and
// category filter.
func Packages(c *gin.Context) {
	loadErr := packageCatalog.Load(c.Request.Context())

	term := c.Query("q")
	category := c.Query("category")

	var preds []func(models.Package) bool
	if category != "" {
		preds = append(preds, func(p models.Package) bool { return p.Category == category })
	}

	items := packageCatalog.Filter(term, preds...)
	cards := make([]gin.H, 0, len(items))
	for _, p := range items {
		cards = append(cards, gin.H{"Package": p, "ImageURL": resolver.Resolve(p.Image)})
	}

	c.HTML(http.StatusOK, "packages.html", gin.H{
		"Packages":  cards,
		"Search":    term,
		"Category":  category,
		"LoadError": loadErrorText(loadErr, "packages"),
	})
}

// Rentals renders the public vehicle list. Besides text search it supports
// the categorical filters the rental screen always had: vehicle type and
// only-available.
func Rentals(c *gin.Context) {
	loadErr := rentalCatalog.Load(c.Request.Context())

	term := c.Query("q")
	vehicleType := c.Query("type")
	onlyAvailable := c.Query("available") == "1"

	var preds []func(models.Rental) bool
	if vehicleType != "" {
		preds = append(preds, func(r models.Rental) bool { return r.VehicleType == vehicleType })
	}
	if onlyAvailable {
		preds = append(preds, func(r models.Rental) bool { return r.Available })
	}

	items := rentalCatalog.Filter(term, preds...)
	cards := make([]gin.H, 0, len(items))
	for _, r := range items {
		cards = append(cards, gin.H{"Rental": r, "ImageURL": resolver.Resolve(r.Image)})
	}

	c.HTML(http.StatusOK, "rentals.html", gin.H{
		"Rentals":       cards,
		"Search":        term,
		"VehicleType":   vehicleType,
		"VehicleTypes":  models.VehicleTypes,
		"OnlyAvailable": onlyAvailable,
		"LoadError":     loadErrorText(loadErr, "rentals"),
	})
}

// Gallery renders the photo gallery with optional search and type filter.
// Items without a title are skipped; a missing image shows the placeholder.
func Gallery(c *gin.Context) {
	loadErr := galleryCatalog.Load(c.Request.Context())

	term := c.Query("q")
	galleryType := c.Query("type")

	var preds []func(models.GalleryItem) bool
	if galleryType != "" {
		preds = append(preds, func(g models.GalleryItem) bool { return g.Type == galleryType })
	}

	items := galleryCatalog.Filter(term, preds...)
	cards := make([]gin.H, 0, len(items))
	for _, g := range items {
		if g.Title == "" {
			continue
		}
		cards = append(cards, gin.H{
			"Item":     g,
			"ImageURL": resolver.Resolve(g.Image),
			"Date":     g.DisplayDate().Format("Jan 2, 2006"),
		})
	}

	c.HTML(http.StatusOK, "gallery.html", gin.H{
		"Items":     cards,
		"Search":    term,
		"Type":      galleryType,
		"LoadError": loadErrorText(loadErr, "gallery"),
	})
}

// ------------------- contact -------------------

// Contact renders the contact page with the WhatsApp deep link.
func Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"WhatsAppLink": services.WhatsAppLink(contactNumber, "Hi! I'd like to know more about your tours."),
	})
}

// ContactSend forwards a contact form submission to the backend mailer and
// re-renders the page with the outcome.
func ContactSend(c *gin.Context) {
	msg := services.ContactMessage{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Subject: c.PostForm("subject"),
		Message: c.PostForm("message"),
	}

	data := gin.H{
		"WhatsAppLink": services.WhatsAppLink(contactNumber, "Hi! I'd like to know more about your tours."),
	}

	if err := backend.SendContactEmail(c.Request.Context(), msg); err != nil {
		logger.Error.Printf("ContactSend: %v", err)
		data["Error"] = services.UserMessage(err, "could not send your message, please try again")
		c.HTML(http.StatusOK, "contact.html", data)
		return
	}

	data["Success"] = "Thanks! We received your message and will get back to you soon."
	c.HTML(http.StatusOK, "contact.html", data)
}

// ContactQRCode serves the WhatsApp contact link as a QR code PNG.
func ContactQRCode(c *gin.Context) {
	link := services.WhatsAppLink(contactNumber, "")
	png, err := services.ContactQRCode(link, 300, services.QRCodeEncoder(qrcode.Encode))
	if err != nil {
		logger.Error.Printf("ContactQRCode: %v", err)
		c.String(http.StatusInternalServerError, "QR generation failed")
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", "inline; filename=\"contact.png\"")
	if _, err := c.Writer.Write(png); err != nil {
		logger.Error.Printf("ContactQRCode: writing response: %v", err)
	}
}
