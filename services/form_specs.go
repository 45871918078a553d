// Package services: services/form_specs.go
package services

import (
	"strconv"
	"strings"

	"yala-safari-web/models"
)

// One FormSpec per admin screen. Field order matches the admin form layout
// and is the multipart field order on the wire.

// TourFormSpec describes the tour admin form.
func TourFormSpec() FormSpec {
	return FormSpec{
		Endpoint: "/tours",
		Fields: []FieldRule{
			{Name: "title", Label: "title", Kind: FieldText, Required: true},
			{Name: "description", Label: "description", Kind: FieldText, Required: true},
			{Name: "duration", Label: "duration", Kind: FieldText, Required: true},
			{Name: "price", Label: "price", Kind: FieldNumber, Required: true, Min: 0},
			{Name: "maxParticipants", Label: "max participants", Kind: FieldNumber, Required: true, Min: 1, Integer: true},
			{Name: "includes", Label: "includes", Kind: FieldList},
			{Name: "image", Label: "image", Kind: FieldImage, Required: true},
		},
	}
}

// PackageFormSpec describes the package admin form.
func PackageFormSpec() FormSpec {
	return FormSpec{
		Endpoint: "/packages",
		Fields: []FieldRule{
			{Name: "name", Label: "name", Kind: FieldText, Required: true},
			{Name: "description", Label: "description", Kind: FieldText, Required: true},
			{Name: "duration", Label: "duration", Kind: FieldText, Required: true},
			{Name: "price", Label: "price", Kind: FieldNumber, Required: true, Min: 0},
			{Name: "destinations", Label: "destinations", Kind: FieldList},
			{Name: "category", Label: "category", Kind: FieldText, Required: true},
			{Name: "includes", Label: "includes", Kind: FieldList},
			{Name: "highlights", Label: "highlights", Kind: FieldList},
			{Name: "image", Label: "image", Kind: FieldImage, Required: true},
		},
	}
}

// RentalFormSpec describes the rental admin form.
func RentalFormSpec() FormSpec {
	return FormSpec{
		Endpoint: "/rentals",
		Fields: []FieldRule{
			{Name: "vehicleName", Label: "vehicle name", Kind: FieldText, Required: true},
			{Name: "vehicleType", Label: "vehicle type", Kind: FieldText, Required: true},
			{Name: "seats", Label: "seats", Kind: FieldNumber, Required: true, Min: 1, Integer: true},
			{Name: "fuel", Label: "fuel type", Kind: FieldText, Required: true},
			{Name: "description", Label: "description", Kind: FieldText, Required: true},
			{Name: "features", Label: "features", Kind: FieldList},
			{Name: "available", Label: "available", Kind: FieldBool},
			{Name: "image", Label: "image", Kind: FieldImage, Required: true},
		},
	}
}

// GalleryFormSpec describes the gallery admin form.
func GalleryFormSpec() FormSpec {
	return FormSpec{
		Endpoint: "/gallery",
		Fields: []FieldRule{
			{Name: "title", Label: "title", Kind: FieldText, Required: true},
			{Name: "type", Label: "type", Kind: FieldText, Required: true},
			{Name: "description", Label: "description", Kind: FieldText, Required: true},
			{Name: "image", Label: "image", Kind: FieldImage, Required: true},
		},
	}
}

// ------------------- edit seeding -------------------

// The seed helpers flatten an entity back into form values, joining list
// fields with ", " the way the admin forms display them.

func joinList(items []string) string { return strings.Join(items, ", ") }

// TourFormValues flattens a tour for SelectForEdit.
func TourFormValues(t models.Tour) map[string]string {
	return map[string]string{
		"title":           t.Title,
		"description":     t.Description,
		"duration":        t.Duration,
		"price":           strconv.FormatFloat(t.Price, 'f', -1, 64),
		"maxParticipants": strconv.Itoa(t.MaxParticipants),
		"includes":        joinList(t.Includes),
	}
}

// PackageFormValues flattens a package for SelectForEdit.
func PackageFormValues(p models.Package) map[string]string {
	return map[string]string{
		"name":         p.Name,
		"description":  p.Description,
		"duration":     p.Duration,
		"price":        strconv.FormatFloat(p.Price, 'f', -1, 64),
		"destinations": joinList(p.Destinations),
		"category":     p.Category,
		"includes":     joinList(p.Includes),
		"highlights":   joinList(p.Highlights),
	}
}

// RentalFormValues flattens a rental for SelectForEdit.
func RentalFormValues(r models.Rental) map[string]string {
	return map[string]string{
		"vehicleName": r.VehicleName,
		"vehicleType": r.VehicleType,
		"seats":       strconv.Itoa(r.Seats),
		"fuel":        r.Fuel,
		"description": r.Description,
		"features":    joinList(r.Features),
		"available":   strconv.FormatBool(r.Available),
	}
}

// GalleryFormValues flattens a gallery item for SelectForEdit.
func GalleryFormValues(g models.GalleryItem) map[string]string {
	return map[string]string{
		"title":       g.Title,
		"type":        g.Type,
		"description": g.Description,
	}
}
