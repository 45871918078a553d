// Package models defines the catalog entities served by the booking backend.
// File: models/entities.go
package models

import "time"

// Entities are owned by the backend; this app only holds transient copies
// fetched over REST. IDs are the backend's Mongo-style `_id` strings.

// Searchable is implemented by every catalog entity so list screens can run
// a shared substring search over the entity's text fields.
type Searchable interface {
	SearchText() []string
}

// ----------------------- tour -----------------------

// Tour is a guided safari tour offering.
type Tour struct {
	ID              string   `json:"_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Duration        string   `json:"duration"`
	Price           float64  `json:"price"`
	MaxParticipants int      `json:"maxParticipants"`
	Includes        []string `json:"includes"`
	Image           string   `json:"image"`
}

// SearchText returns the fields the tour list search matches against.
func (t Tour) SearchText() []string {
	return []string{t.Title, t.Description, t.Duration}
}

// ----------------------- package -----------------------

// Package is a multi-destination travel package.
type Package struct {
	ID           string   `json:"_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Duration     string   `json:"duration"`
	Price        float64  `json:"price"`
	Destinations []string `json:"destinations"`
	Category     string   `json:"category"`
	Includes     []string `json:"includes"`
	Highlights   []string `json:"highlights"`
	Image        string   `json:"image"`
}

// SearchText returns the fields the package list search matches against.
func (p Package) SearchText() []string {
	fields := []string{p.Name, p.Description, p.Category, p.Duration}
	return append(fields, p.Destinations...)
}

// ----------------------- rental -----------------------

// Rental is a vehicle available for hire.
type Rental struct {
	ID          string   `json:"_id"`
	VehicleName string   `json:"vehicleName"`
	VehicleType string   `json:"vehicleType"`
	Seats       int      `json:"seats"`
	Fuel        string   `json:"fuel"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Available   bool     `json:"available"`
	Image       string   `json:"image"`
}

// SearchText returns the fields the rental list search matches against.
func (r Rental) SearchText() []string {
	fields := []string{r.VehicleName, r.Description, r.Fuel, r.VehicleType}
	return append(fields, r.Features...)
}

// VehicleTypes and FuelTypes are UI-level suggestions for the rental form;
// the backend does not enforce them.
var (
	VehicleTypes = []string{"SUV", "Sedan", "Van", "Jeep", "Minivan", "Luxury", "Economy"}
	FuelTypes    = []string{"Petrol", "Diesel", "Electric", "Hybrid"}
)

// ----------------------- gallery -----------------------

// GalleryItem is a single photo in the public gallery.
type GalleryItem struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// SearchText returns the fields the gallery search matches against.
func (g GalleryItem) SearchText() []string {
	return []string{g.Title, g.Type, g.Description}
}

// DisplayDate returns the creation time, defaulting to now when the backend
// did not record one. Display-only; never written back.
func (g GalleryItem) DisplayDate() time.Time {
	if g.CreatedAt.IsZero() {
		return time.Now()
	}
	return g.CreatedAt
}

// ----------------------- admin session -----------------------

// AdminUser is the optional profile blob returned alongside a login token.
type AdminUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse is the backend's answer to POST /api/admin/login.
type LoginResponse struct {
	Token string     `json:"token"`
	User  *AdminUser `json:"user,omitempty"`
}
