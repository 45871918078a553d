// Package services: services/imageurl.go
package services

import "strings"

// ImageResolver maps stored image references to displayable URLs. It is the
// single implementation used by every screen; entity records may hold either
// an absolute URL (external object store) or a path relative to the backend
// origin (legacy local uploads).
type ImageResolver struct {
	origin   string
	fallback string
}

// NewImageResolver returns a resolver for the given backend origin and
// default placeholder URL.
func NewImageResolver(origin, fallback string) *ImageResolver {
	return &ImageResolver{
		origin:   strings.TrimSuffix(origin, "/"),
		fallback: fallback,
	}
}

// Resolve maps imagePath to a displayable URL using the default placeholder.
func (r *ImageResolver) Resolve(imagePath string) string {
	return r.ResolveWith(imagePath, r.fallback)
}

// ResolveWith maps imagePath to a displayable URL:
//   - empty or missing reference: the supplied fallback
//   - absolute reference (leading URI scheme): returned unchanged
//   - anything else: treated as a path relative to the backend origin
func (r *ImageResolver) ResolveWith(imagePath, fallback string) string {
	if strings.TrimSpace(imagePath) == "" {
		return fallback
	}
	if strings.HasPrefix(imagePath, "http") {
		return imagePath
	}
	return r.origin + imagePath
}

// Fallback returns the resolver's default placeholder URL.
func (r *ImageResolver) Fallback() string {
	return r.fallback
}
