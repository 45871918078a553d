// Package services: services/contact.go
package services

import (
	"errors"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

// QRCodeEncoder matches qrcode.Encode; injected so tests can stub encoding.
type QRCodeEncoder func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// WhatsAppLink builds the wa.me deep link for the configured outbound
// contact number, with an optional prefilled message.
func WhatsAppLink(number, text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)

	link := "https://wa.me/" + digits
	if text != "" {
		link += "?text=" + url.QueryEscape(text)
	}
	return link
}

// ContactQRCode renders the contact deep link as a PNG QR code.
func ContactQRCode(link string, size int, encode QRCodeEncoder) ([]byte, error) {
	if size <= 0 {
		return nil, errors.New("invalid dimensions: size must be positive")
	}
	if link == "" {
		return nil, errors.New("contact link is empty")
	}
	return encode(link, qrcode.Medium, size)
}
