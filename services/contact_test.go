// file: services/contact_test.go
package services

import (
	"errors"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
)

func mockEncoderSuccess(content string, level qrcode.RecoveryLevel, size int) ([]byte, error) {
	return []byte("png-bytes"), nil
}

func mockEncoderFailure(content string, level qrcode.RecoveryLevel, size int) ([]byte, error) {
	return nil, errors.New("encoder exploded")
}

func TestWhatsAppLink_StripsFormattingFromNumber(t *testing.T) {
	assert.Equal(t, "https://wa.me/94771234567", WhatsAppLink("+94 77 123-4567", ""))
}

func TestWhatsAppLink_EscapesMessage(t *testing.T) {
	link := WhatsAppLink("+94771234567", "Hi! I'd like to book a tour")
	assert.Equal(t, "https://wa.me/94771234567?text=Hi%21+I%27d+like+to+book+a+tour", link)
}

func TestContactQRCode_Success(t *testing.T) {
	png, err := ContactQRCode("https://wa.me/94771234567", 300, mockEncoderSuccess)

	assert.NoError(t, err)
	assert.Equal(t, "png-bytes", string(png))
}

func TestContactQRCode_InvalidSize(t *testing.T) {
	png, err := ContactQRCode("https://wa.me/94771234567", 0, mockEncoderSuccess)

	assert.Error(t, err)
	assert.Nil(t, png)
}

func TestContactQRCode_EncoderError(t *testing.T) {
	png, err := ContactQRCode("https://wa.me/94771234567", 300, mockEncoderFailure)

	assert.Error(t, err)
	assert.Nil(t, png)
}

func TestContactQRCode_EmptyLink(t *testing.T) {
	_, err := ContactQRCode("", 300, mockEncoderSuccess)
	assert.Error(t, err)
}
