package share

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultQRSize is the default QR code edge length in pixels.
const DefaultQRSize = 256

// QRCode renders link as a PNG QR code of size x size pixels.
func QRCode(link string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}

// WriteQRCode renders link as a PNG QR code file.
func WriteQRCode(link string, size int, path string) error {
	if size <= 0 {
		size = DefaultQRSize
	}
	if err := qrcode.WriteFile(link, qrcode.Medium, size, path); err != nil {
		return fmt.Errorf("failed to write QR code: %w", err)
	}
	return nil
}
