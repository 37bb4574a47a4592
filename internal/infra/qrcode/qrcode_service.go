package qrcode

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"mrisafe/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance. Device pages are
// addressed as <baseURL>/device/<id>.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// DeviceURL returns the public detail page of a device
func (s *qrcodeService) DeviceURL(deviceID int64) string {
	return s.baseURL + "/device/" + url.PathEscape(strconv.FormatInt(deviceID, 10))
}

// GenerateDeviceQR generates a QR code encoding the device detail URL
func (s *qrcodeService) GenerateDeviceQR(deviceID int64) ([]byte, error) {
	qrCode, err := qrcode.New(s.DeviceURL(deviceID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
