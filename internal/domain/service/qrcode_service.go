package service

// QRCodeService defines the interface for device detail QR codes
type QRCodeService interface {
	// DeviceURL returns the public detail page URL of a device
	DeviceURL(deviceID int64) string

	// GenerateDeviceQR generates a PNG QR code pointing at the device detail page
	GenerateDeviceQR(deviceID int64) ([]byte, error)
}
