package service

import (
	"io"

	"mrisafe/internal/domain/entity"
)

// CatalogExporter renders a device list as a downloadable document.
type CatalogExporter interface {
	// ContentType is the MIME type of the rendered document.
	ContentType() string

	// FileExtension is the file name suffix, including the dot.
	FileExtension() string

	// ExportDevices writes the devices, in order, to w.
	ExportDevices(w io.Writer, devices []*entity.Device) error
}
