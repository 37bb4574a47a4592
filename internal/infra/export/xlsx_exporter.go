// Package export renders catalog listings as spreadsheets.
package export

import (
	"fmt"
	"io"
	"strconv"

	"mrisafe/internal/domain/entity"
	"mrisafe/internal/domain/service"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName = "Devices"

	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// DeviceExportHeader is the first row of the exported sheet.
var DeviceExportHeader = []string{
	"ID",
	"Name",
	"Model Number",
	"Manufacturer",
	"Category",
	"Safety Status",
	"Conditions",
	"Field Strength",
	"Additional Info",
	"Documentation URL",
}

var columnWidths = []float64{8, 28, 16, 20, 20, 16, 48, 14, 48, 40}

var safetyStatusFills = map[entity.SafetyStatus]string{
	entity.SafetyStatusSafe:        "#D1FAE5",
	entity.SafetyStatusConditional: "#FEF3C7",
	entity.SafetyStatusUnsafe:      "#FEE2E2",
}

type xlsxExporter struct{}

// NewXLSXExporter creates the spreadsheet exporter.
func NewXLSXExporter() service.CatalogExporter {
	return xlsxExporter{}
}

func (xlsxExporter) ContentType() string {
	return contentTypeXLSX
}

func (xlsxExporter) FileExtension() string {
	return ".xlsx"
}

// ExportDevices writes one header row and one row per device.
func (xlsxExporter) ExportDevices(w io.Writer, devices []*entity.Device) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &DeviceExportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(DeviceExportHeader))
	if err != nil {
		return fmt.Errorf("failed to convert column number: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	statusStyles := make(map[entity.SafetyStatus]int, len(safetyStatusFills))
	for status, color := range safetyStatusFills {
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return fmt.Errorf("failed to create status style: %w", err)
		}
		statusStyles[status] = style
	}

	for i, device := range devices {
		row := i + 2
		cell := "A" + strconv.Itoa(row)
		values := []any{
			device.ID,
			device.Name,
			entity.StringValue(device.ModelNumber),
			device.ManufacturerName(),
			device.CategoryName(),
			string(device.SafetyStatus),
			entity.StringValue(device.Conditions),
			entity.StringValue(device.FieldStrength),
			entity.StringValue(device.AdditionalInfo),
			entity.StringValue(device.DocumentationURL),
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write device %d: %w", device.ID, err)
		}

		if style, ok := statusStyles[device.SafetyStatus]; ok {
			statusCell := "F" + strconv.Itoa(row)
			if err := f.SetCellStyle(sheetName, statusCell, statusCell, style); err != nil {
				return fmt.Errorf("failed to style device %d: %w", device.ID, err)
			}
		}
	}

	if err := f.AutoFilter(sheetName, "A1:"+lastCol+strconv.Itoa(len(devices)+1), nil); err != nil {
		return fmt.Errorf("failed to set auto filter: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}
