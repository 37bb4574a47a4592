package export

import (
	"bytes"
	"testing"

	"mrisafe/internal/domain/entity"
	"mrisafe/internal/infra/dataservice/fixture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_ExportDevices(t *testing.T) {
	exporter := NewXLSXExporter()
	assert.Equal(t, ".xlsx", exporter.FileExtension())
	assert.Contains(t, exporter.ContentType(), "spreadsheetml")

	devices := fixture.Devices()
	devices = append(devices, &entity.Device{ID: 9, Name: "Bare Device", SafetyStatus: entity.SafetyStatusUnknown})

	var buf bytes.Buffer
	require.NoError(t, exporter.ExportDevices(&buf, devices))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, len(devices)+1)
	assert.Equal(t, DeviceExportHeader, rows[0])

	assert.Equal(t, "3", rows[3][0])
	assert.Equal(t, "CardioRhythm Pacemaker", rows[3][1])
	assert.Equal(t, "Medtronic", rows[3][3])
	assert.Equal(t, "Cardiac Devices", rows[3][4])
	assert.Equal(t, "MR Conditional", rows[3][5])

	last := rows[len(rows)-1]
	assert.Equal(t, "Bare Device", last[1])
	assert.Equal(t, "", last[3], "absent manufacturer exports as an empty cell")
}

func TestXLSXExporter_EmptyList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewXLSXExporter().ExportDevices(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
