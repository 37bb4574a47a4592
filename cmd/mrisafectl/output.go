package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"mrisafe/internal/domain/entity"
	"mrisafe/internal/errors"
	"mrisafe/internal/util"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(v), "encode output")
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})
}

func (c *cli) printDevices(devices []*entity.Device) {
	t := newTable("ID", "Name", "Model", "Manufacturer", "Category", "Safety")
	for _, d := range devices {
		t.Row(
			strconv.FormatInt(d.ID, 10),
			d.Name,
			entity.StringValue(d.ModelNumber),
			d.ManufacturerName(),
			d.CategoryName(),
			string(d.SafetyStatus),
		)
	}
	fmt.Fprintln(c.out, t.Render())
}

func (c *cli) printDevice(d *entity.Device) {
	t := newTable("Field", "Value")
	t.Row("ID", strconv.FormatInt(d.ID, 10))
	t.Row("Name", d.Name)
	t.Row("Model", entity.StringValue(d.ModelNumber))
	t.Row("Manufacturer", d.ManufacturerName())
	t.Row("Category", d.CategoryName())
	t.Row("Safety", string(d.SafetyStatus))
	t.Row("", d.SafetyStatus.Description())
	if d.Conditions != nil {
		t.Row("Conditions", *d.Conditions)
	}
	if d.FieldStrength != nil {
		t.Row("Field strength", *d.FieldStrength)
	}
	if d.AdditionalInfo != nil {
		t.Row("Additional info", *d.AdditionalInfo)
	}
	if d.DocumentationURL != nil {
		t.Row("Documentation", *d.DocumentationURL)
	}
	fmt.Fprintln(c.out, t.Render())
}

func (c *cli) printWaitlist(entries []*entity.WaitlistEntry) {
	t := newTable("Email", "Source", "Joined")
	for _, e := range entries {
		t.Row(e.Email, e.Source, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(c.out, util.Plural(len(entries), "sign-up", "sign-ups"))
	fmt.Fprintln(c.out, t.Render())
}
