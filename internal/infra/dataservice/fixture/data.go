package fixture

import "mrisafe/internal/domain/entity"

var manufacturers = []entity.Manufacturer{
	{ID: 1, Name: "Medtronic"},
	{ID: 2, Name: "Boston Scientific"},
	{ID: 3, Name: "Abbott"},
	{ID: 4, Name: "Philips"},
}

var categories = []entity.Category{
	{ID: 1, Name: "Neurostimulators"},
	{ID: 2, Name: "Cardiac Devices"},
	{ID: 3, Name: "Insulin Pumps"},
	{ID: 4, Name: "Cochlear Implants"},
}

type deviceRow struct {
	id             int64
	name           string
	modelNumber    string
	manufacturerID int64
	categoryID     int64
	status         entity.SafetyStatus
	conditions     string
	fieldStrength  string
	additionalInfo string
	docURL         string
	imageURL       string
}

var deviceRows = []deviceRow{
	{
		id: 1, name: "Neuro Implant X1", modelNumber: "NI-X1-2023",
		manufacturerID: 1, categoryID: 1, status: entity.SafetyStatusConditional,
		conditions:     "1.5T and 3T only, specific positioning requirements",
		fieldStrength:  "1.5T, 3T",
		additionalInfo: "Patient must be monitored during scan",
		docURL:         "https://example.com/docs/neuro-implant-x1",
		imageURL:       "https://images.unsplash.com/photo-1530026186672-2cd00ffc50fe?w=400&q=80",
	},
	{
		id: 2, name: "NeuroStim 3000", modelNumber: "NS-3000",
		manufacturerID: 2, categoryID: 1, status: entity.SafetyStatusConditional,
		conditions:     "3T only, specific positioning requirements",
		fieldStrength:  "3T",
		additionalInfo: "Device must be in MRI mode before scan",
		docURL:         "https://example.com/docs/neurostim-3000",
		imageURL:       "https://images.unsplash.com/photo-1559757175-5700dde675bc?w=400&q=80",
	},
	{
		id: 3, name: "CardioRhythm Pacemaker", modelNumber: "CR-PM-2023",
		manufacturerID: 1, categoryID: 2, status: entity.SafetyStatusConditional,
		conditions:     "1.5T only, specific positioning requirements",
		fieldStrength:  "1.5T",
		additionalInfo: "Device must be programmed to MRI Safe mode before scan",
		docURL:         "https://example.com/docs/cardiorhythm",
		imageURL:       "https://images.unsplash.com/photo-1576091160550-2173dba999ef?w=400&q=80",
	},
	{
		id: 4, name: "InsulinFlow Pump", modelNumber: "IF-2022",
		manufacturerID: 3, categoryID: 3, status: entity.SafetyStatusUnsafe,
		conditions:     "Must be removed before MRI scan",
		fieldStrength:  "N/A",
		additionalInfo: "Device must be removed and stored outside MRI room",
		docURL:         "https://example.com/docs/insulinflow",
		imageURL:       "https://images.unsplash.com/photo-1631815588090-d1bcbe9a8537?w=400&q=80",
	},
	{
		id: 5, name: "CochlearClear Implant", modelNumber: "CC-2023",
		manufacturerID: 4, categoryID: 4, status: entity.SafetyStatusConditional,
		conditions:     "External components must be removed, internal magnet considerations",
		fieldStrength:  "1.5T",
		additionalInfo: "Special head positioning required",
		docURL:         "https://example.com/docs/cochlearclear",
		imageURL:       "https://images.unsplash.com/photo-1598885159329-9377168ac375?w=400&q=80",
	},
}

// Devices returns a fresh copy of the fixture devices, joined with their
// manufacturer and category. Callers may keep or modify the result freely.
func Devices() []*entity.Device {
	devices := make([]*entity.Device, 0, len(deviceRows))
	for _, row := range deviceRows {
		devices = append(devices, row.toDevice())
	}

	return devices
}

// Manufacturers returns a fresh copy of the fixture manufacturers.
func Manufacturers() []*entity.Manufacturer {
	out := make([]*entity.Manufacturer, 0, len(manufacturers))
	for i := range manufacturers {
		m := manufacturers[i]
		out = append(out, &m)
	}

	return out
}

// Categories returns a fresh copy of the fixture categories.
func Categories() []*entity.Category {
	out := make([]*entity.Category, 0, len(categories))
	for i := range categories {
		c := categories[i]
		out = append(out, &c)
	}

	return out
}

func (r deviceRow) toDevice() *entity.Device {
	return &entity.Device{
		ID:               r.id,
		Name:             r.name,
		ModelNumber:      entity.StringPtr(r.modelNumber),
		ManufacturerID:   r.manufacturerID,
		Manufacturer:     findManufacturer(r.manufacturerID),
		CategoryID:       r.categoryID,
		Category:         findCategory(r.categoryID),
		SafetyStatus:     r.status,
		Conditions:       entity.StringPtr(r.conditions),
		FieldStrength:    entity.StringPtr(r.fieldStrength),
		AdditionalInfo:   entity.StringPtr(r.additionalInfo),
		DocumentationURL: entity.StringPtr(r.docURL),
		ImageURL:         entity.StringPtr(r.imageURL),
	}
}

func findManufacturer(id int64) *entity.Manufacturer {
	for i := range manufacturers {
		if manufacturers[i].ID == id {
			m := manufacturers[i]

			return &m
		}
	}

	return nil
}

func findCategory(id int64) *entity.Category {
	for i := range categories {
		if categories[i].ID == id {
			c := categories[i]

			return &c
		}
	}

	return nil
}
