package model

import (
	"time"
)

// ManufacturerModel is the GORM-specific struct for the 'manufacturers' table.
type ManufacturerModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement:false"`
	Name         string  `gorm:"type:varchar(255);not null"`
	Website      *string `gorm:"type:text"`
	ContactEmail *string `gorm:"type:varchar(255)"`
	ContactPhone *string `gorm:"type:varchar(64)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ManufacturerModel) TableName() string {
	return "manufacturers"
}

// CategoryModel is the GORM-specific struct for the 'device_categories' table.
type CategoryModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement:false"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Description *string `gorm:"type:text"`
	Icon        *string `gorm:"type:varchar(64)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "device_categories"
}

// DeviceModel is the GORM-specific struct for the 'devices' table.
// Manufacturer and Category are belongs-to associations loaded with Preload;
// they stay nil when the referenced row does not exist.
type DeviceModel struct {
	ID               int64              `gorm:"primaryKey;autoIncrement:false"`
	Name             string             `gorm:"type:varchar(255);not null"`
	ModelNumber      *string            `gorm:"column:model_number;type:varchar(128)"`
	ManufacturerID   int64              `gorm:"column:manufacturer_id;not null;index"`
	Manufacturer     *ManufacturerModel `gorm:"foreignKey:ManufacturerID"`
	CategoryID       int64              `gorm:"column:category_id;not null;index"`
	Category         *CategoryModel     `gorm:"foreignKey:CategoryID"`
	SafetyStatus     string             `gorm:"column:safety_status;type:varchar(32);not null;index"`
	Conditions       *string            `gorm:"type:text"`
	FieldStrength    *string            `gorm:"column:field_strength;type:varchar(64)"`
	AdditionalInfo   *string            `gorm:"column:additional_info;type:text"`
	DocumentationURL *string            `gorm:"column:documentation_url;type:text"`
	ImageURL         *string            `gorm:"column:image_url;type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
