package model

import "time"

// WaitlistModel is the GORM-specific struct for the 'waitlist' table.
type WaitlistModel struct {
	ID        int64  `gorm:"primaryKey"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Source    string `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WaitlistModel) TableName() string {
	return "waitlist"
}
