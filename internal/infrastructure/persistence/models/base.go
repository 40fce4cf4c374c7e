package models

import "time"

// Timestamps holds the storage bookkeeping columns shared by all tables.
// They are maintained by GORM and never surface in the domain.
type Timestamps struct {
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
