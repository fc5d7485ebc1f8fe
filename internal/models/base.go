package models

import (
	"time"

	"globetrotter/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all tables.
// Rows are hard-deleted: trip subtrees are removed by explicit cascades and the
// stop ordering index must not see tombstones.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
