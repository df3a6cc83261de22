package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base holds the fields shared by every persisted entity. IDs are opaque
// UUID strings and serialize as "_id" to keep the wire format the frontend
// already consumes. Version backs the optimistic-concurrency check on
// updates and starts at 1.
type Base struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `gorm:"not null;default:1" json:"version"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	if b.Version == 0 {
		b.Version = 1
	}

	return nil
}
