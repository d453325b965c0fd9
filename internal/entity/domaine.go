package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Domaine is a field of study grouping one or more programmes.
type Domaine struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`

	CreatedAt time.Time
}

func (d *Domaine) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
