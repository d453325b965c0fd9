package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Programme struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`

	DomaineID uuid.UUID `gorm:"type:uuid;not null;index"`
	Domaine   Domaine   `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

func (p *Programme) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
