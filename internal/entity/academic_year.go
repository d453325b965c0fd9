package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AcademicYear struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartYear int       `gorm:"not null"`
	EndYear   int       `gorm:"not null"`
	Active    bool      `gorm:"not null;default:false"`

	CreatedAt time.Time
}

func (y *AcademicYear) BeforeCreate(tx *gorm.DB) error {
	if y.ID == uuid.Nil {
		y.ID = uuid.New()
	}
	return nil
}
