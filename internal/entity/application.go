package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationDraft     ApplicationStatus = "draft"
	ApplicationSubmitted ApplicationStatus = "submitted"
	ApplicationValidated ApplicationStatus = "validated"
	ApplicationRejected  ApplicationStatus = "rejected"
)

// Application is a student's enrollment request for a programme within an
// academic year.
type Application struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	StudentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Student   User      `gorm:"constraint:OnDelete:CASCADE"`

	ProgrammeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Programme   Programme `gorm:"constraint:OnDelete:CASCADE"`

	YearID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Year   AcademicYear `gorm:"constraint:OnDelete:CASCADE"`

	Status ApplicationStatus `gorm:"type:varchar(20);not null;default:'draft'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
