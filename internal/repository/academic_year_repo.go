package repository

import (
	"context"
	"errors"

	"enrollix/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AcademicYearRepository interface {
	Create(ctx context.Context, year *entity.AcademicYear) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AcademicYear, error)
	FindActive(ctx context.Context) (*entity.AcademicYear, error)
	List(ctx context.Context) ([]entity.AcademicYear, error)
}

type academicYearRepository struct {
	db *gorm.DB
}

func NewAcademicYearRepository(db *gorm.DB) AcademicYearRepository {
	return &academicYearRepository{db: db}
}

func (r *academicYearRepository) Create(ctx context.Context, year *entity.AcademicYear) error {
	return r.db.WithContext(ctx).Create(year).Error
}

func (r *academicYearRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AcademicYear, error) {
	var year entity.AcademicYear
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&year).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &year, nil
}

func (r *academicYearRepository) FindActive(ctx context.Context) (*entity.AcademicYear, error) {
	var year entity.AcademicYear
	err := r.db.WithContext(ctx).Where("active = ?", true).First(&year).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &year, nil
}

func (r *academicYearRepository) List(ctx context.Context) ([]entity.AcademicYear, error) {
	var years []entity.AcademicYear
	if err := r.db.WithContext(ctx).Order("start_year DESC").Find(&years).Error; err != nil {
		return nil, err
	}
	return years, nil
}
