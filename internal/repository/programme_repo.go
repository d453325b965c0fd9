package repository

import (
	"context"
	"errors"

	"enrollix/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgrammeRepository interface {
	Create(ctx context.Context, programme *entity.Programme) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Programme, error)
	List(ctx context.Context) ([]entity.Programme, error)
}

type programmeRepository struct {
	db *gorm.DB
}

func NewProgrammeRepository(db *gorm.DB) ProgrammeRepository {
	return &programmeRepository{db: db}
}

func (r *programmeRepository) Create(ctx context.Context, programme *entity.Programme) error {
	return r.db.WithContext(ctx).Create(programme).Error
}

func (r *programmeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Programme, error) {
	var programme entity.Programme
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&programme).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &programme, nil
}

func (r *programmeRepository) List(ctx context.Context) ([]entity.Programme, error) {
	var programmes []entity.Programme
	if err := r.db.WithContext(ctx).Order("name").Find(&programmes).Error; err != nil {
		return nil, err
	}
	return programmes, nil
}
