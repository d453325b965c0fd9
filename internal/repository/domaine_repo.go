package repository

import (
	"context"
	"errors"

	"enrollix/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DomaineRepository interface {
	Create(ctx context.Context, domaine *entity.Domaine) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Domaine, error)
	List(ctx context.Context) ([]entity.Domaine, error)
}

type domaineRepository struct {
	db *gorm.DB
}

func NewDomaineRepository(db *gorm.DB) DomaineRepository {
	return &domaineRepository{db: db}
}

func (r *domaineRepository) Create(ctx context.Context, domaine *entity.Domaine) error {
	return r.db.WithContext(ctx).Create(domaine).Error
}

func (r *domaineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Domaine, error) {
	var domaine entity.Domaine
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&domaine).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &domaine, nil
}

func (r *domaineRepository) List(ctx context.Context) ([]entity.Domaine, error) {
	var domaines []entity.Domaine
	if err := r.db.WithContext(ctx).Order("name").Find(&domaines).Error; err != nil {
		return nil, err
	}
	return domaines, nil
}
