package repository

import (
	"context"
	"errors"

	"enrollix/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *entity.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Application, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.Application, error)
	List(ctx context.Context) ([]entity.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *entity.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	var application entity.Application
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&application).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.Application, error) {
	var applications []entity.Application
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) List(ctx context.Context) ([]entity.Application, error) {
	var applications []entity.Application
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) error {
	return r.db.WithContext(ctx).
		Model(&entity.Application{}).
		Where("id = ?", id).
		Update("status", status).
		Error
}
