package repository

import (
	"context"
	"errors"

	"enrollix/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleRepository interface {
	Seed(ctx context.Context, names []string) error
	FindByName(ctx context.Context, name string) (*entity.Role, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

// Seed inserts the given role names, skipping any that already exist.
func (r *roleRepository) Seed(ctx context.Context, names []string) error {
	roles := make([]entity.Role, 0, len(names))
	for _, name := range names {
		roles = append(roles, entity.Role{Name: name})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&roles).Error
}

func (r *roleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	var role entity.Role
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&role).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}
