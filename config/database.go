package config

import (
	"enrollix/internal/entity"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the postgres connection. TranslateError lets callers match
// unique-constraint violations as gorm.ErrDuplicatedKey.
func ConnectDB(databaseURL string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN: databaseURL,
	}), &gorm.Config{
		TranslateError: true,
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.EmailVerificationToken{},
		&entity.AcademicYear{},
		&entity.Domaine{},
		&entity.Programme{},
		&entity.Application{},
		&entity.AuditLog{},
	)
}
