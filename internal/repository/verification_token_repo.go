package repository

import (
	"context"
	"errors"
	"time"

	"enrollix/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VerificationTokenRepository interface {
	Create(ctx context.Context, token *entity.EmailVerificationToken) error
	FindValid(ctx context.Context, tokenHash string, now time.Time) (*entity.EmailVerificationToken, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type verificationTokenRepository struct {
	db *gorm.DB
}

func NewVerificationTokenRepository(db *gorm.DB) VerificationTokenRepository {
	return &verificationTokenRepository{db: db}
}

func (r *verificationTokenRepository) Create(ctx context.Context, t *entity.EmailVerificationToken) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// FindValid looks up an unexpired token by its digest. Expired rows are left
// in place; expiry is only ever checked lazily here.
func (r *verificationTokenRepository) FindValid(
	ctx context.Context,
	tokenHash string,
	now time.Time,
) (*entity.EmailVerificationToken, error) {

	var token entity.EmailVerificationToken
	err := r.db.WithContext(ctx).
		Where("token_hash = ? AND expires_at > ?", tokenHash, now).
		First(&token).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *verificationTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entity.EmailVerificationToken{}, "id = ?", id).
		Error
}
