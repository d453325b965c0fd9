package service

import (
	"context"
	"testing"
	"time"

	"enrollix/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesUnverifiedStudent(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	err := f.svc.Register(ctx, RegisterInput{Email: "Student@Example.com", Password: "Passw0rd!"})
	require.NoError(t, err)

	token := f.emails.waitToken(t)
	assert.NotEmpty(t, token)

	user, err := f.users.FindByEmail(ctx, "student@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.False(t, user.Verified)
	assert.True(t, user.HasAnyRole(entity.RoleStudent))
	assert.False(t, user.HasAnyRole(entity.RoleAdmin))
	assert.NotEqual(t, "Passw0rd!", user.PasswordHash)

	var tokenCount int64
	require.NoError(t, f.db.Model(&entity.EmailVerificationToken{}).Where("user_id = ?", user.ID).Count(&tokenCount).Error)
	assert.EqualValues(t, 1, tokenCount)

	var auditCount int64
	require.NoError(t, f.db.Model(&entity.AuditLog{}).Where("action = ?", entity.AuditRegistered).Count(&auditCount).Error)
	assert.EqualValues(t, 1, auditCount)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Register(ctx, RegisterInput{Email: "student@example.com", Password: "Passw0rd!"}))
	f.emails.waitToken(t)

	err := f.svc.Register(ctx, RegisterInput{Email: "  STUDENT@example.com ", Password: "OtherPass1"})
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestRegisterInvalidInput(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.Register(ctx, RegisterInput{Email: "", Password: "Passw0rd!"}), ErrInvalidInput)
	assert.ErrorIs(t, f.svc.Register(ctx, RegisterInput{Email: "student@example.com", Password: "  "}), ErrInvalidInput)
}

func TestLoginUnknownEmail(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "Passw0rd!"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Register(ctx, RegisterInput{Email: "student@example.com", Password: "Passw0rd!"}))
	f.emails.waitToken(t)

	_, err := f.svc.Login(ctx, LoginInput{Email: "student@example.com", Password: "WrongPass1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginBeforeConfirmation(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Register(ctx, RegisterInput{Email: "student@example.com", Password: "Passw0rd!"}))
	f.emails.waitToken(t)

	_, err := f.svc.Login(ctx, LoginInput{Email: "student@example.com", Password: "Passw0rd!"})
	assert.ErrorIs(t, err, ErrEmailNotVerified)
}

func TestConfirmThenLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Register(ctx, RegisterInput{Email: "student@example.com", Password: "Passw0rd!"}))
	token := f.emails.waitToken(t)

	require.NoError(t, f.svc.ConfirmEmail(ctx, token))

	user, err := f.users.FindByEmail(ctx, "student@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.Verified)

	result, err := f.svc.Login(ctx, LoginInput{Email: "student@example.com", Password: "Passw0rd!"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", result.TokenType)
	assert.NotEmpty(t, result.AccessToken)

	subject, err := testJWTManager().ParseAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), subject)
}

func TestConfirmTokenIsSingleUse(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Register(ctx, RegisterInput{Email: "student@example.com", Password: "Passw0rd!"}))
	token := f.emails.waitToken(t)

	require.NoError(t, f.svc.ConfirmEmail(ctx, token))
	assert.ErrorIs(t, f.svc.ConfirmEmail(ctx, token), ErrInvalidToken)
}

func TestConfirmExpiredToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Register(ctx, RegisterInput{Email: "student@example.com", Password: "Passw0rd!"}))
	token := f.emails.waitToken(t)

	f.clock.Advance(25 * time.Hour)
	assert.ErrorIs(t, f.svc.ConfirmEmail(ctx, token), ErrInvalidToken)
}

func TestConfirmUnknownToken(t *testing.T) {
	f := newAuthFixture(t)

	assert.ErrorIs(t, f.svc.ConfirmEmail(context.Background(), "no-such-token"), ErrInvalidToken)
	assert.ErrorIs(t, f.svc.ConfirmEmail(context.Background(), "   "), ErrInvalidToken)
}

func TestConfirmWhenUserIsGone(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Register(ctx, RegisterInput{Email: "student@example.com", Password: "Passw0rd!"}))
	token := f.emails.waitToken(t)

	require.NoError(t, f.db.Where("email = ?", "student@example.com").Delete(&entity.User{}).Error)

	assert.ErrorIs(t, f.svc.ConfirmEmail(ctx, token), ErrUserNotFound)
}
