package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"enrollix/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRepositoryDBForTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.EmailVerificationToken{},
	); err != nil {
		t.Fatalf("migrate db: %v", err)
	}
	return db
}

func TestRoleSeedIsIdempotent(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewRoleRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, entity.SeededRoles()))
	require.NoError(t, repo.Seed(ctx, entity.SeededRoles()))

	var count int64
	require.NoError(t, db.Model(&entity.Role{}).Count(&count).Error)
	assert.EqualValues(t, len(entity.SeededRoles()), count)

	role, err := repo.FindByName(ctx, entity.RoleAdmin)
	require.NoError(t, err)
	require.NotNil(t, role)
	assert.Equal(t, entity.RoleAdmin, role.Name)
}

func TestUserEmailUniquenessSurfacesDuplicatedKey(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "student@example.com", PasswordHash: "x"}))

	err := repo.Create(ctx, &entity.User{Email: "student@example.com", PasswordHash: "y"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserRoleAssignmentRoundTrip(t *testing.T) {
	db := newRepositoryDBForTest(t)
	users := NewUserRepository(db)
	roles := NewRoleRepository(db)
	ctx := context.Background()

	require.NoError(t, roles.Seed(ctx, entity.SeededRoles()))

	user := &entity.User{Email: "student@example.com", PasswordHash: "x"}
	require.NoError(t, users.Create(ctx, user))

	role, err := roles.FindByName(ctx, entity.RoleStudent)
	require.NoError(t, err)
	require.NotNil(t, role)
	require.NoError(t, users.AssignRole(ctx, user, role))

	loaded, err := users.FindByEmail(ctx, "student@example.com")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, loaded.HasAnyRole(entity.RoleStudent))
	assert.False(t, loaded.HasAnyRole(entity.RoleAdmin))
}

func TestUserFindMissesReturnNil(t *testing.T) {
	db := newRepositoryDBForTest(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user, err := repo.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestVerificationTokenLazyExpiry(t *testing.T) {
	db := newRepositoryDBForTest(t)
	users := NewUserRepository(db)
	tokens := NewVerificationTokenRepository(db)
	ctx := context.Background()

	user := &entity.User{Email: "student@example.com", PasswordHash: "x"}
	require.NoError(t, users.Create(ctx, user))

	now := time.Now()
	token := &entity.EmailVerificationToken{
		UserID:    user.ID,
		TokenHash: "digest",
		ExpiresAt: now.Add(24 * time.Hour),
	}
	require.NoError(t, tokens.Create(ctx, token))

	found, err := tokens.FindValid(ctx, "digest", now)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.UserID)

	// Past expiry the row still exists but is no longer served.
	expired, err := tokens.FindValid(ctx, "digest", now.Add(25*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, expired)

	var count int64
	require.NoError(t, db.Model(&entity.EmailVerificationToken{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	require.NoError(t, tokens.Delete(ctx, token.ID))
	gone, err := tokens.FindValid(ctx, "digest", now)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
