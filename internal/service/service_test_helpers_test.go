package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"enrollix/internal/entity"
	"enrollix/internal/repository"
	"enrollix/internal/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newServiceDBForTest(t *testing.T) *gorm.DB {
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
		&entity.AcademicYear{},
		&entity.Domaine{},
		&entity.Programme{},
		&entity.Application{},
		&entity.AuditLog{},
	); err != nil {
		t.Fatalf("migrate db: %v", err)
	}
	return db
}

func testJWTManager() *utils.JWTManager {
	return &utils.JWTManager{
		Secret:         []byte("test-secret"),
		Issuer:         "enrollix-test",
		AccessTokenTTL: 15 * time.Minute,
	}
}

// testHasher keeps argon2 parameters small so hashing stays cheap in tests.
func testHasher() Argon2idPasswordHasher {
	return Argon2idPasswordHasher{
		Time:    1,
		Memory:  64,
		Threads: 1,
		KeyLen:  16,
		SaltLen: 8,
	}
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type captureEmailSender struct {
	tokens chan string
}

func newCaptureEmailSender() *captureEmailSender {
	return &captureEmailSender{tokens: make(chan string, 8)}
}

func (s *captureEmailSender) SendVerificationEmail(ctx context.Context, email string, token string) error {
	s.tokens <- token
	return nil
}

func (s *captureEmailSender) waitToken(t *testing.T) string {
	t.Helper()
	select {
	case token := <-s.tokens:
		return token
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for verification email")
		return ""
	}
}

type authFixture struct {
	svc    *AuthService
	db     *gorm.DB
	clock  *fakeClock
	emails *captureEmailSender
	users  repository.UserRepository
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	db := newServiceDBForTest(t)
	roleRepo := repository.NewRoleRepository(db)
	if err := roleRepo.Seed(context.Background(), entity.SeededRoles()); err != nil {
		t.Fatalf("seed roles: %v", err)
	}

	clock := &fakeClock{now: time.Now()}
	emails := newCaptureEmailSender()
	userRepo := repository.NewUserRepository(db)

	logrusLogger := logrus.New()
	logrusLogger.SetLevel(logrus.PanicLevel)

	svc := NewAuthService(
		userRepo,
		roleRepo,
		repository.NewVerificationTokenRepository(db),
		repository.NewAuditLogRepository(db),
		emails,
		testHasher(),
		JWTAccessIssuer{Manager: testJWTManager()},
		clock,
		logrusLogger,
		AuthConfig{
			AccessTokenTTL:       15 * time.Minute,
			VerificationTokenTTL: 24 * time.Hour,
		},
	)
	return &authFixture{svc: svc, db: db, clock: clock, emails: emails, users: userRepo}
}
