package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"enrollix/internal/entity"
	"enrollix/internal/repository"
	"enrollix/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const emailDispatchTimeout = 15 * time.Second

type AuthService struct {
	users         repository.UserRepository
	roles         repository.RoleRepository
	verifications repository.VerificationTokenRepository
	auditLogs     repository.AuditLogRepository

	emailSender  EmailSender
	passwordHash PasswordHasher
	accessTokens AccessTokenIssuer
	clock        Clock
	logger       *logrus.Logger
	config       AuthConfig

	dummyHash string
}

func NewAuthService(
	users repository.UserRepository,
	roles repository.RoleRepository,
	verifications repository.VerificationTokenRepository,
	auditLogs repository.AuditLogRepository,
	emailSender EmailSender,
	passwordHash PasswordHasher,
	accessTokens AccessTokenIssuer,
	clock Clock,
	logger *logrus.Logger,
	config AuthConfig,
) *AuthService {
	// Verified against when the email is unknown so that lookup misses and
	// wrong passwords take the same time.
	dummyHash, err := passwordHash.Hash("enrollix-timing-pad")
	if err != nil {
		dummyHash = ""
	}
	return &AuthService{
		users:         users,
		roles:         roles,
		verifications: verifications,
		auditLogs:     auditLogs,
		emailSender:   emailSender,
		passwordHash:  passwordHash,
		accessTokens:  accessTokens,
		clock:         clock,
		logger:        logger,
		config:        config,
		dummyHash:     dummyHash,
	}
}

// Register creates an unverified user, issues a verification token and hands
// the email off to a background dispatch. Delivery failures are logged, never
// surfaced; the registration has already committed.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) error {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailAlreadyRegistered
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return err
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Verified:     false,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Two concurrent registrations can pass the lookup above; the unique
		// index on users.email decides the race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailAlreadyRegistered
		}
		return err
	}

	if err := s.assignDefaultRole(ctx, user); err != nil {
		return err
	}

	token, err := s.createVerificationToken(ctx, user.ID)
	if err != nil {
		return err
	}

	s.dispatchVerificationEmail(user.Email, token)
	s.audit(ctx, &user.ID, nil, entity.AuditRegistered, nil)
	return nil
}

// Login checks credentials and the verification state and mints a bearer
// token. Unknown emails and wrong passwords both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = s.passwordHash.Verify(s.dummyHash, input.Password)
		s.audit(ctx, nil, input.IPAddress, entity.AuditLoginFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}

	if !s.passwordHash.Verify(user.PasswordHash, input.Password) {
		if !strings.HasPrefix(user.PasswordHash, "$argon2id$") {
			s.logger.WithField("user_id", user.ID).Warn("stored password hash is malformed")
		}
		s.audit(ctx, &user.ID, input.IPAddress, entity.AuditLoginFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}

	if !user.Verified {
		return nil, ErrEmailNotVerified
	}

	accessToken, ttl, err := s.accessTokens.IssueAccessToken(*user)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, &user.ID, input.IPAddress, entity.AuditLoginSuccess, nil)
	return &LoginResult{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}

// ConfirmEmail redeems a verification token. Redemption deletes the ledger
// row, so a second confirmation with the same token fails.
func (s *AuthService) ConfirmEmail(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrInvalidToken
	}

	verification, err := s.verifications.FindValid(ctx, utils.HashToken(token), s.now())
	if err != nil {
		return err
	}
	if verification == nil {
		return ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, verification.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.users.MarkVerified(ctx, user.ID); err != nil {
		return err
	}
	if err := s.verifications.Delete(ctx, verification.ID); err != nil {
		return err
	}

	s.audit(ctx, &user.ID, nil, entity.AuditEmailVerified, nil)
	return nil
}

func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) ListUsers(ctx context.Context, limit, offset int) ([]entity.User, error) {
	return s.users.List(ctx, limit, offset)
}

func (s *AuthService) assignDefaultRole(ctx context.Context, user *entity.User) error {
	role, err := s.roles.FindByName(ctx, entity.RoleStudent)
	if err != nil {
		return err
	}
	if role == nil {
		s.logger.Warn("student role is not seeded; user registered without a role")
		return nil
	}
	return s.users.AssignRole(ctx, user, role)
}

func (s *AuthService) createVerificationToken(ctx context.Context, userID uuid.UUID) (string, error) {
	rawToken, err := utils.GenerateRandomToken(32)
	if err != nil {
		return "", err
	}

	verification := &entity.EmailVerificationToken{
		UserID:    userID,
		TokenHash: utils.HashToken(rawToken),
		ExpiresAt: s.now().Add(s.verificationTokenTTL()),
	}
	if err := s.verifications.Create(ctx, verification); err != nil {
		return "", err
	}
	return rawToken, nil
}

func (s *AuthService) dispatchVerificationEmail(email string, token string) {
	if s.emailSender == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), emailDispatchTimeout)
		defer cancel()
		if err := s.emailSender.SendVerificationEmail(ctx, email, token); err != nil {
			s.logger.WithError(err).WithField("email", email).Error("verification email delivery failed")
		}
	}()
}

func (s *AuthService) audit(
	ctx context.Context,
	userID *uuid.UUID,
	ipAddress *string,
	action entity.AuditAction,
	metadata map[string]any,
) {
	if s.auditLogs == nil {
		return
	}
	var payload datatypes.JSON
	if metadata != nil {
		bytes, err := json.Marshal(metadata)
		if err != nil {
			s.logger.WithError(err).Warn("audit metadata marshal failed")
			return
		}
		payload = datatypes.JSON(bytes)
	}

	log := &entity.AuditLog{
		UserID:    userID,
		IPAddress: ipAddress,
		Action:    action,
		Metadata:  payload,
	}
	if err := s.auditLogs.Log(ctx, log); err != nil {
		s.logger.WithError(err).Warn("audit log write failed")
	}
}

func (s *AuthService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

func (s *AuthService) verificationTokenTTL() time.Duration {
	if s.config.VerificationTokenTTL > 0 {
		return s.config.VerificationTokenTTL
	}
	return 24 * time.Hour
}
