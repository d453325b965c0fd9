package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"enrollix/api/handler"
	apiMiddleware "enrollix/api/middleware"
	"enrollix/api/routes"
	"enrollix/config"
	"enrollix/internal/entity"
	"enrollix/internal/repository"
	"enrollix/internal/service"
	"enrollix/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("configuration")
	}

	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		logger.WithError(err).Fatal("database connection")
	}
	if err := config.Migrate(db); err != nil {
		logger.WithError(err).Fatal("database migration")
	}

	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	verificationRepo := repository.NewVerificationTokenRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	yearRepo := repository.NewAcademicYearRepository(db)
	domaineRepo := repository.NewDomaineRepository(db)
	programmeRepo := repository.NewProgrammeRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := roleRepo.Seed(seedCtx, entity.SeededRoles()); err != nil {
		cancel()
		logger.WithError(err).Fatal("role seeding")
	}
	cancel()

	jwtManager := utils.JWTManager{
		Secret:         []byte(cfg.JWTSecret),
		Issuer:         cfg.JWTIssuer,
		Algorithm:      cfg.JWTAlgorithm,
		AccessTokenTTL: cfg.AccessTokenTTL,
	}

	var emailSender service.EmailSender
	if cfg.ResendAPIKey != "" && cfg.EmailFrom != "" {
		emailSender = service.NewResendEmailSender(cfg.ResendAPIKey, cfg.EmailFrom, cfg.AppBaseURL)
	} else {
		logger.Warn("email sender not configured; verification emails will not be delivered")
	}

	authService := service.NewAuthService(
		userRepo,
		roleRepo,
		verificationRepo,
		auditRepo,
		emailSender,
		service.NewArgon2idPasswordHasher(),
		service.JWTAccessIssuer{Manager: &jwtManager},
		service.RealClock{},
		logger,
		service.AuthConfig{
			AccessTokenTTL:       cfg.AccessTokenTTL,
			VerificationTokenTTL: cfg.VerificationTokenTTL,
		},
	)
	catalogService := service.NewCatalogService(yearRepo, domaineRepo, programmeRepo)
	applicationService := service.NewApplicationService(applicationRepo, programmeRepo, yearRepo)

	validate := validator.New()
	authHandler := handler.NewAuthHandler(authService, validate)
	catalogHandler := handler.NewCatalogHandler(catalogService, validate)
	applicationHandler := handler.NewApplicationHandler(applicationService, validate)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: &jwtManager, Users: userRepo}
	router := routes.NewRouter(app, authHandler, catalogHandler, applicationHandler, authMiddleware)
	router.RegisterRoutes()

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", cfg.HTTPAddr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
