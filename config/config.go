package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries all environment-provided settings. It is built once in main
// and handed to each component's constructor.
type Config struct {
	DatabaseURL string

	JWTSecret      string
	JWTIssuer      string
	JWTAlgorithm   string
	AccessTokenTTL time.Duration

	VerificationTokenTTL time.Duration

	ResendAPIKey string
	EmailFrom    string
	AppBaseURL   string

	HTTPAddr string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		JWTIssuer:            os.Getenv("JWT_ISSUER"),
		JWTAlgorithm:         os.Getenv("JWT_ALGORITHM"),
		AccessTokenTTL:       15 * time.Minute,
		VerificationTokenTTL: 24 * time.Hour,
		ResendAPIKey:         os.Getenv("RESEND_API_KEY"),
		EmailFrom:            os.Getenv("EMAIL_FROM"),
		AppBaseURL:           os.Getenv("APP_BASE_URL"),
		HTTPAddr:             os.Getenv("HTTP_ADDR"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.JWTAlgorithm == "" {
		cfg.JWTAlgorithm = "HS256"
	}
	if minutes := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); minutes != "" {
		parsed, err := strconv.Atoi(minutes)
		if err != nil || parsed <= 0 {
			return nil, errors.New("ACCESS_TOKEN_EXPIRE_MINUTES must be a positive integer")
		}
		cfg.AccessTokenTTL = time.Duration(parsed) * time.Minute
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	return cfg, nil
}
