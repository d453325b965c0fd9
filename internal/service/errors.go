package service

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailNotVerified       = errors.New("email not verified")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrUserNotFound           = errors.New("user not found")
	ErrDomaineNotFound        = errors.New("domaine not found")
	ErrProgrammeNotFound      = errors.New("programme not found")
	ErrAcademicYearNotFound   = errors.New("academic year not found")
	ErrApplicationNotFound    = errors.New("application not found")
	ErrInvalidTransition      = errors.New("invalid application status transition")
)
