package service

import (
	"context"

	"enrollix/internal/entity"
	"enrollix/internal/repository"

	"github.com/google/uuid"
)

// ApplicationService drives the enrollment lifecycle:
// draft -> submitted -> validated | rejected.
type ApplicationService struct {
	applications repository.ApplicationRepository
	programmes   repository.ProgrammeRepository
	years        repository.AcademicYearRepository
}

func NewApplicationService(
	applications repository.ApplicationRepository,
	programmes repository.ProgrammeRepository,
	years repository.AcademicYearRepository,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		programmes:   programmes,
		years:        years,
	}
}

// Create opens a draft application for the student. When yearID is nil the
// currently active academic year is used.
func (s *ApplicationService) Create(
	ctx context.Context,
	studentID uuid.UUID,
	programmeID uuid.UUID,
	yearID *uuid.UUID,
) (*entity.Application, error) {
	programme, err := s.programmes.FindByID(ctx, programmeID)
	if err != nil {
		return nil, err
	}
	if programme == nil {
		return nil, ErrProgrammeNotFound
	}

	var year *entity.AcademicYear
	if yearID != nil {
		year, err = s.years.FindByID(ctx, *yearID)
	} else {
		year, err = s.years.FindActive(ctx)
	}
	if err != nil {
		return nil, err
	}
	if year == nil {
		return nil, ErrAcademicYearNotFound
	}

	application := &entity.Application{
		StudentID:   studentID,
		ProgrammeID: programme.ID,
		YearID:      year.ID,
		Status:      entity.ApplicationDraft,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}

// Submit moves a student's own draft to submitted. Applications belonging to
// other students are reported as not found.
func (s *ApplicationService) Submit(ctx context.Context, studentID uuid.UUID, applicationID uuid.UUID) (*entity.Application, error) {
	application, err := s.applications.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application == nil || application.StudentID != studentID {
		return nil, ErrApplicationNotFound
	}
	if application.Status != entity.ApplicationDraft {
		return nil, ErrInvalidTransition
	}

	if err := s.applications.UpdateStatus(ctx, application.ID, entity.ApplicationSubmitted); err != nil {
		return nil, err
	}
	application.Status = entity.ApplicationSubmitted
	return application, nil
}

// Decide validates or rejects a submitted application.
func (s *ApplicationService) Decide(ctx context.Context, applicationID uuid.UUID, approve bool) (*entity.Application, error) {
	application, err := s.applications.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, ErrApplicationNotFound
	}
	if application.Status != entity.ApplicationSubmitted {
		return nil, ErrInvalidTransition
	}

	status := entity.ApplicationRejected
	if approve {
		status = entity.ApplicationValidated
	}
	if err := s.applications.UpdateStatus(ctx, application.ID, status); err != nil {
		return nil, err
	}
	application.Status = status
	return application, nil
}

func (s *ApplicationService) ListForStudent(ctx context.Context, studentID uuid.UUID) ([]entity.Application, error) {
	return s.applications.ListByStudent(ctx, studentID)
}

func (s *ApplicationService) ListAll(ctx context.Context) ([]entity.Application, error) {
	return s.applications.List(ctx)
}
