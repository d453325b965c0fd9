package service

import (
	"context"
	"strings"

	"enrollix/internal/entity"
	"enrollix/internal/repository"

	"github.com/google/uuid"
)

// CatalogService manages the academic records applications refer to.
type CatalogService struct {
	years      repository.AcademicYearRepository
	domaines   repository.DomaineRepository
	programmes repository.ProgrammeRepository
}

func NewCatalogService(
	years repository.AcademicYearRepository,
	domaines repository.DomaineRepository,
	programmes repository.ProgrammeRepository,
) *CatalogService {
	return &CatalogService{
		years:      years,
		domaines:   domaines,
		programmes: programmes,
	}
}

func (s *CatalogService) CreateAcademicYear(ctx context.Context, startYear, endYear int, active bool) (*entity.AcademicYear, error) {
	if startYear <= 0 || endYear <= startYear {
		return nil, ErrInvalidInput
	}
	year := &entity.AcademicYear{
		StartYear: startYear,
		EndYear:   endYear,
		Active:    active,
	}
	if err := s.years.Create(ctx, year); err != nil {
		return nil, err
	}
	return year, nil
}

func (s *CatalogService) ListAcademicYears(ctx context.Context) ([]entity.AcademicYear, error) {
	return s.years.List(ctx)
}

func (s *CatalogService) CreateDomaine(ctx context.Context, name, description string) (*entity.Domaine, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}
	domaine := &entity.Domaine{
		Name:        strings.TrimSpace(name),
		Description: description,
	}
	if err := s.domaines.Create(ctx, domaine); err != nil {
		return nil, err
	}
	return domaine, nil
}

func (s *CatalogService) ListDomaines(ctx context.Context) ([]entity.Domaine, error) {
	return s.domaines.List(ctx)
}

func (s *CatalogService) CreateProgramme(ctx context.Context, name, description string, domaineID uuid.UUID) (*entity.Programme, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}
	domaine, err := s.domaines.FindByID(ctx, domaineID)
	if err != nil {
		return nil, err
	}
	if domaine == nil {
		return nil, ErrDomaineNotFound
	}

	programme := &entity.Programme{
		Name:        strings.TrimSpace(name),
		Description: description,
		DomaineID:   domaine.ID,
	}
	if err := s.programmes.Create(ctx, programme); err != nil {
		return nil, err
	}
	return programme, nil
}

func (s *CatalogService) ListProgrammes(ctx context.Context) ([]entity.Programme, error) {
	return s.programmes.List(ctx)
}
