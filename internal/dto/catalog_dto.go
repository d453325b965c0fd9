package dto

import "enrollix/internal/entity"

type AcademicYearCreateRequest struct {
	StartYear int  `json:"start_year" validate:"required,gt=0"`
	EndYear   int  `json:"end_year" validate:"required,gtfield=StartYear"`
	Active    bool `json:"active"`
}

type AcademicYearResponse struct {
	ID        string `json:"id"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`
	Active    bool   `json:"active"`
}

func AcademicYearResponseFromEntity(year *entity.AcademicYear) AcademicYearResponse {
	return AcademicYearResponse{
		ID:        year.ID.String(),
		StartYear: year.StartYear,
		EndYear:   year.EndYear,
		Active:    year.Active,
	}
}

func AcademicYearResponsesFromEntities(years []entity.AcademicYear) []AcademicYearResponse {
	responses := make([]AcademicYearResponse, 0, len(years))
	for i := range years {
		responses = append(responses, AcademicYearResponseFromEntity(&years[i]))
	}
	return responses
}

type DomaineCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type DomaineResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func DomaineResponseFromEntity(domaine *entity.Domaine) DomaineResponse {
	return DomaineResponse{
		ID:          domaine.ID.String(),
		Name:        domaine.Name,
		Description: domaine.Description,
	}
}

func DomaineResponsesFromEntities(domaines []entity.Domaine) []DomaineResponse {
	responses := make([]DomaineResponse, 0, len(domaines))
	for i := range domaines {
		responses = append(responses, DomaineResponseFromEntity(&domaines[i]))
	}
	return responses
}

type ProgrammeCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	DomaineID   string `json:"domaine_id" validate:"required,uuid"`
}

type ProgrammeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	DomaineID   string `json:"domaine_id"`
}

func ProgrammeResponseFromEntity(programme *entity.Programme) ProgrammeResponse {
	return ProgrammeResponse{
		ID:          programme.ID.String(),
		Name:        programme.Name,
		Description: programme.Description,
		DomaineID:   programme.DomaineID.String(),
	}
}

func ProgrammeResponsesFromEntities(programmes []entity.Programme) []ProgrammeResponse {
	responses := make([]ProgrammeResponse, 0, len(programmes))
	for i := range programmes {
		responses = append(responses, ProgrammeResponseFromEntity(&programmes[i]))
	}
	return responses
}
