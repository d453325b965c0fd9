package dto

import (
	"time"

	"enrollix/internal/entity"
)

type ApplicationCreateRequest struct {
	ProgrammeID string  `json:"programme_id" validate:"required,uuid"`
	YearID      *string `json:"year_id" validate:"omitempty,uuid"`
}

type ApplicationDecisionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=validate reject"`
}

type ApplicationResponse struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	ProgrammeID string    `json:"programme_id"`
	YearID      string    `json:"year_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ApplicationResponseFromEntity(application *entity.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          application.ID.String(),
		StudentID:   application.StudentID.String(),
		ProgrammeID: application.ProgrammeID.String(),
		YearID:      application.YearID.String(),
		Status:      string(application.Status),
		CreatedAt:   application.CreatedAt,
		UpdatedAt:   application.UpdatedAt,
	}
}

func ApplicationResponsesFromEntities(applications []entity.Application) []ApplicationResponse {
	responses := make([]ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, ApplicationResponseFromEntity(&applications[i]))
	}
	return responses
}
