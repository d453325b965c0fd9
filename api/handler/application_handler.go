package handler

import (
	"errors"
	"net/http"

	"enrollix/api/middleware"
	"enrollix/internal/dto"
	"enrollix/internal/entity"
	"enrollix/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct {
	Service  *service.ApplicationService
	Validate *validator.Validate
}

func NewApplicationHandler(svc *service.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		Service:  svc,
		Validate: validate,
	}
}

func (h *ApplicationHandler) Create(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}

	var req dto.ApplicationCreateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	programmeID, err := uuid.Parse(req.ProgrammeID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var yearID *uuid.UUID
	if req.YearID != nil {
		parsed, err := uuid.Parse(*req.YearID)
		if err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
		yearID = &parsed
	}

	application, err := h.Service.Create(c.Request().Context(), user.ID, programmeID, yearID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.ApplicationResponseFromEntity(application))
}

// List returns the caller's own applications; reviewers and admins see all.
func (h *ApplicationHandler) List(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}

	var applications []entity.Application
	var err error
	if user.HasAnyRole(entity.RoleReviewer, entity.RoleAdmin) {
		applications, err = h.Service.ListAll(c.Request().Context())
	} else {
		applications, err = h.Service.ListForStudent(c.Request().Context(), user.ID)
	}
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ApplicationResponsesFromEntities(applications))
}

func (h *ApplicationHandler) Submit(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid application id"))
	}

	application, err := h.Service.Submit(c.Request().Context(), user.ID, applicationID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ApplicationResponseFromEntity(application))
}

func (h *ApplicationHandler) Decide(c echo.Context) error {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid application id"))
	}

	var req dto.ApplicationDecisionRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	application, err := h.Service.Decide(c.Request().Context(), applicationID, req.Decision == "validate")
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ApplicationResponseFromEntity(application))
}

func (h *ApplicationHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}
