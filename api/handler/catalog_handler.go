package handler

import (
	"net/http"

	"enrollix/internal/dto"
	"enrollix/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	Service  *service.CatalogService
	Validate *validator.Validate
}

func NewCatalogHandler(svc *service.CatalogService, validate *validator.Validate) *CatalogHandler {
	return &CatalogHandler{
		Service:  svc,
		Validate: validate,
	}
}

func (h *CatalogHandler) CreateAcademicYear(c echo.Context) error {
	var req dto.AcademicYearCreateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	year, err := h.Service.CreateAcademicYear(c.Request().Context(), req.StartYear, req.EndYear, req.Active)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.AcademicYearResponseFromEntity(year))
}

func (h *CatalogHandler) ListAcademicYears(c echo.Context) error {
	years, err := h.Service.ListAcademicYears(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.AcademicYearResponsesFromEntities(years))
}

func (h *CatalogHandler) CreateDomaine(c echo.Context) error {
	var req dto.DomaineCreateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	domaine, err := h.Service.CreateDomaine(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.DomaineResponseFromEntity(domaine))
}

func (h *CatalogHandler) ListDomaines(c echo.Context) error {
	domaines, err := h.Service.ListDomaines(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.DomaineResponsesFromEntities(domaines))
}

func (h *CatalogHandler) CreateProgramme(c echo.Context) error {
	var req dto.ProgrammeCreateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	domaineID, err := uuid.Parse(req.DomaineID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	programme, err := h.Service.CreateProgramme(c.Request().Context(), req.Name, req.Description, domaineID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.ProgrammeResponseFromEntity(programme))
}

func (h *CatalogHandler) ListProgrammes(c echo.Context) error {
	programmes, err := h.Service.ListProgrammes(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ProgrammeResponsesFromEntities(programmes))
}

func (h *CatalogHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}
