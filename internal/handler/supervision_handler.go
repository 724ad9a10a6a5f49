package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sipengawas/internal/model"
	"sipengawas/internal/store"
	"sipengawas/internal/upload"
)

// SupervisionHandler handles supervision visit endpoints.
type SupervisionHandler struct {
	store store.Store
	saver *upload.Saver
}

// NewSupervisionHandler creates a new supervision handler.
func NewSupervisionHandler(st store.Store, saver *upload.Saver) *SupervisionHandler {
	return &SupervisionHandler{store: st, saver: saver}
}

// CreateSupervisionRequest represents a multipart supervision creation
// request. School carries the display name; schoolId is set when the visit
// belongs to a registered school.
type CreateSupervisionRequest struct {
	School          string `form:"school" validate:"required"`
	SchoolID        string `form:"schoolId"`
	Type            string `form:"type" validate:"required,oneof=Akademik Manajerial"`
	Date            string `form:"date"`
	Findings        string `form:"findings" validate:"required"`
	Recommendations string `form:"recommendations"`
}

// List godoc
// @Summary List the supervisor's supervision visits
// @Tags supervisions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Supervision
// @Failure 401 {object} errors.ErrorResponse
// @Router /supervisions [get]
func (h *SupervisionHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	sups, err := h.store.GetSupervisions(c.Request().Context(), userID)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, sups)
}

// ListBySchool godoc
// @Summary List the supervisor's visits to one school
// @Tags supervisions
// @Produce json
// @Security BearerAuth
// @Param schoolId path string true "School ID"
// @Success 200 {array} model.Supervision
// @Failure 401 {object} errors.ErrorResponse
// @Router /supervisions/school/{schoolId} [get]
func (h *SupervisionHandler) ListBySchool(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	sups, err := h.store.GetSupervisionsBySchool(c.Request().Context(), userID, c.Param("schoolId"))
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, sups)
}

// Create godoc
// @Summary Record a supervision visit
// @Tags supervisions
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param school formData string true "School name"
// @Param schoolId formData string false "Registered school ID"
// @Param type formData string true "Akademik or Manajerial"
// @Param date formData string false "Date (yyyy-mm-dd)"
// @Param findings formData string true "Findings"
// @Param recommendations formData string false "Recommendations"
// @Param photo1 formData file false "Photo 1"
// @Param photo2 formData file false "Photo 2"
// @Success 201 {object} model.Supervision
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /supervisions [post]
func (h *SupervisionHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateSupervisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date")
	}

	photo1, err := savePhoto(c, h.saver, "photo1")
	if err != nil {
		return err
	}
	photo2, err := savePhoto(c, h.saver, "photo2")
	if err != nil {
		return err
	}

	sup, err := h.store.CreateSupervision(c.Request().Context(), &model.Supervision{
		UserID:          userID,
		SchoolID:        optString(req.SchoolID),
		School:          req.School,
		Type:            req.Type,
		Date:            date,
		Findings:        req.Findings,
		Recommendations: optString(req.Recommendations),
		Photo1:          photo1,
		Photo2:          photo2,
	})
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, sup)
}

// Delete godoc
// @Summary Delete a supervision visit
// @Tags supervisions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Supervision ID"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /supervisions/{id} [delete]
func (h *SupervisionHandler) Delete(c echo.Context) error {
	if _, err := currentUserID(c); err != nil {
		return err
	}

	if err := h.store.DeleteSupervision(c.Request().Context(), c.Param("id")); err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
