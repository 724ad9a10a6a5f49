package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sipengawas/internal/model"
	"sipengawas/internal/store"
)

// SchoolHandler handles school endpoints.
type SchoolHandler struct {
	store store.Store
}

// NewSchoolHandler creates a new school handler.
func NewSchoolHandler(st store.Store) *SchoolHandler {
	return &SchoolHandler{store: st}
}

// CreateSchoolRequest represents a school creation request.
type CreateSchoolRequest struct {
	Name          string `json:"name" validate:"required"`
	Address       string `json:"address" validate:"required"`
	Contact       string `json:"contact" validate:"required"`
	PrincipalName string `json:"principalName"`
	PrincipalNip  string `json:"principalNip"`
}

// List godoc
// @Summary List the supervisor's schools
// @Tags schools
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.School
// @Failure 401 {object} errors.ErrorResponse
// @Router /schools [get]
func (h *SchoolHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	schools, err := h.store.GetSchools(c.Request().Context(), userID)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, schools)
}

// Create godoc
// @Summary Register a school
// @Tags schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSchoolRequest true "School data"
// @Success 201 {object} model.School
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /schools [post]
func (h *SchoolHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateSchoolRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	school, err := h.store.CreateSchool(c.Request().Context(), &model.School{
		UserID:        userID,
		Name:          req.Name,
		Address:       req.Address,
		Contact:       req.Contact,
		PrincipalName: optString(req.PrincipalName),
		PrincipalNip:  optString(req.PrincipalNip),
	})
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, school)
}

// Delete godoc
// @Summary Delete a school
// @Description Supervisions of the school are kept.
// @Tags schools
// @Produce json
// @Security BearerAuth
// @Param id path string true "School ID"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /schools/{id} [delete]
func (h *SchoolHandler) Delete(c echo.Context) error {
	if _, err := currentUserID(c); err != nil {
		return err
	}

	if err := h.store.DeleteSchool(c.Request().Context(), c.Param("id")); err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
