package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sipengawas/internal/model"
	"sipengawas/internal/store"
	"sipengawas/internal/upload"
)

// AdditionalTaskHandler handles additional activity endpoints.
type AdditionalTaskHandler struct {
	store store.Store
	saver *upload.Saver
}

// NewAdditionalTaskHandler creates a new additional task handler.
func NewAdditionalTaskHandler(st store.Store, saver *upload.Saver) *AdditionalTaskHandler {
	return &AdditionalTaskHandler{store: st, saver: saver}
}

// CreateAdditionalTaskRequest represents a multipart additional activity
// creation request.
type CreateAdditionalTaskRequest struct {
	Name        string `form:"name" validate:"required"`
	Date        string `form:"date"`
	Location    string `form:"location" validate:"required"`
	Organizer   string `form:"organizer" validate:"required"`
	Description string `form:"description"`
}

// List godoc
// @Summary List the supervisor's additional activities
// @Tags additional-tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.AdditionalTask
// @Failure 401 {object} errors.ErrorResponse
// @Router /additional-tasks [get]
func (h *AdditionalTaskHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	tasks, err := h.store.GetAdditionalTasks(c.Request().Context(), userID)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// Create godoc
// @Summary Record an additional activity
// @Tags additional-tasks
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Activity name"
// @Param date formData string false "Date (yyyy-mm-dd)"
// @Param location formData string true "Location"
// @Param organizer formData string true "Organizer"
// @Param description formData string false "Description"
// @Param photo1 formData file false "Photo 1"
// @Param photo2 formData file false "Photo 2"
// @Success 201 {object} model.AdditionalTask
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /additional-tasks [post]
func (h *AdditionalTaskHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateAdditionalTaskRequest
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

	task, err := h.store.CreateAdditionalTask(c.Request().Context(), &model.AdditionalTask{
		UserID:      userID,
		Name:        req.Name,
		Date:        date,
		Location:    req.Location,
		Organizer:   req.Organizer,
		Description: optString(req.Description),
		Photo1:      photo1,
		Photo2:      photo2,
	})
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, task)
}

// Delete godoc
// @Summary Delete an additional activity
// @Tags additional-tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Additional task ID"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /additional-tasks/{id} [delete]
func (h *AdditionalTaskHandler) Delete(c echo.Context) error {
	if _, err := currentUserID(c); err != nil {
		return err
	}

	if err := h.store.DeleteAdditionalTask(c.Request().Context(), c.Param("id")); err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
