package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sipengawas/internal/model"
	"sipengawas/internal/store"
	"sipengawas/internal/upload"
)

// TaskHandler handles main task endpoints.
type TaskHandler struct {
	store store.Store
	saver *upload.Saver
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(st store.Store, saver *upload.Saver) *TaskHandler {
	return &TaskHandler{store: st, saver: saver}
}

// CreateTaskRequest represents a multipart task creation request; photo1 and
// photo2 arrive as file parts.
type CreateTaskRequest struct {
	Title       string `form:"title" validate:"required"`
	Category    string `form:"category" validate:"required"`
	Date        string `form:"date"`
	Description string `form:"description"`
	Completed   bool   `form:"completed"`
}

// List godoc
// @Summary List the supervisor's tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Task
// @Failure 401 {object} errors.ErrorResponse
// @Router /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	tasks, err := h.store.GetTasks(c.Request().Context(), userID)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// Create godoc
// @Summary Create a task
// @Tags tasks
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param category formData string true "Category"
// @Param date formData string false "Date (yyyy-mm-dd)"
// @Param description formData string false "Description"
// @Param completed formData boolean false "Completed"
// @Param photo1 formData file false "Photo 1"
// @Param photo2 formData file false "Photo 2"
// @Success 201 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateTaskRequest
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

	task, err := h.store.CreateTask(c.Request().Context(), &model.Task{
		UserID:      userID,
		Title:       req.Title,
		Category:    req.Category,
		Date:        date,
		Description: optString(req.Description),
		Photo1:      photo1,
		Photo2:      photo2,
		Completed:   req.Completed,
	})
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, task)
}

// Update godoc
// @Summary Partially update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body model.TaskPatch true "Fields to change"
// @Success 200 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /tasks/{id} [patch]
func (h *TaskHandler) Update(c echo.Context) error {
	if _, err := currentUserID(c); err != nil {
		return err
	}

	var patch model.TaskPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	task, err := h.store.UpdateTask(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, task)
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	if _, err := currentUserID(c); err != nil {
		return err
	}

	if err := h.store.DeleteTask(c.Request().Context(), c.Param("id")); err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
