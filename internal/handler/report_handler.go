package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"sipengawas/internal/service"
)

// ReportHandler handles report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func yearParam(c echo.Context) (int, error) {
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil || year < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid year")
	}
	return year, nil
}

func monthParam(c echo.Context) (int, error) {
	month, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid month")
	}
	return month, nil
}

// Monthly godoc
// @Summary Monthly activity statistics
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} model.MonthlyStats
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /reports/monthly [get]
func (h *ReportHandler) Monthly(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	month, err := monthParam(c)
	if err != nil {
		return err
	}

	stats, err := h.reportService.MonthlyStats(c.Request().Context(), userID, year, month)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// Yearly godoc
// @Summary Yearly activity statistics
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param year query int true "Year"
// @Success 200 {object} model.YearlyStats
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /reports/yearly [get]
func (h *ReportHandler) Yearly(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	year, err := yearParam(c)
	if err != nil {
		return err
	}

	stats, err := h.reportService.YearlyStats(c.Request().Context(), userID, year)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// MonthlyPDF godoc
// @Summary Download the monthly report as PDF
// @Tags reports
// @Produce application/pdf
// @Security BearerAuth
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {file} binary
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /reports/monthly/pdf [get]
func (h *ReportHandler) MonthlyPDF(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	month, err := monthParam(c)
	if err != nil {
		return err
	}

	pdf, err := h.reportService.MonthlyPDF(c.Request().Context(), userID, year, month)
	if err != nil {
		return mapDomainError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=laporan-bulanan-%d-%d.pdf", year, month))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// YearlyPDF godoc
// @Summary Download the yearly report as PDF
// @Tags reports
// @Produce application/pdf
// @Security BearerAuth
// @Param year query int true "Year"
// @Success 200 {file} binary
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /reports/yearly/pdf [get]
func (h *ReportHandler) YearlyPDF(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	year, err := yearParam(c)
	if err != nil {
		return err
	}

	pdf, err := h.reportService.YearlyPDF(c.Request().Context(), userID, year)
	if err != nil {
		return mapDomainError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=laporan-tahunan-%d.pdf", year))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
