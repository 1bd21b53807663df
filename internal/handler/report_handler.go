package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sgu-project/sgu-backend/internal/model"
	"github.com/sgu-project/sgu-backend/internal/repository"
	"github.com/sgu-project/sgu-backend/internal/response"
	"github.com/sgu-project/sgu-backend/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Enrollments returns the filtered enrollment report as JSON.
func (h *ReportHandler) Enrollments(c *gin.Context) {
	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}

	rows, err := h.reportService.EnrollmentRows(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rows": rows})
}

// EnrollmentsXLSX streams the enrollment report as an XLSX download.
func (h *ReportHandler) EnrollmentsXLSX(c *gin.Context) {
	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}

	fileName := fmt.Sprintf("inscripciones_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", "attachment; filename="+fileName)

	if err := h.reportService.WriteEnrollmentXLSX(c.Request.Context(), filter, c.Writer); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// DepartmentStats returns the department statistics as JSON.
func (h *ReportHandler) DepartmentStats(c *gin.Context) {
	stats, err := h.reportService.DepartmentStats(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

// DepartmentStatsXLSX streams the department statistics as an XLSX download.
func (h *ReportHandler) DepartmentStatsXLSX(c *gin.Context) {
	fileName := fmt.Sprintf("departamentos_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", "attachment; filename="+fileName)

	if err := h.reportService.WriteDepartmentStatsXLSX(c.Request.Context(), c.Writer); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

func (h *ReportHandler) parseFilter(c *gin.Context) (repository.EnrollmentReportFilter, bool) {
	var filter repository.EnrollmentReportFilter

	if raw := c.Query("semester"); raw != "" {
		semester := model.Semester(raw)
		if !semester.IsValid() {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidInput)
			return filter, false
		}
		filter.Semester = semester
	}
	if raw := c.Query("major_id"); raw != "" {
		majorID, err := strconv.Atoi(raw)
		if err != nil || majorID < 1 {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return filter, false
		}
		filter.MajorID = majorID
	}
	if raw := c.Query("min_credits"); raw != "" {
		minCredits, err := strconv.Atoi(raw)
		if err != nil || minCredits < 1 {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidInput)
			return filter, false
		}
		filter.MinCredits = minCredits
	}
	return filter, true
}
