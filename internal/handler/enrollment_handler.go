package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sgu-project/sgu-backend/internal/model"
	"github.com/sgu-project/sgu-backend/internal/response"
	"github.com/sgu-project/sgu-backend/internal/service"
	"github.com/sgu-project/sgu-backend/internal/validator"
)

// EnrollmentHandler exposes the enrollment write paths. Guard
// rejections (duplicate, limit, capacity, unscheduled course) surface
// as 409 with the typed code.
type EnrollmentHandler struct {
	enrollmentService *service.EnrollmentService
}

func NewEnrollmentHandler(enrollmentService *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

type enrollmentRequest struct {
	StudentID int    `json:"student_id" binding:"required"`
	CourseID  int    `json:"course_id" binding:"required"`
	Semester  string `json:"semester" binding:"required,semester"`
}

type gradeRequest struct {
	StudentID int    `json:"student_id" binding:"required"`
	CourseID  int    `json:"course_id" binding:"required"`
	Semester  string `json:"semester" binding:"required,semester"`
	Grade     string `json:"grade" binding:"required"`
}

func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req enrollmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	enrollment, err := h.enrollmentService.Enroll(c.Request.Context(),
		req.StudentID, req.CourseID, model.Semester(req.Semester))
	if err != nil {
		if failGuard(c, err) {
			return
		}
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"enrollment": enrollment})
}

func (h *EnrollmentHandler) Withdraw(c *gin.Context) {
	var req enrollmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	err := h.enrollmentService.Withdraw(c.Request.Context(),
		req.StudentID, req.CourseID, model.Semester(req.Semester))
	if err != nil {
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "enrollment withdrawn successfully"})
}

func (h *EnrollmentHandler) AssignGrade(c *gin.Context) {
	var req gradeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	err := h.enrollmentService.AssignGrade(c.Request.Context(),
		req.StudentID, req.CourseID, model.Semester(req.Semester), req.Grade)
	if err != nil {
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "grade assigned successfully"})
}

// GetAll supports ?student_id= or ?course_id=&semester= filters.
func (h *EnrollmentHandler) GetAll(c *gin.Context) {
	if raw := c.Query("student_id"); raw != "" {
		studentID, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		enrollments, err := h.enrollmentService.ListByStudent(c.Request.Context(), studentID)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"enrollments": enrollments})
		return
	}

	courseID, err := strconv.Atoi(c.Query("course_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	semester := model.Semester(c.Query("semester"))
	if !semester.IsValid() {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidInput)
		return
	}

	enrollments, err := h.enrollmentService.ListByCourseSemester(c.Request.Context(), courseID, semester)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"enrollments": enrollments})
}
