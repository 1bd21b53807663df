package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sgu-project/sgu-backend/internal/model"
	"github.com/sgu-project/sgu-backend/internal/response"
	"github.com/sgu-project/sgu-backend/internal/service"
	"github.com/sgu-project/sgu-backend/internal/validator"
)

type CourseHandler struct {
	courseService *service.CourseService
}

func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

type courseRequest struct {
	Code           string `json:"code" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Credits        int    `json:"credits" binding:"required,min=1"`
	Description    string `json:"description"`
	MajorID        int    `json:"major_id" binding:"required"`
	PrerequisiteID *int   `json:"prerequisite_id"`
	DepartmentID   *int   `json:"department_id"`
}

func (h *CourseHandler) GetAll(c *gin.Context) {
	if raw := c.Query("major_id"); raw != "" {
		majorID, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		courses, err := h.courseService.ListByMajor(c.Request.Context(), majorID)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"courses": courses})
		return
	}

	courses, err := h.courseService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"courses": courses})
}

func (h *CourseHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	course, err := h.courseService.GetByID(c.Request.Context(), id)
	if err != nil {
		failLookup(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"course": course})
}

func (h *CourseHandler) Create(c *gin.Context) {
	var req courseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	course := courseFromRequest(0, &req)
	if err := h.courseService.Create(c.Request.Context(), course); err != nil {
		if errors.Is(err, service.ErrCourseCodeTaken) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"course": course})
}

func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req courseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	course := courseFromRequest(id, &req)
	if err := h.courseService.Update(c.Request.Context(), course); err != nil {
		if errors.Is(err, service.ErrCourseCodeTaken) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"course": course})
}

func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.courseService.Delete(c.Request.Context(), id); err != nil {
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "course deleted successfully"})
}

func courseFromRequest(id int, req *courseRequest) *model.Course {
	return &model.Course{
		ID:             id,
		Code:           req.Code,
		Name:           req.Name,
		Credits:        req.Credits,
		Description:    req.Description,
		MajorID:        req.MajorID,
		PrerequisiteID: req.PrerequisiteID,
		DepartmentID:   req.DepartmentID,
	}
}
