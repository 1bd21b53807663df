package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sgu-project/sgu-backend/internal/model"
	"github.com/sgu-project/sgu-backend/internal/response"
	"github.com/sgu-project/sgu-backend/internal/service"
	"github.com/sgu-project/sgu-backend/internal/validator"
)

type MajorHandler struct {
	majorService *service.MajorService
}

func NewMajorHandler(majorService *service.MajorService) *MajorHandler {
	return &MajorHandler{majorService: majorService}
}

type majorRequest struct {
	Name          string `json:"name" binding:"required"`
	FacultyID     int    `json:"faculty_id" binding:"required"`
	DurationYears int    `json:"duration_years" binding:"required,min=1"`
	TotalCredits  int    `json:"total_credits" binding:"required,min=1"`
	Degree        string `json:"degree" binding:"required"`
}

func (h *MajorHandler) GetAll(c *gin.Context) {
	majors, err := h.majorService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"majors": majors})
}

func (h *MajorHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	major, err := h.majorService.GetByID(c.Request.Context(), id)
	if err != nil {
		failLookup(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"major": major})
}

func (h *MajorHandler) Create(c *gin.Context) {
	var req majorRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	major := &model.Major{
		Name:          req.Name,
		FacultyID:     req.FacultyID,
		DurationYears: req.DurationYears,
		TotalCredits:  req.TotalCredits,
		Degree:        req.Degree,
	}
	if err := h.majorService.Create(c.Request.Context(), major); err != nil {
		if errors.Is(err, service.ErrMajorNameTaken) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"major": major})
}

func (h *MajorHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req majorRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	major := &model.Major{
		ID:            id,
		Name:          req.Name,
		FacultyID:     req.FacultyID,
		DurationYears: req.DurationYears,
		TotalCredits:  req.TotalCredits,
		Degree:        req.Degree,
	}
	if err := h.majorService.Update(c.Request.Context(), major); err != nil {
		if errors.Is(err, service.ErrMajorNameTaken) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"major": major})
}

func (h *MajorHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.majorService.Delete(c.Request.Context(), id); err != nil {
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "major deleted successfully"})
}
