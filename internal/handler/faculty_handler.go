package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sgu-project/sgu-backend/internal/model"
	"github.com/sgu-project/sgu-backend/internal/response"
	"github.com/sgu-project/sgu-backend/internal/service"
	"github.com/sgu-project/sgu-backend/internal/validator"
)

type FacultyHandler struct {
	facultyService *service.FacultyService
}

func NewFacultyHandler(facultyService *service.FacultyService) *FacultyHandler {
	return &FacultyHandler{facultyService: facultyService}
}

type facultyRequest struct {
	Name           string     `json:"name" binding:"required"`
	Location       string     `json:"location"`
	FoundationDate *time.Time `json:"foundation_date"`
	Phone          string     `json:"phone"`
	Dean           string     `json:"dean"`
}

func (h *FacultyHandler) GetAll(c *gin.Context) {
	faculties, err := h.facultyService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"faculties": faculties})
}

func (h *FacultyHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	faculty, err := h.facultyService.GetByID(c.Request.Context(), id)
	if err != nil {
		failLookup(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"faculty": faculty})
}

func (h *FacultyHandler) Create(c *gin.Context) {
	var req facultyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	faculty := &model.Faculty{
		Name:           req.Name,
		Location:       req.Location,
		FoundationDate: req.FoundationDate,
		Phone:          req.Phone,
		Dean:           req.Dean,
	}
	if err := h.facultyService.Create(c.Request.Context(), faculty); err != nil {
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"faculty": faculty})
}

func (h *FacultyHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req facultyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	faculty := &model.Faculty{
		ID:             id,
		Name:           req.Name,
		Location:       req.Location,
		FoundationDate: req.FoundationDate,
		Phone:          req.Phone,
		Dean:           req.Dean,
	}
	if err := h.facultyService.Update(c.Request.Context(), faculty); err != nil {
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"faculty": faculty})
}

func (h *FacultyHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.facultyService.Delete(c.Request.Context(), id); err != nil {
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "faculty deleted successfully"})
}
