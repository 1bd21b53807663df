package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sgu-project/sgu-backend/internal/model"
	"github.com/sgu-project/sgu-backend/internal/response"
	"github.com/sgu-project/sgu-backend/internal/service"
	"github.com/sgu-project/sgu-backend/internal/validator"
)

type ProfessorHandler struct {
	professorService *service.ProfessorService
}

func NewProfessorHandler(professorService *service.ProfessorService) *ProfessorHandler {
	return &ProfessorHandler{professorService: professorService}
}

type professorRequest struct {
	FirstName      string    `json:"first_name" binding:"required"`
	LastName       string    `json:"last_name" binding:"required"`
	Specialization string    `json:"specialization"`
	DepartmentID   int       `json:"department_id" binding:"required"`
	HireDate       time.Time `json:"hire_date" binding:"required"`
	Salary         *float64  `json:"salary"`
	Email          string    `json:"email" binding:"required,email"`
	Active         bool      `json:"active"`
}

func (h *ProfessorHandler) GetAll(c *gin.Context) {
	if raw := c.Query("department_id"); raw != "" {
		departmentID, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		professors, err := h.professorService.ListByDepartment(c.Request.Context(), departmentID)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"professors": professors})
		return
	}

	professors, err := h.professorService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"professors": professors})
}

func (h *ProfessorHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	professor, err := h.professorService.GetByID(c.Request.Context(), id)
	if err != nil {
		failLookup(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"professor": professor})
}

func (h *ProfessorHandler) Create(c *gin.Context) {
	var req professorRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	professor := professorFromRequest(0, &req)
	if err := h.professorService.Create(c.Request.Context(), professor); err != nil {
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"professor": professor})
}

func (h *ProfessorHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req professorRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	professor := professorFromRequest(id, &req)
	if err := h.professorService.Update(c.Request.Context(), professor); err != nil {
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"professor": professor})
}

func (h *ProfessorHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.professorService.Delete(c.Request.Context(), id); err != nil {
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "professor deleted successfully"})
}

func professorFromRequest(id int, req *professorRequest) *model.Professor {
	return &model.Professor{
		ID:             id,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Specialization: req.Specialization,
		DepartmentID:   req.DepartmentID,
		HireDate:       req.HireDate,
		Salary:         req.Salary,
		Email:          req.Email,
		Active:         req.Active,
	}
}
