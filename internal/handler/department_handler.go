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

type DepartmentHandler struct {
	departmentService *service.DepartmentService
}

func NewDepartmentHandler(departmentService *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

type departmentRequest struct {
	Name      string `json:"name" binding:"required"`
	FacultyID int    `json:"faculty_id" binding:"required"`
	Head      string `json:"head"`
	Email     string `json:"email" binding:"omitempty,email"`
}

func (h *DepartmentHandler) GetAll(c *gin.Context) {
	// Optional ?faculty_id= filter.
	if raw := c.Query("faculty_id"); raw != "" {
		facultyID, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		departments, err := h.departmentService.ListByFaculty(c.Request.Context(), facultyID)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"departments": departments})
		return
	}

	departments, err := h.departmentService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"departments": departments})
}

func (h *DepartmentHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	department, err := h.departmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		failLookup(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"department": department})
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	var req departmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	department := &model.Department{
		Name:      req.Name,
		FacultyID: req.FacultyID,
		Head:      req.Head,
		Email:     req.Email,
	}
	if err := h.departmentService.Create(c.Request.Context(), department); err != nil {
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"department": department})
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req departmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	department := &model.Department{
		ID:        id,
		Name:      req.Name,
		FacultyID: req.FacultyID,
		Head:      req.Head,
		Email:     req.Email,
	}
	if err := h.departmentService.Update(c.Request.Context(), department); err != nil {
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"department": department})
}

func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.departmentService.Delete(c.Request.Context(), id); err != nil {
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "department deleted successfully"})
}
