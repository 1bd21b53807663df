package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sgu-project/sgu-backend/internal/model"
	"github.com/sgu-project/sgu-backend/internal/response"
	"github.com/sgu-project/sgu-backend/internal/service"
	"github.com/sgu-project/sgu-backend/internal/validator"
)

type StudentHandler struct {
	studentService *service.StudentService
}

func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

type studentRequest struct {
	FirstName     string    `json:"first_name" binding:"required"`
	LastName      string    `json:"last_name" binding:"required"`
	BirthDate     time.Time `json:"birth_date" binding:"required"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email" binding:"required,email"`
	MajorID       *int      `json:"major_id"`
	AdmissionDate time.Time `json:"admission_date" binding:"required"`
	Status        string    `json:"status"`
}

func (h *StudentHandler) GetAll(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "25"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 25
	}

	students, total, err := h.studentService.ListPaginated(c.Request.Context(), page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, gin.H{"students": students}, &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	})
}

func (h *StudentHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		failLookup(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student": student})
}

func (h *StudentHandler) Create(c *gin.Context) {
	var req studentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student := studentFromRequest(0, &req)
	if err := h.studentService.Create(c.Request.Context(), student); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"student": student})
}

func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req studentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student := studentFromRequest(id, &req)
	if err := h.studentService.Update(c.Request.Context(), student); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student": student})
}

func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), id); err != nil {
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "student deleted successfully"})
}

func studentFromRequest(id int, req *studentRequest) *model.Student {
	return &model.Student{
		ID:            id,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		BirthDate:     req.BirthDate,
		Address:       req.Address,
		Phone:         req.Phone,
		Email:         req.Email,
		MajorID:       req.MajorID,
		AdmissionDate: req.AdmissionDate,
		Status:        req.Status,
	}
}
