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

type ClassroomHandler struct {
	classroomService *service.ClassroomService
}

func NewClassroomHandler(classroomService *service.ClassroomService) *ClassroomHandler {
	return &ClassroomHandler{classroomService: classroomService}
}

type classroomRequest struct {
	Code         string `json:"code" binding:"required"`
	Building     string `json:"building" binding:"required"`
	Capacity     int    `json:"capacity" binding:"required,min=1"`
	RoomType     string `json:"room_type"`
	HasProjector bool   `json:"has_projector"`
}

func (h *ClassroomHandler) GetAll(c *gin.Context) {
	classrooms, err := h.classroomService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"classrooms": classrooms})
}

func (h *ClassroomHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	classroom, err := h.classroomService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if classroom == nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"classroom": classroom})
}

func (h *ClassroomHandler) Create(c *gin.Context) {
	var req classroomRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	classroom := classroomFromRequest(0, &req)
	if err := h.classroomService.Create(c.Request.Context(), classroom); err != nil {
		h.failClassroom(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"classroom": classroom})
}

func (h *ClassroomHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req classroomRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	classroom := classroomFromRequest(id, &req)
	if err := h.classroomService.Update(c.Request.Context(), classroom); err != nil {
		h.failClassroom(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"classroom": classroom})
}

func (h *ClassroomHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.classroomService.Delete(c.Request.Context(), id); err != nil {
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "classroom deleted successfully"})
}

func (h *ClassroomHandler) failClassroom(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrClassroomCodeTaken):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	case errors.Is(err, service.ErrInvalidCapacity):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidInput)
	default:
		failWrite(c, err)
	}
}

func classroomFromRequest(id int, req *classroomRequest) *model.Classroom {
	return &model.Classroom{
		ID:           id,
		Code:         req.Code,
		Building:     req.Building,
		Capacity:     req.Capacity,
		RoomType:     req.RoomType,
		HasProjector: req.HasProjector,
	}
}
