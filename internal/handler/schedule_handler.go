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

// ScheduleHandler exposes the schedule write paths. Guard rejections
// (room conflicts, capacity) surface as 409 with the typed code.
type ScheduleHandler struct {
	scheduleService *service.ScheduleService
}

func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

type scheduleRequest struct {
	CourseID    int    `json:"course_id" binding:"required"`
	ClassroomID int    `json:"classroom_id" binding:"required"`
	Semester    string `json:"semester" binding:"required,semester"`
	Day         string `json:"day" binding:"required,weekday"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
}

func (h *ScheduleHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	schedule, err := h.scheduleService.GetByID(c.Request.Context(), id)
	if err != nil {
		failLookup(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"schedule": schedule})
}

// GetAll supports ?course_id= or ?classroom_id=&day= filters.
func (h *ScheduleHandler) GetAll(c *gin.Context) {
	if raw := c.Query("course_id"); raw != "" {
		courseID, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		schedules, err := h.scheduleService.ListByCourse(c.Request.Context(), courseID)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"schedules": schedules})
		return
	}

	classroomID, err := strconv.Atoi(c.Query("classroom_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	day := model.Weekday(c.Query("day"))
	if !day.IsValid() {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidInput)
		return
	}

	schedules, err := h.scheduleService.ListByClassroomDay(c.Request.Context(), classroomID, day)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"schedules": schedules})
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	schedule, ok := h.bindSchedule(c, 0)
	if !ok {
		return
	}

	if err := h.scheduleService.Create(c.Request.Context(), schedule); err != nil {
		if failGuard(c, err) {
			return
		}
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"schedule": schedule})
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	schedule, ok := h.bindSchedule(c, id)
	if !ok {
		return
	}

	if err := h.scheduleService.Update(c.Request.Context(), schedule); err != nil {
		if failGuard(c, err) {
			return
		}
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"schedule": schedule})
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.scheduleService.Delete(c.Request.Context(), id); err != nil {
		failWrite(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "schedule deleted successfully"})
}

func (h *ScheduleHandler) bindSchedule(c *gin.Context, id int) (*model.Schedule, bool) {
	var req scheduleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return nil, false
	}

	start, err := model.ParseTimeOfDay(req.StartTime)
	if err != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{"start_time": "must be HH:MM"})
		return nil, false
	}
	end, err := model.ParseTimeOfDay(req.EndTime)
	if err != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{"end_time": "must be HH:MM"})
		return nil, false
	}

	return &model.Schedule{
		ID:          id,
		CourseID:    req.CourseID,
		ClassroomID: req.ClassroomID,
		Semester:    model.Semester(req.Semester),
		Day:         model.Weekday(req.Day),
		StartTime:   start,
		EndTime:     end,
	}, true
}
