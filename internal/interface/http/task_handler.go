package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vedijajagtap/todolist-api/internal/application"
	"github.com/vedijajagtap/todolist-api/internal/domain/entity"
	repo "github.com/vedijajagtap/todolist-api/internal/domain/repository"
	"github.com/vedijajagtap/todolist-api/pkg/response"
	"github.com/vedijajagtap/todolist-api/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	TaskName      string `json:"taskName" binding:"required"`
	Description   string `json:"description"`
	ScheduledDate string `json:"scheduledDate"`
	User          string `json:"user" binding:"required"`
}

type updateTaskRequest struct {
	TaskName      string `json:"taskName" binding:"required"`
	Description   string `json:"description"`
	ScheduledDate string `json:"scheduledDate" binding:"required"`
	User          string `json:"user" binding:"required"`
}

// parseDate accepts a plain date or a full RFC3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func taskJSON(t *entity.Task) gin.H {
	out := gin.H{
		"id":            t.ID,
		"taskName":      t.TaskName,
		"description":   t.Description,
		"scheduledDate": t.ScheduledDate,
		"created_at":    t.CreatedAt,
		"user":          t.UserID,
	}
	if t.Owner != nil {
		out["owner"] = gin.H{"id": t.Owner.ID, "name": t.Owner.Name}
	}
	return out
}

// List handles GET /api/tasks?taskName=&scheduledDate=
// Both criteria are optional and combine with AND.
func (h *TaskHandler) List(c *gin.Context) {
	filter := repo.TaskFilter{TaskName: c.Query("taskName")}
	if raw := c.Query("scheduledDate"); raw != "" {
		max, err := parseDate(raw)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload",
				gin.H{"scheduledDate": "must be a date (2006-01-02) or RFC3339 timestamp"})
			return
		}
		filter.ScheduledBefore = &max
	}

	tasks, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err, "failed to list tasks")
		return
	}
	out := make([]gin.H, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskJSON(t))
	}
	response.Success(c, http.StatusOK, out, "tasks", gin.H{"count": len(out)})
}

// Create handles POST /api/tasks. scheduledDate defaults to now when
// omitted; the referenced user is not checked for existence.
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	in := application.CreateTaskInput{
		TaskName:    req.TaskName,
		Description: req.Description,
		UserID:      req.User,
	}
	if req.ScheduledDate != "" {
		d, err := parseDate(req.ScheduledDate)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload",
				gin.H{"scheduledDate": "must be a date (2006-01-02) or RFC3339 timestamp"})
			return
		}
		in.ScheduledDate = &d
	}

	t, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "failed to create task")
		return
	}
	response.Success(c, http.StatusCreated, taskJSON(t), "task created", nil)
}

// Get handles GET /api/tasks/:id with the owner resolved when it still
// exists.
func (h *TaskHandler) Get(c *gin.Context) {
	t, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to get task")
		return
	}
	response.Success(c, http.StatusOK, taskJSON(t), "task", nil)
}

// Update handles PUT /api/tasks/:id with wholesale overwrite semantics:
// omitting description clears it.
func (h *TaskHandler) Update(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	d, err := parseDate(req.ScheduledDate)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload",
			gin.H{"scheduledDate": "must be a date (2006-01-02) or RFC3339 timestamp"})
		return
	}

	t, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.UpdateTaskInput{
		TaskName:      req.TaskName,
		Description:   req.Description,
		ScheduledDate: d,
		UserID:        req.User,
	})
	if err != nil {
		h.fail(c, err, "failed to update task")
		return
	}
	response.Success(c, http.StatusOK, taskJSON(t), "task updated", nil)
}

// Delete handles DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "failed to delete task")
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "task deleted", nil)
}

func (h *TaskHandler) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, application.ErrValidation):
		response.Error[any](c, http.StatusBadRequest, msg, err.Error())
	case errors.Is(err, application.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "task not found", nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error(msg)
		}
		response.Error[any](c, http.StatusServiceUnavailable, "store unavailable", nil)
	}
}
