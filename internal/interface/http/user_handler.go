package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vedijajagtap/todolist-api/internal/application"
	"github.com/vedijajagtap/todolist-api/pkg/response"
	"github.com/vedijajagtap/todolist-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Name string `json:"name" binding:"required"`
}

type updateUserRequest struct {
	Name string `json:"name" binding:"required"`
}

// List handles GET /api/users?name=
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		h.fail(c, err, "failed to list users")
		return
	}
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"id":         u.ID,
			"name":       u.Name,
			"created_at": u.CreatedAt,
			"updated_at": u.UpdatedAt,
		})
	}
	response.Success(c, http.StatusOK, out, "users", gin.H{"count": len(out)})
}

// Create handles POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Create(c.Request.Context(), application.CreateUserInput{Name: req.Name})
	if err != nil {
		h.fail(c, err, "failed to create user")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}, "user created", nil)
}

// Get handles GET /api/users/:id and includes the recent-task summary.
func (h *UserHandler) Get(c *gin.Context) {
	u, tasks, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to get user")
		return
	}
	recent := make([]gin.H, 0, len(tasks))
	for _, t := range tasks {
		recent = append(recent, gin.H{
			"id":            t.ID,
			"taskName":      t.TaskName,
			"description":   t.Description,
			"scheduledDate": t.ScheduledDate,
			"created_at":    t.CreatedAt,
		})
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":          u.ID,
		"name":        u.Name,
		"created_at":  u.CreatedAt,
		"updated_at":  u.UpdatedAt,
		"recentTasks": recent,
	}, "user", nil)
}

// Update handles PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.UpdateUserInput{Name: req.Name})
	if err != nil {
		h.fail(c, err, "failed to update user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}, "user updated", nil)
}

// Delete handles DELETE /api/users/:id. A user that still owns tasks is
// reported as a conflict, distinct from not-found.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "failed to delete user")
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "user deleted", nil)
}

func (h *UserHandler) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, application.ErrValidation):
		response.Error[any](c, http.StatusBadRequest, msg, err.Error())
	case errors.Is(err, application.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, application.ErrUserHasTasks):
		response.Error[any](c, http.StatusConflict, "user still has tasks", nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error(msg)
		}
		response.Error[any](c, http.StatusServiceUnavailable, "store unavailable", nil)
	}
}
