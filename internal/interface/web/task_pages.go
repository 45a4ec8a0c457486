package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vedijajagtap/todolist-api/internal/application"
	"github.com/vedijajagtap/todolist-api/internal/domain/entity"
	repo "github.com/vedijajagtap/todolist-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// TaskPages serves the server-rendered task pages. The new/edit forms
// need the full user list for the owner select, so this handler holds
// both services.
type TaskPages struct {
	Tasks  *application.TaskService
	Users  *application.UserService
	Logger *logrus.Logger
}

func NewTaskPages(tasks *application.TaskService, users *application.UserService, logger *logrus.Logger) *TaskPages {
	return &TaskPages{Tasks: tasks, Users: users, Logger: logger}
}

// Index renders GET /tasks with the optional taskName and scheduledDate
// filters.
func (p *TaskPages) Index(c *gin.Context) {
	filter := repo.TaskFilter{TaskName: c.Query("taskName")}
	rawDate := c.Query("scheduledDate")
	if rawDate != "" {
		if max, err := time.Parse(dateLayout, rawDate); err == nil {
			filter.ScheduledBefore = &max
		}
	}

	tasks, err := p.Tasks.List(c.Request.Context(), filter)
	if err != nil {
		p.logErr(err, "render task index")
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "tasks_index.html", gin.H{
		"Tasks":          tasks,
		"SearchTaskName": c.Query("taskName"),
		"SearchDate":     rawDate,
	})
}

// New renders GET /tasks/new.
func (p *TaskPages) New(c *gin.Context) {
	p.renderForm(c, "tasks_new.html", &entity.Task{}, "")
}

// Create handles the new-task form POST.
func (p *TaskPages) Create(c *gin.Context) {
	in, task := p.formInput(c)
	created, err := p.Tasks.Create(c.Request.Context(), application.CreateTaskInput{
		TaskName:      in.TaskName,
		Description:   in.Description,
		ScheduledDate: nilIfZero(in.ScheduledDate),
		UserID:        in.UserID,
	})
	if err != nil {
		p.renderForm(c, "tasks_new.html", task, "Error Creating Task")
		return
	}
	c.Redirect(http.StatusFound, "/tasks/"+created.ID)
}

// Show renders GET /tasks/:id with the owner resolved; a dangling owner
// renders as unassigned rather than failing the page.
func (p *TaskPages) Show(c *gin.Context) {
	p.show(c, c.Param("id"), "")
}

func (p *TaskPages) show(c *gin.Context, id, errorMessage string) {
	t, err := p.Tasks.Get(c.Request.Context(), id)
	if err != nil {
		p.logErr(err, "render task page")
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "tasks_show.html", gin.H{
		"Task":         t,
		"ErrorMessage": errorMessage,
	})
}

// Edit renders GET /tasks/:id/edit.
func (p *TaskPages) Edit(c *gin.Context) {
	t, err := p.Tasks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	p.renderForm(c, "tasks_edit.html", t, "")
}

// Update handles the edit form (PUT via method override).
func (p *TaskPages) Update(c *gin.Context) {
	id := c.Param("id")
	in, task := p.formInput(c)
	task.ID = id
	_, err := p.Tasks.Update(c.Request.Context(), id, in)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		p.renderForm(c, "tasks_edit.html", task, "Error Updating Task")
		return
	}
	c.Redirect(http.StatusFound, "/tasks/"+id)
}

// Delete handles the delete form (DELETE via method override).
func (p *TaskPages) Delete(c *gin.Context) {
	id := c.Param("id")
	err := p.Tasks.Delete(c.Request.Context(), id)
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, "/tasks")
	case errors.Is(err, application.ErrNotFound):
		c.Redirect(http.StatusFound, "/")
	default:
		p.logErr(err, "delete task")
		p.show(c, id, "Could not remove task")
	}
}

// formInput reads the shared new/edit form fields. The returned task
// echoes the submitted values so a failed form can re-render with them.
func (p *TaskPages) formInput(c *gin.Context) (application.UpdateTaskInput, *entity.Task) {
	in := application.UpdateTaskInput{
		TaskName:    c.PostForm("taskName"),
		Description: c.PostForm("description"),
		UserID:      c.PostForm("user"),
	}
	if raw := c.PostForm("scheduledDate"); raw != "" {
		if d, err := time.Parse(dateLayout, raw); err == nil {
			in.ScheduledDate = d
		}
	}
	return in, &entity.Task{
		TaskName:      in.TaskName,
		Description:   in.Description,
		ScheduledDate: in.ScheduledDate,
		UserID:        in.UserID,
	}
}

// renderForm renders the new/edit form with the user list for the owner
// select.
func (p *TaskPages) renderForm(c *gin.Context, tmpl string, task *entity.Task, errorMessage string) {
	users, err := p.Users.List(c.Request.Context(), "")
	if err != nil {
		p.logErr(err, "load users for task form")
		c.Redirect(http.StatusFound, "/tasks")
		return
	}
	c.HTML(http.StatusOK, tmpl, gin.H{
		"Task":         task,
		"Users":        users,
		"ErrorMessage": errorMessage,
	})
}

func (p *TaskPages) logErr(err error, msg string) {
	if p.Logger != nil {
		p.Logger.WithError(err).Warn(msg)
	}
}

func nilIfZero(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
