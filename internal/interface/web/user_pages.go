package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vedijajagtap/todolist-api/internal/application"
)

// UserPages serves the server-rendered user pages. Failure behavior
// mirrors the page flow: creation and update failures re-render the form
// with the submitted values and a message, lookups on missing records
// redirect to a safe listing, and a blocked delete re-renders the user's
// own page with an inline message instead of redirecting.
type UserPages struct {
	Users  *application.UserService
	Logger *logrus.Logger
}

func NewUserPages(users *application.UserService, logger *logrus.Logger) *UserPages {
	return &UserPages{Users: users, Logger: logger}
}

// Index renders GET /users with an optional name search.
func (p *UserPages) Index(c *gin.Context) {
	name := c.Query("name")
	users, err := p.Users.List(c.Request.Context(), name)
	if err != nil {
		p.logErr(err, "render user index")
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "users_index.html", gin.H{
		"Users":      users,
		"SearchName": name,
	})
}

// New renders GET /users/new.
func (p *UserPages) New(c *gin.Context) {
	c.HTML(http.StatusOK, "users_new.html", gin.H{"Name": ""})
}

// Create handles the new-user form POST.
func (p *UserPages) Create(c *gin.Context) {
	name := c.PostForm("name")
	u, err := p.Users.Create(c.Request.Context(), application.CreateUserInput{Name: name})
	if err != nil {
		c.HTML(http.StatusOK, "users_new.html", gin.H{
			"Name":         name,
			"ErrorMessage": "Error creating User",
		})
		return
	}
	c.Redirect(http.StatusFound, "/users/"+u.ID)
}

// Show renders GET /users/:id with the recent-task summary.
func (p *UserPages) Show(c *gin.Context) {
	p.show(c, c.Param("id"), "")
}

func (p *UserPages) show(c *gin.Context, id, errorMessage string) {
	u, tasks, err := p.Users.Get(c.Request.Context(), id)
	if err != nil {
		p.logErr(err, "render user page")
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "users_show.html", gin.H{
		"User":         u,
		"TasksByUser":  tasks,
		"ErrorMessage": errorMessage,
	})
}

// Edit renders GET /users/:id/edit.
func (p *UserPages) Edit(c *gin.Context) {
	u, _, err := p.Users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/users")
		return
	}
	c.HTML(http.StatusOK, "users_edit.html", gin.H{"User": u})
}

// Update handles the edit form (PATCH via method override).
func (p *UserPages) Update(c *gin.Context) {
	id := c.Param("id")
	name := c.PostForm("name")
	u, err := p.Users.Update(c.Request.Context(), id, application.UpdateUserInput{Name: name})
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.HTML(http.StatusOK, "users_edit.html", gin.H{
			"User":         gin.H{"ID": id, "Name": name},
			"ErrorMessage": "Error updating User",
		})
		return
	}
	c.Redirect(http.StatusFound, "/users/"+u.ID)
}

// Delete handles the delete form (DELETE via method override). A user
// that still owns tasks stays on its own page with an inline message.
func (p *UserPages) Delete(c *gin.Context) {
	id := c.Param("id")
	err := p.Users.Delete(c.Request.Context(), id)
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, "/users")
	case errors.Is(err, application.ErrUserHasTasks):
		p.show(c, id, "This user has tasks still")
	case errors.Is(err, application.ErrNotFound):
		c.Redirect(http.StatusFound, "/")
	default:
		p.logErr(err, "delete user")
		p.show(c, id, "Could not remove user")
	}
}

func (p *UserPages) logErr(err error, msg string) {
	if p.Logger != nil {
		p.Logger.WithError(err).Warn(msg)
	}
}
