package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Create(t *testing.T) {
	r := setupAPI(t)

	t.Run("creates a user", func(t *testing.T) {
		w, env := do(t, r, http.MethodPost, "/api/users", gin.H{"name": "Alice"})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Success)
		data := dataMap(t, env)
		assert.NotEmpty(t, data["id"])
		assert.Equal(t, "Alice", data["name"])
	})

	t.Run("missing name is a 400 with field details", func(t *testing.T) {
		w, env := do(t, r, http.MethodPost, "/api/users", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
		details, ok := env.Error.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "is required", details["name"])
	})
}

func TestUserHandler_ListFilter(t *testing.T) {
	r := setupAPI(t)
	for _, n := range []string{"Alice", "Bob", "alicia"} {
		createUser(t, r, n)
	}

	w, env := do(t, r, http.MethodGet, "/api/users?name=ali", nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := dataList(t, env)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice", users[0]["name"])
	assert.Equal(t, "alicia", users[1]["name"])
}

func TestUserHandler_Get(t *testing.T) {
	r := setupAPI(t)
	id := createUser(t, r, "Alice")
	createTask(t, r, gin.H{"taskName": "Write report", "user": id})

	t.Run("returns the user with recent tasks", func(t *testing.T) {
		w, env := do(t, r, http.MethodGet, "/api/users/"+id, nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := dataMap(t, env)
		assert.Equal(t, "Alice", data["name"])
		recent, ok := data["recentTasks"].([]interface{})
		require.True(t, ok)
		assert.Len(t, recent, 1)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w, _ := do(t, r, http.MethodGet, "/api/users/00000000-0000-0000-0000-000000000000", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserHandler_Update(t *testing.T) {
	r := setupAPI(t)
	id := createUser(t, r, "Alice")

	w, env := do(t, r, http.MethodPut, "/api/users/"+id, gin.H{"name": "Alicia"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alicia", dataMap(t, env)["name"])

	w, _ = do(t, r, http.MethodPut, "/api/users/00000000-0000-0000-0000-000000000000", gin.H{"name": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_DeleteConflict(t *testing.T) {
	r := setupAPI(t)
	userID := createUser(t, r, "Alice")
	taskID := createTask(t, r, gin.H{"taskName": "Write report", "user": userID})

	// blocked while the task references the user
	w, env := do(t, r, http.MethodDelete, "/api/users/"+userID, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "user still has tasks", env.Message)

	// still retrievable after the blocked delete
	w, _ = do(t, r, http.MethodGet, "/api/users/"+userID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// remove the task, then the user
	w, _ = do(t, r, http.MethodDelete, "/api/tasks/"+taskID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, r, http.MethodDelete, "/api/users/"+userID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/users/"+userID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
