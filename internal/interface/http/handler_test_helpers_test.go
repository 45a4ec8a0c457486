package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/vedijajagtap/todolist-api/internal/application"
	"github.com/vedijajagtap/todolist-api/internal/infrastructure/memory"
	"github.com/vedijajagtap/todolist-api/pkg/validation"
)

// setupAPI wires the real handlers against in-memory repositories on a
// fresh engine, mirroring the /api route layout.
func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	taskRepo := memory.NewTaskRepository()
	userRepo := memory.NewUserRepository(taskRepo)
	taskRepo.Users = userRepo

	userSvc := application.NewUserService(userRepo, taskRepo, nil)
	taskSvc := application.NewTaskService(taskRepo, nil)

	r := gin.New()
	api := r.Group("/api")

	uh := NewUserHandler(userSvc, nil)
	users := api.Group("/users")
	users.GET("", uh.List)
	users.POST("", uh.Create)
	users.GET("/:id", uh.Get)
	users.PUT("/:id", uh.Update)
	users.DELETE("/:id", uh.Delete)

	th := NewTaskHandler(taskSvc, nil)
	tasks := api.Group("/tasks")
	tasks.GET("", th.List)
	tasks.POST("", th.Create)
	tasks.GET("/:id", th.Get)
	tasks.PUT("/:id", th.Update)
	tasks.DELETE("/:id", th.Delete)

	return r
}

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   interface{}     `json:"error"`
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func dataMap(t *testing.T, env envelope) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func dataList(t *testing.T, env envelope) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func createUser(t *testing.T, r *gin.Engine, name string) string {
	t.Helper()
	w, env := do(t, r, http.MethodPost, "/api/users", gin.H{"name": name})
	require.Equal(t, http.StatusCreated, w.Code)
	return dataMap(t, env)["id"].(string)
}

func createTask(t *testing.T, r *gin.Engine, body gin.H) string {
	t.Helper()
	w, env := do(t, r, http.MethodPost, "/api/tasks", body)
	require.Equal(t, http.StatusCreated, w.Code)
	return dataMap(t, env)["id"].(string)
}
