package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTaskTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewTaskHandler(nil) // validation paths never reach storage
	router.GET("/tasks", h.GetTasks)
	router.POST("/tasks", h.CreateTask)
	router.PATCH("/tasks/:id", h.PatchTask)
	router.DELETE("/tasks/:id", h.DeleteTask)
	return router
}

func TestGetTasksRequiresUserIDAndDate(t *testing.T) {
	router := newTaskTestRouter()

	tests := []string{
		"/tasks",
		"/tasks?userId=u1",
		"/tasks?date=2025-03-01",
	}
	for _, url := range tests {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", url, nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", url, w.Code)
		}
	}
}

func TestCreateTaskRejectsMissingTitle(t *testing.T) {
	router := newTaskTestRouter()

	body := `{"userId":"u1","date":"2025-03-01","emoji":"💧"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tasks", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestPatchTaskRejectsEmptyBody(t *testing.T) {
	router := newTaskTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/tasks/t1?userId=u1&date=2025-03-01", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "nothing to update") {
		t.Errorf("expected nothing-to-update message, got %s", w.Body.String())
	}
}

func TestDeleteTaskRequiresUserIDAndDate(t *testing.T) {
	router := newTaskTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/tasks/t1?date=2025-03-01", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
