package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newWaterTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewWaterIntakeHandler(nil) // validation paths never reach storage
	router.GET("/waterintake", h.GetWaterIntake)
	router.POST("/waterintake", h.CreateWaterIntake)
	router.PATCH("/waterintake/add", h.AddWaterIntake)
	router.PUT("/waterintake/goal", h.UpdateWaterGoal)
	return router
}

func TestGetWaterIntakeRequiresUserIDAndDate(t *testing.T) {
	router := newWaterTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/waterintake?userId=u1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAddWaterIntakeRejectsNonPositiveAmount(t *testing.T) {
	router := newWaterTestRouter()

	tests := []string{
		`{"amount":0}`,
		`{"amount":-250}`,
		`{}`,
	}
	for _, body := range tests {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PATCH", "/waterintake/add?userId=u1&date=2025-03-01", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, w.Code)
		}
	}
}

func TestCreateWaterIntakeRejectsNonPositiveGoal(t *testing.T) {
	router := newWaterTestRouter()

	body := `{"userId":"u1","date":"2025-03-01","goalIntake":0}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/waterintake", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestUpdateWaterGoalRejectsNonPositiveGoal(t *testing.T) {
	router := newWaterTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/waterintake/goal?userId=u1&date=2025-03-01", bytes.NewBufferString(`{"goalIntake":-1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
