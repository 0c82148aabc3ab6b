package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func TestGetSiteCount(t *testing.T) {
	mock := installMockDB(t)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `sites`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(5))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/sites/count", GetSiteCount)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sites/count", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Count int64 `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Count != 5 {
		t.Errorf("count = %d, want 5", body.Count)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGetSiteCountWithStatusFilter(t *testing.T) {
	mock := installMockDB(t)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `sites`").
		WithArgs("Approved").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(2))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/sites/count", GetSiteCount)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sites/count?status=Approved", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Count int64 `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Count != 2 {
		t.Errorf("count = %d, want 2", body.Count)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
