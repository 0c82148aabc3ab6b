package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCreateEmployeeRejectsInvalidAadhar(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/employees", CreateEmployee)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/employees",
		strings.NewReader(`{"name":"Asha Rao","email":"asha@corp.example","aadhar":"0000"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid Aadhar number") {
		t.Errorf("body = %q, want the Aadhar rejection named", w.Body.String())
	}
}
