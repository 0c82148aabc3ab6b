package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCreateVendorRejectsInvalidAadhar(t *testing.T) {
	// Identity validation runs before any query; config.DB is deliberately
	// left nil.
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/vendors", CreateVendor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/vendors",
		strings.NewReader(`{"name":"Acme Towers","email":"ops@acme.example","aadhar":"12345"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid Aadhar number") {
		t.Errorf("body = %q, want the Aadhar rejection named", w.Body.String())
	}
}
