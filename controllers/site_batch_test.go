package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vendor-management-api/config"
	"vendor-management-api/middleware"
	"vendor-management-api/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func batchRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.POST("/api/sites/batch-upsert", BatchUpsertSites)
	return router
}

// installMockDB swaps config.DB for a sqlmock-backed handle for the duration
// of one test.
func installMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	prev := config.DB
	config.DB = db
	t.Cleanup(func() {
		config.DB = prev
		_ = sqlDB.Close()
	})
	return mock
}

func TestBatchUpsertSitesEmptyBatchShortCircuits(t *testing.T) {
	// The empty fast path must not touch the database at all; config.DB is
	// deliberately left nil here.
	router := batchRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sites/batch-upsert",
		strings.NewReader(`{"sites": []}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var result services.BatchUpsertResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if result.Successful != 0 || result.Failed != 0 {
		t.Errorf("got %+v, want zero counts", result)
	}
	if result.Errors == nil {
		t.Error("errors must serialize as [], not null")
	}
}

func TestBatchUpsertSitesDuplicateConflictShape(t *testing.T) {
	mock := installMockDB(t)

	// A duplicate-siteId failure that aborts the whole run: the 409 body
	// carries the envelope plus zeroed counters for the full batch.
	mock.ExpectQuery("SELECT `plan_id` FROM `sites`").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'S-001' for key 'sites.idx_sites_site_id'"))

	router := batchRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sites/batch-upsert",
		strings.NewReader(`{"sites":[{"planId":"P-1","siteId":"S-001"},{"planId":"P-2","siteId":"S-001"}]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}

	var body struct {
		Success    bool `json:"success"`
		Successful int  `json:"successful"`
		Failed     int  `json:"failed"`
		Errors     []services.UpsertError `json:"errors"`
		Error      struct {
			Code      string `json:"code"`
			Message   string `json:"message"`
			RequestID string `json:"requestId"`
			Timestamp string `json:"timestamp"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Success {
		t.Error("success must be false")
	}
	if body.Error.Code != "DUPLICATE_SITE_ID" {
		t.Errorf("code = %q, want DUPLICATE_SITE_ID", body.Error.Code)
	}
	if !strings.Contains(body.Error.Message, "Duplicate entry 'S-001'") {
		t.Errorf("message = %q, want the offending duplicate named", body.Error.Message)
	}
	if body.Successful != 0 || body.Failed != 2 {
		t.Errorf("counters successful=%d failed=%d, want 0/2", body.Successful, body.Failed)
	}
	if body.Errors == nil || len(body.Errors) != 0 {
		t.Errorf("errors must be an empty array, got %v", body.Errors)
	}
	if body.Error.RequestID == "" || body.Error.Timestamp == "" {
		t.Error("requestId and timestamp must be set")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestBatchUpsertSitesRejectsMalformedBody(t *testing.T) {
	router := batchRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sites/batch-upsert",
		strings.NewReader(`{"sites": "nope"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "req-test-1")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code      string `json:"code"`
			Message   string `json:"message"`
			RequestID string `json:"requestId"`
			Timestamp string `json:"timestamp"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Success {
		t.Error("success must be false")
	}
	if body.Error.Code != "INVALID_REQUEST" {
		t.Errorf("code = %q, want INVALID_REQUEST", body.Error.Code)
	}
	if body.Error.RequestID != "req-test-1" {
		t.Errorf("requestId = %q, want the inbound X-Request-ID", body.Error.RequestID)
	}
	if body.Error.Timestamp == "" {
		t.Error("timestamp must be set")
	}
}
