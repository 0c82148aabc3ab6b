package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func teamRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/teams/employee/:employeeId", GetEmployeeTeams)
	return router
}

func TestGetEmployeeTeams(t *testing.T) {
	mock := installMockDB(t)

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `team_members`").
		WithArgs("emp-1").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "team_id", "employee_id", "reporting_person1", "reporting_person2", "reporting_person3", "created_at"}).
			AddRow("tm-1", "team-1", "emp-1", "tm-9", "", "", now))
	mock.ExpectQuery("SELECT \\* FROM `teams`").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "description", "created_at", "updated_at"}).
			AddRow("team-1", "Field Ops", "", now, now))

	w := httptest.NewRecorder()
	teamRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/teams/employee/emp-1", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var out []struct {
		Team struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"team"`
		Membership struct {
			ID               string `json:"id"`
			ReportingPerson1 string `json:"reportingPerson1"`
		} `json:"membership"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].Team.Name != "Field Ops" {
		t.Errorf("team name = %q, want Field Ops", out[0].Team.Name)
	}
	if out[0].Membership.ID != "tm-1" || out[0].Membership.ReportingPerson1 != "tm-9" {
		t.Errorf("membership = %+v, want tm-1 reporting to tm-9", out[0].Membership)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGetEmployeeTeamsNoMemberships(t *testing.T) {
	mock := installMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `team_members`").
		WithArgs("emp-none").
		WillReturnRows(sqlmock.NewRows([]string{"id", "team_id", "employee_id"}))

	w := httptest.NewRecorder()
	teamRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/teams/employee/emp-none", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Errorf("body = %q, want []", body)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
