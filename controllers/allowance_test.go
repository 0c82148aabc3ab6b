package controllers

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestReportingEmployeeIDs(t *testing.T) {
	mock := installMockDB(t)

	// The approver's own member rows come first; reporting person columns
	// hold member IDs, not employee IDs.
	mock.ExpectQuery("SELECT `id` FROM `team_members`").
		WithArgs("emp-boss").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("tm-1"))
	mock.ExpectQuery("SELECT DISTINCT `employee_id` FROM `team_members`").
		WillReturnRows(sqlmock.NewRows([]string{"employee_id"}).AddRow("emp-a").AddRow("emp-b"))

	ids, err := reportingEmployeeIDs("emp-boss")
	if err != nil {
		t.Fatalf("reportingEmployeeIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != "emp-a" || ids[1] != "emp-b" {
		t.Errorf("ids = %v, want [emp-a emp-b]", ids)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestReportingEmployeeIDsNoMemberships(t *testing.T) {
	mock := installMockDB(t)

	// An approver with no member rows resolves to nobody without a second
	// query.
	mock.ExpectQuery("SELECT `id` FROM `team_members`").
		WithArgs("emp-outsider").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ids, err := reportingEmployeeIDs("emp-outsider")
	if err != nil {
		t.Fatalf("reportingEmployeeIDs: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ids = %v, want none", ids)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestApproverSigned(t *testing.T) {
	cases := []struct {
		approvedBy string
		approverID string
		want       bool
	}{
		{"", "emp-1", false},
		{`["emp-1"]`, "emp-1", true},
		{`["emp-1"]`, "emp-2", false},
		{`["emp-1","emp-2"]`, "emp-2", true},
		{"not json", "emp-1", false},
	}
	for _, tc := range cases {
		if got := approverSigned(tc.approvedBy, tc.approverID); got != tc.want {
			t.Errorf("approverSigned(%q, %q) = %v, want %v", tc.approvedBy, tc.approverID, got, tc.want)
		}
	}
}
