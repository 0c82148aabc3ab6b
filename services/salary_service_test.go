package services

import (
	"context"
	"math"
	"testing"

	"vendor-management-api/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func structureFixture() models.SalaryStructure {
	return models.SalaryStructure{
		EmployeeID:       "emp-1",
		Basic:            15000,
		Hra:              6000,
		Conveyance:       1500,
		SpecialAllowance: 7500,
		Pf:               1800,
		Esi:              0,
		ProfessionalTax:  200,
		OtherDeductions:  0,
	}
}

func TestComputeSalaryRunFullMonth(t *testing.T) {
	structure := structureFixture()
	attendance := models.Attendance{
		EmployeeID:  "emp-1",
		Month:       7,
		Year:        2025,
		PresentDays: 27,
		WeekOffs:    4,
	}

	run := ComputeSalaryRun(structure, attendance, 7, 2025)

	if run.TotalDays != 31 {
		t.Fatalf("July has 31 days, got %d", run.TotalDays)
	}
	if run.GrossSalary != 30000 {
		t.Errorf("gross = %v, want 30000", run.GrossSalary)
	}
	// 31 worked days capped at 31 calendar days: full gross is earned.
	if run.EarnedSalary != 30000 {
		t.Errorf("earned = %v, want 30000", run.EarnedSalary)
	}
	if run.NetSalary != 28000 {
		t.Errorf("net = %v, want 28000", run.NetSalary)
	}
	if run.WorkingDays != 31 {
		t.Errorf("working days = %v, want 31", run.WorkingDays)
	}
}

func TestComputeSalaryRunHalfDaysCountHalf(t *testing.T) {
	structure := structureFixture()
	attendance := models.Attendance{
		EmployeeID:  "emp-1",
		PresentDays: 20,
		HalfDays:    4,
	}

	run := ComputeSalaryRun(structure, attendance, 6, 2025) // 30 days

	if run.WorkingDays != 22 {
		t.Errorf("working days = %v, want 22 (20 + 4*0.5)", run.WorkingDays)
	}
	wantPerDay := 30000.0 / 30
	if run.PerDaySalary != wantPerDay {
		t.Errorf("per day = %v, want %v", run.PerDaySalary, wantPerDay)
	}
	wantEarned := math.Round(wantPerDay*22*100) / 100
	if run.EarnedSalary != wantEarned {
		t.Errorf("earned = %v, want %v", run.EarnedSalary, wantEarned)
	}
}

func TestComputeSalaryRunNetNeverNegative(t *testing.T) {
	structure := structureFixture()
	structure.OtherDeductions = 50000
	attendance := models.Attendance{EmployeeID: "emp-1", PresentDays: 2}

	run := ComputeSalaryRun(structure, attendance, 6, 2025)
	if run.NetSalary != 0 {
		t.Errorf("net = %v, want 0 when deductions exceed earnings", run.NetSalary)
	}
}

func TestComputeSalaryRunLeapFebruary(t *testing.T) {
	run := ComputeSalaryRun(structureFixture(), models.Attendance{PresentDays: 29}, 2, 2024)
	if run.TotalDays != 29 {
		t.Errorf("February 2024 has 29 days, got %d", run.TotalDays)
	}
}

func TestGenerateMonthlyRequiresLockedAttendance(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSalaryService(db)

	structRows := sqlmock.NewRows([]string{"id", "employee_id", "basic", "month", "year"}).
		AddRow("st-1", "emp-1", 15000.0, 1, 2025)
	attRows := sqlmock.NewRows([]string{"id", "employee_id", "month", "year", "present_days", "locked"}).
		AddRow("at-1", "emp-1", 7, 2025, 20, false)

	mock.ExpectQuery("SELECT \\* FROM `salary_structures`").WillReturnRows(structRows)
	mock.ExpectQuery("SELECT \\* FROM `attendances`").WillReturnRows(attRows)

	_, err := svc.GenerateMonthly(context.Background(), "emp-1", 7, 2025)
	if err != ErrAttendanceNotLocked {
		t.Fatalf("got %v, want ErrAttendanceNotLocked", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGenerateMonthlyNoStructure(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSalaryService(db)

	mock.ExpectQuery("SELECT \\* FROM `salary_structures`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.GenerateMonthly(context.Background(), "emp-404", 7, 2025)
	if err != ErrSalaryStructureNotFound {
		t.Fatalf("got %v, want ErrSalaryStructureNotFound", err)
	}
}
