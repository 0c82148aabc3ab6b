package services

import (
	"context"
	"errors"
	"math"
	"time"

	"vendor-management-api/models"

	"gorm.io/gorm"
)

var (
	ErrSalaryStructureNotFound = errors.New("no salary structure configured for employee")
	ErrAttendanceNotFound      = errors.New("no attendance sheet for the requested month")
	ErrAttendanceNotLocked     = errors.New("attendance sheet is not locked yet")
)

// SalaryService rolls a locked monthly attendance sheet up into a generated
// salary run over the employee's configured structure.
type SalaryService struct {
	db *gorm.DB
}

func NewSalaryService(db *gorm.DB) *SalaryService {
	return &SalaryService{db: db}
}

// GenerateMonthly computes and persists the salary run for one
// employee-month. The attendance sheet must be locked first so payroll and
// attendance cannot drift apart after generation.
func (s *SalaryService) GenerateMonthly(ctx context.Context, employeeID string, month, year int) (*models.SalaryStructure, error) {
	var structure models.SalaryStructure
	err := s.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("year DESC, month DESC").
		First(&structure).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSalaryStructureNotFound
	}
	if err != nil {
		return nil, err
	}

	var attendance models.Attendance
	err = s.db.WithContext(ctx).
		Where("employee_id = ? AND month = ? AND year = ?", employeeID, month, year).
		First(&attendance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAttendanceNotFound
	}
	if err != nil {
		return nil, err
	}
	if !attendance.Locked {
		return nil, ErrAttendanceNotLocked
	}

	run := ComputeSalaryRun(structure, attendance, month, year)

	// One generated row per employee-month; regeneration overwrites it.
	var existing models.SalaryStructure
	err = s.db.WithContext(ctx).
		Where("employee_id = ? AND month = ? AND year = ?", employeeID, month, year).
		First(&existing).Error
	switch {
	case err == nil:
		run.ID = existing.ID
		run.CreatedAt = existing.CreatedAt
		if err := s.db.WithContext(ctx).Save(&run).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return &run, nil
}

// ComputeSalaryRun is the pure rollup: half days count as half a worked day,
// paid leave and week offs count as full days, and earnings are prorated by
// worked days over calendar days. Deductions are flat monthly amounts.
func ComputeSalaryRun(structure models.SalaryStructure, attendance models.Attendance, month, year int) models.SalaryStructure {
	totalDays := daysInMonth(month, year)

	workingDays := float64(attendance.PresentDays) +
		0.5*float64(attendance.HalfDays) +
		float64(attendance.LeaveDays) +
		float64(attendance.WeekOffs)
	if workingDays > float64(totalDays) {
		workingDays = float64(totalDays)
	}

	gross := structure.Basic + structure.Hra + structure.Conveyance + structure.SpecialAllowance
	perDay := 0.0
	if totalDays > 0 {
		perDay = gross / float64(totalDays)
	}
	earned := perDay * workingDays
	deductions := structure.Pf + structure.Esi + structure.ProfessionalTax + structure.OtherDeductions
	net := earned - deductions
	if net < 0 {
		net = 0
	}

	return models.SalaryStructure{
		EmployeeID:       structure.EmployeeID,
		Month:            month,
		Year:             year,
		Basic:            structure.Basic,
		Hra:              structure.Hra,
		Conveyance:       structure.Conveyance,
		SpecialAllowance: structure.SpecialAllowance,
		Pf:               structure.Pf,
		Esi:              structure.Esi,
		ProfessionalTax:  structure.ProfessionalTax,
		OtherDeductions:  structure.OtherDeductions,

		GrossSalary:     round2(gross),
		PerDaySalary:    round2(perDay),
		EarnedSalary:    round2(earned),
		TotalDeductions: round2(deductions),
		NetSalary:       round2(net),
		TotalDays:       totalDays,
		PresentDays:     attendance.PresentDays,
		HalfDays:        attendance.HalfDays,
		AbsentDays:      attendance.AbsentDays,
		LeaveDays:       attendance.LeaveDays,
		WorkingDays:     workingDays,
	}
}

func daysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
