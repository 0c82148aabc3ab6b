package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalaryStructure holds both the configured monthly components and, once a
// salary run has been generated for a month, the computed rollup figures.
type SalaryStructure struct {
	ID         string `gorm:"primaryKey;column:id" json:"id"`
	EmployeeID string `gorm:"column:employee_id;index" json:"employeeId"`
	Month      int    `gorm:"column:month;default:1" json:"month"`
	Year       int    `gorm:"column:year;default:2025" json:"year"`

	// Configured components
	Basic            float64 `gorm:"column:basic" json:"basic"`
	Hra              float64 `gorm:"column:hra" json:"hra"`
	Conveyance       float64 `gorm:"column:conveyance" json:"conveyance"`
	SpecialAllowance float64 `gorm:"column:special_allowance" json:"specialAllowance"`
	Pf               float64 `gorm:"column:pf" json:"pf"`
	Esi              float64 `gorm:"column:esi" json:"esi"`
	ProfessionalTax  float64 `gorm:"column:professional_tax" json:"professionalTax"`
	OtherDeductions  float64 `gorm:"column:other_deductions" json:"otherDeductions"`

	// Generated figures
	GrossSalary     float64 `gorm:"column:gross_salary" json:"grossSalary"`
	PerDaySalary    float64 `gorm:"column:per_day_salary" json:"perDaySalary"`
	EarnedSalary    float64 `gorm:"column:earned_salary" json:"earnedSalary"`
	TotalDeductions float64 `gorm:"column:total_deductions" json:"totalDeductions"`
	NetSalary       float64 `gorm:"column:net_salary" json:"netSalary"`
	TotalDays       int     `gorm:"column:total_days" json:"totalDays"`
	PresentDays     int     `gorm:"column:present_days" json:"presentDays"`
	HalfDays        int     `gorm:"column:half_days" json:"halfDays"`
	AbsentDays      int     `gorm:"column:absent_days" json:"absentDays"`
	LeaveDays       int     `gorm:"column:leave_days" json:"leaveDays"`
	WorkingDays     float64 `gorm:"column:working_days" json:"workingDays"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// Attendance is one employee-month attendance sheet. Once locked it can no
// longer be edited and becomes the input of the salary run for that month.
type Attendance struct {
	ID          string     `gorm:"primaryKey;column:id" json:"id"`
	EmployeeID  string     `gorm:"column:employee_id;index:idx_attendance_emp_month,unique" json:"employeeId"`
	Month       int        `gorm:"column:month;index:idx_attendance_emp_month,unique" json:"month"`
	Year        int        `gorm:"column:year;index:idx_attendance_emp_month,unique" json:"year"`
	PresentDays int        `gorm:"column:present_days" json:"presentDays"`
	HalfDays    int        `gorm:"column:half_days" json:"halfDays"`
	AbsentDays  int        `gorm:"column:absent_days" json:"absentDays"`
	LeaveDays   int        `gorm:"column:leave_days" json:"leaveDays"`
	WeekOffs    int        `gorm:"column:week_offs" json:"weekOffs"`
	Locked      bool       `gorm:"column:locked;default:false" json:"locked"`
	LockedAt    *time.Time `gorm:"column:locked_at" json:"lockedAt,omitempty"`
	LockedBy    string     `gorm:"column:locked_by" json:"lockedBy,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updatedAt"`
}

func (SalaryStructure) TableName() string {
	return "salary_structures"
}

func (Attendance) TableName() string {
	return "attendances"
}

func (s *SalaryStructure) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
