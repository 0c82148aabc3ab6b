package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Team struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TeamMember links an employee to a team. The reporting person fields hold
// team member IDs (not employee IDs) of up to three approvers.
type TeamMember struct {
	ID               string    `gorm:"primaryKey;column:id" json:"id"`
	TeamID           string    `gorm:"column:team_id;index" json:"teamId"`
	EmployeeID       string    `gorm:"column:employee_id;index" json:"employeeId"`
	ReportingPerson1 string    `gorm:"column:reporting_person1" json:"reportingPerson1,omitempty"`
	ReportingPerson2 string    `gorm:"column:reporting_person2" json:"reportingPerson2,omitempty"`
	ReportingPerson3 string    `gorm:"column:reporting_person3" json:"reportingPerson3,omitempty"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"createdAt"`
}

// DailyAllowance is a field-expense claim for one employee-day. Approval is
// two-step: the first approval moves it to processing, the second to approved.
// A rejection that sets RejectionReason locks the record permanently.
type DailyAllowance struct {
	ID              string     `gorm:"primaryKey;column:id" json:"id"`
	EmployeeID      string     `gorm:"column:employee_id;index" json:"employeeId"`
	TeamID          string     `gorm:"column:team_id" json:"teamId,omitempty"`
	Date            string     `gorm:"column:date" json:"date"`
	AllowanceData   string     `gorm:"column:allowance_data" json:"allowanceData"`
	ApprovalStatus  string     `gorm:"column:approval_status;default:pending" json:"approvalStatus"`
	ApprovalCount   int        `gorm:"column:approval_count;default:0" json:"approvalCount"`
	ApprovedBy      string     `gorm:"column:approved_by" json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time `gorm:"column:approved_at" json:"approvedAt,omitempty"`
	RejectionReason string     `gorm:"column:rejection_reason" json:"rejectionReason,omitempty"`
	SubmittedAt     time.Time  `gorm:"column:submitted_at" json:"submittedAt"`
}

func (Team) TableName() string {
	return "teams"
}

func (TeamMember) TableName() string {
	return "team_members"
}

func (DailyAllowance) TableName() string {
	return "daily_allowances"
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (a *DailyAllowance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.SubmittedAt.IsZero() {
		a.SubmittedAt = time.Now()
	}
	return nil
}
