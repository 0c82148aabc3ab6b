package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExportHeader is the single-row company letterhead printed on generated
// PO/invoice exports.
type ExportHeader struct {
	ID           string    `gorm:"primaryKey;column:id" json:"id"`
	CompanyName  string    `gorm:"column:company_name" json:"companyName"`
	Address      string    `gorm:"column:address" json:"address,omitempty"`
	City         string    `gorm:"column:city" json:"city,omitempty"`
	State        string    `gorm:"column:state" json:"state,omitempty"`
	Gstin        string    `gorm:"column:gstin" json:"gstin,omitempty"`
	ContactEmail string    `gorm:"column:contact_email" json:"contactEmail,omitempty"`
	ContactPhone string    `gorm:"column:contact_phone" json:"contactPhone,omitempty"`
	Website      string    `gorm:"column:website" json:"website,omitempty"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// AppSettings is the single-row application configuration (generation dates,
// feature toggles) edited by superadmins.
type AppSettings struct {
	ID                 string    `gorm:"primaryKey;column:id" json:"id"`
	PoGenerationDay    int       `gorm:"column:po_generation_day;default:1" json:"poGenerationDay"`
	SalaryGenerationDay int      `gorm:"column:salary_generation_day;default:1" json:"salaryGenerationDay"`
	AttendanceLockDay  int       `gorm:"column:attendance_lock_day;default:25" json:"attendanceLockDay"`
	FinancialYearStart string    `gorm:"column:financial_year_start" json:"financialYearStart,omitempty"`
	UpdatedAt          time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (ExportHeader) TableName() string {
	return "export_headers"
}

func (AppSettings) TableName() string {
	return "app_settings"
}

func (h *ExportHeader) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

func (s *AppSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
