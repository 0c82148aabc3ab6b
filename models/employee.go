package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID            string    `gorm:"primaryKey;column:id" json:"id"`
	Name          string    `gorm:"column:name" json:"name"`
	Email         string    `gorm:"column:email;unique" json:"email"`
	Password      string    `gorm:"column:password" json:"-"`
	Dob           string    `gorm:"column:dob" json:"dob,omitempty"`
	FatherName    string    `gorm:"column:father_name" json:"fatherName,omitempty"`
	Mobile        string    `gorm:"column:mobile" json:"mobile,omitempty"`
	AlternateNo   string    `gorm:"column:alternate_no" json:"alternateNo,omitempty"`
	Address       string    `gorm:"column:address" json:"address,omitempty"`
	City          string    `gorm:"column:city" json:"city,omitempty"`
	State         string    `gorm:"column:state" json:"state,omitempty"`
	Country       string    `gorm:"column:country" json:"country,omitempty"`
	DepartmentID  string    `gorm:"column:department_id" json:"departmentId,omitempty"`
	DesignationID string    `gorm:"column:designation_id" json:"designationId,omitempty"`
	Role          string    `gorm:"column:role;default:user" json:"role"`
	Doj           string    `gorm:"column:doj" json:"doj,omitempty"`
	Aadhar        string    `gorm:"column:aadhar" json:"aadhar,omitempty"`
	Pan           string    `gorm:"column:pan" json:"pan,omitempty"`
	BloodGroup    string    `gorm:"column:blood_group" json:"bloodGroup,omitempty"`
	MaritalStatus string    `gorm:"column:marital_status" json:"maritalStatus,omitempty"`
	Nominee       string    `gorm:"column:nominee" json:"nominee,omitempty"`
	PpeKit        string    `gorm:"column:ppe_kit" json:"ppeKit,omitempty"`
	KitNo         string    `gorm:"column:kit_no" json:"kitNo,omitempty"`
	Status        string    `gorm:"column:status;default:Active" json:"status"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

type Department struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

type Designation struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Employee) TableName() string {
	return "employees"
}

func (Department) TableName() string {
	return "departments"
}

func (Designation) TableName() string {
	return "designations"
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

func (d *Department) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

func (d *Designation) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
