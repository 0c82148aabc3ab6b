package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vendor struct {
	ID           string    `gorm:"primaryKey;column:id" json:"id"`
	Name         string    `gorm:"column:name" json:"name"`
	VendorCode   string    `gorm:"column:vendor_code" json:"vendorCode,omitempty"`
	Email        string    `gorm:"column:email;unique" json:"email,omitempty"`
	Password     string    `gorm:"column:password" json:"-"`
	Mobile       string    `gorm:"column:mobile" json:"mobile,omitempty"`
	Gstin        string    `gorm:"column:gstin" json:"gstin,omitempty"`
	Address      string    `gorm:"column:address" json:"address,omitempty"`
	City         string    `gorm:"column:city" json:"city,omitempty"`
	State        string    `gorm:"column:state" json:"state,omitempty"`
	Pincode      string    `gorm:"column:pincode" json:"pincode,omitempty"`
	Aadhar       string    `gorm:"column:aadhar" json:"aadhar,omitempty"`
	Pan          string    `gorm:"column:pan" json:"pan,omitempty"`
	ContactEmail string    `gorm:"column:contact_email" json:"contactEmail,omitempty"`
	ContactPhone string    `gorm:"column:contact_phone" json:"contactPhone,omitempty"`
	Website      string    `gorm:"column:website" json:"website,omitempty"`
	BankName     string    `gorm:"column:bank_name" json:"bankName,omitempty"`
	AccountNo    string    `gorm:"column:account_no" json:"accountNo,omitempty"`
	IfscCode     string    `gorm:"column:ifsc_code" json:"ifscCode,omitempty"`
	Status       string    `gorm:"column:status;default:Pending" json:"status"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Vendor) TableName() string {
	return "vendors"
}

func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
