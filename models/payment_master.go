package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentMaster maps a (site, plan, vendor, antenna size) combination to the
// amounts paid per hop. The combination is unique; duplicates are rejected at
// the handler before insert.
type PaymentMaster struct {
	ID           string    `gorm:"primaryKey;column:id" json:"id"`
	SiteID       string    `gorm:"column:site_id;index" json:"siteId"`
	PlanID       string    `gorm:"column:plan_id" json:"planId"`
	VendorID     string    `gorm:"column:vendor_id" json:"vendorId"`
	AntennaSize  string    `gorm:"column:antenna_size" json:"antennaSize"`
	VendorAmount float64   `gorm:"column:vendor_amount" json:"vendorAmount"`
	SiteAmount   *float64  `gorm:"column:site_amount" json:"siteAmount,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

type Zone struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;unique" json:"name"`
	Circle    string    `gorm:"column:circle" json:"circle,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (PaymentMaster) TableName() string {
	return "payment_masters"
}

func (Zone) TableName() string {
	return "zones"
}

func (p *PaymentMaster) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (z *Zone) BeforeCreate(tx *gorm.DB) error {
	if z.ID == "" {
		z.ID = uuid.NewString()
	}
	return nil
}
