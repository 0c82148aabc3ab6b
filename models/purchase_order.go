package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseOrder struct {
	ID          string `gorm:"primaryKey;column:id" json:"id"`
	PoNumber    string `gorm:"column:po_number;unique" json:"poNumber"`
	VendorID    string `gorm:"column:vendor_id;index" json:"vendorId"`
	SiteID      string `gorm:"column:site_id" json:"siteId,omitempty"`
	PoDate      string `gorm:"column:po_date" json:"poDate,omitempty"`
	DueDate     string `gorm:"column:due_date" json:"dueDate,omitempty"`
	Status      string `gorm:"column:status;default:Draft" json:"status"`
	Description string `gorm:"column:description" json:"description,omitempty"`

	Quantity    int     `gorm:"column:quantity" json:"quantity"`
	UnitPrice   float64 `gorm:"column:unit_price" json:"unitPrice"`
	Amount      float64 `gorm:"column:amount" json:"amount"`
	TotalAmount float64 `gorm:"column:total_amount" json:"totalAmount"`

	// GST breakdown. IGST applies when vendor and site are in different
	// states, otherwise the levy splits into CGST + SGST.
	GstApply       bool    `gorm:"column:gst_apply" json:"gstApply"`
	GstType        string  `gorm:"column:gst_type" json:"gstType,omitempty"`
	IgstPercentage float64 `gorm:"column:igst_percentage" json:"igstPercentage"`
	IgstAmount     float64 `gorm:"column:igst_amount" json:"igstAmount"`
	CgstPercentage float64 `gorm:"column:cgst_percentage" json:"cgstPercentage"`
	CgstAmount     float64 `gorm:"column:cgst_amount" json:"cgstAmount"`
	SgstPercentage float64 `gorm:"column:sgst_percentage" json:"sgstPercentage"`
	SgstAmount     float64 `gorm:"column:sgst_amount" json:"sgstAmount"`
	VendorState    string  `gorm:"column:vendor_state" json:"vendorState,omitempty"`
	SiteState      string  `gorm:"column:site_state" json:"siteState,omitempty"`

	Lines []POLine `gorm:"foreignKey:PoID" json:"lines,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

type POLine struct {
	ID          string  `gorm:"primaryKey;column:id" json:"id"`
	PoID        string  `gorm:"column:po_id;index" json:"poId"`
	SiteID      string  `gorm:"column:site_id" json:"siteId"`
	Description string  `gorm:"column:description" json:"description"`
	Quantity    int     `gorm:"column:quantity" json:"quantity"`
	UnitPrice   float64 `gorm:"column:unit_price" json:"unitPrice"`
	TotalAmount float64 `gorm:"column:total_amount" json:"totalAmount"`
	SiteHopAB   string  `gorm:"column:site_hop_ab" json:"siteHopAB,omitempty"`
	SitePlanID  string  `gorm:"column:site_plan_id" json:"sitePlanId,omitempty"`
}

func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

func (POLine) TableName() string {
	return "po_lines"
}

func (p *PurchaseOrder) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (l *POLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
