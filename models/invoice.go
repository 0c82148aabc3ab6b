package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Invoice struct {
	ID            string    `gorm:"primaryKey;column:id" json:"id"`
	InvoiceNumber string    `gorm:"column:invoice_number;unique" json:"invoiceNumber"`
	VendorID      string    `gorm:"column:vendor_id;index" json:"vendorId"`
	PoID          string    `gorm:"column:po_id;index" json:"poId,omitempty"`
	InvoiceDate   string    `gorm:"column:invoice_date" json:"invoiceDate,omitempty"`
	DueDate       string    `gorm:"column:due_date" json:"dueDate,omitempty"`
	Status        string    `gorm:"column:status;default:Pending" json:"status"`
	Amount        float64   `gorm:"column:amount" json:"amount"`
	Gst           float64   `gorm:"column:gst" json:"gst"`
	TotalAmount   float64   `gorm:"column:total_amount" json:"totalAmount"`
	PaymentMethod string    `gorm:"column:payment_method" json:"paymentMethod,omitempty"`
	PaymentDate   string    `gorm:"column:payment_date" json:"paymentDate,omitempty"`
	BankDetails   string    `gorm:"column:bank_details" json:"bankDetails,omitempty"`
	Remarks       string    `gorm:"column:remarks" json:"remarks,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Invoice) TableName() string {
	return "invoices"
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
