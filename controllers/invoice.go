package controllers

import (
	"net/http"

	"vendor-management-api/config"
	"vendor-management-api/models"

	"github.com/gin-gonic/gin"
)

// CreateInvoice records an invoice, optionally tied to a PO
func CreateInvoice(c *gin.Context) {
	var invoice models.Invoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if invoice.InvoiceNumber == "" || invoice.VendorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invoiceNumber and vendorId are required"})
		return
	}

	var count int64
	config.DB.Model(&models.Invoice{}).Where("invoice_number = ?", invoice.InvoiceNumber).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "An invoice with this number already exists"})
		return
	}

	if invoice.PoID != "" {
		var poCount int64
		config.DB.Model(&models.PurchaseOrder{}).Where("id = ?", invoice.PoID).Count(&poCount)
		if poCount == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced purchase order does not exist"})
			return
		}
	}

	if invoice.TotalAmount == 0 {
		invoice.TotalAmount = invoice.Amount + invoice.Gst
	}

	if err := config.DB.Create(&invoice).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

// GetInvoices lists invoices with pagination. Vendor accounts see only
// their own.
func GetInvoices(c *gin.Context) {
	page, pageSize := pageParams(c)

	query := config.DB.Model(&models.Invoice{})
	if userType, _ := c.Get("userType"); userType == "vendor" {
		userID, _ := c.Get("userID")
		query = query.Where("vendor_id = ?", userID)
	}
	if vendorID := c.Query("vendorId"); vendorID != "" {
		query = query.Where("vendor_id = ?", vendorID)
	}
	if poID := c.Query("poId"); poID != "" {
		query = query.Where("po_id = ?", poID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoices"})
		return
	}

	var invoices []models.Invoice
	if err := query.Order("created_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&invoices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoices"})
		return
	}

	c.JSON(http.StatusOK, pagedResponse(invoices, totalCount, page, pageSize))
}

// GetInvoice fetches one invoice by ID
func GetInvoice(c *gin.Context) {
	var invoice models.Invoice
	if err := config.DB.Where("id = ?", c.Param("id")).First(&invoice).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoice updates invoice fields. The invoice number never changes.
func UpdateInvoice(c *gin.Context) {
	var invoice models.Invoice
	if err := config.DB.Where("id = ?", c.Param("id")).First(&invoice).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	var input models.Invoice
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.ID = invoice.ID
	input.InvoiceNumber = invoice.InvoiceNumber
	input.CreatedAt = invoice.CreatedAt
	if input.TotalAmount == 0 {
		input.TotalAmount = input.Amount + input.Gst
	}

	if err := config.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice"})
		return
	}
	c.JSON(http.StatusOK, input)
}

// DeleteInvoice removes one invoice by ID
func DeleteInvoice(c *gin.Context) {
	result := config.DB.Where("id = ?", c.Param("id")).Delete(&models.Invoice{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete invoice"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}

// DeleteAllInvoices wipes the invoices table. Superadmin only.
func DeleteAllInvoices(c *gin.Context) {
	if err := config.DB.Where("1 = 1").Delete(&models.Invoice{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete invoices"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All invoices deleted"})
}
