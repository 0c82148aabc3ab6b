package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"vendor-management-api/config"
	"vendor-management-api/models"

	"github.com/gin-gonic/gin"
)

// CreatePurchaseOrder creates a PO with its lines. The GST split is derived
// on the server: IGST when vendor and site states differ, CGST + SGST when
// they match.
func CreatePurchaseOrder(c *gin.Context) {
	var po models.PurchaseOrder
	if err := c.ShouldBindJSON(&po); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if po.VendorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vendorId is required"})
		return
	}

	if po.PoNumber == "" {
		po.PoNumber = nextPoNumber()
	}

	applyGst(&po)

	if err := config.DB.Create(&po).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create purchase order"})
		return
	}
	c.JSON(http.StatusCreated, po)
}

// GetPurchaseOrders lists POs with pagination. Vendor accounts see only
// their own.
func GetPurchaseOrders(c *gin.Context) {
	page, pageSize := pageParams(c)

	query := config.DB.Model(&models.PurchaseOrder{})
	if userType, _ := c.Get("userType"); userType == "vendor" {
		userID, _ := c.Get("userID")
		query = query.Where("vendor_id = ?", userID)
	}
	if vendorID := c.Query("vendorId"); vendorID != "" {
		query = query.Where("vendor_id = ?", vendorID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch purchase orders"})
		return
	}

	var orders []models.PurchaseOrder
	if err := query.Preload("Lines").Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch purchase orders"})
		return
	}

	c.JSON(http.StatusOK, pagedResponse(orders, totalCount, page, pageSize))
}

// GetPurchaseOrder fetches one PO with its lines
func GetPurchaseOrder(c *gin.Context) {
	var po models.PurchaseOrder
	if err := config.DB.Preload("Lines").Where("id = ?", c.Param("id")).First(&po).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Purchase order not found"})
		return
	}
	c.JSON(http.StatusOK, po)
}

// UpdatePurchaseOrder updates a PO, re-deriving the GST split
func UpdatePurchaseOrder(c *gin.Context) {
	var po models.PurchaseOrder
	if err := config.DB.Where("id = ?", c.Param("id")).First(&po).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Purchase order not found"})
		return
	}

	var input models.PurchaseOrder
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.ID = po.ID
	input.PoNumber = po.PoNumber
	input.CreatedAt = po.CreatedAt
	applyGst(&input)

	if err := config.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update purchase order"})
		return
	}
	c.JSON(http.StatusOK, input)
}

// UpdatePurchaseOrderStatus moves a PO through its lifecycle
func UpdatePurchaseOrderStatus(c *gin.Context) {
	type StatusRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var po models.PurchaseOrder
	if err := config.DB.Where("id = ?", c.Param("id")).First(&po).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Purchase order not found"})
		return
	}

	po.Status = req.Status
	if err := config.DB.Save(&po).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update purchase order status"})
		return
	}
	c.JSON(http.StatusOK, po)
}

// DeletePurchaseOrder removes a PO and its lines
func DeletePurchaseOrder(c *gin.Context) {
	poID := c.Param("id")

	var count int64
	config.DB.Model(&models.Invoice{}).Where("po_id = ?", poID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Purchase order has invoices against it"})
		return
	}

	if err := config.DB.Where("po_id = ?", poID).Delete(&models.POLine{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete purchase order lines"})
		return
	}

	result := config.DB.Where("id = ?", poID).Delete(&models.PurchaseOrder{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete purchase order"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Purchase order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase order deleted successfully"})
}

// applyGst derives the GST amounts from the total and the state pairing.
func applyGst(po *models.PurchaseOrder) {
	if po.Amount == 0 {
		for _, line := range po.Lines {
			po.Amount += line.TotalAmount
		}
	}

	if !po.GstApply {
		po.GstType = ""
		po.IgstAmount, po.CgstAmount, po.SgstAmount = 0, 0, 0
		po.TotalAmount = po.Amount
		return
	}

	sameState := po.VendorState != "" &&
		strings.EqualFold(strings.TrimSpace(po.VendorState), strings.TrimSpace(po.SiteState))

	if sameState {
		po.GstType = "CGST_SGST"
		if po.CgstPercentage == 0 && po.SgstPercentage == 0 {
			po.CgstPercentage, po.SgstPercentage = 9, 9
		}
		po.IgstPercentage, po.IgstAmount = 0, 0
		po.CgstAmount = po.Amount * po.CgstPercentage / 100
		po.SgstAmount = po.Amount * po.SgstPercentage / 100
		po.TotalAmount = po.Amount + po.CgstAmount + po.SgstAmount
	} else {
		po.GstType = "IGST"
		if po.IgstPercentage == 0 {
			po.IgstPercentage = 18
		}
		po.CgstPercentage, po.CgstAmount = 0, 0
		po.SgstPercentage, po.SgstAmount = 0, 0
		po.IgstAmount = po.Amount * po.IgstPercentage / 100
		po.TotalAmount = po.Amount + po.IgstAmount
	}
}

// nextPoNumber issues PO-YYYYMM-NNNN, counting within the current month.
func nextPoNumber() string {
	prefix := time.Now().Format("200601")
	var count int64
	config.DB.Model(&models.PurchaseOrder{}).
		Where("po_number LIKE ?", "PO-"+prefix+"-%").
		Count(&count)
	return fmt.Sprintf("PO-%s-%04d", prefix, count+1)
}
