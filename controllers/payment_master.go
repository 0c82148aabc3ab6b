package controllers

import (
	"net/http"

	"vendor-management-api/config"
	"vendor-management-api/models"

	"github.com/gin-gonic/gin"
)

// CreatePaymentMaster records the payable amounts for one (site, plan,
// vendor, antenna size) combination. The combination is unique.
func CreatePaymentMaster(c *gin.Context) {
	var entry models.PaymentMaster
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if entry.SiteID == "" || entry.VendorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "siteId and vendorId are required"})
		return
	}

	var count int64
	config.DB.Model(&models.PaymentMaster{}).
		Where("site_id = ? AND plan_id = ? AND vendor_id = ? AND antenna_size = ?",
			entry.SiteID, entry.PlanID, entry.VendorID, entry.AntennaSize).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "A payment entry for this site, plan, vendor and antenna size already exists"})
		return
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment entry"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetPaymentMasters lists payment entries with optional filters
func GetPaymentMasters(c *gin.Context) {
	page, pageSize := pageParams(c)

	query := config.DB.Model(&models.PaymentMaster{})
	if siteID := c.Query("siteId"); siteID != "" {
		query = query.Where("site_id = ?", siteID)
	}
	if vendorID := c.Query("vendorId"); vendorID != "" {
		query = query.Where("vendor_id = ?", vendorID)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment entries"})
		return
	}

	var entries []models.PaymentMaster
	if err := query.Order("site_id").Offset((page - 1) * pageSize).Limit(pageSize).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment entries"})
		return
	}

	c.JSON(http.StatusOK, pagedResponse(entries, totalCount, page, pageSize))
}

// UpdatePaymentMaster updates the amounts on an entry. The key columns are
// fixed at creation.
func UpdatePaymentMaster(c *gin.Context) {
	var entry models.PaymentMaster
	if err := config.DB.Where("id = ?", c.Param("id")).First(&entry).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment entry not found"})
		return
	}

	var input models.PaymentMaster
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry.VendorAmount = input.VendorAmount
	entry.SiteAmount = input.SiteAmount

	if err := config.DB.Save(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment entry"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeletePaymentMaster removes an entry unless a PO line already uses its
// plan
func DeletePaymentMaster(c *gin.Context) {
	var entry models.PaymentMaster
	if err := config.DB.Where("id = ?", c.Param("id")).First(&entry).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment entry not found"})
		return
	}

	if entry.PlanID != "" {
		var count int64
		config.DB.Model(&models.POLine{}).Where("site_plan_id = ?", entry.PlanID).Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Payment entry is referenced by purchase order lines"})
			return
		}
	}

	if err := config.DB.Delete(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment entry deleted successfully"})
}
