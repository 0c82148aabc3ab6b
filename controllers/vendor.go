package controllers

import (
	"fmt"
	"log"
	"net/http"

	"vendor-management-api/config"
	"vendor-management-api/models"
	"vendor-management-api/services"
	"vendor-management-api/utils"

	"github.com/gin-gonic/gin"
)

// CreateVendor registers a new vendor account
func CreateVendor(c *gin.Context) {
	var vendor models.Vendor
	if err := c.ShouldBindJSON(&vendor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if vendor.Name == "" || vendor.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}
	if !utils.ValidateEmail(vendor.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}
	if vendor.Pan != "" && !utils.ValidatePAN(vendor.Pan) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid PAN"})
		return
	}
	if vendor.Gstin != "" && !utils.ValidateGSTIN(vendor.Gstin) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid GSTIN"})
		return
	}
	if vendor.Aadhar != "" && !utils.ValidateAadhar(vendor.Aadhar) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Aadhar number"})
		return
	}

	var count int64
	config.DB.Model(&models.Vendor{}).Where("email = ?", vendor.Email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "A vendor with this email already exists"})
		return
	}

	if vendor.Password != "" {
		hashed, err := HashPassword(vendor.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vendor"})
			return
		}
		vendor.Password = hashed
	}

	if err := config.DB.Create(&vendor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vendor"})
		return
	}

	c.JSON(http.StatusCreated, vendor)
}

// GetVendors lists vendors with pagination and optional filters
func GetVendors(c *gin.Context) {
	page, pageSize := pageParams(c)

	query := config.DB.Model(&models.Vendor{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR vendor_code LIKE ?", like, like, like)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vendors"})
		return
	}

	var vendors []models.Vendor
	if err := query.Order("name").Offset((page - 1) * pageSize).Limit(pageSize).Find(&vendors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vendors"})
		return
	}

	c.JSON(http.StatusOK, pagedResponse(vendors, totalCount, page, pageSize))
}

// GetVendor fetches a single vendor by ID
func GetVendor(c *gin.Context) {
	var vendor models.Vendor
	if err := config.DB.Where("id = ?", c.Param("id")).First(&vendor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// UpdateVendor updates vendor profile fields
func UpdateVendor(c *gin.Context) {
	var vendor models.Vendor
	if err := config.DB.Where("id = ?", c.Param("id")).First(&vendor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}

	var input models.Vendor
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// ID and password never change through this endpoint
	input.ID = vendor.ID
	input.Password = vendor.Password
	input.CreatedAt = vendor.CreatedAt

	if err := config.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vendor"})
		return
	}

	c.JSON(http.StatusOK, input)
}

// UpdateVendorStatus approves or rejects a vendor. Approval triggers a
// best-effort notification mail; a mail failure never fails the request.
func UpdateVendorStatus(c *gin.Context) {
	type StatusRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Status != "Approved" && req.Status != "Rejected" && req.Status != "Pending" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be Approved, Rejected or Pending"})
		return
	}

	var vendor models.Vendor
	if err := config.DB.Where("id = ?", c.Param("id")).First(&vendor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}

	vendor.Status = req.Status
	if err := config.DB.Save(&vendor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vendor status"})
		return
	}

	if req.Status == "Approved" && vendor.Email != "" {
		go func(v models.Vendor) {
			body := fmt.Sprintf("<p>Dear %s,</p><p>Your vendor account has been approved. You can now log in and view your assigned sites.</p>", v.Name)
			if err := config.SendMail([]string{v.Email}, "Vendor account approved", body); err != nil {
				log.Printf("Approval mail to %s failed: %v", v.Email, err)
			}
		}(vendor)
	}

	c.JSON(http.StatusOK, vendor)
}

// GetVendorProfile returns the calling vendor's own record
func GetVendorProfile(c *gin.Context) {
	userID, _ := c.Get("userID")

	var vendor models.Vendor
	if err := config.DB.Where("id = ?", userID).First(&vendor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// FindOrCreateVendor resolves a vendor by name, creating a placeholder when
// no match exists
func FindOrCreateVendor(c *gin.Context) {
	type NameRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewVendorService(config.DB)
	vendor, err := svc.GetOrCreateByName(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve vendor"})
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// DeleteVendor removes a vendor by ID
func DeleteVendor(c *gin.Context) {
	result := config.DB.Where("id = ?", c.Param("id")).Delete(&models.Vendor{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vendor"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vendor deleted successfully"})
}

// DeleteAllVendors wipes the vendors table. Superadmin only.
func DeleteAllVendors(c *gin.Context) {
	if err := config.DB.Where("1 = 1").Delete(&models.Vendor{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vendors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All vendors deleted"})
}
