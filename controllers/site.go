package controllers

import (
	"net/http"

	"vendor-management-api/config"
	"vendor-management-api/middleware"
	"vendor-management-api/models"
	"vendor-management-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateSite inserts a single site record
func CreateSite(c *gin.Context) {
	var site models.Site
	if err := c.ShouldBindJSON(&site); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if site.PlanID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "planId is required"})
		return
	}

	site.ApplyATStatusPolicy()
	if err := config.DB.Create(&site).Error; err != nil {
		if services.IsDuplicateSiteIDErr(err) {
			c.JSON(http.StatusConflict, errorEnvelope(c, "DUPLICATE_SITE_ID", "A site with this site ID already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create site"})
		return
	}

	c.JSON(http.StatusCreated, site)
}

// UpsertSite updates the site matching the payload's planId, or inserts a
// new record when the planId is unknown
func UpsertSite(c *gin.Context) {
	var site models.Site
	if err := c.ShouldBindJSON(&site); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if site.PlanID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "planId is required"})
		return
	}

	svc := services.NewSiteBatchService(config.DB)
	result, err := svc.BatchUpsert(c.Request.Context(), []services.SiteInput{{Site: site}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorEnvelope(c, "INTERNAL_ERROR", redactedMessage(err)))
		return
	}
	if result.Failed > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": result.Errors[0].Error})
		return
	}

	var saved models.Site
	if err := config.DB.Where("plan_id = ?", site.PlanID).First(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch saved site"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// SiteView is a site row with the matching payment master amounts attached
// for list displays.
type SiteView struct {
	models.Site
	VendorAmount *float64 `json:"vendorAmount,omitempty"`
	SiteAmount   *float64 `json:"siteAmount,omitempty"`
}

// GetSites lists sites with pagination and filters, each row joined with its
// payment master amounts. Vendor accounts only ever see their own sites.
func GetSites(c *gin.Context) {
	page, pageSize := pageParams(c)

	query := config.DB.Model(&models.Site{})
	query = scopeSitesToCaller(c, query)

	if status := c.Query("status"); status != "" {
		query = query.Where("sites.status = ?", status)
	}
	if vendorID := c.Query("vendorId"); vendorID != "" {
		query = query.Where("sites.vendor_id = ?", vendorID)
	}
	if circle := c.Query("circle"); circle != "" {
		query = query.Where("sites.circle = ?", circle)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("sites.plan_id LIKE ? OR sites.site_id LIKE ? OR sites.name LIKE ?", like, like, like)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sites"})
		return
	}

	var sites []SiteView
	err := query.
		Select("sites.*, MAX(payment_masters.vendor_amount) AS vendor_amount, MAX(payment_masters.site_amount) AS site_amount").
		Joins("LEFT JOIN payment_masters ON payment_masters.plan_id = sites.plan_id AND payment_masters.vendor_id = sites.vendor_id").
		Group("sites.id").
		Order("sites.plan_id").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Scan(&sites).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sites"})
		return
	}

	c.JSON(http.StatusOK, pagedResponse(sites, totalCount, page, pageSize))
}

// GetSiteCount returns the number of sites visible to the caller, optionally
// filtered by status
func GetSiteCount(c *gin.Context) {
	query := scopeSitesToCaller(c, config.DB.Model(&models.Site{}))
	if status := c.Query("status"); status != "" {
		query = query.Where("sites.status = ?", status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count sites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetSite fetches one site by ID
func GetSite(c *gin.Context) {
	var site models.Site
	query := scopeSitesToCaller(c, config.DB.Model(&models.Site{}))
	if err := query.Where("id = ?", c.Param("id")).First(&site).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Site not found"})
		return
	}
	c.JSON(http.StatusOK, site)
}

// UpdateSite updates a site by ID. The siteId column never changes after
// creation; incoming values for it are ignored.
func UpdateSite(c *gin.Context) {
	var site models.Site
	if err := config.DB.Where("id = ?", c.Param("id")).First(&site).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Site not found"})
		return
	}

	var input models.Site
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.ID = site.ID
	input.SiteID = site.SiteID
	input.CreatedAt = site.CreatedAt
	input.ApplyATStatusPolicy()

	if err := config.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update site"})
		return
	}

	c.JSON(http.StatusOK, input)
}

type BulkSiteUpdateRequest struct {
	IDs     []string `json:"ids"`
	PlanIDs []string `json:"planIds"`
	Status  string   `json:"status"`
	Remark  string   `json:"remark"`
}

// BulkUpdateSites applies a status and/or remark to many sites at once,
// addressed either by row IDs or by planIds.
func BulkUpdateSites(c *gin.Context) {
	var req BulkSiteUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.IDs) == 0 && len(req.PlanIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids or planIds is required"})
		return
	}

	updates := map[string]interface{}{}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.Remark != "" {
		updates["hop_installation_remark"] = req.Remark
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status or remark is required"})
		return
	}

	query := config.DB.Model(&models.Site{})
	if len(req.IDs) > 0 {
		query = query.Where("id IN ?", req.IDs)
	} else {
		query = query.Where("plan_id IN ?", req.PlanIDs)
	}

	result := query.Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sites updated", "updated": result.RowsAffected})
}

// GetSitesForPOGeneration lists approved sites that have no purchase order
// line referencing them yet.
func GetSitesForPOGeneration(c *gin.Context) {
	var sites []models.Site
	err := config.DB.
		Where("status = ?", "Approved").
		Where("plan_id NOT IN (?)", config.DB.Model(&models.POLine{}).Select("site_plan_id").Where("site_plan_id != ''")).
		Order("plan_id").
		Find(&sites).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sites"})
		return
	}
	c.JSON(http.StatusOK, sites)
}

// GetSitesByDateRange lists sites whose installation dates fall within the
// given from/to range. Dates are the sheet-supplied text values.
func GetSitesByDateRange(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}

	var sites []models.Site
	err := config.DB.
		Where("(site_a_installation_date BETWEEN ? AND ?) OR (site_b_installation_date BETWEEN ? AND ?)",
			from, to, from, to).
		Order("plan_id").
		Find(&sites).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sites"})
		return
	}
	c.JSON(http.StatusOK, sites)
}

// DeleteSite removes one site by ID
func DeleteSite(c *gin.Context) {
	result := config.DB.Where("id = ?", c.Param("id")).Delete(&models.Site{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete site"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Site not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Site deleted successfully"})
}

// DeleteAllSites wipes the sites table. Superadmin only.
func DeleteAllSites(c *gin.Context) {
	if err := config.DB.Where("1 = 1").Delete(&models.Site{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All sites deleted"})
}

// scopeSitesToCaller restricts vendor accounts to their own rows.
func scopeSitesToCaller(c *gin.Context, query *gorm.DB) *gorm.DB {
	if userType, _ := c.Get("userType"); userType == middleware.UserTypeVendor {
		userID, _ := c.Get("userID")
		return query.Where("sites.vendor_id = ?", userID)
	}
	return query
}
