package controllers

import (
	"errors"
	"net/http"

	"vendor-management-api/config"
	"vendor-management-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetExportHeader returns the company letterhead used on exports, an empty
// record when none is configured yet
func GetExportHeader(c *gin.Context) {
	var header models.ExportHeader
	err := config.DB.First(&header).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, models.ExportHeader{})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch export header"})
		return
	}
	c.JSON(http.StatusOK, header)
}

// UpdateExportHeader upserts the single letterhead row
func UpdateExportHeader(c *gin.Context) {
	var input models.ExportHeader
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.ExportHeader
	err := config.DB.First(&existing).Error
	switch {
	case err == nil:
		input.ID = existing.ID
		if err := config.DB.Save(&input).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update export header"})
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := config.DB.Create(&input).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save export header"})
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save export header"})
		return
	}

	c.JSON(http.StatusOK, input)
}

// GetAppSettings returns the single application settings row, defaults when
// none exists yet
func GetAppSettings(c *gin.Context) {
	var settings models.AppSettings
	err := config.DB.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, models.AppSettings{
			PoGenerationDay:     1,
			SalaryGenerationDay: 1,
			AttendanceLockDay:   25,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateAppSettings upserts the single settings row. Superadmin only.
func UpdateAppSettings(c *gin.Context) {
	var input models.AppSettings
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.AppSettings
	err := config.DB.First(&existing).Error
	switch {
	case err == nil:
		input.ID = existing.ID
		if err := config.DB.Save(&input).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := config.DB.Create(&input).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	c.JSON(http.StatusOK, input)
}
