package controllers

import (
	"net/http"

	"vendor-management-api/config"
	"vendor-management-api/models"

	"github.com/gin-gonic/gin"
)

func CreateZone(c *gin.Context) {
	var zone models.Zone
	if err := c.ShouldBindJSON(&zone); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if zone.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	var count int64
	config.DB.Model(&models.Zone{}).Where("name = ?", zone.Name).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "A zone with this name already exists"})
		return
	}

	if err := config.DB.Create(&zone).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create zone"})
		return
	}
	c.JSON(http.StatusCreated, zone)
}

func GetZones(c *gin.Context) {
	var zones []models.Zone
	if err := config.DB.Order("name").Find(&zones).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch zones"})
		return
	}
	c.JSON(http.StatusOK, zones)
}

func UpdateZone(c *gin.Context) {
	var zone models.Zone
	if err := config.DB.Where("id = ?", c.Param("id")).First(&zone).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
		return
	}

	var input models.Zone
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	zone.Name = input.Name
	zone.Circle = input.Circle
	if err := config.DB.Save(&zone).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update zone"})
		return
	}
	c.JSON(http.StatusOK, zone)
}

func DeleteZone(c *gin.Context) {
	var count int64
	config.DB.Model(&models.Site{}).Where("zone_id = ?", c.Param("id")).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Zone is assigned to sites"})
		return
	}

	result := config.DB.Where("id = ?", c.Param("id")).Delete(&models.Zone{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete zone"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Zone deleted successfully"})
}
