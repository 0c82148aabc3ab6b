package controllers

import (
	"net/http"

	"vendor-management-api/config"
	"vendor-management-api/models"

	"github.com/gin-gonic/gin"
)

func CreateDepartment(c *gin.Context) {
	var department models.Department
	if err := c.ShouldBindJSON(&department); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if department.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	if err := config.DB.Create(&department).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create department"})
		return
	}
	c.JSON(http.StatusCreated, department)
}

func GetDepartments(c *gin.Context) {
	var departments []models.Department
	if err := config.DB.Order("name").Find(&departments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch departments"})
		return
	}
	c.JSON(http.StatusOK, departments)
}

func DeleteDepartment(c *gin.Context) {
	var count int64
	config.DB.Model(&models.Employee{}).Where("department_id = ?", c.Param("id")).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Department is assigned to employees"})
		return
	}

	result := config.DB.Where("id = ?", c.Param("id")).Delete(&models.Department{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete department"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Department deleted successfully"})
}

func CreateDesignation(c *gin.Context) {
	var designation models.Designation
	if err := c.ShouldBindJSON(&designation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if designation.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	if err := config.DB.Create(&designation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create designation"})
		return
	}
	c.JSON(http.StatusCreated, designation)
}

func GetDesignations(c *gin.Context) {
	var designations []models.Designation
	if err := config.DB.Order("name").Find(&designations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch designations"})
		return
	}
	c.JSON(http.StatusOK, designations)
}

func DeleteDesignation(c *gin.Context) {
	var count int64
	config.DB.Model(&models.Employee{}).Where("designation_id = ?", c.Param("id")).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Designation is assigned to employees"})
		return
	}

	result := config.DB.Where("id = ?", c.Param("id")).Delete(&models.Designation{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete designation"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Designation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Designation deleted successfully"})
}
