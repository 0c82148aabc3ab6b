package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"vendor-management-api/config"
	"vendor-management-api/models"
	"vendor-management-api/services"

	"github.com/gin-gonic/gin"
)

// CreateSalaryStructure records the configured monthly components for an
// employee
func CreateSalaryStructure(c *gin.Context) {
	var structure models.SalaryStructure
	if err := c.ShouldBindJSON(&structure); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if structure.EmployeeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employeeId is required"})
		return
	}

	if err := config.DB.Create(&structure).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create salary structure"})
		return
	}
	c.JSON(http.StatusCreated, structure)
}

// GetSalaryStructures lists structures, optionally filtered by employee or
// month/year
func GetSalaryStructures(c *gin.Context) {
	query := config.DB.Model(&models.SalaryStructure{})
	if employeeID := c.Query("employeeId"); employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	}
	if month := c.Query("month"); month != "" {
		query = query.Where("month = ?", month)
	}
	if year := c.Query("year"); year != "" {
		query = query.Where("year = ?", year)
	}

	var structures []models.SalaryStructure
	if err := query.Order("year DESC, month DESC").Find(&structures).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch salary structures"})
		return
	}
	c.JSON(http.StatusOK, structures)
}

// UpdateSalaryStructure updates the configured components of a structure
func UpdateSalaryStructure(c *gin.Context) {
	var structure models.SalaryStructure
	if err := config.DB.Where("id = ?", c.Param("id")).First(&structure).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Salary structure not found"})
		return
	}

	var input models.SalaryStructure
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.ID = structure.ID
	input.EmployeeID = structure.EmployeeID
	input.CreatedAt = structure.CreatedAt

	if err := config.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update salary structure"})
		return
	}
	c.JSON(http.StatusOK, input)
}

// DeleteSalaryStructure removes one structure by ID
func DeleteSalaryStructure(c *gin.Context) {
	result := config.DB.Where("id = ?", c.Param("id")).Delete(&models.SalaryStructure{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete salary structure"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Salary structure not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Salary structure deleted successfully"})
}

// GenerateSalary computes and stores the salary run for one employee-month
// from the locked attendance sheet
func GenerateSalary(c *gin.Context) {
	type GenerateRequest struct {
		EmployeeID string `json:"employeeId" binding:"required"`
		Month      int    `json:"month" binding:"required,min=1,max=12"`
		Year       int    `json:"year" binding:"required"`
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewSalaryService(config.DB)
	run, err := svc.GenerateMonthly(c.Request.Context(), req.EmployeeID, req.Month, req.Year)
	switch {
	case errors.Is(err, services.ErrSalaryStructureNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No salary structure configured for this employee"})
	case errors.Is(err, services.ErrAttendanceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No attendance sheet for the requested month"})
	case errors.Is(err, services.ErrAttendanceNotLocked):
		c.JSON(http.StatusConflict, gin.H{"error": "Attendance must be locked before salary generation"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate salary"})
	default:
		c.JSON(http.StatusOK, run)
	}
}

// GetEmployeeSalary fetches generated runs for one employee, newest first
func GetEmployeeSalary(c *gin.Context) {
	query := config.DB.Where("employee_id = ?", c.Param("id"))
	if yearStr := c.Query("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			query = query.Where("year = ?", year)
		}
	}

	var runs []models.SalaryStructure
	if err := query.Order("year DESC, month DESC").Find(&runs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch salary runs"})
		return
	}
	c.JSON(http.StatusOK, runs)
}
