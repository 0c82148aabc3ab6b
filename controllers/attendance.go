package controllers

import (
	"net/http"
	"time"

	"vendor-management-api/config"
	"vendor-management-api/models"

	"github.com/gin-gonic/gin"
)

// CreateAttendance records a monthly attendance sheet for an employee.
// One sheet per employee-month; re-submitting updates the open sheet.
func CreateAttendance(c *gin.Context) {
	var attendance models.Attendance
	if err := c.ShouldBindJSON(&attendance); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if attendance.EmployeeID == "" || attendance.Month < 1 || attendance.Month > 12 || attendance.Year == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employeeId, month and year are required"})
		return
	}

	var existing models.Attendance
	err := config.DB.
		Where("employee_id = ? AND month = ? AND year = ?", attendance.EmployeeID, attendance.Month, attendance.Year).
		First(&existing).Error
	if err == nil {
		if existing.Locked {
			c.JSON(http.StatusConflict, gin.H{"error": "Attendance for this month is locked"})
			return
		}
		attendance.ID = existing.ID
		attendance.CreatedAt = existing.CreatedAt
		if err := config.DB.Save(&attendance).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save attendance"})
			return
		}
		c.JSON(http.StatusOK, attendance)
		return
	}

	if err := config.DB.Create(&attendance).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save attendance"})
		return
	}
	c.JSON(http.StatusCreated, attendance)
}

// GetAttendance lists attendance sheets filtered by employee and/or period
func GetAttendance(c *gin.Context) {
	query := config.DB.Model(&models.Attendance{})
	if employeeID := c.Query("employeeId"); employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	}
	if month := c.Query("month"); month != "" {
		query = query.Where("month = ?", month)
	}
	if year := c.Query("year"); year != "" {
		query = query.Where("year = ?", year)
	}

	var sheets []models.Attendance
	if err := query.Order("year DESC, month DESC").Find(&sheets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attendance"})
		return
	}
	c.JSON(http.StatusOK, sheets)
}

// UpdateAttendance edits an open sheet. Locked sheets reject all edits.
func UpdateAttendance(c *gin.Context) {
	var attendance models.Attendance
	if err := config.DB.Where("id = ?", c.Param("id")).First(&attendance).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Attendance not found"})
		return
	}
	if attendance.Locked {
		c.JSON(http.StatusConflict, gin.H{"error": "Attendance for this month is locked"})
		return
	}

	var input models.Attendance
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.ID = attendance.ID
	input.EmployeeID = attendance.EmployeeID
	input.Month = attendance.Month
	input.Year = attendance.Year
	input.Locked = false
	input.LockedAt = nil
	input.LockedBy = ""
	input.CreatedAt = attendance.CreatedAt

	if err := config.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update attendance"})
		return
	}
	c.JSON(http.StatusOK, input)
}

// LockAttendance freezes a sheet so salary generation can run against it
func LockAttendance(c *gin.Context) {
	var attendance models.Attendance
	if err := config.DB.Where("id = ?", c.Param("id")).First(&attendance).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Attendance not found"})
		return
	}
	if attendance.Locked {
		c.JSON(http.StatusOK, attendance)
		return
	}

	now := time.Now()
	userID, _ := c.Get("userID")
	attendance.Locked = true
	attendance.LockedAt = &now
	if id, ok := userID.(string); ok {
		attendance.LockedBy = id
	}

	if err := config.DB.Save(&attendance).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to lock attendance"})
		return
	}
	c.JSON(http.StatusOK, attendance)
}

// DeleteAttendance removes an open sheet. Locked sheets cannot be deleted.
func DeleteAttendance(c *gin.Context) {
	var attendance models.Attendance
	if err := config.DB.Where("id = ?", c.Param("id")).First(&attendance).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Attendance not found"})
		return
	}
	if attendance.Locked {
		c.JSON(http.StatusConflict, gin.H{"error": "Attendance for this month is locked"})
		return
	}

	if err := config.DB.Delete(&attendance).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete attendance"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attendance deleted successfully"})
}
