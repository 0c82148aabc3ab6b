package controllers

import (
	"net/http"

	"vendor-management-api/config"
	"vendor-management-api/middleware"
	"vendor-management-api/models"
	"vendor-management-api/utils"

	"github.com/gin-gonic/gin"
)

// EmployeeView adds resolved department/designation names to the listing.
type EmployeeView struct {
	models.Employee
	DepartmentName  string `json:"departmentName,omitempty"`
	DesignationName string `json:"designationName,omitempty"`
}

// CreateEmployee registers a new employee account
func CreateEmployee(c *gin.Context) {
	var input struct {
		models.Employee
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name == "" || input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}
	if !utils.ValidateEmail(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}
	if input.Password != "" {
		if ok, msg := utils.ValidatePassword(input.Password); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
	}
	if input.Aadhar != "" && !utils.ValidateAadhar(input.Aadhar) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Aadhar number"})
		return
	}

	var count int64
	config.DB.Model(&models.Employee{}).Where("email = ?", input.Email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "An employee with this email already exists"})
		return
	}

	employee := input.Employee
	if input.Password != "" {
		hashed, err := HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
			return
		}
		employee.Password = hashed
	}

	// Role escalation only through superadmin-held endpoints
	if employee.Role == middleware.RoleSuperadmin {
		employee.Role = middleware.RoleAdmin
	}

	if err := config.DB.Create(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// GetEmployees lists employees with department and designation names.
// Superadmin accounts are system accounts and stay out of listings.
func GetEmployees(c *gin.Context) {
	page, pageSize := pageParams(c)

	query := config.DB.Model(&models.Employee{}).Where("role != ?", middleware.RoleSuperadmin)
	if status := c.Query("status"); status != "" {
		query = query.Where("employees.status = ?", status)
	}
	if deptID := c.Query("departmentId"); deptID != "" {
		query = query.Where("department_id = ?", deptID)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("employees.name LIKE ? OR employees.email LIKE ?", like, like)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employees"})
		return
	}

	var employees []EmployeeView
	err := query.
		Select("employees.*, departments.name AS department_name, designations.name AS designation_name").
		Joins("LEFT JOIN departments ON departments.id = employees.department_id").
		Joins("LEFT JOIN designations ON designations.id = employees.designation_id").
		Order("employees.name").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Scan(&employees).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employees"})
		return
	}

	c.JSON(http.StatusOK, pagedResponse(employees, totalCount, page, pageSize))
}

// GetEmployee fetches one employee by ID
func GetEmployee(c *gin.Context) {
	var employee EmployeeView
	err := config.DB.Model(&models.Employee{}).
		Select("employees.*, departments.name AS department_name, designations.name AS designation_name").
		Joins("LEFT JOIN departments ON departments.id = employees.department_id").
		Joins("LEFT JOIN designations ON designations.id = employees.designation_id").
		Where("employees.id = ?", c.Param("id")).
		Scan(&employee).Error
	if err != nil || employee.ID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	c.JSON(http.StatusOK, employee)
}

// UpdateEmployee updates employee profile fields
func UpdateEmployee(c *gin.Context) {
	var employee models.Employee
	if err := config.DB.Where("id = ?", c.Param("id")).First(&employee).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	var input models.Employee
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.ID = employee.ID
	input.Password = employee.Password
	input.CreatedAt = employee.CreatedAt
	if input.Role == middleware.RoleSuperadmin && employee.Role != middleware.RoleSuperadmin {
		input.Role = employee.Role
	}

	if err := config.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
		return
	}

	c.JSON(http.StatusOK, input)
}

// DeleteEmployee removes one employee by ID
func DeleteEmployee(c *gin.Context) {
	result := config.DB.Where("id = ? AND role != ?", c.Param("id"), middleware.RoleSuperadmin).
		Delete(&models.Employee{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}

// GetEmployeeCount returns headcount excluding superadmin accounts
func GetEmployeeCount(c *gin.Context) {
	var count int64
	if err := config.DB.Model(&models.Employee{}).
		Where("role != ?", middleware.RoleSuperadmin).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count employees"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
