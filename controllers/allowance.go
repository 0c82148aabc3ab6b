package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"vendor-management-api/config"
	"vendor-management-api/models"

	"github.com/gin-gonic/gin"
)

const allowanceApprovalsRequired = 2

// SubmitAllowance files a daily allowance claim for the calling employee
func SubmitAllowance(c *gin.Context) {
	var allowance models.DailyAllowance
	if err := c.ShouldBindJSON(&allowance); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")
	if id, ok := userID.(string); ok && allowance.EmployeeID == "" {
		allowance.EmployeeID = id
	}
	if allowance.EmployeeID == "" || allowance.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employeeId and date are required"})
		return
	}

	var count int64
	config.DB.Model(&models.DailyAllowance{}).
		Where("employee_id = ? AND date = ?", allowance.EmployeeID, allowance.Date).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "An allowance for this date already exists"})
		return
	}

	allowance.ApprovalStatus = "pending"
	allowance.ApprovalCount = 0
	allowance.ApprovedBy = ""
	allowance.RejectionReason = ""

	if err := config.DB.Create(&allowance).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit allowance"})
		return
	}
	c.JSON(http.StatusCreated, allowance)
}

// GetAllowances lists claims filtered by employee, status or date range
func GetAllowances(c *gin.Context) {
	page, pageSize := pageParams(c)

	query := config.DB.Model(&models.DailyAllowance{})
	if employeeID := c.Query("employeeId"); employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("approval_status = ?", status)
	}
	if from := c.Query("from"); from != "" {
		query = query.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("date <= ?", to)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch allowances"})
		return
	}

	var allowances []models.DailyAllowance
	if err := query.Order("date DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&allowances).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch allowances"})
		return
	}

	c.JSON(http.StatusOK, pagedResponse(enrichAllowances(allowances), totalCount, page, pageSize))
}

// AllowanceView is a claim with the employee and team names resolved for
// approval screens.
type AllowanceView struct {
	models.DailyAllowance
	EmployeeName string `json:"employeeName,omitempty"`
	TeamName     string `json:"teamName,omitempty"`
}

// enrichAllowances resolves names with two bulk lookups instead of one query
// per row.
func enrichAllowances(allowances []models.DailyAllowance) []AllowanceView {
	views := make([]AllowanceView, len(allowances))
	if len(allowances) == 0 {
		return views
	}

	employeeIDs := make([]string, 0, len(allowances))
	teamIDs := make([]string, 0, len(allowances))
	for _, a := range allowances {
		if a.EmployeeID != "" {
			employeeIDs = append(employeeIDs, a.EmployeeID)
		}
		if a.TeamID != "" {
			teamIDs = append(teamIDs, a.TeamID)
		}
	}

	employeeNames := map[string]string{}
	if len(employeeIDs) > 0 {
		var employees []models.Employee
		config.DB.Select("id, name").Where("id IN ?", employeeIDs).Find(&employees)
		for _, e := range employees {
			employeeNames[e.ID] = e.Name
		}
	}

	teamNames := map[string]string{}
	if len(teamIDs) > 0 {
		var teams []models.Team
		config.DB.Select("id, name").Where("id IN ?", teamIDs).Find(&teams)
		for _, t := range teams {
			teamNames[t.ID] = t.Name
		}
	}

	for i, a := range allowances {
		views[i] = AllowanceView{
			DailyAllowance: a,
			EmployeeName:   employeeNames[a.EmployeeID],
			TeamName:       teamNames[a.TeamID],
		}
	}
	return views
}

// GetPendingAllowances lists claims the calling approver has not yet acted
// on (pending plus processing claims missing their signature)
func GetPendingAllowances(c *gin.Context) {
	userID, _ := c.Get("userID")
	approverID, _ := userID.(string)

	var allowances []models.DailyAllowance
	err := config.DB.
		Where("approval_status IN ?", []string{"pending", "processing"}).
		Order("submitted_at").
		Find(&allowances).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending allowances"})
		return
	}

	actionable := make([]models.DailyAllowance, 0, len(allowances))
	for _, a := range allowances {
		if !approverSigned(a.ApprovedBy, approverID) {
			actionable = append(actionable, a)
		}
	}
	c.JSON(http.StatusOK, enrichAllowances(actionable))
}

// GetReportingPendingAllowances lists unactioned claims from the employees
// who report to the calling approver through team membership.
func GetReportingPendingAllowances(c *gin.Context) {
	userID, _ := c.Get("userID")
	approverID, _ := userID.(string)

	employeeIDs, err := reportingEmployeeIDs(approverID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve reporting employees"})
		return
	}
	if len(employeeIDs) == 0 {
		c.JSON(http.StatusOK, []AllowanceView{})
		return
	}

	var allowances []models.DailyAllowance
	err = config.DB.
		Where("employee_id IN ?", employeeIDs).
		Where("approval_status IN ?", []string{"pending", "processing"}).
		Order("submitted_at").
		Find(&allowances).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending allowances"})
		return
	}

	actionable := make([]models.DailyAllowance, 0, len(allowances))
	for _, a := range allowances {
		if !approverSigned(a.ApprovedBy, approverID) {
			actionable = append(actionable, a)
		}
	}
	c.JSON(http.StatusOK, enrichAllowances(actionable))
}

// reportingEmployeeIDs resolves the employees whose team membership names any
// of the approver's member rows as a reporting person. Reporting person
// columns hold team member IDs, so the approver's own member rows are looked
// up first.
func reportingEmployeeIDs(approverID string) ([]string, error) {
	var memberIDs []string
	err := config.DB.Model(&models.TeamMember{}).
		Where("employee_id = ?", approverID).
		Pluck("id", &memberIDs).Error
	if err != nil {
		return nil, err
	}
	if len(memberIDs) == 0 {
		return nil, nil
	}

	var employeeIDs []string
	err = config.DB.Model(&models.TeamMember{}).
		Distinct().
		Where("reporting_person1 IN ? OR reporting_person2 IN ? OR reporting_person3 IN ?",
			memberIDs, memberIDs, memberIDs).
		Pluck("employee_id", &employeeIDs).Error
	if err != nil {
		return nil, err
	}
	return employeeIDs, nil
}

// ApproveAllowance records one approval. The claim moves to processing on
// the first signature and to approved on the second; each approver may sign
// only once.
func ApproveAllowance(c *gin.Context) {
	var allowance models.DailyAllowance
	if err := config.DB.Where("id = ?", c.Param("id")).First(&allowance).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Allowance not found"})
		return
	}

	if allowance.ApprovalStatus == "rejected" {
		c.JSON(http.StatusConflict, gin.H{"error": "Allowance has been rejected"})
		return
	}
	if allowance.ApprovalStatus == "approved" {
		c.JSON(http.StatusConflict, gin.H{"error": "Allowance is already approved"})
		return
	}

	userID, _ := c.Get("userID")
	approverID, _ := userID.(string)
	if approverSigned(allowance.ApprovedBy, approverID) {
		c.JSON(http.StatusConflict, gin.H{"error": "You have already approved this allowance"})
		return
	}

	signatures := appendApprover(allowance.ApprovedBy, approverID)
	allowance.ApprovedBy = signatures
	allowance.ApprovalCount++

	if allowance.ApprovalCount >= allowanceApprovalsRequired {
		now := time.Now()
		allowance.ApprovalStatus = "approved"
		allowance.ApprovedAt = &now
	} else {
		allowance.ApprovalStatus = "processing"
	}

	if err := config.DB.Save(&allowance).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve allowance"})
		return
	}
	c.JSON(http.StatusOK, allowance)
}

// RejectAllowance rejects a claim with a reason. Rejection is final.
func RejectAllowance(c *gin.Context) {
	type RejectRequest struct {
		Reason string `json:"reason" binding:"required"`
	}

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var allowance models.DailyAllowance
	if err := config.DB.Where("id = ?", c.Param("id")).First(&allowance).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Allowance not found"})
		return
	}

	if allowance.ApprovalStatus == "approved" {
		c.JSON(http.StatusConflict, gin.H{"error": "Allowance is already approved"})
		return
	}
	if allowance.ApprovalStatus == "rejected" {
		c.JSON(http.StatusConflict, gin.H{"error": "Allowance has already been rejected"})
		return
	}

	allowance.ApprovalStatus = "rejected"
	allowance.RejectionReason = req.Reason

	if err := config.DB.Save(&allowance).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject allowance"})
		return
	}
	c.JSON(http.StatusOK, allowance)
}

// DeleteAllowance lets an employee withdraw a claim that has not been acted
// on yet
func DeleteAllowance(c *gin.Context) {
	var allowance models.DailyAllowance
	if err := config.DB.Where("id = ?", c.Param("id")).First(&allowance).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Allowance not found"})
		return
	}
	if allowance.ApprovalStatus != "pending" {
		c.JSON(http.StatusConflict, gin.H{"error": "Only pending allowances can be withdrawn"})
		return
	}

	if err := config.DB.Delete(&allowance).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete allowance"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Allowance deleted successfully"})
}

// ApprovedBy holds a JSON array of approver IDs.
func approverSigned(approvedBy, approverID string) bool {
	if approvedBy == "" || approverID == "" {
		return false
	}
	var ids []string
	if err := json.Unmarshal([]byte(approvedBy), &ids); err != nil {
		return false
	}
	for _, id := range ids {
		if id == approverID {
			return true
		}
	}
	return false
}

func appendApprover(approvedBy, approverID string) string {
	var ids []string
	if approvedBy != "" {
		_ = json.Unmarshal([]byte(approvedBy), &ids)
	}
	ids = append(ids, approverID)
	out, _ := json.Marshal(ids)
	return string(out)
}
