package controllers

import (
	"net/http"

	"vendor-management-api/config"
	"vendor-management-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateTeam(c *gin.Context) {
	var team models.Team
	if err := c.ShouldBindJSON(&team); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if team.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	if err := config.DB.Create(&team).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team"})
		return
	}
	c.JSON(http.StatusCreated, team)
}

func GetTeams(c *gin.Context) {
	var teams []models.Team
	if err := config.DB.Order("name").Find(&teams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch teams"})
		return
	}
	c.JSON(http.StatusOK, teams)
}

func GetTeam(c *gin.Context) {
	var team models.Team
	if err := config.DB.Where("id = ?", c.Param("id")).First(&team).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}

	var members []models.TeamMember
	if err := config.DB.Where("team_id = ?", team.ID).Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team members"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": team, "members": members})
}

func UpdateTeam(c *gin.Context) {
	var team models.Team
	if err := config.DB.Where("id = ?", c.Param("id")).First(&team).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}

	var input models.Team
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.ID = team.ID
	input.CreatedAt = team.CreatedAt
	if err := config.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team"})
		return
	}
	c.JSON(http.StatusOK, input)
}

func DeleteTeam(c *gin.Context) {
	teamID := c.Param("id")

	if err := config.DB.Where("team_id = ?", teamID).Delete(&models.TeamMember{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team members"})
		return
	}

	result := config.DB.Where("id = ?", teamID).Delete(&models.Team{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}

// GetEmployeeTeams lists the teams an employee belongs to together with the
// membership rows carrying their reporting persons
func GetEmployeeTeams(c *gin.Context) {
	var memberships []models.TeamMember
	if err := config.DB.Where("employee_id = ?", c.Param("employeeId")).Find(&memberships).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team memberships"})
		return
	}
	if len(memberships) == 0 {
		c.JSON(http.StatusOK, []gin.H{})
		return
	}

	teamIDs := make([]string, 0, len(memberships))
	for _, m := range memberships {
		teamIDs = append(teamIDs, m.TeamID)
	}

	var teams []models.Team
	if err := config.DB.Where("id IN ?", teamIDs).Find(&teams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch teams"})
		return
	}
	teamsByID := make(map[string]models.Team, len(teams))
	for _, t := range teams {
		teamsByID[t.ID] = t
	}

	out := make([]gin.H, 0, len(memberships))
	for _, m := range memberships {
		out = append(out, gin.H{"team": teamsByID[m.TeamID], "membership": m})
	}
	c.JSON(http.StatusOK, out)
}

// AddTeamMember adds an employee to a team, each employee at most once per
// team
func AddTeamMember(c *gin.Context) {
	var member models.TeamMember
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member.TeamID = c.Param("id")
	if member.EmployeeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employeeId is required"})
		return
	}

	var count int64
	config.DB.Model(&models.TeamMember{}).
		Where("team_id = ? AND employee_id = ?", member.TeamID, member.EmployeeID).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Employee is already in this team"})
		return
	}

	if err := config.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add team member"})
		return
	}
	c.JSON(http.StatusCreated, member)
}

// UpdateTeamReporting sets the reporting persons of a team member. The
// reporting fields carry team member IDs.
func UpdateTeamReporting(c *gin.Context) {
	type ReportingRequest struct {
		ReportingPerson1 string `json:"reportingPerson1"`
		ReportingPerson2 string `json:"reportingPerson2"`
		ReportingPerson3 string `json:"reportingPerson3"`
	}

	var req ReportingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var member models.TeamMember
	if err := config.DB.Where("id = ?", c.Param("memberId")).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		return
	}

	member.ReportingPerson1 = req.ReportingPerson1
	member.ReportingPerson2 = req.ReportingPerson2
	member.ReportingPerson3 = req.ReportingPerson3

	if err := config.DB.Save(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reporting persons"})
		return
	}
	c.JSON(http.StatusOK, member)
}

// RemoveTeamMember removes a member and clears any reporting references
// other members held to them
func RemoveTeamMember(c *gin.Context) {
	memberID := c.Param("memberId")

	var member models.TeamMember
	if err := config.DB.Where("id = ?", memberID).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for _, col := range []string{"reporting_person1", "reporting_person2", "reporting_person3"} {
			if err := tx.Model(&models.TeamMember{}).
				Where(col+" = ?", memberID).
				Update(col, "").Error; err != nil {
				return err
			}
		}
		return tx.Delete(&member).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove team member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team member removed successfully"})
}
