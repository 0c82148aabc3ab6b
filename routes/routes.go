package routes

import (
	"net/http"

	"vendor-management-api/controllers"
	"vendor-management-api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every API endpoint onto the engine
func SetupRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Public authentication endpoints
	auth := api.Group("/auth")
	{
		auth.POST("/login", controllers.LoginEmployee)
		auth.POST("/vendor/login", controllers.LoginVendor)
	}

	// Everything below requires a valid token
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/auth/session", controllers.GetSession)
		authed.POST("/auth/change-password", middleware.RequireEmployee(), controllers.ChangePassword)
	}

	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireEmployee(), middleware.RequireAdmin())

	superadmin := api.Group("")
	superadmin.Use(middleware.AuthMiddleware(), middleware.RequireEmployee(), middleware.RequireSuperadmin())

	// Sites. Listing is shared: vendors see their own rows, employees see all.
	sites := authed.Group("/sites")
	{
		sites.GET("", controllers.GetSites)
		sites.GET("/count", controllers.GetSiteCount)
		sites.GET("/:id", controllers.GetSite)
	}
	adminSites := admin.Group("/sites")
	{
		adminSites.POST("", controllers.CreateSite)
		adminSites.POST("/upsert", controllers.UpsertSite)
		adminSites.POST("/batch-upsert", controllers.BatchUpsertSites)
		adminSites.POST("/bulk-update", controllers.BulkUpdateSites)
		adminSites.GET("/po-generation", controllers.GetSitesForPOGeneration)
		adminSites.GET("/by-date-range", controllers.GetSitesByDateRange)
		adminSites.PUT("/:id", controllers.UpdateSite)
		adminSites.DELETE("/:id", controllers.DeleteSite)
		adminSites.POST("/import", controllers.ImportSitesWorkbook)
		adminSites.GET("/export", controllers.ExportSitesWorkbook)
	}
	superadmin.DELETE("/sites", controllers.DeleteAllSites)

	// Vendors
	vendors := admin.Group("/vendors")
	{
		vendors.POST("", controllers.CreateVendor)
		vendors.GET("", controllers.GetVendors)
		vendors.GET("/:id", controllers.GetVendor)
		vendors.PUT("/:id", controllers.UpdateVendor)
		vendors.PATCH("/:id/status", controllers.UpdateVendorStatus)
		vendors.POST("/find-or-create", controllers.FindOrCreateVendor)
		vendors.DELETE("/:id", controllers.DeleteVendor)
	}
	superadmin.DELETE("/vendors", controllers.DeleteAllVendors)

	// Vendor self-service
	vendorSelf := api.Group("/vendor")
	vendorSelf.Use(middleware.AuthMiddleware(), middleware.RequireVendor())
	vendorSelf.GET("/profile", controllers.GetVendorProfile)

	// Employees and org structure
	employees := admin.Group("/employees")
	{
		employees.POST("", controllers.CreateEmployee)
		employees.GET("", controllers.GetEmployees)
		employees.GET("/count", controllers.GetEmployeeCount)
		employees.GET("/:id", controllers.GetEmployee)
		employees.PUT("/:id", controllers.UpdateEmployee)
		employees.DELETE("/:id", controllers.DeleteEmployee)
	}

	departments := admin.Group("/departments")
	{
		departments.POST("", controllers.CreateDepartment)
		departments.GET("", controllers.GetDepartments)
		departments.DELETE("/:id", controllers.DeleteDepartment)
	}

	designations := admin.Group("/designations")
	{
		designations.POST("", controllers.CreateDesignation)
		designations.GET("", controllers.GetDesignations)
		designations.DELETE("/:id", controllers.DeleteDesignation)
	}

	// Payroll
	salaries := admin.Group("/salaries")
	{
		salaries.POST("", controllers.CreateSalaryStructure)
		salaries.GET("", controllers.GetSalaryStructures)
		salaries.PUT("/:id", controllers.UpdateSalaryStructure)
		salaries.DELETE("/:id", controllers.DeleteSalaryStructure)
		salaries.POST("/generate", controllers.GenerateSalary)
		salaries.GET("/employee/:id", controllers.GetEmployeeSalary)
	}

	attendance := admin.Group("/attendance")
	{
		attendance.POST("", controllers.CreateAttendance)
		attendance.GET("", controllers.GetAttendance)
		attendance.PUT("/:id", controllers.UpdateAttendance)
		attendance.POST("/:id/lock", controllers.LockAttendance)
		attendance.DELETE("/:id", controllers.DeleteAttendance)
	}

	// Teams and daily allowances. Submission is open to all employees;
	// approval is an admin concern.
	employeeOnly := api.Group("")
	employeeOnly.Use(middleware.AuthMiddleware(), middleware.RequireEmployee())
	{
		employeeOnly.POST("/allowances", controllers.SubmitAllowance)
		employeeOnly.GET("/allowances", controllers.GetAllowances)
		employeeOnly.DELETE("/allowances/:id", controllers.DeleteAllowance)
	}

	allowanceAdmin := admin.Group("/allowances")
	{
		allowanceAdmin.GET("/pending", controllers.GetPendingAllowances)
		allowanceAdmin.GET("/pending/reporting", controllers.GetReportingPendingAllowances)
		allowanceAdmin.POST("/:id/approve", controllers.ApproveAllowance)
		allowanceAdmin.POST("/:id/reject", controllers.RejectAllowance)
	}

	teams := admin.Group("/teams")
	{
		teams.POST("", controllers.CreateTeam)
		teams.GET("", controllers.GetTeams)
		teams.GET("/:id", controllers.GetTeam)
		teams.GET("/employee/:employeeId", controllers.GetEmployeeTeams)
		teams.PUT("/:id", controllers.UpdateTeam)
		teams.DELETE("/:id", controllers.DeleteTeam)
		teams.POST("/:id/members", controllers.AddTeamMember)
		teams.PUT("/:id/members/:memberId/reporting", controllers.UpdateTeamReporting)
		teams.DELETE("/:id/members/:memberId", controllers.RemoveTeamMember)
	}

	// Purchasing. Vendors can read their own POs and invoices.
	pos := authed.Group("/purchase-orders")
	{
		pos.GET("", controllers.GetPurchaseOrders)
		pos.GET("/:id", controllers.GetPurchaseOrder)
	}
	adminPos := admin.Group("/purchase-orders")
	{
		adminPos.POST("", controllers.CreatePurchaseOrder)
		adminPos.PUT("/:id", controllers.UpdatePurchaseOrder)
		adminPos.PATCH("/:id/status", controllers.UpdatePurchaseOrderStatus)
		adminPos.DELETE("/:id", controllers.DeletePurchaseOrder)
	}

	invoices := authed.Group("/invoices")
	{
		invoices.GET("", controllers.GetInvoices)
		invoices.GET("/:id", controllers.GetInvoice)
	}
	adminInvoices := admin.Group("/invoices")
	{
		adminInvoices.POST("", controllers.CreateInvoice)
		adminInvoices.PUT("/:id", controllers.UpdateInvoice)
		adminInvoices.DELETE("/:id", controllers.DeleteInvoice)
	}
	superadmin.DELETE("/invoices", controllers.DeleteAllInvoices)

	payments := admin.Group("/payment-masters")
	{
		payments.POST("", controllers.CreatePaymentMaster)
		payments.GET("", controllers.GetPaymentMasters)
		payments.PUT("/:id", controllers.UpdatePaymentMaster)
		payments.DELETE("/:id", controllers.DeletePaymentMaster)
	}

	zones := admin.Group("/zones")
	{
		zones.POST("", controllers.CreateZone)
		zones.GET("", controllers.GetZones)
		zones.PUT("/:id", controllers.UpdateZone)
		zones.DELETE("/:id", controllers.DeleteZone)
	}

	// Settings
	admin.GET("/settings/export-header", controllers.GetExportHeader)
	admin.PUT("/settings/export-header", controllers.UpdateExportHeader)
	admin.GET("/settings/app", controllers.GetAppSettings)
	superadmin.PUT("/settings/app", controllers.UpdateAppSettings)
}
