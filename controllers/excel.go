package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"vendor-management-api/config"
	"vendor-management-api/middleware"
	"vendor-management-api/services"

	"github.com/gin-gonic/gin"
)

// ImportSitesWorkbook accepts an uploaded .xlsx file and runs it through
// the batch upsert pipeline. Per-row failures come back in the errors array
// of a 200 response.
func ImportSitesWorkbook(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorEnvelope(c, "INVALID_REQUEST", "A file upload named 'file' is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorEnvelope(c, "INVALID_REQUEST", "Could not open uploaded file"))
		return
	}
	defer func() { _ = file.Close() }()

	ctx, cancel := context.WithTimeout(c.Request.Context(), batchUpsertTimeout)
	defer cancel()

	svc := services.NewExcelService(config.DB)
	result, records, err := svc.ImportSites(ctx, file)
	if err != nil {
		if errors.Is(err, services.ErrWorkbookEmpty) {
			c.JSON(http.StatusBadRequest, errorEnvelope(c, "INVALID_REQUEST", "Workbook has no data rows"))
			return
		}
		log.Printf("Workbook import failed (request %s): %v", middleware.RequestID(c), err)
		if services.IsDuplicateSiteIDErr(err) {
			c.JSON(http.StatusConflict, duplicateConflictBody(c, err.Error(), records))
			return
		}
		c.JSON(http.StatusInternalServerError, errorEnvelope(c, "INTERNAL_ERROR", redactedMessage(err)))
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportSitesWorkbook streams the sites table as an .xlsx download
func ExportSitesWorkbook(c *gin.Context) {
	svc := services.NewExcelService(config.DB)
	f, err := svc.ExportSites(c.Request.Context())
	if err != nil {
		log.Printf("Workbook export failed (request %s): %v", middleware.RequestID(c), err)
		c.JSON(http.StatusInternalServerError, errorEnvelope(c, "INTERNAL_ERROR", redactedMessage(err)))
		return
	}
	defer func() { _ = f.Close() }()

	filename := fmt.Sprintf("sites-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		log.Printf("Workbook export write failed: %v", err)
	}
}
