package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"vendor-management-api/config"
	"vendor-management-api/middleware"
	"vendor-management-api/services"

	"github.com/gin-gonic/gin"
)

// batchUpsertTimeout bounds one import run. Large sheets finish well inside
// this; a wedged database connection should not hold the request forever.
const batchUpsertTimeout = 2 * time.Minute

type BatchUpsertRequest struct {
	Sites []services.SiteInput `json:"sites"`
}

// BatchUpsertSites ingests a batch of site rows, updating records whose
// planId already exists and inserting the rest. Per-record failures land in
// the errors array of a 200 response; a duplicate siteId that aborts a whole
// run comes back as 409 DUPLICATE_SITE_ID.
func BatchUpsertSites(c *gin.Context) {
	var req BatchUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorEnvelope(c, "INVALID_REQUEST", err.Error()))
		return
	}

	if len(req.Sites) == 0 {
		c.JSON(http.StatusOK, services.BatchUpsertResult{Errors: []services.UpsertError{}})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), batchUpsertTimeout)
	defer cancel()

	svc := services.NewSiteBatchService(config.DB)
	result, err := svc.BatchUpsert(ctx, req.Sites)
	if err != nil {
		log.Printf("Batch upsert failed (request %s): %v", middleware.RequestID(c), err)
		if services.IsDuplicateSiteIDErr(err) {
			c.JSON(http.StatusConflict, duplicateConflictBody(c, err.Error(), len(req.Sites)))
			return
		}
		c.JSON(http.StatusInternalServerError, errorEnvelope(c, "INTERNAL_ERROR", redactedMessage(err)))
		return
	}

	log.Printf("Batch upsert: %d received, %d successful, %d failed",
		len(req.Sites), result.Successful, result.Failed)
	c.JSON(http.StatusOK, result)
}
