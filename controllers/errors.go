package controllers

import (
	"os"
	"strings"
	"time"

	"vendor-management-api/middleware"
	"vendor-management-api/services"

	"github.com/gin-gonic/gin"
)

// errorEnvelope is the body for systemic failures (anything that is not a
// per-record import error): {success:false, error:{code, message, ...}}.
func errorEnvelope(c *gin.Context, code, message string) gin.H {
	return gin.H{
		"success": false,
		"error": gin.H{
			"code":      code,
			"message":   message,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"requestId": middleware.RequestID(c),
		},
	}
}

// duplicateConflictBody is the 409 shape for an import aborted by a siteId
// uniqueness violation: the error envelope plus batch counters showing the
// whole batch as failed with no per-record entries.
func duplicateConflictBody(c *gin.Context, message string, batchSize int) gin.H {
	body := errorEnvelope(c, "DUPLICATE_SITE_ID", message)
	body["successful"] = 0
	body["failed"] = batchSize
	body["errors"] = []services.UpsertError{}
	return body
}

// redactedMessage hides internal error detail outside development mode.
func redactedMessage(err error) string {
	if isDevelopment() {
		return err.Error()
	}
	return "An internal error occurred. Please try again later."
}

func isDevelopment() bool {
	env := strings.ToLower(os.Getenv("ENVIRONMENT"))
	return env == "" || env == "development"
}
