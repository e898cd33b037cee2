package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/response"
)

// Version reported by GET /.
const Version = "1.0.0"

var rootIndex = dto.RootResponse{
	Message: "Training Tracker API",
	Version: Version,
	Endpoints: map[string]string{
		"auth":                 "/api/token, /api/token/refresh, /api/register, /api/auth/user, /api/auth/logout",
		"password_reset":       "/api/password-reset, /api/password-reset/confirm",
		"users":                "/api/users",
		"programs":             "/api/programs",
		"program_topics":       "/api/program-topics",
		"batches":              "/api/batches",
		"batch_trainers":       "/api/batch-trainers",
		"batch_trainees":       "/api/batch-trainees",
		"designations":         "/api/designations",
		"designation_programs": "/api/designation-programs",
		"trainee_designations": "/api/trainee-designations",
		"progress_records":     "/api/progress-records",
		"progress_export":      "/api/progress-records/export",
		"classes":              "/api/classes",
		"audit_logs":           "/api/audit-logs",
		"health":               "/health",
	},
}

// Root describes the API.
// GET /
func Root(c *gin.Context) {
	response.OK(c, rootIndex)
}

// Health liveness probe.
// GET /health
func Health(c *gin.Context) {
	response.OK(c, gin.H{"status": "ok"})
}
