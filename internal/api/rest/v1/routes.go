package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/users"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/session"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	sessions *session.Manager,
	authService users.AuthService,
	otpTTLSeconds int,
	analysisService policies.PolicyAnalysisService,
	metadataService policies.PolicyMetadataService,
	simulationService policies.ClaimSimulationService,
	reportService policies.ReportService,
	chartRenderer policies.ChartRenderer,
	maxUploadBytes int64) {

	v1 := r.Group(BasePath) // lookup in version file

	// Auth Routes
	authHandler := NewAuthHandler(authService, otpTTLSeconds)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/verify", authHandler.Verify)
	v1.POST("/auth/logout", authHandler.Logout)

	// Policy Routes, all behind the session middleware
	policyHandler := NewPolicyHandler(analysisService, metadataService, simulationService, reportService, chartRenderer, maxUploadBytes)
	authorized := v1.Group("", SessionAuth(sessions))
	authorized.POST("/policies", policyHandler.Analyze)
	authorized.GET("/policies", policyHandler.List)
	authorized.GET("/policies/:id", policyHandler.GetByID)
	authorized.GET("/policies/:id/report", policyHandler.DownloadReportByID)
	authorized.DELETE("/policies/:id", policyHandler.DeleteByID)
	authorized.POST("/simulations", policyHandler.Simulate)
	authorized.POST("/comparisons", policyHandler.Compare)
	authorized.GET("/stats", policyHandler.Stats)
	authorized.GET("/policy-types", policyHandler.PolicyTypes)
}
