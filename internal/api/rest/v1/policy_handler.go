package v1

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/strutil"
)

// Chart names used as visualization keys in analysis responses.
const (
	chartRiskPie       = "risk_pie"
	chartRiskBreakdown = "risk_breakdown"
	chartComparison    = "comparison_chart"
)

// PolicyHandler defines the interface for handling policy-related operations
type PolicyHandler interface {
	Analyze(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Simulate(ctx *gin.Context)
	Compare(ctx *gin.Context)
	Stats(ctx *gin.Context)
	DownloadReportByID(ctx *gin.Context)
	PolicyTypes(ctx *gin.Context)
}

// policyHandler struct holds the services
type policyHandler struct {
	analysisService   policies.PolicyAnalysisService
	metadataService   policies.PolicyMetadataService
	simulationService policies.ClaimSimulationService
	reportService     policies.ReportService
	chartRenderer     policies.ChartRenderer
	maxUploadBytes    int64
}

// NewPolicyHandler creates a new PolicyHandler
func NewPolicyHandler(
	analysisService policies.PolicyAnalysisService,
	metadataService policies.PolicyMetadataService,
	simulationService policies.ClaimSimulationService,
	reportService policies.ReportService,
	chartRenderer policies.ChartRenderer,
	maxUploadBytes int64,
) PolicyHandler {
	return &policyHandler{
		analysisService:   analysisService,
		metadataService:   metadataService,
		simulationService: simulationService,
		reportService:     reportService,
		chartRenderer:     chartRenderer,
		maxUploadBytes:    maxUploadBytes,
	}
}

// Analyze uploads a policy PDF and runs the full term and risk analysis
func (handler *policyHandler) Analyze(ctx *gin.Context) {
	if handler.maxUploadBytes > 0 && ctx.Request.ContentLength > handler.maxUploadBytes {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("upload exceeds the %d byte limit", handler.maxUploadBytes)
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusRequestEntityTooLarge, errorResponse)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := "invalid form data"
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	input := policies.AnalysisInput{
		Age:        35,
		PolicyType: policies.PolicyTypeHealth,
	}
	if ages := form.Value["age"]; len(ages) > 0 {
		input.Age = strutil.ConvertToInt(ages[0])
	}
	if diseases := form.Value["disease"]; len(diseases) > 0 {
		input.Disease = diseases[0]
	}
	if policyTypes := form.Value["policy_type"]; len(policyTypes) > 0 {
		input.PolicyType = policyTypes[0]
	}

	policy, err := handler.analysisService.Analyze(ctx, form, userIDFromContext(ctx), input)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("error analyzing policy: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	visualizations := map[string]string{}
	if png, err := handler.chartRenderer.RiskPie(policy.RiskScores); err == nil {
		visualizations[chartRiskPie] = base64.StdEncoding.EncodeToString(png)
	}
	if png, err := handler.chartRenderer.RiskBreakdownPie(policy.RiskFactors); err == nil {
		visualizations[chartRiskBreakdown] = base64.StdEncoding.EncodeToString(png)
	}
	if png, err := handler.chartRenderer.ComparisonBars(policy.RiskScores); err == nil {
		visualizations[chartComparison] = base64.StdEncoding.EncodeToString(png)
	}

	ctx.JSON(http.StatusCreated, AnalyzeResponse{
		Policy:         newPolicyResponse(policy),
		Visualizations: visualizations,
	})
}

// List fetches the user's policies optionally with query parameters
func (handler *policyHandler) List(ctx *gin.Context) {
	query := policies.NewPolicyMetaQuery()

	if policyType := ctx.Query("policyType"); len(policyType) > 0 {
		query.PolicyType = policyType
	}

	if detectedType := ctx.Query("detectedType"); len(detectedType) > 0 {
		query.DetectedType = detectedType
	}

	if filename := ctx.Query("filename"); len(filename) > 0 {
		query.Filename = filename
	}

	if uploadedAfter := ctx.Query("uploadedAfter"); len(uploadedAfter) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, uploadedAfter)
		if err == nil {
			query.UploadedAfter = parsedTime
		}
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("validation failed: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	policyMetas, err := handler.metadataService.List(ctx, userIDFromContext(ctx), query)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("list query failed: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []PolicyResponse{}
	for _, policy := range policyMetas {
		listResponse = append(listResponse, newPolicyResponse(policy))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID fetches one analyzed policy by ID
func (handler *policyHandler) GetByID(ctx *gin.Context) {
	policyID := ctx.Param("id")

	policy, err := handler.metadataService.GetByID(ctx, policyID, userIDFromContext(ctx))
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("policy with id %s not found", policyID)
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newPolicyResponse(policy))
}

// DeleteByID deletes a policy and its stored source document by ID
func (handler *policyHandler) DeleteByID(ctx *gin.Context) {
	policyID := ctx.Param("id")

	if err := handler.metadataService.DeleteByID(ctx, policyID, userIDFromContext(ctx)); err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("policy with id %s not found", policyID)
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoMessage := fmt.Sprintf("deleted policy with id %s", policyID)
	infoResponse.Message = &infoMessage
	ctx.JSON(http.StatusNoContent, infoResponse)
}

// Simulate applies the policy's cost-sharing terms to a hypothetical claim
func (handler *policyHandler) Simulate(ctx *gin.Context) {
	var request SimulateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorMessage := "policy_id is required"
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	result, err := handler.simulationService.Simulate(ctx, request.PolicyID, userIDFromContext(ctx), request.ClaimAmount)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("error simulating claim: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	response := SimulateResponse{
		PolicyID:           request.PolicyID,
		ClaimAmount:        result.ClaimAmount,
		InsurancePays:      result.InsurancePays,
		OutOfPocket:        result.OutOfPocket,
		DeductibleApplied:  result.DeductibleApplied,
		CoPayApplied:       result.CoPayApplied,
		CoveragePercentage: result.CoveragePercentage,
	}
	if png, err := handler.chartRenderer.ClaimImpactPie(result.ClaimAmount, result.InsurancePays, result.OutOfPocket); err == nil {
		response.Chart = base64.StdEncoding.EncodeToString(png)
	}

	ctx.JSON(http.StatusOK, response)
}

// Compare aggregates risk scores over two or more of the user's policies
func (handler *policyHandler) Compare(ctx *gin.Context) {
	var request CompareRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorMessage := "policy_ids is required"
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	comparison, err := handler.simulationService.Compare(ctx, userIDFromContext(ctx), request.PolicyIDs)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("error comparing policies: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	compared := make([]PolicyResponse, 0, len(comparison.Policies))
	for _, policy := range comparison.Policies {
		compared = append(compared, newPolicyResponse(policy))
	}

	ctx.JSON(http.StatusOK, CompareResponse{
		Policies: compared,
		Metrics: ComparisonMetricsResponse{
			AvgCoverageRisk: comparison.Metrics.AvgCoverageRisk,
			AvgCostRisk:     comparison.Metrics.AvgCostRisk,
			AvgDelayRisk:    comparison.Metrics.AvgDelayRisk,
			MinOverall:      comparison.Metrics.MinOverall,
			MaxOverall:      comparison.Metrics.MaxOverall,
		},
		Recommendation: RecommendationResponse{
			PolicyID: comparison.Recommendation.PolicyID,
			Reason:   comparison.Recommendation.Reason,
		},
	})
}

// Stats aggregates the user's analyzed policies for the dashboard
func (handler *policyHandler) Stats(ctx *gin.Context) {
	stats, err := handler.simulationService.Stats(ctx, userIDFromContext(ctx))
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("error aggregating stats: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	recentActivity := make([]ActivityEntryResponse, 0, len(stats.RecentActivity))
	for _, entry := range stats.RecentActivity {
		recentActivity = append(recentActivity, ActivityEntryResponse{
			PolicyID:    entry.PolicyID,
			PolicyType:  entry.PolicyType,
			OverallRisk: entry.OverallRisk,
			UploadTime:  entry.UploadTime,
		})
	}

	ctx.JSON(http.StatusOK, StatsResponse{
		TotalAnalyzed:    stats.TotalAnalyzed,
		AvgRiskScore:     stats.AvgRiskScore,
		PolicyTypes:      stats.PolicyTypes,
		RiskDistribution: stats.RiskDistribution,
		RecentActivity:   recentActivity,
	})
}

// DownloadReportByID renders and downloads the PDF report for a policy
func (handler *policyHandler) DownloadReportByID(ctx *gin.Context) {
	policyID := ctx.Param("id")

	bytes, fileName, err := handler.reportService.GenerateByID(ctx, policyID, userIDFromContext(ctx))
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("could not generate report for policy with id %s: %v", policyID, err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.Writer.WriteHeader(http.StatusOK)
	ctx.Writer.Header().Set("Content-Type", "application/pdf")
	ctx.Writer.Header().Set("Content-Disposition", "attachment; filename="+fileName)
	_, err = ctx.Writer.Write(bytes)

	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("could not write bytes: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}
}

// PolicyTypes lists the supported policy type names
func (handler *policyHandler) PolicyTypes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, PolicyTypesResponse{
		PolicyTypes: []string{
			policies.PolicyTypeHealth,
			policies.PolicyTypeCar,
			policies.PolicyTypeLife,
			policies.PolicyTypeTravel,
			policies.PolicyTypeHome,
			policies.PolicyTypeBike,
		},
	})
}
