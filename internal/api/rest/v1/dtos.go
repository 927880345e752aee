package v1

import (
	"time"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
)

// ErrorResponse carries a human-readable error message.
type ErrorResponse struct {
	Message *string `json:"message,omitempty"`
}

// InfoResponse carries a human-readable status message.
type InfoResponse struct {
	Message *string `json:"message,omitempty"`
}

// LoginRequest starts the OTP login flow.
type LoginRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// LoginResponse acknowledges that a one-time code was dispatched. DevCode is
// populated only when OTP exposure is enabled for development setups.
type LoginResponse struct {
	Message       string  `json:"message"`
	OtpTTLSeconds int     `json:"otp_ttl_seconds"`
	DevCode       *string `json:"dev_code,omitempty"`
}

// VerifyRequest redeems a one-time code.
type VerifyRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// SessionResponse describes the logged-in user after OTP verification.
type SessionResponse struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	ExpiresAt time.Time `json:"expires_at"`
}

// KeyDatesResponse holds the policy validity dates as found in the text.
type KeyDatesResponse struct {
	IssueDate  string `json:"issue_date"`
	ExpiryDate string `json:"expiry_date"`
}

// BenefitResponse is one extracted coverage benefit.
type BenefitResponse struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// RiskFactorResponse describes one identified risk with severity and advice.
type RiskFactorResponse struct {
	Factor         string `json:"factor"`
	Impact         string `json:"impact"`
	Score          int    `json:"score"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

// QualityMetricsResponse scores how the policy document reads.
type QualityMetricsResponse struct {
	Clarity           int `json:"clarity"`
	Comprehensiveness int `json:"comprehensiveness"`
	Transparency      int `json:"transparency"`
}

// RiskScoresResponse holds the per-category risk scores and their blend.
type RiskScoresResponse struct {
	CoverageRisk int     `json:"coverage_risk"`
	CostRisk     int     `json:"cost_risk"`
	DelayRisk    int     `json:"delay_risk"`
	OverallRisk  float64 `json:"overall_risk"`
	RiskLevel    string  `json:"risk_level"`
}

// FinancialDetailsResponse holds the extracted cost-sharing terms.
type FinancialDetailsResponse struct {
	CoPayPercentage int            `json:"co_pay_percentage"`
	Deductible      int            `json:"deductible"`
	RoomRentCap     string         `json:"room_rent_cap"`
	SubLimits       map[string]int `json:"sub_limits"`
}

// PolicyResponse is the full analysis result for one policy document.
type PolicyResponse struct {
	ID               string                   `json:"id"`
	Filename         string                   `json:"filename"`
	UploadTime       time.Time                `json:"upload_time"`
	PolicyType       string                   `json:"policy_type"`
	DetectedType     string                   `json:"detected_type"`
	PolicyNumber     string                   `json:"policy_number"`
	SumInsured       string                   `json:"sum_insured"`
	Premium          string                   `json:"premium"`
	KeyDates         KeyDatesResponse         `json:"key_dates"`
	Benefits         []BenefitResponse        `json:"benefits"`
	Exclusions       []string                 `json:"exclusions"`
	Clauses          map[string]string        `json:"clauses"`
	RiskFactors      []RiskFactorResponse     `json:"risk_factors"`
	Coverage         map[string]string        `json:"coverage"`
	QualityMetrics   QualityMetricsResponse   `json:"quality_metrics"`
	RiskScores       RiskScoresResponse       `json:"risk_scores"`
	FinancialDetails FinancialDetailsResponse `json:"financial_details"`
	TextLength       int                      `json:"text_length"`
	PageCount        int                      `json:"page_count"`
}

// AnalyzeResponse is the upload-and-analyze result together with rendered
// charts. Visualization values are base64-encoded PNGs keyed by chart name.
type AnalyzeResponse struct {
	Policy         PolicyResponse    `json:"policy"`
	Visualizations map[string]string `json:"visualizations"`
}

// SimulateRequest asks for a payout split over a hypothetical claim.
type SimulateRequest struct {
	PolicyID    string  `json:"policy_id" binding:"required"`
	ClaimAmount float64 `json:"claim_amount"`
}

// SimulateResponse is the payout split for one hypothetical claim. Chart is a
// base64-encoded PNG of the insurer/insured split, empty when rendering failed.
type SimulateResponse struct {
	PolicyID           string  `json:"policy_id"`
	ClaimAmount        float64 `json:"claim_amount"`
	InsurancePays      float64 `json:"insurance_pays"`
	OutOfPocket        float64 `json:"out_of_pocket"`
	DeductibleApplied  float64 `json:"deductible_applied"`
	CoPayApplied       float64 `json:"co_pay_applied"`
	CoveragePercentage float64 `json:"coverage_percentage"`
	Chart              string  `json:"chart,omitempty"`
}

// CompareRequest selects the policies to compare.
type CompareRequest struct {
	PolicyIDs []string `json:"policy_ids" binding:"required"`
}

// ComparisonMetricsResponse aggregates risk scores over the compared policies.
type ComparisonMetricsResponse struct {
	AvgCoverageRisk float64 `json:"avg_coverage_risk"`
	AvgCostRisk     float64 `json:"avg_cost_risk"`
	AvgDelayRisk    float64 `json:"avg_delay_risk"`
	MinOverall      float64 `json:"min_overall"`
	MaxOverall      float64 `json:"max_overall"`
}

// RecommendationResponse names the preferred policy from a comparison.
type RecommendationResponse struct {
	PolicyID string `json:"policy_id"`
	Reason   string `json:"reason"`
}

// CompareResponse is the result of comparing two or more analyzed policies.
type CompareResponse struct {
	Policies       []PolicyResponse          `json:"policies"`
	Metrics        ComparisonMetricsResponse `json:"metrics"`
	Recommendation RecommendationResponse    `json:"recommendation"`
}

// ActivityEntryResponse is one row of the dashboard recent-activity feed.
type ActivityEntryResponse struct {
	PolicyID    string    `json:"policy_id"`
	PolicyType  string    `json:"policy_type"`
	OverallRisk float64   `json:"overall_risk"`
	UploadTime  time.Time `json:"upload_time"`
}

// StatsResponse aggregates the user's analyzed policies for the dashboard.
type StatsResponse struct {
	TotalAnalyzed    int                     `json:"total_analyzed"`
	AvgRiskScore     float64                 `json:"avg_risk_score"`
	PolicyTypes      map[string]int          `json:"policy_types"`
	RiskDistribution map[string]int          `json:"risk_distribution"`
	RecentActivity   []ActivityEntryResponse `json:"recent_activity"`
}

// PolicyTypesResponse lists the supported policy type names.
type PolicyTypesResponse struct {
	PolicyTypes []string `json:"policy_types"`
}

// newPolicyResponse maps a domain policy onto its response DTO.
func newPolicyResponse(policy *policies.PolicyMeta) PolicyResponse {
	benefits := make([]BenefitResponse, 0, len(policy.Benefits))
	for _, benefit := range policy.Benefits {
		benefits = append(benefits, BenefitResponse{Text: benefit.Text, Type: benefit.Type})
	}

	riskFactors := make([]RiskFactorResponse, 0, len(policy.RiskFactors))
	for _, factor := range policy.RiskFactors {
		riskFactors = append(riskFactors, RiskFactorResponse{
			Factor:         factor.Factor,
			Impact:         factor.Impact,
			Score:          factor.Score,
			Description:    factor.Description,
			Recommendation: factor.Recommendation,
		})
	}

	return PolicyResponse{
		ID:           policy.ID,
		Filename:     policy.Filename,
		UploadTime:   policy.UploadTime,
		PolicyType:   policy.PolicyType,
		DetectedType: policy.DetectedType,
		PolicyNumber: policy.PolicyNumber,
		SumInsured:   policy.SumInsured,
		Premium:      policy.Premium,
		KeyDates: KeyDatesResponse{
			IssueDate:  policy.KeyDates.IssueDate,
			ExpiryDate: policy.KeyDates.ExpiryDate,
		},
		Benefits:    benefits,
		Exclusions:  policy.Exclusions,
		Clauses:     policy.Clauses,
		RiskFactors: riskFactors,
		Coverage:    policy.Coverage,
		QualityMetrics: QualityMetricsResponse{
			Clarity:           policy.QualityMetrics.Clarity,
			Comprehensiveness: policy.QualityMetrics.Comprehensiveness,
			Transparency:      policy.QualityMetrics.Transparency,
		},
		RiskScores: RiskScoresResponse{
			CoverageRisk: policy.RiskScores.CoverageRisk,
			CostRisk:     policy.RiskScores.CostRisk,
			DelayRisk:    policy.RiskScores.DelayRisk,
			OverallRisk:  policy.RiskScores.OverallRisk,
			RiskLevel:    policy.RiskScores.Level(),
		},
		FinancialDetails: FinancialDetailsResponse{
			CoPayPercentage: policy.FinancialDetails.CoPayPercentage,
			Deductible:      policy.FinancialDetails.Deductible,
			RoomRentCap:     policy.FinancialDetails.RoomRentCap,
			SubLimits:       policy.FinancialDetails.SubLimits,
		},
		TextLength: policy.TextLength,
		PageCount:  policy.PageCount,
	}
}
