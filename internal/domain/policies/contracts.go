package policies

import (
	"context"
	"mime/multipart"
)

// PolicyAnalysisService defines the upload-and-analyze pipeline.
type PolicyAnalysisService interface {
	// Analyze extracts text from the uploaded PDF, runs the full term and
	// risk analysis, stores the source document and persists the result.
	Analyze(ctx context.Context, form *multipart.Form, userID string, input AnalysisInput) (*PolicyMeta, error)
}

// PolicyMetadataService defines methods for retrieving and deleting analyzed
// policies. Every operation is scoped to the requesting user.
type PolicyMetadataService interface {
	// List retrieves a user's policies considering a query filter when set.
	List(ctx context.Context, userID string, query *PolicyMetaQuery) ([]*PolicyMeta, error)

	// GetByID retrieves one of the user's policies by ID.
	GetByID(ctx context.Context, policyID, userID string) (*PolicyMeta, error)

	// DeleteByID deletes a policy row and its stored source document.
	DeleteByID(ctx context.Context, policyID, userID string) error
}

// ReportService renders downloadable PDF reports for analyzed policies.
type ReportService interface {
	// GenerateByID renders the report for one of the user's policies and
	// returns the PDF bytes together with a suggested download filename.
	GenerateByID(ctx context.Context, policyID, userID string) ([]byte, string, error)
}

// ClaimSimulationService answers what-if questions over analyzed policies.
type ClaimSimulationService interface {
	// Simulate applies the policy's deductible and co-pay terms to a
	// hypothetical claim amount.
	Simulate(ctx context.Context, policyID, userID string, claimAmount float64) (*SimulationResult, error)

	// Compare aggregates risk scores over two or more of the user's
	// policies and recommends the one with the lowest overall risk.
	Compare(ctx context.Context, userID string, policyIDs []string) (*Comparison, error)

	// Stats aggregates all of the user's policies for the dashboard.
	Stats(ctx context.Context, userID string) (*PolicyStats, error)
}

// PolicyRepository defines the interface for policy persistence.
type PolicyRepository interface {
	// Create adds a new PolicyMeta to the database
	Create(ctx context.Context, policy *PolicyMeta) error
	// List lists a user's policies with optional filter
	List(ctx context.Context, userID string, query *PolicyMetaQuery) ([]*PolicyMeta, error)
	// GetByID retrieves a user's policy by ID
	GetByID(ctx context.Context, policyID, userID string) (*PolicyMeta, error)
	// DeleteByID deletes a user's policy by ID
	DeleteByID(ctx context.Context, policyID, userID string) error
}

// DocumentStore is an interface for storing uploaded source documents.
type DocumentStore interface {
	// Save persists the uploaded file content and returns the stored path.
	Save(ctx context.Context, fileName string, content []byte) (string, error)

	// Download retrieves a stored document's content by path.
	Download(ctx context.Context, path string) ([]byte, error)

	// Delete removes a stored document by path.
	Delete(ctx context.Context, path string) error
}

// DocumentExtractor pulls plain text out of an uploaded document.
type DocumentExtractor interface {
	// Extract returns the concatenated page text and the page count.
	Extract(data []byte) (string, int, error)
}

// RiskPredictor scores claim risk and extracts cost-sharing terms from
// policy text using the weighted keyword model.
type RiskPredictor interface {
	// PredictRisk scores coverage, cost and delay risk for the document
	// adjusted by policy type and the user's age and disease history.
	PredictRisk(text, policyType string, age int, hasDisease bool) RiskScores

	// ExtractCoPayPercentage returns the co-pay percentage, 10 when co-pay
	// is mentioned without a number, 0 when absent.
	ExtractCoPayPercentage(text string) int

	// ExtractDeductible returns the deductible amount in rupees, 0 when absent.
	ExtractDeductible(text string) int

	// ExtractRoomRentCap returns the room rent cap as an amount or
	// percentage string, empty when absent.
	ExtractRoomRentCap(text string) string

	// ExtractSubLimits returns per-category sub-limit amounts.
	ExtractSubLimits(text string) map[string]int
}

// Analyzer extracts the descriptive policy terms a report is built from.
type Analyzer interface {
	// DetectPolicyType scores the document against all known policy types.
	DetectPolicyType(text string) []TypeMatch

	// DetectDominantType returns the single best-matching coarse type, or
	// "Unknown" when nothing matches.
	DetectDominantType(text string) string

	ExtractPolicyNumber(text string) string
	ExtractSumInsured(text string) string
	ExtractPremium(text string) string
	ExtractKeyDates(text string) KeyDates
	ExtractBenefits(text string) []Benefit
	ExtractExclusions(text string) []string
	ExtractKeyClauses(text string) map[string]string
	ExtractWaitingPeriod(text string) string

	// AnalyzeQuality scores clarity, comprehensiveness and transparency.
	AnalyzeQuality(text string) QualityMetrics

	// AnalyzeRiskFactors derives per-factor risks from the document and the
	// user profile.
	AnalyzeRiskFactors(text string, age int, disease string) []RiskFactor
}

// ReportRenderer renders a policy analysis into a PDF document.
type ReportRenderer interface {
	Render(policy *PolicyMeta) ([]byte, error)
}

// ChartRenderer renders analysis charts as PNG images.
type ChartRenderer interface {
	// RiskPie shows the split between the three risk categories.
	RiskPie(scores RiskScores) ([]byte, error)

	// RiskBreakdownPie shows risk factors grouped by impact level.
	RiskBreakdownPie(factors []RiskFactor) ([]byte, error)

	// ComparisonBars compares the policy's scores against industry averages.
	ComparisonBars(scores RiskScores) ([]byte, error)

	// ClaimImpactPie shows the insurer/insured split for a simulated claim.
	ClaimImpactPie(claimAmount, insurancePays, outOfPocket float64) ([]byte, error)
}
