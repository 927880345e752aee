package policies

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Known policy type names. DetectPolicyType scores a document against these.
const (
	PolicyTypeHealth = "Health Insurance"
	PolicyTypeCar    = "Car Insurance"
	PolicyTypeLife   = "Life Insurance"
	PolicyTypeTravel = "Travel Insurance"
	PolicyTypeHome   = "Home Insurance"
	PolicyTypeBike   = "Bike Insurance"
)

// Risk level labels derived from the overall risk score.
const (
	RiskLevelLow      = "LOW"
	RiskLevelModerate = "MODERATE"
	RiskLevelHigh     = "HIGH"
	RiskLevelCritical = "CRITICAL"
)

// RiskScores holds the three per-category risk scores plus their weighted
// blend. Category scores are percentages in [0, 100].
type RiskScores struct {
	CoverageRisk int
	CostRisk     int
	DelayRisk    int
	OverallRisk  float64
}

// Level maps the overall risk score onto its label.
func (s RiskScores) Level() string {
	switch {
	case s.OverallRisk <= 30:
		return RiskLevelLow
	case s.OverallRisk <= 60:
		return RiskLevelModerate
	case s.OverallRisk <= 80:
		return RiskLevelHigh
	default:
		return RiskLevelCritical
	}
}

// FinancialDetails holds the cost-sharing terms extracted from a policy.
type FinancialDetails struct {
	CoPayPercentage int
	Deductible      int
	RoomRentCap     string
	SubLimits       map[string]int
}

// RiskFactor describes one identified risk with its severity and advice.
type RiskFactor struct {
	Factor         string
	Impact         string
	Score          int
	Description    string
	Recommendation string
}

// QualityMetrics scores how a policy document reads, each in [0, 100].
type QualityMetrics struct {
	Clarity           int
	Comprehensiveness int
	Transparency      int
}

// Benefit is one extracted coverage benefit.
type Benefit struct {
	Text string
	Type string
}

// KeyDates holds the extracted policy validity dates as found in the text.
type KeyDates struct {
	IssueDate  string
	ExpiryDate string
}

// TypeMatch is one candidate policy type with its detection confidence.
type TypeMatch struct {
	Type            string
	Confidence      float64
	Score           float64
	MatchedKeywords []string
}

// PolicyMeta entity: one analyzed policy document.
type PolicyMeta struct {
	ID               string    `validate:"required,uuid4"`
	UserID           string    `validate:"required,uuid4"`
	Filename         string    `validate:"required,min=1,max=255"`
	UploadTime       time.Time `validate:"required"`
	PolicyType       string    `validate:"required,min=1,max=50"`
	DetectedType     string
	PolicyNumber     string
	SumInsured       string
	Premium          string
	KeyDates         KeyDates
	Benefits         []Benefit
	Exclusions       []string
	Clauses          map[string]string
	RiskFactors      []RiskFactor
	Coverage         map[string]string
	QualityMetrics   QualityMetrics
	RiskScores       RiskScores
	FinancialDetails FinancialDetails
	TextLength       int    `validate:"min=1"`
	PageCount        int    `validate:"min=1"`
	FilePath         string `validate:"required"`
}

// Validate for validating PolicyMeta struct
func (p *PolicyMeta) Validate() error {
	validate := validator.New()

	err := validate.Struct(p)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	if p.RiskScores.CoverageRisk < 0 || p.RiskScores.CoverageRisk > 100 ||
		p.RiskScores.CostRisk < 0 || p.RiskScores.CostRisk > 100 ||
		p.RiskScores.DelayRisk < 0 || p.RiskScores.DelayRisk > 100 {
		return fmt.Errorf("risk scores must be within [0, 100]")
	}

	return nil
}

// AnalysisInput carries the user profile submitted alongside an upload.
type AnalysisInput struct {
	Age        int    `validate:"min=0,max=120"`
	Disease    string `validate:"max=100"`
	PolicyType string `validate:"required,min=1,max=50"`
}

// Validate for validating AnalysisInput struct
func (in *AnalysisInput) Validate() error {
	validate := validator.New()
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("validation failed for AnalysisInput: %w", err)
	}
	return nil
}
