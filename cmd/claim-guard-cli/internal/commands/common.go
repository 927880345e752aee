package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/config"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// analyzeDocument runs the full term and risk analysis over an already
// extracted document, mirroring what the REST upload pipeline produces.
func analyzeDocument(
	predictor policies.RiskPredictor,
	analyzer policies.Analyzer,
	filePath, text string,
	pageCount int,
	input policies.AnalysisInput,
) (*policies.PolicyMeta, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("could not extract text from PDF; the file might be scanned or image-based")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hasDisease := input.Disease != "" && !strings.EqualFold(input.Disease, "none")

	scores := predictor.PredictRisk(text, input.PolicyType, input.Age, hasDisease)
	coPay := predictor.ExtractCoPayPercentage(text)
	deductible := predictor.ExtractDeductible(text)

	coPayLabel := fmt.Sprintf("%d%%", coPay)
	deductibleLabel := "Not specified"
	if deductible > 0 {
		deductibleLabel = fmt.Sprintf("₹%d", deductible)
	}
	comprehensive := "Limited/Specified"
	if strings.Contains(strings.ToLower(text), "comprehensive") {
		comprehensive = "Yes"
	}

	return &policies.PolicyMeta{
		ID:           uuid.New().String(),
		UserID:       uuid.New().String(),
		Filename:     filepath.Base(filePath),
		UploadTime:   time.Now(),
		PolicyType:   input.PolicyType,
		DetectedType: analyzer.DetectDominantType(text),
		PolicyNumber: analyzer.ExtractPolicyNumber(text),
		SumInsured:   analyzer.ExtractSumInsured(text),
		Premium:      analyzer.ExtractPremium(text),
		KeyDates:     analyzer.ExtractKeyDates(text),
		Benefits:     analyzer.ExtractBenefits(text),
		Exclusions:   analyzer.ExtractExclusions(text),
		Clauses:      analyzer.ExtractKeyClauses(text),
		RiskFactors:  analyzer.AnalyzeRiskFactors(text, input.Age, input.Disease),
		Coverage: map[string]string{
			"comprehensive":  comprehensive,
			"waiting_period": analyzer.ExtractWaitingPeriod(text),
			"co_pay":         coPayLabel,
			"deductible":     deductibleLabel,
		},
		QualityMetrics: analyzer.AnalyzeQuality(text),
		RiskScores:     scores,
		FinancialDetails: policies.FinancialDetails{
			CoPayPercentage: coPay,
			Deductible:      deductible,
			RoomRentCap:     predictor.ExtractRoomRentCap(text),
			SubLimits:       predictor.ExtractSubLimits(text),
		},
		TextLength: len(text),
		PageCount:  pageCount,
		FilePath:   filePath,
	}, nil
}
