package app

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/logger"
)

// policyAnalysisService implements the PolicyAnalysisService interface for the
// upload-and-analyze pipeline
type policyAnalysisService struct {
	documentStore policies.DocumentStore
	extractor     policies.DocumentExtractor
	predictor     policies.RiskPredictor
	analyzer      policies.Analyzer
	policyRepo    policies.PolicyRepository
	logger        logger.Logger
	now           func() time.Time
}

// NewPolicyAnalysisService creates a new instance of PolicyAnalysisService
func NewPolicyAnalysisService(
	documentStore policies.DocumentStore,
	extractor policies.DocumentExtractor,
	predictor policies.RiskPredictor,
	analyzer policies.Analyzer,
	policyRepo policies.PolicyRepository,
	logger logger.Logger,
) (policies.PolicyAnalysisService, error) {
	return &policyAnalysisService{
		documentStore: documentStore,
		extractor:     extractor,
		predictor:     predictor,
		analyzer:      analyzer,
		policyRepo:    policyRepo,
		logger:        logger,
		now:           time.Now,
	}, nil
}

// Analyze extracts text from the uploaded PDF, runs the term and risk
// analysis, stores the source document and persists the result.
func (s *policyAnalysisService) Analyze(ctx context.Context, form *multipart.Form, userID string, input policies.AnalysisInput) (*policies.PolicyMeta, error) {
	if form == nil || len(form.File["file"]) == 0 {
		return nil, fmt.Errorf("no file provided in upload request")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	fileHeader := form.File["file"][0]
	fileName := fileHeader.Filename
	if strings.ToLower(filepath.Ext(fileName)) != ".pdf" {
		return nil, fmt.Errorf("only PDF files are allowed")
	}

	content, err := readFileHeader(fileHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	text, pageCount, err := s.extractor.Extract(content)
	if err != nil {
		return nil, fmt.Errorf("could not read PDF file: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("could not extract text from PDF; the file might be scanned or image-based")
	}

	filePath, err := s.documentStore.Save(ctx, fileName, content)
	if err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	hasDisease := input.Disease != "" && !strings.EqualFold(input.Disease, "none")

	scores := s.predictor.PredictRisk(text, input.PolicyType, input.Age, hasDisease)
	coPay := s.predictor.ExtractCoPayPercentage(text)
	deductible := s.predictor.ExtractDeductible(text)

	policy := &policies.PolicyMeta{
		ID:           uuid.New().String(),
		UserID:       userID,
		Filename:     filepath.Base(fileName),
		UploadTime:   s.now(),
		PolicyType:   input.PolicyType,
		DetectedType: s.analyzer.DetectDominantType(text),
		PolicyNumber: s.analyzer.ExtractPolicyNumber(text),
		SumInsured:   s.analyzer.ExtractSumInsured(text),
		Premium:      s.analyzer.ExtractPremium(text),
		KeyDates:     s.analyzer.ExtractKeyDates(text),
		Benefits:     s.analyzer.ExtractBenefits(text),
		Exclusions:   s.analyzer.ExtractExclusions(text),
		Clauses:      s.analyzer.ExtractKeyClauses(text),
		RiskFactors:  s.analyzer.AnalyzeRiskFactors(text, input.Age, input.Disease),
		Coverage: map[string]string{
			"comprehensive":  comprehensiveLabel(text),
			"waiting_period": s.analyzer.ExtractWaitingPeriod(text),
			"co_pay":         fmt.Sprintf("%d%%", coPay),
			"deductible":     deductibleLabel(deductible),
		},
		QualityMetrics: s.analyzer.AnalyzeQuality(text),
		RiskScores:     scores,
		FinancialDetails: policies.FinancialDetails{
			CoPayPercentage: coPay,
			Deductible:      deductible,
			RoomRentCap:     s.predictor.ExtractRoomRentCap(text),
			SubLimits:       s.predictor.ExtractSubLimits(text),
		},
		TextLength: len(text),
		PageCount:  pageCount,
		FilePath:   filePath,
	}

	if err := s.policyRepo.Create(ctx, policy); err != nil {
		// Keep the store consistent with the database
		if delErr := s.documentStore.Delete(ctx, filePath); delErr != nil {
			s.logger.Warn("Failed to remove stored document after create failure: ", delErr)
		}
		return nil, fmt.Errorf("failed to persist analysis: %w", err)
	}

	s.logger.Info("Analyzed policy ", policy.ID, " for user ", userID)
	return policy, nil
}

// policyMetadataService implements the PolicyMetadataService interface
type policyMetadataService struct {
	policyRepo    policies.PolicyRepository
	documentStore policies.DocumentStore
	logger        logger.Logger
}

// NewPolicyMetadataService creates a new instance of PolicyMetadataService
func NewPolicyMetadataService(
	policyRepo policies.PolicyRepository,
	documentStore policies.DocumentStore,
	logger logger.Logger,
) (policies.PolicyMetadataService, error) {
	return &policyMetadataService{
		policyRepo:    policyRepo,
		documentStore: documentStore,
		logger:        logger,
	}, nil
}

func (s *policyMetadataService) List(ctx context.Context, userID string, query *policies.PolicyMetaQuery) ([]*policies.PolicyMeta, error) {
	return s.policyRepo.List(ctx, userID, query)
}

func (s *policyMetadataService) GetByID(ctx context.Context, policyID, userID string) (*policies.PolicyMeta, error) {
	return s.policyRepo.GetByID(ctx, policyID, userID)
}

func (s *policyMetadataService) DeleteByID(ctx context.Context, policyID, userID string) error {
	policy, err := s.policyRepo.GetByID(ctx, policyID, userID)
	if err != nil {
		return err
	}

	if err := s.policyRepo.DeleteByID(ctx, policyID, userID); err != nil {
		return err
	}

	if err := s.documentStore.Delete(ctx, policy.FilePath); err != nil {
		s.logger.Warn("Failed to delete stored document ", policy.FilePath, ": ", err)
	}

	return nil
}

// readFileHeader reads the full content of one multipart file.
func readFileHeader(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	return io.ReadAll(file)
}

func comprehensiveLabel(text string) string {
	if strings.Contains(strings.ToLower(text), "comprehensive") {
		return "Yes"
	}
	return "Limited/Specified"
}

func deductibleLabel(deductible int) string {
	if deductible > 0 {
		return fmt.Sprintf("₹%d", deductible)
	}
	return "Not specified"
}
