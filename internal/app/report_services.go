package app

import (
	"context"
	"fmt"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/logger"
)

// reportService implements the ReportService interface
type reportService struct {
	policyRepo policies.PolicyRepository
	renderer   policies.ReportRenderer
	logger     logger.Logger
}

// NewReportService creates a new instance of ReportService
func NewReportService(
	policyRepo policies.PolicyRepository,
	renderer policies.ReportRenderer,
	logger logger.Logger,
) (policies.ReportService, error) {
	return &reportService{
		policyRepo: policyRepo,
		renderer:   renderer,
		logger:     logger,
	}, nil
}

// GenerateByID renders the analysis report for one of the user's policies.
func (s *reportService) GenerateByID(ctx context.Context, policyID, userID string) ([]byte, string, error) {
	policy, err := s.policyRepo.GetByID(ctx, policyID, userID)
	if err != nil {
		return nil, "", err
	}

	data, err := s.renderer.Render(policy)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate report: %w", err)
	}

	fileName := fmt.Sprintf("ClaimGuard_Report_%s.pdf", policy.ID)
	s.logger.Info("Generated report ", fileName)
	return data, fileName, nil
}
