package app

import (
	"context"
	"fmt"
	"math"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/logger"
)

// claimSimulationService implements the ClaimSimulationService interface
type claimSimulationService struct {
	policyRepo policies.PolicyRepository
	logger     logger.Logger
}

// NewClaimSimulationService creates a new instance of ClaimSimulationService
func NewClaimSimulationService(
	policyRepo policies.PolicyRepository,
	logger logger.Logger,
) (policies.ClaimSimulationService, error) {
	return &claimSimulationService{
		policyRepo: policyRepo,
		logger:     logger,
	}, nil
}

// Simulate applies the policy's deductible and co-pay terms to a hypothetical
// claim amount. The deductible is applied before the co-pay percentage.
func (s *claimSimulationService) Simulate(ctx context.Context, policyID, userID string, claimAmount float64) (*policies.SimulationResult, error) {
	if claimAmount <= 0 {
		claimAmount = policies.DefaultClaimAmount
	}

	policy, err := s.policyRepo.GetByID(ctx, policyID, userID)
	if err != nil {
		return nil, err
	}

	financial := policy.FinancialDetails
	remaining := claimAmount

	deductibleApplied := 0.0
	if financial.Deductible > 0 {
		deductibleApplied = math.Min(float64(financial.Deductible), remaining)
		remaining -= deductibleApplied
	}

	coPayApplied := 0.0
	if financial.CoPayPercentage > 0 {
		coPayApplied = remaining * float64(financial.CoPayPercentage) / 100
		remaining -= coPayApplied
	}

	insurancePays := remaining
	outOfPocket := claimAmount - insurancePays

	return &policies.SimulationResult{
		ClaimAmount:        claimAmount,
		InsurancePays:      math.Round(insurancePays),
		OutOfPocket:        math.Round(outOfPocket),
		DeductibleApplied:  deductibleApplied,
		CoPayApplied:       math.Round(coPayApplied),
		CoveragePercentage: math.Round(insurancePays/claimAmount*1000) / 10,
	}, nil
}

// Compare aggregates risk scores over two or more of the user's policies.
func (s *claimSimulationService) Compare(ctx context.Context, userID string, policyIDs []string) (*policies.Comparison, error) {
	if len(policyIDs) < 2 {
		return nil, fmt.Errorf("at least 2 policies required for comparison")
	}

	var selected []*policies.PolicyMeta
	for _, policyID := range policyIDs {
		policy, err := s.policyRepo.GetByID(ctx, policyID, userID)
		if err != nil {
			s.logger.Warn("Skipping missing policy ", policyID, " in comparison")
			continue
		}
		selected = append(selected, policy)
	}

	if len(selected) < 2 {
		return nil, fmt.Errorf("selected policies not found")
	}

	metrics := policies.ComparisonMetrics{
		MinOverall: selected[0].RiskScores.OverallRisk,
		MaxOverall: selected[0].RiskScores.OverallRisk,
	}
	best := selected[0]
	for _, policy := range selected {
		scores := policy.RiskScores
		metrics.AvgCoverageRisk += float64(scores.CoverageRisk)
		metrics.AvgCostRisk += float64(scores.CostRisk)
		metrics.AvgDelayRisk += float64(scores.DelayRisk)
		metrics.MinOverall = math.Min(metrics.MinOverall, scores.OverallRisk)
		metrics.MaxOverall = math.Max(metrics.MaxOverall, scores.OverallRisk)
		if scores.OverallRisk < best.RiskScores.OverallRisk {
			best = policy
		}
	}
	count := float64(len(selected))
	metrics.AvgCoverageRisk /= count
	metrics.AvgCostRisk /= count
	metrics.AvgDelayRisk /= count

	return &policies.Comparison{
		Policies: selected,
		Metrics:  metrics,
		Recommendation: policies.Recommendation{
			PolicyID: best.ID,
			Reason: fmt.Sprintf("Lowest overall risk score (%v%%) with %d key benefits",
				best.RiskScores.OverallRisk, len(best.Benefits)),
		},
	}, nil
}

// Stats aggregates all of the user's policies for the dashboard.
func (s *claimSimulationService) Stats(ctx context.Context, userID string) (*policies.PolicyStats, error) {
	query := policies.NewPolicyMetaQuery()
	query.Limit = 100

	list, err := s.policyRepo.List(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	stats := &policies.PolicyStats{
		TotalAnalyzed: len(list),
		PolicyTypes:   make(map[string]int),
		RiskDistribution: map[string]int{
			"Low (0-30)":        0,
			"Moderate (31-60)":  0,
			"High (61-80)":      0,
			"Critical (81-100)": 0,
		},
	}

	if len(list) == 0 {
		return stats, nil
	}

	total := 0.0
	for _, policy := range list {
		risk := policy.RiskScores.OverallRisk
		total += risk
		stats.PolicyTypes[policy.PolicyType]++

		switch {
		case risk <= 30:
			stats.RiskDistribution["Low (0-30)"]++
		case risk <= 60:
			stats.RiskDistribution["Moderate (31-60)"]++
		case risk <= 80:
			stats.RiskDistribution["High (61-80)"]++
		default:
			stats.RiskDistribution["Critical (81-100)"]++
		}
	}
	stats.AvgRiskScore = math.Round(total/float64(len(list))*10) / 10

	for _, policy := range list[:min(5, len(list))] {
		stats.RecentActivity = append(stats.RecentActivity, policies.ActivityEntry{
			PolicyID:    policy.ID,
			PolicyType:  policy.PolicyType,
			OverallRisk: policy.RiskScores.OverallRisk,
			UploadTime:  policy.UploadTime,
		})
	}

	return stats, nil
}
