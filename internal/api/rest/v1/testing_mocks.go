//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/users"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, name, phone string) (string, error) {
	args := m.Called(ctx, name, phone)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Verify(ctx context.Context, phone, code string) (*users.Session, error) {
	args := m.Called(ctx, phone, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Session), args.Error(1)
}

// MockPolicyAnalysisService is a mock implementation of PolicyAnalysisService
type MockPolicyAnalysisService struct {
	mock.Mock
}

func (m *MockPolicyAnalysisService) Analyze(ctx context.Context, form *multipart.Form, userID string, input policies.AnalysisInput) (*policies.PolicyMeta, error) {
	args := m.Called(ctx, form, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*policies.PolicyMeta), args.Error(1)
}

// MockPolicyMetadataService is a mock implementation of PolicyMetadataService
type MockPolicyMetadataService struct {
	mock.Mock
}

func (m *MockPolicyMetadataService) List(ctx context.Context, userID string, query *policies.PolicyMetaQuery) ([]*policies.PolicyMeta, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*policies.PolicyMeta), args.Error(1)
}

func (m *MockPolicyMetadataService) GetByID(ctx context.Context, policyID, userID string) (*policies.PolicyMeta, error) {
	args := m.Called(ctx, policyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*policies.PolicyMeta), args.Error(1)
}

func (m *MockPolicyMetadataService) DeleteByID(ctx context.Context, policyID, userID string) error {
	args := m.Called(ctx, policyID, userID)
	return args.Error(0)
}

// MockClaimSimulationService is a mock implementation of ClaimSimulationService
type MockClaimSimulationService struct {
	mock.Mock
}

func (m *MockClaimSimulationService) Simulate(ctx context.Context, policyID, userID string, claimAmount float64) (*policies.SimulationResult, error) {
	args := m.Called(ctx, policyID, userID, claimAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*policies.SimulationResult), args.Error(1)
}

func (m *MockClaimSimulationService) Compare(ctx context.Context, userID string, policyIDs []string) (*policies.Comparison, error) {
	args := m.Called(ctx, userID, policyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*policies.Comparison), args.Error(1)
}

func (m *MockClaimSimulationService) Stats(ctx context.Context, userID string) (*policies.PolicyStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*policies.PolicyStats), args.Error(1)
}

// MockReportService is a mock implementation of ReportService
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GenerateByID(ctx context.Context, policyID, userID string) ([]byte, string, error) {
	args := m.Called(ctx, policyID, userID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

// MockChartRenderer is a mock implementation of ChartRenderer
type MockChartRenderer struct {
	mock.Mock
}

func (m *MockChartRenderer) RiskPie(scores policies.RiskScores) ([]byte, error) {
	args := m.Called(scores)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockChartRenderer) RiskBreakdownPie(factors []policies.RiskFactor) ([]byte, error) {
	args := m.Called(factors)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockChartRenderer) ComparisonBars(scores policies.RiskScores) ([]byte, error) {
	args := m.Called(scores)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockChartRenderer) ClaimImpactPie(claimAmount, insurancePays, outOfPocket float64) ([]byte, error) {
	args := m.Called(claimAmount, insurancePays, outOfPocket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
