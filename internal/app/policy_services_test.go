//go:build unit
// +build unit

package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/infrastructure/analysis"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/testutil"
)

const samplePolicyText = `Health Insurance Policy. Policy Number: HLT/2026/777.
Sum Insured: Rs. 500000. Annual Premium: Rs. 12,500.
This policy covers hospitalization expenses and room rent.
A waiting period of 24 months applies for pre-existing conditions.
Cosmetic surgery is not covered under this policy at any time.
Co-pay: 20% applies for senior citizens. Deductible: Rs. 5000 per claim.`

type analysisFixture struct {
	store   *MockDocumentStore
	extract *MockDocumentExtractor
	repo    *MockPolicyRepository
	service policies.PolicyAnalysisService
}

func setupAnalysisService(t *testing.T) *analysisFixture {
	t.Helper()

	log := testutil.SetupTestLogger(t)

	predictor, err := analysis.NewRiskPredictor(log)
	require.NoError(t, err)
	analyzer, err := analysis.NewAnalyzer(predictor, log)
	require.NoError(t, err)

	f := &analysisFixture{
		store:   &MockDocumentStore{},
		extract: &MockDocumentExtractor{},
		repo:    &MockPolicyRepository{},
	}

	service, err := NewPolicyAnalysisService(f.store, f.extract, predictor, analyzer, f.repo, log)
	require.NoError(t, err)
	f.service = service
	return f
}

func TestAnalyze_HappyPath(t *testing.T) {
	f := setupAnalysisService(t)
	userID := uuid.New().String()

	form, err := testutil.CreateTestFileAndForm(t, "health-policy.pdf", []byte("%PDF-1.4 test"))
	require.NoError(t, err)

	f.extract.On("Extract", mock.Anything).Return(samplePolicyText, 6, nil)
	f.store.On("Save", mock.Anything, "health-policy.pdf", mock.Anything).
		Return("uploads/20260824_120000_health-policy.pdf", nil)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(p *policies.PolicyMeta) bool {
		return p.UserID == userID && p.PolicyType == policies.PolicyTypeHealth
	})).Return(nil)

	policy, err := f.service.Analyze(context.Background(), form, userID, policies.AnalysisInput{
		Age:        35,
		PolicyType: policies.PolicyTypeHealth,
	})
	require.NoError(t, err)

	assert.Equal(t, "health-policy.pdf", policy.Filename)
	assert.Equal(t, policies.PolicyTypeHealth, policy.DetectedType)
	assert.Equal(t, "HLT/2026/777", policy.PolicyNumber)
	assert.Equal(t, 20, policy.FinancialDetails.CoPayPercentage)
	assert.Equal(t, 5000, policy.FinancialDetails.Deductible)
	assert.Equal(t, 6, policy.PageCount)
	assert.Greater(t, policy.RiskScores.OverallRisk, 0.0)
	assert.NotEmpty(t, policy.Exclusions)
	assert.Equal(t, "20%", policy.Coverage["co_pay"])

	f.repo.AssertExpectations(t)
	f.store.AssertExpectations(t)
}

func TestAnalyze_RejectsNonPdf(t *testing.T) {
	f := setupAnalysisService(t)

	form, err := testutil.CreateTestFileAndForm(t, "policy.txt", []byte("plain text"))
	require.NoError(t, err)

	_, err = f.service.Analyze(context.Background(), form, uuid.New().String(), policies.AnalysisInput{
		Age:        35,
		PolicyType: policies.PolicyTypeHealth,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only PDF files are allowed")
}

func TestAnalyze_RejectsEmptyForm(t *testing.T) {
	f := setupAnalysisService(t)

	_, err := f.service.Analyze(context.Background(), testutil.CreateEmptyForm(), uuid.New().String(), policies.AnalysisInput{
		Age:        35,
		PolicyType: policies.PolicyTypeHealth,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no file provided")
}

func TestAnalyze_RejectsInvalidInput(t *testing.T) {
	f := setupAnalysisService(t)

	form, err := testutil.CreateTestFileAndForm(t, "policy.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)

	_, err = f.service.Analyze(context.Background(), form, uuid.New().String(), policies.AnalysisInput{
		Age: 35, // missing policy type
	})
	assert.Error(t, err)
}

func TestAnalyze_EmptyTextFails(t *testing.T) {
	f := setupAnalysisService(t)

	form, err := testutil.CreateTestFileAndForm(t, "scanned.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)

	f.extract.On("Extract", mock.Anything).Return("   \n ", 3, nil)

	_, err = f.service.Analyze(context.Background(), form, uuid.New().String(), policies.AnalysisInput{
		Age:        35,
		PolicyType: policies.PolicyTypeHealth,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scanned or image-based")
}

func TestAnalyze_CleansUpStoredDocumentOnPersistFailure(t *testing.T) {
	f := setupAnalysisService(t)

	form, err := testutil.CreateTestFileAndForm(t, "policy.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)

	f.extract.On("Extract", mock.Anything).Return(samplePolicyText, 6, nil)
	f.store.On("Save", mock.Anything, "policy.pdf", mock.Anything).Return("uploads/stored.pdf", nil)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("db down"))
	f.store.On("Delete", mock.Anything, "uploads/stored.pdf").Return(nil)

	_, err = f.service.Analyze(context.Background(), form, uuid.New().String(), policies.AnalysisInput{
		Age:        35,
		PolicyType: policies.PolicyTypeHealth,
	})
	require.Error(t, err)
	f.store.AssertCalled(t, "Delete", mock.Anything, "uploads/stored.pdf")
}

func TestMetadataService_DeleteRemovesDocument(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	userID := uuid.New().String()
	policy := policyWithTerms(userID, 0, 0, 40)

	repo := &MockPolicyRepository{}
	store := &MockDocumentStore{}
	repo.On("GetByID", mock.Anything, policy.ID, userID).Return(policy, nil)
	repo.On("DeleteByID", mock.Anything, policy.ID, userID).Return(nil)
	store.On("Delete", mock.Anything, policy.FilePath).Return(nil)

	svc, err := NewPolicyMetadataService(repo, store, log)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByID(context.Background(), policy.ID, userID))
	repo.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestMetadataService_DeleteMissingPolicy(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	repo := &MockPolicyRepository{}
	repo.On("GetByID", mock.Anything, "missing", mock.Anything).Return(nil, fmt.Errorf("policy with ID missing not found"))

	svc, err := NewPolicyMetadataService(repo, &MockDocumentStore{}, log)
	require.NoError(t, err)

	err = svc.DeleteByID(context.Background(), "missing", uuid.New().String())
	assert.Error(t, err)
}

func TestReportService_GenerateByID(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	userID := uuid.New().String()
	policy := policyWithTerms(userID, 10, 5000, 45)

	repo := &MockPolicyRepository{}
	renderer := &MockReportRenderer{}
	repo.On("GetByID", mock.Anything, policy.ID, userID).Return(policy, nil)
	renderer.On("Render", policy).Return([]byte("%PDF-1.4 report"), nil)

	svc, err := NewReportService(repo, renderer, log)
	require.NoError(t, err)

	data, fileName, err := svc.GenerateByID(context.Background(), policy.ID, userID)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, fmt.Sprintf("ClaimGuard_Report_%s.pdf", policy.ID), fileName)
}
