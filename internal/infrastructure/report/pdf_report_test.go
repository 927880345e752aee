//go:build unit
// +build unit

package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/testutil"
)

func samplePolicy() *policies.PolicyMeta {
	return &policies.PolicyMeta{
		ID:           uuid.New().String(),
		UserID:       uuid.New().String(),
		Filename:     "health-policy.pdf",
		UploadTime:   time.Date(2026, 3, 12, 10, 30, 0, 0, time.UTC),
		PolicyType:   policies.PolicyTypeHealth,
		DetectedType: policies.PolicyTypeHealth,
		PolicyNumber: "HLT/2026/998",
		SumInsured:   "500000",
		Premium:      "12500",
		KeyDates:     policies.KeyDates{IssueDate: "15/01/2026", ExpiryDate: "14/01/2027"},
		Benefits: []policies.Benefit{
			{Text: "Hospitalization expenses and room rent", Type: "coverage"},
		},
		Exclusions: []string{"Cosmetic surgery is not covered under this policy."},
		Clauses: map[string]string{
			"waiting period": "A waiting period of 24 months applies.",
			"sub-limit":      "Not mentioned in document",
		},
		RiskFactors: []policies.RiskFactor{
			{Factor: "Age", Impact: "Medium", Score: 45},
			{Factor: "High co-pay", Impact: "High", Score: 70},
		},
		RiskScores: policies.RiskScores{CoverageRisk: 55, CostRisk: 48, DelayRisk: 30, OverallRisk: 46.3},
		FinancialDetails: policies.FinancialDetails{
			CoPayPercentage: 20,
			Deductible:      5000,
			RoomRentCap:     "2%",
			SubLimits:       map[string]int{"icu": 10000, "surgery": 150000},
		},
		TextLength: 6200,
		PageCount:  12,
		FilePath:   "uploads/20260312_103000_health-policy.pdf",
	}
}

func TestPdfReportRenderer_Render(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	renderer, err := NewPdfReportRenderer(log)
	require.NoError(t, err)

	data, err := renderer.Render(samplePolicy())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPdfReportRenderer_RenderMinimalPolicy(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	renderer, err := NewPdfReportRenderer(log)
	require.NoError(t, err)

	policy := samplePolicy()
	policy.Benefits = nil
	policy.Exclusions = nil
	policy.Clauses = nil
	policy.FinancialDetails = policies.FinancialDetails{}
	policy.RiskScores = policies.RiskScores{CoverageRisk: 20, CostRisk: 15, DelayRisk: 10, OverallRisk: 15.8}

	data, err := renderer.Render(policy)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestBuildRecommendations(t *testing.T) {
	t.Run("flags risky policy terms", func(t *testing.T) {
		policy := samplePolicy()
		policy.RiskScores.OverallRisk = 72
		policy.FinancialDetails.CoPayPercentage = 30
		policy.FinancialDetails.Deductible = 60000

		recs := buildRecommendations(policy)
		assert.Len(t, recs, 5)
		assert.Contains(t, recs[0], "High risk policy")
		assert.Contains(t, recs[2], "60,000")
	})

	t.Run("standard policy gets a default note", func(t *testing.T) {
		policy := samplePolicy()
		policy.RiskScores.OverallRisk = 25
		policy.FinancialDetails = policies.FinancialDetails{}
		policy.Benefits = nil
		policy.Exclusions = nil

		recs := buildRecommendations(policy)
		require.Len(t, recs, 1)
		assert.Contains(t, recs[0], "policy appears standard")
	})
}

func TestFormatRupeeAmount(t *testing.T) {
	assert.Equal(t, "Rs. 500,000", formatRupeeAmount("500000"))
	assert.Equal(t, "Rs. 500,000", formatRupeeAmount("5,00,000"))
	assert.Equal(t, "Not specified", formatRupeeAmount("Not specified"))
	assert.Equal(t, "Not specified", formatRupeeAmount(""))
	assert.Equal(t, "about 5 lakh", formatRupeeAmount("about 5 lakh"))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Rs. 5,000 deductible", sanitize("₹5,000 deductible"))
	assert.Equal(t, "plain text", sanitize("plain text"))
	assert.Equal(t, "emoji ? here", sanitize("emoji \U0001F600 here"))
}
