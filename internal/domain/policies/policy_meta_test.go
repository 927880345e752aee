//go:build unit
// +build unit

package policies

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPolicyMeta() *PolicyMeta {
	return &PolicyMeta{
		ID:         uuid.New().String(),
		UserID:     uuid.New().String(),
		Filename:   "health-policy.pdf",
		UploadTime: time.Now(),
		PolicyType: PolicyTypeHealth,
		RiskScores: RiskScores{CoverageRisk: 55, CostRisk: 40, DelayRisk: 25, OverallRisk: 42.3},
		TextLength: 4200,
		PageCount:  12,
		FilePath:   "uploads/20260824_101500_health-policy.pdf",
	}
}

func TestPolicyMetaValidation(t *testing.T) {
	t.Run("valid policy", func(t *testing.T) {
		require.NoError(t, validPolicyMeta().Validate())
	})

	t.Run("missing id", func(t *testing.T) {
		p := validPolicyMeta()
		p.ID = ""
		require.Error(t, p.Validate())
	})

	t.Run("non uuid user id", func(t *testing.T) {
		p := validPolicyMeta()
		p.UserID = "user-42"
		require.Error(t, p.Validate())
	})

	t.Run("zero page count", func(t *testing.T) {
		p := validPolicyMeta()
		p.PageCount = 0
		require.Error(t, p.Validate())
	})

	t.Run("risk score above 100", func(t *testing.T) {
		p := validPolicyMeta()
		p.RiskScores.CostRisk = 140
		require.Error(t, p.Validate())
	})
}

func TestRiskScoresLevel(t *testing.T) {
	tests := []struct {
		overall float64
		level   string
	}{
		{12, RiskLevelLow},
		{30, RiskLevelLow},
		{30.1, RiskLevelModerate},
		{60, RiskLevelModerate},
		{75, RiskLevelHigh},
		{80.5, RiskLevelCritical},
	}

	for _, tt := range tests {
		scores := RiskScores{OverallRisk: tt.overall}
		assert.Equal(t, tt.level, scores.Level(), "overall %.1f", tt.overall)
	}
}

func TestPolicyMetaQueryValidation(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, NewPolicyMetaQuery().Validate())
	})

	t.Run("limit above cap", func(t *testing.T) {
		q := NewPolicyMetaQuery()
		q.Limit = 500
		require.Error(t, q.Validate())
	})

	t.Run("invalid sort order", func(t *testing.T) {
		q := NewPolicyMetaQuery()
		q.SortOrder = "sideways"
		require.Error(t, q.Validate())
	})

	t.Run("invalid sort column", func(t *testing.T) {
		q := NewPolicyMetaQuery()
		q.SortBy = "premium; drop table policies"
		require.Error(t, q.Validate())
	})
}

func TestAnalysisInputValidation(t *testing.T) {
	in := &AnalysisInput{Age: 35, PolicyType: PolicyTypeHealth}
	require.NoError(t, in.Validate())

	in.Age = 150
	require.Error(t, in.Validate())

	in = &AnalysisInput{Age: 35}
	require.Error(t, in.Validate())
}
