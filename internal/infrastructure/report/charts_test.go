//go:build unit
// +build unit

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/testutil"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func setupChartRenderer(t *testing.T) policies.ChartRenderer {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	renderer, err := NewChartRenderer(log)
	require.NoError(t, err)
	return renderer
}

func TestChartRenderer_RiskPie(t *testing.T) {
	renderer := setupChartRenderer(t)

	data, err := renderer.RiskPie(policies.RiskScores{CoverageRisk: 55, CostRisk: 40, DelayRisk: 25})
	require.NoError(t, err)
	assert.Equal(t, pngMagic, data[:4])
}

func TestChartRenderer_RiskPie_ZeroScores(t *testing.T) {
	renderer := setupChartRenderer(t)

	data, err := renderer.RiskPie(policies.RiskScores{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestChartRenderer_RiskBreakdownPie(t *testing.T) {
	renderer := setupChartRenderer(t)

	factors := []policies.RiskFactor{
		{Factor: "Age", Impact: "High"},
		{Factor: "Co-pay", Impact: "High"},
		{Factor: "Deductible", Impact: "Medium"},
	}

	data, err := renderer.RiskBreakdownPie(factors)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, data[:4])
}

func TestChartRenderer_RiskBreakdownPie_NoFactors(t *testing.T) {
	renderer := setupChartRenderer(t)

	_, err := renderer.RiskBreakdownPie(nil)
	assert.Error(t, err)
}

func TestChartRenderer_ComparisonBars(t *testing.T) {
	renderer := setupChartRenderer(t)

	data, err := renderer.ComparisonBars(policies.RiskScores{CoverageRisk: 60, CostRisk: 45, DelayRisk: 20})
	require.NoError(t, err)
	assert.Equal(t, pngMagic, data[:4])
}

func TestChartRenderer_ClaimImpactPie(t *testing.T) {
	renderer := setupChartRenderer(t)

	data, err := renderer.ClaimImpactPie(500000, 420000, 80000)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, data[:4])
}

func TestChartRenderer_ClaimImpactPie_InvalidAmount(t *testing.T) {
	renderer := setupChartRenderer(t)

	_, err := renderer.ClaimImpactPie(0, 0, 0)
	assert.Error(t, err)
}
