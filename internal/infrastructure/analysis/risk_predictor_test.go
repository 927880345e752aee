//go:build unit
// +build unit

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/testutil"
)

func setupPredictor(t *testing.T) policies.RiskPredictor {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	predictor, err := NewRiskPredictor(log)
	require.NoError(t, err)
	return predictor
}

func TestPredictRisk_BaseScoresOnEmptyText(t *testing.T) {
	predictor := setupPredictor(t)

	scores := predictor.PredictRisk("", "Unknown", 30, false)

	assert.Equal(t, 20, scores.CoverageRisk)
	assert.Equal(t, 15, scores.CostRisk)
	assert.Equal(t, 10, scores.DelayRisk)
	// 20*0.4 + 15*0.35 + 10*0.25
	assert.Equal(t, 15.8, scores.OverallRisk)
}

func TestPredictRisk_PolicyTypeAdjustments(t *testing.T) {
	predictor := setupPredictor(t)

	health := predictor.PredictRisk("", policies.PolicyTypeHealth, 30, false)
	car := predictor.PredictRisk("", policies.PolicyTypeCar, 30, false)
	life := predictor.PredictRisk("", policies.PolicyTypeLife, 30, false)

	assert.Equal(t, 30, health.CoverageRisk)
	assert.Equal(t, 10, car.CoverageRisk)
	assert.Equal(t, 15, life.CoverageRisk)
}

func TestPredictRisk_AgeAndDiseaseAdjustments(t *testing.T) {
	predictor := setupPredictor(t)

	senior := predictor.PredictRisk("", "Unknown", 65, false)
	assert.Equal(t, 35, senior.CoverageRisk)
	assert.Equal(t, 20, senior.DelayRisk)

	middleAged := predictor.PredictRisk("", "Unknown", 50, false)
	assert.Equal(t, 28, middleAged.CoverageRisk)
	assert.Equal(t, 15, middleAged.DelayRisk)

	diseased := predictor.PredictRisk("", "Unknown", 30, true)
	assert.Equal(t, 40, diseased.CoverageRisk)
	assert.Equal(t, 25, diseased.CostRisk)
}

func TestPredictRisk_KeywordWeights(t *testing.T) {
	predictor := setupPredictor(t)

	// One waiting period (+8 coverage, also one "time" word? "period" not counted),
	// one exclusion (+10 coverage)
	text := "A waiting period applies. There is one exclusion."
	scores := predictor.PredictRisk(text, "Unknown", 30, false)
	assert.Equal(t, 38, scores.CoverageRisk)
}

func TestPredictRisk_ClampsAt100(t *testing.T) {
	predictor := setupPredictor(t)

	var text string
	for i := 0; i < 20; i++ {
		text += "exclusion pre-existing waiting period "
	}
	scores := predictor.PredictRisk(text, policies.PolicyTypeHealth, 70, true)

	assert.Equal(t, 100, scores.CoverageRisk)
	assert.LessOrEqual(t, scores.CostRisk, 100)
	assert.LessOrEqual(t, scores.DelayRisk, 100)
	assert.LessOrEqual(t, scores.OverallRisk, 100.0)
}

func TestExtractCoPayPercentage(t *testing.T) {
	predictor := setupPredictor(t)

	tests := []struct {
		name string
		text string
		want int
	}{
		{"labelled co-pay", "Co-pay: 20% applies to all claims", 20},
		{"copayment", "copayment: 15% of admissible amount", 15},
		{"percentage first", "A 25% co-pay is applicable", 25},
		{"mention without number", "A co-pay clause applies to senior citizens", 10},
		{"no mention", "This policy covers hospitalization", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, predictor.ExtractCoPayPercentage(tt.text))
		})
	}
}

func TestExtractDeductible(t *testing.T) {
	predictor := setupPredictor(t)

	assert.Equal(t, 5000, predictor.ExtractDeductible("Deductible: Rs. 5000 per claim"))
	assert.Equal(t, 10000, predictor.ExtractDeductible("deductible ₹ 10000 applies"))
	assert.Equal(t, 2500, predictor.ExtractDeductible("Excess: Rs 2500"))
	assert.Equal(t, 0, predictor.ExtractDeductible("No cost sharing applies"))
}

func TestExtractRoomRentCap(t *testing.T) {
	predictor := setupPredictor(t)

	assert.Equal(t, "3000", predictor.ExtractRoomRentCap("Room rent: Rs. 3000 per day"))
	assert.Equal(t, "2%", predictor.ExtractRoomRentCap("Room rent: 2% of sum insured"))
	assert.Equal(t, "", predictor.ExtractRoomRentCap("No room restrictions"))
}

func TestExtractSubLimits(t *testing.T) {
	predictor := setupPredictor(t)

	text := "ICU: Rs. 10000 per day. Surgery: Rs. 150000 per procedure. Doctor ₹ 2000 per visit."
	limits := predictor.ExtractSubLimits(text)

	assert.Equal(t, 10000, limits["icu"])
	assert.Equal(t, 150000, limits["surgery"])
	assert.Equal(t, 2000, limits["doctor"])
	assert.NotContains(t, limits, "medicine")
}
