package analysis

import (
	"math"
	"regexp"
	"strings"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/logger"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/strutil"
)

var coPayPatterns = []*regexp.Regexp{
	regexp.MustCompile(`co[-\s]?pay[:\s]*(\d+)%`),
	regexp.MustCompile(`copayment[:\s]*(\d+)%`),
	regexp.MustCompile(`co[-\s]?insurance[:\s]*(\d+)%`),
	regexp.MustCompile(`payable by insured[:\s]*(\d+)%`),
	regexp.MustCompile(`(\d+)%\s*co[-\s]?pay`),
	regexp.MustCompile(`(\d+)%\s*copayment`),
	regexp.MustCompile(`(\d+)%\s*co-insurance`),
}

var deductiblePatterns = []*regexp.Regexp{
	regexp.MustCompile(`deductible[:\s]*rs\.?\s*(\d+)|deductible[:\s]*₹\s*(\d+)`),
	regexp.MustCompile(`excess[:\s]*rs\.?\s*(\d+)|excess[:\s]*₹\s*(\d+)`),
	regexp.MustCompile(`first pay[:\s]*rs\.?\s*(\d+)|first pay[:\s]*₹\s*(\d+)`),
}

var roomRentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`room rent[:\s]*rs\.?\s*(\d+)|room rent[:\s]*₹\s*(\d+)`),
	regexp.MustCompile(`room charges[:\s]*rs\.?\s*(\d+)|room charges[:\s]*₹\s*(\d+)`),
	regexp.MustCompile(`accommodation[:\s]*rs\.?\s*(\d+)|accommodation[:\s]*₹\s*(\d+)`),
}

var roomRentPercentRe = regexp.MustCompile(`room rent[:\s]*(\d+)%`)

var subLimitPatterns = map[string]*regexp.Regexp{
	"icu":        regexp.MustCompile(`icu[:\s]*rs\.?\s*(\d+)|icu[:\s]*₹\s*(\d+)`),
	"surgery":    regexp.MustCompile(`surgery[:\s]*rs\.?\s*(\d+)|surgery[:\s]*₹\s*(\d+)`),
	"doctor":     regexp.MustCompile(`doctor[:\s]*rs\.?\s*(\d+)|doctor[:\s]*₹\s*(\d+)`),
	"medicine":   regexp.MustCompile(`medicine[:\s]*rs\.?\s*(\d+)|medicine[:\s]*₹\s*(\d+)`),
	"diagnostic": regexp.MustCompile(`diagnostic[:\s]*rs\.?\s*(\d+)|diagnostic[:\s]*₹\s*(\d+)`),
}

type riskPredictor struct {
	logger logger.Logger
}

// NewRiskPredictor creates the weighted keyword risk model.
func NewRiskPredictor(logger logger.Logger) (policies.RiskPredictor, error) {
	return &riskPredictor{logger: logger}, nil
}

func (p *riskPredictor) PredictRisk(text, policyType string, age int, hasDisease bool) policies.RiskScores {
	features := extractFeatures(text)

	// Coverage risk: exclusions, waiting periods, disease mentions
	coverageRisk := 20.0
	coverageRisk += float64(features.counts["waiting_period"]) * 8
	coverageRisk += float64(features.counts["exclusion"]) * 10
	coverageRisk += float64(features.counts["pre_existing"]) * 12
	coverageRisk += float64(features.counts["disease"]) * 5
	coverageRisk += float64(features.hasYears) * 5

	switch policyType {
	case policies.PolicyTypeHealth:
		// Health policies carry more exclusions
		coverageRisk += 10
	case policies.PolicyTypeCar:
		coverageRisk -= 10
	case policies.PolicyTypeLife:
		coverageRisk -= 5
	}

	// Cost risk: co-pay, sub-limits, percentages
	costRisk := 15.0
	costRisk += float64(features.counts["co_pay"]) * 12
	costRisk += float64(features.counts["sub_limit"]) * 10
	costRisk += float64(features.counts["room_rent"]) * 8
	costRisk += float64(features.counts["percentage"]) * 5
	costRisk += float64(features.counts["money"]) * 3
	costRisk += float64(features.counts["deductible"]) * 10
	costRisk += features.avgPercentage * 1.5

	// Delay risk: claim conditions and time limits
	delayRisk := 10.0
	delayRisk += float64(features.counts["claim_days"]) * 15
	delayRisk += float64(features.counts["time"]) * 4
	delayRisk += float64(features.hasDays) * 8
	delayRisk += float64(features.hasMonths) * 5

	// User profile impact
	if age > 60 {
		coverageRisk += 15
		delayRisk += 10
	} else if age > 45 {
		coverageRisk += 8
		delayRisk += 5
	}

	if hasDisease {
		coverageRisk += 20
		costRisk += 10
	}

	scores := policies.RiskScores{
		CoverageRisk: clampScore(coverageRisk),
		CostRisk:     clampScore(costRisk),
		DelayRisk:    clampScore(delayRisk),
	}

	overall := float64(scores.CoverageRisk)*0.4 + float64(scores.CostRisk)*0.35 + float64(scores.DelayRisk)*0.25
	scores.OverallRisk = math.Round(overall*10) / 10

	return scores
}

func (p *riskPredictor) ExtractCoPayPercentage(text string) int {
	textLower := strings.ToLower(text)

	for _, pattern := range coPayPatterns {
		if match := pattern.FindStringSubmatch(textLower); match != nil {
			return strutil.ConvertToInt(match[1])
		}
	}

	// Co-pay mentioned but no percentage given
	if strings.Contains(textLower, "co-pay") || strings.Contains(textLower, "copay") ||
		strings.Contains(textLower, "co-payment") {
		return 10
	}

	return 0
}

func (p *riskPredictor) ExtractDeductible(text string) int {
	textLower := strings.ToLower(text)

	for _, pattern := range deductiblePatterns {
		if match := pattern.FindStringSubmatch(textLower); match != nil {
			for _, val := range match[1:] {
				if val != "" {
					return strutil.ConvertToInt(val)
				}
			}
		}
	}

	return 0
}

func (p *riskPredictor) ExtractRoomRentCap(text string) string {
	textLower := strings.ToLower(text)

	for _, pattern := range roomRentPatterns {
		if match := pattern.FindStringSubmatch(textLower); match != nil {
			for _, val := range match[1:] {
				if val != "" {
					return val
				}
			}
		}
	}

	if match := roomRentPercentRe.FindStringSubmatch(textLower); match != nil {
		return match[1] + "%"
	}

	return ""
}

func (p *riskPredictor) ExtractSubLimits(text string) map[string]int {
	textLower := strings.ToLower(text)
	subLimits := make(map[string]int)

	for limitType, pattern := range subLimitPatterns {
		if match := pattern.FindStringSubmatch(textLower); match != nil {
			for _, val := range match[1:] {
				if val != "" {
					subLimits[limitType] = strutil.ConvertToInt(val)
					break
				}
			}
		}
	}

	return subLimits
}

func clampScore(v float64) int {
	score := int(v)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
