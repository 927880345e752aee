package analysis

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/logger"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/strutil"
)

// typeProfile scores a document against one known policy type.
type typeProfile struct {
	name     string
	keywords []string
	weight   float64
}

var policyTypeProfiles = []typeProfile{
	{
		name: policies.PolicyTypeHealth,
		keywords: []string{"health", "medical", "hospital", "surgery", "disease", "treatment", "doctor",
			"medicine", "clinical", "diagnosis", "patient", "healthcare", "policy", "insurance",
			"cover", "benefits", "cashless", "reimbursement", "room rent", "icu", "pre-existing",
			"waiting period", "copay", "day care", "hospitalization"},
		weight: 1.5,
	},
	{
		name: policies.PolicyTypeCar,
		keywords: []string{"car", "vehicle", "motor", "automobile", "accident", "drive", "driver", "collision",
			"repair", "garage", "road", "traffic", "third party", "comprehensive", "own damage",
			"theft", "liability", "no claim bonus", "depreciation", "towing", "tire", "engine"},
		weight: 1.5,
	},
	{
		name: policies.PolicyTypeLife,
		keywords: []string{"life", "death", "term", "maturity", "nominee", "beneficiary", "assured", "policyholder",
			"premium", "sum assured", "survival", "mortality", "endowment", "whole life", "riders",
			"critical illness", "accidental death", "disability", "income benefit"},
		weight: 1.5,
	},
	{
		name: policies.PolicyTypeTravel,
		keywords: []string{"travel", "trip", "flight", "baggage", "overseas", "foreign", "passport", "journey",
			"tour", "abroad", "holiday", "vacation", "airline", "trip cancellation", "delay",
			"lost luggage", "emergency evacuation", "travel assistance"},
		weight: 1.5,
	},
	{
		name: policies.PolicyTypeHome,
		keywords: []string{"home", "house", "property", "building", "contents", "fire", "theft", "flood",
			"earthquake", "residence", "household", "structure", "burglary", "natural disaster",
			"personal belongings", "liability", "renovation"},
		weight: 1.5,
	},
	{
		name: policies.PolicyTypeBike,
		keywords: []string{"bike", "motorcycle", "two wheeler", "scooter", "helmet", "rider", "biking",
			"motorcycling", "two-wheeler", "accessories", "pillion", "comprehensive"},
		weight: 1.5,
	},
}

// dominantTypeKeywords is the coarse keyword set used to cross-check the
// user-selected type against document content.
var dominantTypeKeywords = []typeProfile{
	{name: policies.PolicyTypeHealth, keywords: []string{"health", "medical", "hospital", "surgery", "disease", "treatment", "doctor", "medicine", "illness", "diagnosis"}},
	{name: policies.PolicyTypeCar, keywords: []string{"car", "vehicle", "motor", "automobile", "accident", "drive", "driver", "collision", "theft", "damage"}},
	{name: policies.PolicyTypeLife, keywords: []string{"life", "death", "term", "maturity", "nominee", "assured", "survival", "beneficiary"}},
	{name: policies.PolicyTypeTravel, keywords: []string{"travel", "trip", "flight", "baggage", "overseas", "foreign", "passport", "visa", "journey"}},
}

var (
	policyNumberRe = regexp.MustCompile(`(?i)policy\s*(?:no|number)[:\s]*([A-Z0-9/-]+)`)

	sumInsuredPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:sum\s*insured|cover|coverage|sum\s*assured)[:\s]*(?:rs\.?|₹)?\s*([\d,]+(?:\.\d{1,2})?)\s*(?:lakh|lac|crore|million|thousand)?`),
		regexp.MustCompile(`(?i)(?:policy\s*amount|cover\s*amount|benefit\s*amount)[:\s]*(?:rs\.?|₹)?\s*([\d,]+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)(?:liability|maximum\s*benefit)[:\s]*(?:of)?\s*(?:rs\.?|₹)?\s*([\d,]+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)up\s*to\s*(?:rs\.?|₹)?\s*([\d,]+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)cover\s*of\s*(?:rs\.?|₹)?\s*([\d,]+(?:\.\d{1,2})?)`),
	}
	amountSuffixRe = regexp.MustCompile(`lakh|lac|crore|million|thousand`)

	premiumPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:premium|annual\s*premium|yearly\s*premium)[:\s]*(?:rs\.?|₹)?\s*([\d,]+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)(?:policy\s*fee|installment|payment)[:\s]*(?:rs\.?|₹)?\s*([\d,]+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)(?:pay|payable|charged)[:\s]*(?:rs\.?|₹)?\s*([\d,]+(?:\.\d{1,2})?)\s*(?:per\s*annum|annually|yearly)`),
		regexp.MustCompile(`(?i)premium\s*amount[:\s]*(?:rs\.?|₹)?\s*([\d,]+(?:\.\d{1,2})?)`),
	}

	issueDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:policy\s*issued?|date\s*of\s*issue|issued?\s*on)[:\s]*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
		regexp.MustCompile(`(?i)(?:commencement|commencing|start)[:\s]*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
	}
	expiryDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:expir|valid|validity|expiry)[:\s]*(?:date)?[:\s]*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
		regexp.MustCompile(`(?i)(?:valid\s*until|expires?\s*on)[:\s]*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
	}

	exclusionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:not\s+cover(?:ed)?|exclusion|excluded)[^.]*\.`),
		regexp.MustCompile(`(?i)(?:will\s+not\s+pay|not\s+liable)[^.]*\.`),
		regexp.MustCompile(`(?i)(?:does\s+not\s+apply|not\s+included)[^.]*\.`),
		regexp.MustCompile(`(?i)(?:limitations?|restrictions?)[^.]*\.`),
		regexp.MustCompile(`(?i)(?:waiting\s+period)[^.]*\.`),
		regexp.MustCompile(`(?i)(?:pre-existing\s+condition)[^.]*\.`),
	}

	waitingPeriodPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)waiting\s*period\s*(?:of)?\s*(\d+)\s*(day|days|month|months|year|years)`),
		regexp.MustCompile(`(?i)(\d+)\s*(day|days|month|months|year|years)\s+waiting\s*period`),
		regexp.MustCompile(`(?i)initial\s+waiting\s+period\s*(?:of)?\s*(\d+)\s*(day|days|month|months|year|years)?`),
		regexp.MustCompile(`(?i)waiting\s+period\s+applicable\s*(?:for)?\s*(\d+)\s*(day|days|month|months|year|years)`),
	}

	exclusionCountRe = regexp.MustCompile(`exclusion|not\s+cover|excluded`)
	firstNumberRe    = regexp.MustCompile(`(\d+)`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
)

// benefitPattern pairs an extraction regex with the benefit category it yields.
type benefitPattern struct {
	re          *regexp.Regexp
	benefitType string
}

var benefitPatterns = []benefitPattern{
	{regexp.MustCompile(`(?i)(?:covers?|coverage\s*for|benefit\s*of)\s+([^.]{10,50})\.`), "coverage"},
	{regexp.MustCompile(`(?i)(?:includes?|inclusions?)[:\s]+([^.]{10,50})\.`), "inclusion"},
	{regexp.MustCompile(`(?i)(?:provides?|offer|offering)[:\s]+([^.]{10,50})\.`), "benefit"},
}

// clauseTerm pairs a clause label with the pattern that locates it in text.
type clauseTerm struct {
	term string
	re   *regexp.Regexp
}

var clauseTerms = []clauseTerm{
	{"waiting period", regexp.MustCompile(`waiting[-\s]?period|waiting\s+time|pre[-\s]?existing\s+waiting`)},
	{"exclusion", regexp.MustCompile(`exclusion|not\s+cover|will\s+not\s+cover|excluded|not\s+payable`)},
	{"co-pay", regexp.MustCompile(`co[-\s]?pay|copayment|co-payment|coinsurance`)},
	{"sub-limit", regexp.MustCompile(`sub[-\s]?limit|sublimit|limit\s+of\s+coverage|cap\s+of`)},
	{"room rent", regexp.MustCompile(`room\s+rent|room\s+charges|accommodation\s+benefit`)},
	{"pre-existing", regexp.MustCompile(`pre[-\s]?existing|preexisting|known\s+condition`)},
	{"claim", regexp.MustCompile(`claim\s+process|claim\s+filing|intimation|claim\s+settlement`)},
	{"deductible", regexp.MustCompile(`deductible|excess|first\s+pay`)},
}

var (
	clarityIndicators = []string{"clear", "simple", "understand", "easy", "plain",
		"explain", "described", "definition", "meaning"}
	comprehensiveIndicators = []string{"comprehensive", "complete", "full", "extensive", "broad",
		"wide", "range", "variety", "multiple", "various"}
	transparencyIndicators = []string{"transparent", "disclose", "disclosure", "clear", "explicit",
		"specifically", "detailed", "details", "specific", "particular"}
)

var criticalConditions = []string{"diabetes", "blood pressure", "heart", "cancer", "thyroid"}

type analyzer struct {
	predictor policies.RiskPredictor
	logger    logger.Logger
}

// NewAnalyzer creates the policy term analyzer. Cost-sharing extraction is
// delegated to the risk predictor so both report the same figures.
func NewAnalyzer(predictor policies.RiskPredictor, logger logger.Logger) (policies.Analyzer, error) {
	return &analyzer{predictor: predictor, logger: logger}, nil
}

func (a *analyzer) DetectPolicyType(text string) []policies.TypeMatch {
	textLower := strings.ToLower(text)

	type scored struct {
		profile typeProfile
		score   float64
		matched []string
	}

	results := make([]scored, 0, len(policyTypeProfiles))
	total := 0.0
	for _, profile := range policyTypeProfiles {
		s := scored{profile: profile}
		for _, keyword := range profile.keywords {
			count := strings.Count(textLower, keyword)
			if count > 0 {
				s.score += float64(count) * profile.weight
				s.matched = append(s.matched, keyword)
			}
		}
		total += s.score
		results = append(results, s)
	}

	if total == 0 {
		total = 1
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	var matches []policies.TypeMatch
	for _, s := range results {
		confidence := s.score / total * 100
		if confidence <= 5 {
			continue
		}
		matched := s.matched
		if len(matched) > 5 {
			matched = matched[:5]
		}
		matches = append(matches, policies.TypeMatch{
			Type:            s.profile.name,
			Confidence:      roundTo1(confidence),
			Score:           s.score,
			MatchedKeywords: matched,
		})
	}

	return matches
}

func (a *analyzer) DetectDominantType(text string) string {
	textLower := strings.ToLower(text)

	best := "Unknown"
	bestScore := 0
	for _, profile := range dominantTypeKeywords {
		score := 0
		for _, keyword := range profile.keywords {
			score += strings.Count(textLower, keyword)
		}
		if score > bestScore {
			bestScore = score
			best = profile.name
		}
	}

	return best
}

func (a *analyzer) ExtractPolicyNumber(text string) string {
	if match := policyNumberRe.FindStringSubmatch(text); match != nil {
		return match[1]
	}
	return "Not found"
}

func (a *analyzer) ExtractSumInsured(text string) string {
	textLower := strings.ToLower(text)

	for _, pattern := range sumInsuredPatterns {
		loc := pattern.FindStringSubmatchIndex(textLower)
		if loc == nil {
			continue
		}

		amount := strings.ReplaceAll(textLower[loc[2]:loc[3]], ",", "")

		// Scale by a lakh/crore style suffix right after the amount
		tailEnd := loc[3] + 10
		if tailEnd > len(textLower) {
			tailEnd = len(textLower)
		}
		if suffix := amountSuffixRe.FindString(textLower[loc[3]:tailEnd]); suffix != "" {
			value := strutil.ConvertToFloat64(amount)
			switch {
			case strings.Contains(suffix, "lakh") || strings.Contains(suffix, "lac"):
				value *= 100000
			case strings.Contains(suffix, "crore"):
				value *= 10000000
			case strings.Contains(suffix, "million"):
				value *= 1000000
			case strings.Contains(suffix, "thousand"):
				value *= 1000
			}
			amount = strconv.FormatFloat(value, 'f', -1, 64)
		}

		return amount
	}

	return "Not specified"
}

func (a *analyzer) ExtractPremium(text string) string {
	textLower := strings.ToLower(text)

	for _, pattern := range premiumPatterns {
		if match := pattern.FindStringSubmatch(textLower); match != nil {
			return strings.ReplaceAll(match[1], ",", "")
		}
	}

	return "Not specified"
}

func (a *analyzer) ExtractKeyDates(text string) policies.KeyDates {
	textLower := strings.ToLower(text)
	dates := policies.KeyDates{}

	for _, pattern := range issueDatePatterns {
		if match := pattern.FindStringSubmatch(textLower); match != nil {
			dates.IssueDate = match[1]
			break
		}
	}

	for _, pattern := range expiryDatePatterns {
		if match := pattern.FindStringSubmatch(textLower); match != nil {
			dates.ExpiryDate = match[1]
			break
		}
	}

	return dates
}

func (a *analyzer) ExtractBenefits(text string) []policies.Benefit {
	textLower := strings.ToLower(text)

	var benefits []policies.Benefit
	seen := make(map[string]bool)

	for _, bp := range benefitPatterns {
		matches := bp.re.FindAllStringSubmatch(textLower, -1)
		if len(matches) > 3 {
			matches = matches[:3]
		}
		for _, match := range matches {
			captured := match[1]
			if len(captured) > 15 && !seen[captured] {
				seen[captured] = true
				benefits = append(benefits, policies.Benefit{
					Text: capitalize(strings.TrimSpace(captured)),
					Type: bp.benefitType,
				})
			}
		}
	}

	if len(benefits) > 8 {
		benefits = benefits[:8]
	}
	return benefits
}

func (a *analyzer) ExtractExclusions(text string) []string {
	textLower := strings.ToLower(text)

	var exclusions []string
	seen := make(map[string]bool)

	for _, pattern := range exclusionPatterns {
		for _, match := range pattern.FindAllString(textLower, -1) {
			clean := whitespaceRe.ReplaceAllString(strings.TrimSpace(match), " ")
			if len(clean) > 15 && !seen[clean] {
				seen[clean] = true
				exclusions = append(exclusions, capitalize(clean))
			}
		}
	}

	if len(exclusions) > 8 {
		exclusions = exclusions[:8]
	}
	return exclusions
}

func (a *analyzer) ExtractKeyClauses(text string) map[string]string {
	sentences := strings.Split(text, ".")
	clauses := make(map[string]string, len(clauseTerms))

	for _, ct := range clauseTerms {
		found := ""
		for _, sentence := range sentences {
			if ct.re.MatchString(strings.ToLower(sentence)) {
				found = strings.TrimSpace(sentence) + "."
				break
			}
		}
		if found == "" {
			found = "Not mentioned in document"
		}
		clauses[ct.term] = found
	}

	return clauses
}

func (a *analyzer) ExtractWaitingPeriod(text string) string {
	textLower := strings.ToLower(text)

	for _, pattern := range waitingPeriodPatterns {
		if match := pattern.FindStringSubmatch(textLower); match != nil {
			if len(match) > 2 && match[2] != "" {
				return match[1] + " " + match[2]
			}
			if match[1] != "" {
				return match[1] + " months"
			}
			return "Initial period applies"
		}
	}

	if strings.Contains(textLower, "waiting period") {
		return "Mentioned (duration not specified)"
	}

	return "Not specified"
}

func (a *analyzer) AnalyzeQuality(text string) policies.QualityMetrics {
	textLower := strings.ToLower(text)

	return policies.QualityMetrics{
		Clarity:           indicatorScore(textLower, clarityIndicators),
		Comprehensiveness: indicatorScore(textLower, comprehensiveIndicators),
		Transparency:      indicatorScore(textLower, transparencyIndicators),
	}
}

func (a *analyzer) AnalyzeRiskFactors(text string, age int, disease string) []policies.RiskFactor {
	textLower := strings.ToLower(text)
	var riskFactors []policies.RiskFactor

	// Age factor
	switch {
	case age > 60:
		riskFactors = append(riskFactors, policies.RiskFactor{
			Factor:         "Age",
			Impact:         "High",
			Score:          85,
			Description:    "Age above 60 significantly increases claim scrutiny and premium",
			Recommendation: "Consider policies with lower age restrictions or senior citizen plans",
		})
	case age > 50:
		riskFactors = append(riskFactors, policies.RiskFactor{
			Factor:         "Age",
			Impact:         "Medium-High",
			Score:          65,
			Description:    "Age between 50-60 may affect premium and coverage options",
			Recommendation: "Review age-related clauses and premium loading carefully",
		})
	case age > 40:
		riskFactors = append(riskFactors, policies.RiskFactor{
			Factor:         "Age",
			Impact:         "Medium",
			Score:          45,
			Description:    "Moderate age-related risk factors to consider",
			Recommendation: "Standard age-related considerations apply",
		})
	}

	// Pre-existing condition factor
	if disease != "" && !strings.EqualFold(disease, "none") {
		diseaseLower := strings.ToLower(disease)
		critical := false
		for _, term := range criticalConditions {
			if strings.Contains(diseaseLower, term) {
				critical = true
				break
			}
		}
		if critical {
			riskFactors = append(riskFactors, policies.RiskFactor{
				Factor:         "Pre-existing condition",
				Impact:         "Critical",
				Score:          90,
				Description:    fmt.Sprintf("History of %s will significantly impact coverage and may have long waiting periods", disease),
				Recommendation: "Look for policies with shorter waiting periods for pre-existing conditions",
			})
		} else {
			riskFactors = append(riskFactors, policies.RiskFactor{
				Factor:         "Pre-existing condition",
				Impact:         "High",
				Score:          75,
				Description:    fmt.Sprintf("History of %s may affect coverage and require waiting periods", disease),
				Recommendation: "Check waiting period clauses and sub-limits for this condition",
			})
		}
	}

	// Exclusion density
	exclusionCount := len(exclusionCountRe.FindAllString(textLower, -1))
	if exclusionCount > 8 {
		riskFactors = append(riskFactors, policies.RiskFactor{
			Factor:         "High exclusion count",
			Impact:         "High",
			Score:          80,
			Description:    fmt.Sprintf("Policy contains %d exclusion-related terms - higher than average", exclusionCount),
			Recommendation: "Review all exclusions carefully; consider if coverage gaps exist",
		})
	} else if exclusionCount > 4 {
		riskFactors = append(riskFactors, policies.RiskFactor{
			Factor:         "Moderate exclusions",
			Impact:         "Medium",
			Score:          50,
			Description:    fmt.Sprintf("Policy contains %d exclusion-related terms", exclusionCount),
			Recommendation: "Understand key exclusions that may affect your specific needs",
		})
	}

	// Waiting period
	waitingPeriod := a.ExtractWaitingPeriod(text)
	wpLower := strings.ToLower(waitingPeriod)
	if strings.Contains(wpLower, "year") {
		if match := firstNumberRe.FindStringSubmatch(waitingPeriod); match != nil && strutil.ConvertToInt(match[1]) > 2 {
			riskFactors = append(riskFactors, policies.RiskFactor{
				Factor:         "Long waiting period",
				Impact:         "High",
				Score:          75,
				Description:    fmt.Sprintf("Long waiting period of %s before full coverage applies", waitingPeriod),
				Recommendation: "Consider if you can wait this period for claims; check for shorter alternatives",
			})
		}
	} else if strings.Contains(wpLower, "month") {
		riskFactors = append(riskFactors, policies.RiskFactor{
			Factor:         "Waiting period applies",
			Impact:         "Medium",
			Score:          40,
			Description:    fmt.Sprintf("Waiting period of %s applies for certain conditions", waitingPeriod),
			Recommendation: "Plan healthcare needs around the waiting period",
		})
	}

	// Co-pay
	copay := a.predictor.ExtractCoPayPercentage(text)
	switch {
	case copay > 30:
		riskFactors = append(riskFactors, policies.RiskFactor{
			Factor:         "Very high co-pay",
			Impact:         "Critical",
			Score:          90,
			Description:    fmt.Sprintf("High co-pay of %d%% means significant out-of-pocket expenses", copay),
			Recommendation: "Consider policies with lower co-pay or build savings for co-pay amount",
		})
	case copay > 20:
		riskFactors = append(riskFactors, policies.RiskFactor{
			Factor:         "High co-pay",
			Impact:         "High",
			Score:          70,
			Description:    fmt.Sprintf("Co-pay of %d%% requires substantial out-of-pocket payment", copay),
			Recommendation: "Budget for co-pay amounts and check if co-pay applies to all claims",
		})
	case copay > 10:
		riskFactors = append(riskFactors, policies.RiskFactor{
			Factor:         "Moderate co-pay",
			Impact:         "Medium",
			Score:          40,
			Description:    fmt.Sprintf("Co-pay of %d%% applies", copay),
			Recommendation: "Standard co-pay arrangement; plan for this expense",
		})
	}

	// Deductible
	deductible := a.predictor.ExtractDeductible(text)
	if deductible > 50000 {
		riskFactors = append(riskFactors, policies.RiskFactor{
			Factor:         "High deductible",
			Impact:         "High",
			Score:          75,
			Description:    fmt.Sprintf("Deductible of ₹%s must be paid before coverage starts", formatWithCommas(deductible)),
			Recommendation: "Ensure you have funds available for the deductible amount",
		})
	} else if deductible > 10000 {
		riskFactors = append(riskFactors, policies.RiskFactor{
			Factor:         "Moderate deductible",
			Impact:         "Medium",
			Score:          45,
			Description:    fmt.Sprintf("Deductible of ₹%s applies per claim", formatWithCommas(deductible)),
			Recommendation: "Plan for this out-of-pocket expense per claim",
		})
	}

	return riskFactors
}

func indicatorScore(textLower string, indicators []string) int {
	score := 0
	for _, ind := range indicators {
		score += strings.Count(textLower, ind)
	}
	score *= 10
	if score > 100 {
		return 100
	}
	return score
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// formatWithCommas renders n with thousands separators.
func formatWithCommas(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if n < 0 {
		return "-" + out
	}
	return out
}

func roundTo1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
