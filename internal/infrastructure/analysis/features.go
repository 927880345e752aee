package analysis

import (
	"regexp"
	"strings"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/strutil"
)

// featureKeywords maps each document feature to the phrases counted for it.
var featureKeywords = map[string][]string{
	"waiting_period": {"waiting period", "waiting time", "cooling period"},
	"exclusion":      {"exclusion", "not covered", "excluded", "not payable"},
	"co_pay":         {"co-pay", "copay", "coinsurance", "payable by insured"},
	"sub_limit":      {"sub-limit", "sublimit", "cap of", "maximum limit"},
	"room_rent":      {"room rent", "room charges", "accommodation"},
	"pre_existing":   {"pre-existing", "preexisting", "existing condition"},
	"claim_days":     {"within 24 hours", "within 48 hours", "immediately"},
	"deductible":     {"deductible", "excess amount", "first pay"},
	"disease":        {"cancer", "diabetes", "heart", "kidney", "liver", "hiv"},
	"surgery":        {"surgery", "operation", "procedure", "treatment"},
	"hospital":       {"hospital", "medical", "healthcare", "clinic"},
	"percentage":     {"%", "percent", "percentage"},
	"money":          {"rupees", "rs", "inr", "lakh", "thousand"},
	"time":           {"day", "days", "month", "months", "year", "years"},
	"limit":          {"limit", "capped", "maximum", "upto"},
}

var (
	percentRe = regexp.MustCompile(`(\d+)%`)
	amountRe  = regexp.MustCompile(`rs\.?\s*(\d+)|₹\s*(\d+)`)
	daysRe    = regexp.MustCompile(`(\d+)\s*(day|days)`)
	monthsRe  = regexp.MustCompile(`(\d+)\s*(month|months)`)
	yearsRe   = regexp.MustCompile(`(\d+)\s*(year|years)`)
)

// documentFeatures holds the numeric signals extracted from policy text.
type documentFeatures struct {
	counts        map[string]int
	avgPercentage float64
	avgAmount     float64
	hasDays       int
	hasMonths     int
	hasYears      int
	length        float64
}

// extractFeatures derives the weighted keyword and numeric features used by
// the risk model.
func extractFeatures(text string) documentFeatures {
	textLower := strings.ToLower(text)

	f := documentFeatures{counts: make(map[string]int, len(featureKeywords))}
	for key, words := range featureKeywords {
		count := 0
		for _, word := range words {
			count += strings.Count(textLower, word)
		}
		f.counts[key] = count
	}

	if matches := percentRe.FindAllStringSubmatch(textLower, -1); len(matches) > 0 {
		sum := 0
		for _, m := range matches {
			sum += strutil.ConvertToInt(m[1])
		}
		f.avgPercentage = float64(sum) / float64(len(matches))
	}

	if matches := amountRe.FindAllStringSubmatch(textLower, -1); len(matches) > 0 {
		var amounts []int
		for _, m := range matches {
			for _, val := range m[1:] {
				if val != "" {
					amounts = append(amounts, strutil.ConvertToInt(val))
				}
			}
		}
		if len(amounts) > 0 {
			sum := 0
			for _, a := range amounts {
				sum += a
			}
			f.avgAmount = float64(sum) / float64(len(amounts))
		}
	}

	f.hasDays = len(daysRe.FindAllString(textLower, -1))
	f.hasMonths = len(monthsRe.FindAllString(textLower, -1))
	f.hasYears = len(yearsRe.FindAllString(textLower, -1))

	// Longer documents tend to carry more conditions
	f.length = float64(len(text)) / 1000
	if f.length > 10 {
		f.length = 10
	}

	return f
}
