package report

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/logger"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/strutil"
)

const notSpecified = "Not specified"

type pdfReportRenderer struct {
	logger logger.Logger
	now    func() time.Time
}

// NewPdfReportRenderer creates the A4 analysis report renderer.
func NewPdfReportRenderer(logger logger.Logger) (policies.ReportRenderer, error) {
	return &pdfReportRenderer{logger: logger, now: time.Now}, nil
}

func (r *pdfReportRenderer) Render(policy *policies.PolicyMeta) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Policy Analysis Report", true)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(10, 30, 50)
	pdf.CellFormat(0, 14, "ClaimGuard Professional Policy Analysis Report", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	riskLevel := policy.RiskScores.Level()

	// Executive summary
	r.heading(pdf, "Executive Summary")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	summary := fmt.Sprintf(
		"This report provides a comprehensive analysis of the %s policy document.\n"+
			"Overall Risk Score: %s%% - %s Risk\n"+
			"Policy Validity: %s to %s",
		policy.PolicyType,
		formatFloat(policy.RiskScores.OverallRisk),
		riskLevel,
		orDefault(policy.KeyDates.IssueDate, notSpecified),
		orDefault(policy.KeyDates.ExpiryDate, notSpecified),
	)
	pdf.MultiCell(0, 5, sanitize(summary), "", "L", false)
	pdf.Ln(6)

	// Policy information
	r.heading(pdf, "Policy Information")
	r.infoRow(pdf, "Policy ID:", policy.ID)
	r.infoRow(pdf, "File:", strutil.Truncate(policy.Filename, 50))
	r.infoRow(pdf, "Upload Date:", policy.UploadTime.Format("2006-01-02 15:04:05"))
	r.infoRow(pdf, "Policy Type:", policy.PolicyType)
	r.infoRow(pdf, "Detected Type:", orDefault(policy.DetectedType, "N/A"))
	r.infoRow(pdf, "Policy Number:", policy.PolicyNumber)
	r.infoRow(pdf, "Sum Insured:", formatRupeeAmount(policy.SumInsured))
	r.infoRow(pdf, "Premium:", formatRupeeAmount(policy.Premium))
	r.infoRow(pdf, "Pages:", strconv.Itoa(policy.PageCount))
	pdf.Ln(6)

	// Risk analysis table
	r.heading(pdf, "Risk Analysis")
	r.riskHeaderRow(pdf)
	scores := policy.RiskScores
	r.riskRow(pdf, "Claim Coverage Risk", fmt.Sprintf("%d%%", scores.CoverageRisk), scoreLevel(scores.CoverageRisk))
	r.riskRow(pdf, "Out-of-Pocket Risk", fmt.Sprintf("%d%%", scores.CostRisk), scoreLevel(scores.CostRisk))
	r.riskRow(pdf, "Claim Delay Risk", fmt.Sprintf("%d%%", scores.DelayRisk), scoreLevel(scores.DelayRisk))
	r.riskRow(pdf, "Overall Risk", formatFloat(scores.OverallRisk)+"%", riskLevel)
	pdf.Ln(6)

	// Financial details
	r.heading(pdf, "Financial Details")
	financial := policy.FinancialDetails
	r.infoRow(pdf, "Co-pay Percentage:", fmt.Sprintf("%d%%", financial.CoPayPercentage))
	if financial.Deductible > 0 {
		r.infoRow(pdf, "Deductible:", "Rs. "+formatWithCommas(financial.Deductible))
	} else {
		r.infoRow(pdf, "Deductible:", notSpecified)
	}
	r.infoRow(pdf, "Room Rent Cap:", orDefault(financial.RoomRentCap, notSpecified))
	for _, limitType := range sortedKeys(financial.SubLimits) {
		label := titleCase(limitType) + " Sub-limit:"
		r.infoRow(pdf, label, "Rs. "+formatWithCommas(financial.SubLimits[limitType]))
	}
	pdf.Ln(6)

	// Key benefits
	if len(policy.Benefits) > 0 {
		r.heading(pdf, "Key Benefits")
		pdf.SetFont("Helvetica", "", 10)
		for i, benefit := range limitBenefits(policy.Benefits, 5) {
			pdf.MultiCell(0, 5, sanitize(fmt.Sprintf("%d. %s", i+1, benefit.Text)), "", "L", false)
		}
		pdf.Ln(4)
	}

	// Exclusions
	if len(policy.Exclusions) > 0 {
		r.heading(pdf, "Important Exclusions")
		pdf.SetFont("Helvetica", "", 10)
		exclusions := policy.Exclusions
		if len(exclusions) > 5 {
			exclusions = exclusions[:5]
		}
		for i, exclusion := range exclusions {
			pdf.MultiCell(0, 5, sanitize(fmt.Sprintf("%d. %s", i+1, exclusion)), "", "L", false)
		}
		pdf.Ln(4)
	}

	// Key clauses
	if len(policy.Clauses) > 0 {
		r.heading(pdf, "Key Policy Clauses")
		written := 0
		for _, term := range sortedClauseKeys(policy.Clauses) {
			if written >= 5 {
				break
			}
			clause := policy.Clauses[term]
			if clause == "Not mentioned in document" {
				continue
			}
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(40, 5, sanitize(titleCase(term)+":"), "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, sanitize(strutil.Truncate(clause, 150)), "", "L", false)
			written++
		}
		pdf.Ln(4)
	}

	// Recommendations
	r.heading(pdf, "Recommendations")
	pdf.SetFont("Helvetica", "", 10)
	for _, rec := range buildRecommendations(policy) {
		pdf.MultiCell(0, 5, sanitize(rec), "", "L", false)
	}

	// Footer
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(100, 100, 100)
	footer := fmt.Sprintf("Report generated by ClaimGuard on %s | Confidential | ID: %s",
		r.now().Format("2006-01-02 15:04"), policy.ID)
	pdf.MultiCell(0, 5, sanitize(footer), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	r.logger.Info("Rendered report for policy ", policy.ID)
	return buf.Bytes(), nil
}

func (r *pdfReportRenderer) heading(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(10, 30, 50)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func (r *pdfReportRenderer) infoRow(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(10, 30, 50)
	pdf.CellFormat(50, 6, sanitize(label), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, 6, sanitize(value), "", "L", false)
}

func (r *pdfReportRenderer) riskHeaderRow(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(10, 30, 50)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(60, 8, "Risk Type", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 8, "Score", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 8, "Level", "1", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func (r *pdfReportRenderer) riskRow(pdf *fpdf.Fpdf, riskType, score, level string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(60, 8, riskType, "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, score, "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, level, "1", 1, "C", false, 0, "")
}

func buildRecommendations(policy *policies.PolicyMeta) []string {
	var recommendations []string

	financial := policy.FinancialDetails
	if policy.RiskScores.OverallRisk > 60 {
		recommendations = append(recommendations, "- High risk policy - consider reviewing with an insurance advisor")
	}
	if financial.CoPayPercentage > 20 {
		recommendations = append(recommendations, fmt.Sprintf("- High co-pay (%d%%) will significantly reduce claim payouts", financial.CoPayPercentage))
	}
	if financial.Deductible > 50000 {
		recommendations = append(recommendations, fmt.Sprintf("- High deductible of Rs. %s requires substantial out-of-pocket payment", formatWithCommas(financial.Deductible)))
	}
	if len(policy.Exclusions) > 0 {
		recommendations = append(recommendations, "- Review all exclusions carefully to understand coverage gaps")
	}
	if len(policy.Benefits) > 0 {
		recommendations = append(recommendations, fmt.Sprintf("- Key benefits identified: %d areas of coverage", len(policy.Benefits)))
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "- No specific recommendations - policy appears standard")
	}

	return recommendations
}

func scoreLevel(score int) string {
	switch {
	case score > 60:
		return "High"
	case score > 30:
		return "Medium"
	default:
		return "Low"
	}
}

// formatRupeeAmount renders a numeric amount string with a currency prefix,
// passing non-numeric values through unchanged.
func formatRupeeAmount(amount string) string {
	if amount == "" || amount == notSpecified {
		return notSpecified
	}
	stripped := strings.ReplaceAll(amount, ",", "")
	value, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return amount
	}
	return "Rs. " + formatWithCommas(int(value))
}

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

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// titleCase upper-cases the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func limitBenefits(benefits []policies.Benefit, max int) []policies.Benefit {
	if len(benefits) > max {
		return benefits[:max]
	}
	return benefits
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedClauseKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sanitize maps text onto the latin-1 charset the core PDF fonts support.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "₹", "Rs. ")
	var sb strings.Builder
	for _, r := range s {
		if r == '\n' || (r >= 32 && r < 256) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('?')
		}
	}
	return sb.String()
}
