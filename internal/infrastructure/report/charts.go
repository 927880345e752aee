package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/logger"
)

// Industry average risk scores used as the comparison baseline.
var industryAverages = policies.RiskScores{
	CoverageRisk: 45,
	CostRisk:     35,
	DelayRisk:    25,
}

var impactColors = map[string]drawing.Color{
	"Critical":    drawing.ColorFromHex("FF0000"),
	"High":        drawing.ColorFromHex("FF6B6B"),
	"Medium-High": drawing.ColorFromHex("FFA500"),
	"Medium":      drawing.ColorFromHex("FFD93D"),
	"Low":         drawing.ColorFromHex("6BCB77"),
}

type chartRenderer struct {
	logger logger.Logger
}

// NewChartRenderer creates the PNG chart renderer.
func NewChartRenderer(logger logger.Logger) (policies.ChartRenderer, error) {
	return &chartRenderer{logger: logger}, nil
}

func (c *chartRenderer) RiskPie(scores policies.RiskScores) ([]byte, error) {
	values := []chart.Value{
		{Value: nonZero(float64(scores.CoverageRisk)), Label: "Coverage Risk", Style: chart.Style{FillColor: drawing.ColorFromHex("FF6B6B")}},
		{Value: nonZero(float64(scores.CostRisk)), Label: "Out-of-Pocket Risk", Style: chart.Style{FillColor: drawing.ColorFromHex("4ECDC4")}},
		{Value: nonZero(float64(scores.DelayRisk)), Label: "Delay Risk", Style: chart.Style{FillColor: drawing.ColorFromHex("45B7D1")}},
	}

	pie := chart.PieChart{
		Title:  "Claim Risk Breakdown",
		Width:  600,
		Height: 450,
		Values: values,
	}

	return renderPNG(&pie)
}

func (c *chartRenderer) RiskBreakdownPie(factors []policies.RiskFactor) ([]byte, error) {
	if len(factors) == 0 {
		return nil, fmt.Errorf("no risk factors to chart")
	}

	impactCounts := make(map[string]int)
	var order []string
	for _, factor := range factors {
		if _, seen := impactCounts[factor.Impact]; !seen {
			order = append(order, factor.Impact)
		}
		impactCounts[factor.Impact]++
	}

	values := make([]chart.Value, 0, len(order))
	for _, impact := range order {
		color, ok := impactColors[impact]
		if !ok {
			color = drawing.ColorFromHex("808080")
		}
		values = append(values, chart.Value{
			Value: float64(impactCounts[impact]),
			Label: impact,
			Style: chart.Style{FillColor: color},
		})
	}

	pie := chart.PieChart{
		Title:  "Risk Factor Breakdown by Impact",
		Width:  600,
		Height: 600,
		Values: values,
	}

	return renderPNG(&pie)
}

func (c *chartRenderer) ComparisonBars(scores policies.RiskScores) ([]byte, error) {
	policyColor := drawing.ColorFromHex("FF6B6B")
	industryColor := drawing.ColorFromHex("45B7D1")

	bars := chart.BarChart{
		Title:    "Policy vs Industry Average Comparison",
		Width:    760,
		Height:   450,
		BarWidth: 80,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Bars: []chart.Value{
			{Value: float64(scores.CoverageRisk), Label: "Coverage", Style: chart.Style{FillColor: policyColor}},
			{Value: float64(industryAverages.CoverageRisk), Label: "Coverage Avg", Style: chart.Style{FillColor: industryColor}},
			{Value: float64(scores.CostRisk), Label: "Out-of-Pocket", Style: chart.Style{FillColor: policyColor}},
			{Value: float64(industryAverages.CostRisk), Label: "Out-of-Pocket Avg", Style: chart.Style{FillColor: industryColor}},
			{Value: float64(scores.DelayRisk), Label: "Delay", Style: chart.Style{FillColor: policyColor}},
			{Value: float64(industryAverages.DelayRisk), Label: "Delay Avg", Style: chart.Style{FillColor: industryColor}},
		},
	}

	return renderPNG(&bars)
}

func (c *chartRenderer) ClaimImpactPie(claimAmount, insurancePays, outOfPocket float64) ([]byte, error) {
	if claimAmount <= 0 {
		return nil, fmt.Errorf("claim amount must be positive")
	}

	pie := chart.PieChart{
		Title:  "Claim Impact Distribution",
		Width:  600,
		Height: 600,
		Values: []chart.Value{
			{Value: nonZero(insurancePays), Label: "Insurance Pays", Style: chart.Style{FillColor: drawing.ColorFromHex("6BCB77")}},
			{Value: nonZero(outOfPocket), Label: "Out of Pocket", Style: chart.Style{FillColor: drawing.ColorFromHex("FF6B6B")}},
		},
	}

	return renderPNG(&pie)
}

type pngRenderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

func renderPNG(c pngRenderable) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// nonZero keeps degenerate slices renderable.
func nonZero(v float64) float64 {
	if v <= 0 {
		return 0.01
	}
	return v
}
