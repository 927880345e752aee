package policies

import "time"

// DefaultClaimAmount is assumed when a simulation request omits the amount.
const DefaultClaimAmount = 500000

// SimulationResult is the payout split for one hypothetical claim.
type SimulationResult struct {
	ClaimAmount        float64
	InsurancePays      float64
	OutOfPocket        float64
	DeductibleApplied  float64
	CoPayApplied       float64
	CoveragePercentage float64
}

// ComparisonMetrics aggregates risk scores over a set of compared policies.
type ComparisonMetrics struct {
	AvgCoverageRisk float64
	AvgCostRisk     float64
	AvgDelayRisk    float64
	MinOverall      float64
	MaxOverall      float64
}

// Recommendation names the preferred policy from a comparison.
type Recommendation struct {
	PolicyID string
	Reason   string
}

// Comparison is the result of comparing two or more analyzed policies.
type Comparison struct {
	Policies       []*PolicyMeta
	Metrics        ComparisonMetrics
	Recommendation Recommendation
}

// ActivityEntry is one row of the dashboard recent-activity feed.
type ActivityEntry struct {
	PolicyID    string
	PolicyType  string
	OverallRisk float64
	UploadTime  time.Time
}

// PolicyStats aggregates a user's analyzed policies for the dashboard.
type PolicyStats struct {
	TotalAnalyzed    int
	AvgRiskScore     float64
	PolicyTypes      map[string]int
	RiskDistribution map[string]int
	RecentActivity   []ActivityEntry
}
