package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
)

// PolicyModel is the GORM database model for analyzed policies (infrastructure concern).
// Structured analysis results are stored as JSON text columns so the schema
// stays portable between SQLite and PostgreSQL.
type PolicyModel struct {
	ID               string    `gorm:"primaryKey;type:uuid"`
	UserID           string    `gorm:"not null;index;type:uuid"`
	Filename         string    `gorm:"not null;type:varchar(255)"`
	UploadTime       time.Time `gorm:"not null;index"`
	PolicyType       string    `gorm:"not null;type:varchar(50)"`
	DetectedType     string    `gorm:"type:varchar(50)"`
	PolicyNumber     string    `gorm:"type:varchar(100)"`
	SumInsured       string    `gorm:"type:varchar(100)"`
	Premium          string    `gorm:"type:varchar(100)"`
	IssueDate        string    `gorm:"type:varchar(50)"`
	ExpiryDate       string    `gorm:"type:varchar(50)"`
	Benefits         string    `gorm:"type:text"`
	Exclusions       string    `gorm:"type:text"`
	Clauses          string    `gorm:"type:text"`
	RiskFactors      string    `gorm:"type:text"`
	Coverage         string    `gorm:"type:text"`
	QualityMetrics   string    `gorm:"type:text"`
	FinancialDetails string    `gorm:"type:text"`
	CoverageRisk     int       `gorm:"not null"`
	CostRisk         int       `gorm:"not null"`
	DelayRisk        int       `gorm:"not null"`
	OverallRisk      float64   `gorm:"not null;index"`
	TextLength       int       `gorm:"not null"`
	PageCount        int       `gorm:"not null"`
	FilePath         string    `gorm:"not null;type:varchar(512)"`
}

// TableName specifies the table name for GORM
func (PolicyModel) TableName() string {
	return "policies"
}

// ToDomain converts GORM model to domain entity
func (m *PolicyModel) ToDomain() (*policies.PolicyMeta, error) {
	p := &policies.PolicyMeta{
		ID:           m.ID,
		UserID:       m.UserID,
		Filename:     m.Filename,
		UploadTime:   m.UploadTime,
		PolicyType:   m.PolicyType,
		DetectedType: m.DetectedType,
		PolicyNumber: m.PolicyNumber,
		SumInsured:   m.SumInsured,
		Premium:      m.Premium,
		KeyDates: policies.KeyDates{
			IssueDate:  m.IssueDate,
			ExpiryDate: m.ExpiryDate,
		},
		RiskScores: policies.RiskScores{
			CoverageRisk: m.CoverageRisk,
			CostRisk:     m.CostRisk,
			DelayRisk:    m.DelayRisk,
			OverallRisk:  m.OverallRisk,
		},
		TextLength: m.TextLength,
		PageCount:  m.PageCount,
		FilePath:   m.FilePath,
	}

	fields := []struct {
		name string
		raw  string
		dst  any
	}{
		{"benefits", m.Benefits, &p.Benefits},
		{"exclusions", m.Exclusions, &p.Exclusions},
		{"clauses", m.Clauses, &p.Clauses},
		{"risk_factors", m.RiskFactors, &p.RiskFactors},
		{"coverage", m.Coverage, &p.Coverage},
		{"quality_metrics", m.QualityMetrics, &p.QualityMetrics},
		{"financial_details", m.FinancialDetails, &p.FinancialDetails},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		if err := json.Unmarshal([]byte(f.raw), f.dst); err != nil {
			return nil, fmt.Errorf("failed to decode %s column: %w", f.name, err)
		}
	}

	return p, nil
}

// FromDomain converts domain entity to GORM model
func (m *PolicyModel) FromDomain(p *policies.PolicyMeta) error {
	m.ID = p.ID
	m.UserID = p.UserID
	m.Filename = p.Filename
	m.UploadTime = p.UploadTime
	m.PolicyType = p.PolicyType
	m.DetectedType = p.DetectedType
	m.PolicyNumber = p.PolicyNumber
	m.SumInsured = p.SumInsured
	m.Premium = p.Premium
	m.IssueDate = p.KeyDates.IssueDate
	m.ExpiryDate = p.KeyDates.ExpiryDate
	m.CoverageRisk = p.RiskScores.CoverageRisk
	m.CostRisk = p.RiskScores.CostRisk
	m.DelayRisk = p.RiskScores.DelayRisk
	m.OverallRisk = p.RiskScores.OverallRisk
	m.TextLength = p.TextLength
	m.PageCount = p.PageCount
	m.FilePath = p.FilePath

	fields := []struct {
		name string
		src  any
		dst  *string
	}{
		{"benefits", p.Benefits, &m.Benefits},
		{"exclusions", p.Exclusions, &m.Exclusions},
		{"clauses", p.Clauses, &m.Clauses},
		{"risk_factors", p.RiskFactors, &m.RiskFactors},
		{"coverage", p.Coverage, &m.Coverage},
		{"quality_metrics", p.QualityMetrics, &m.QualityMetrics},
		{"financial_details", p.FinancialDetails, &m.FinancialDetails},
	}
	for _, f := range fields {
		raw, err := json.Marshal(f.src)
		if err != nil {
			return fmt.Errorf("failed to encode %s column: %w", f.name, err)
		}
		*f.dst = string(raw)
	}

	return nil
}
