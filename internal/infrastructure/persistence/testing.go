//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/users"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/infrastructure/persistence/models"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/config"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/testutil"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB         *gorm.DB
	PolicyRepo policies.PolicyRepository
	UserRepo   users.UserRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		CloseDB(db)
		cleanupFunc()
	})

	// Migrate schema
	err = db.AutoMigrate(&models.PolicyModel{}, &models.UserModel{})
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	logger := testutil.SetupTestLogger(t)

	policyRepo, err := NewGormPolicyRepository(db, logger)
	require.NoError(t, err, "Failed to create policy repository")

	userRepo, err := NewGormUserRepository(db, logger)
	require.NoError(t, err, "Failed to create user repository")

	return &TestContext{
		DB:         db,
		PolicyRepo: policyRepo,
		UserRepo:   userRepo,
	}
}

// CreateTestUser creates a test user with default values
func CreateTestUser(t *testing.T) *users.User {
	t.Helper()

	return &users.User{
		ID:        uuid.NewString(),
		Name:      "Test User",
		Phone:     "+919812345678",
		CreatedAt: time.Now(),
		LastLogin: time.Now(),
	}
}

// CreateTestPolicy creates a test policy with default values
func CreateTestPolicy(t *testing.T, userID, filename string) *policies.PolicyMeta {
	t.Helper()

	if filename == "" {
		filename = "test-policy.pdf"
	}

	return &policies.PolicyMeta{
		ID:           uuid.NewString(),
		UserID:       userID,
		Filename:     filename,
		UploadTime:   time.Now(),
		PolicyType:   policies.PolicyTypeHealth,
		DetectedType: "Health",
		PolicyNumber: "POL-1234567",
		SumInsured:   "500000",
		Premium:      "12500",
		Benefits: []policies.Benefit{
			{Text: "Covers hospitalization expenses up to the sum insured.", Type: "hospitalization"},
		},
		Exclusions: []string{"Cosmetic surgery is excluded from coverage."},
		Clauses:    map[string]string{"waiting period": "A waiting period of 30 days applies."},
		RiskScores: policies.RiskScores{
			CoverageRisk: 45,
			CostRisk:     38,
			DelayRisk:    22,
			OverallRisk:  36.8,
		},
		FinancialDetails: policies.FinancialDetails{
			CoPayPercentage: 10,
			Deductible:      5000,
			SubLimits:       map[string]int{"icu": 10000},
		},
		TextLength: 5400,
		PageCount:  14,
		FilePath:   "uploads/20260101_120000_test-policy.pdf",
	}
}

// CreateTestPolicyWithRisk creates a test policy with a custom overall risk score
func CreateTestPolicyWithRisk(t *testing.T, userID, filename string, overallRisk float64) *policies.PolicyMeta {
	t.Helper()

	policy := CreateTestPolicy(t, userID, filename)
	policy.RiskScores.OverallRisk = overallRisk
	return policy
}
