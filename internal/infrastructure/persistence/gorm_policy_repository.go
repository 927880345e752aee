package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/policies"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/infrastructure/persistence/models"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/logger"
)

type gormPolicyRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPolicyRepository creates a new GORM-based PolicyRepository implementation
func NewGormPolicyRepository(db *gorm.DB, logger logger.Logger) (policies.PolicyRepository, error) {
	return &gormPolicyRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPolicyRepository) Create(ctx context.Context, policy *policies.PolicyMeta) error {
	// Validate domain entity (business rules)
	if err := policy.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Convert to GORM model
	model := &models.PolicyModel{}
	if err := model.FromDomain(policy); err != nil {
		return fmt.Errorf("failed to map policy: %w", err)
	}

	// Persist to database
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create policy: %w", err)
	}

	r.logger.Info("Created policy metadata with id ", policy.ID)
	return nil
}

func (r *gormPolicyRepository) List(ctx context.Context, userID string, query *policies.PolicyMetaQuery) ([]*policies.PolicyMeta, error) {
	if query == nil {
		query = policies.NewPolicyMetaQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.PolicyModel
	dbQuery := r.db.WithContext(ctx).Model(&models.PolicyModel{}).Where("user_id = ?", userID)

	// Apply filters
	if query.PolicyType != "" {
		dbQuery = dbQuery.Where("policy_type = ?", query.PolicyType)
	}
	if query.DetectedType != "" {
		dbQuery = dbQuery.Where("detected_type = ?", query.DetectedType)
	}
	if query.Filename != "" {
		dbQuery = dbQuery.Where("filename LIKE ?", "%"+query.Filename+"%")
	}
	if !query.UploadedAfter.IsZero() {
		dbQuery = dbQuery.Where("upload_time >= ?", query.UploadedAfter)
	}

	// Sorting
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch policies: %w", err)
	}

	// Convert to domain models
	domainList := make([]*policies.PolicyMeta, len(modelList))
	for i, model := range modelList {
		policy, err := model.ToDomain()
		if err != nil {
			return nil, err
		}
		domainList[i] = policy
	}

	return domainList, nil
}

func (r *gormPolicyRepository) GetByID(ctx context.Context, policyID, userID string) (*policies.PolicyMeta, error) {
	var model models.PolicyModel
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", policyID, userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("policy with ID %s not found", policyID)
		}
		return nil, fmt.Errorf("failed to fetch policy: %w", err)
	}
	return model.ToDomain()
}

func (r *gormPolicyRepository) DeleteByID(ctx context.Context, policyID, userID string) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", policyID, userID).Delete(&models.PolicyModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete policy: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("policy with ID %s not found", policyID)
	}

	r.logger.Info("Deleted policy metadata with id ", policyID)
	return nil
}
