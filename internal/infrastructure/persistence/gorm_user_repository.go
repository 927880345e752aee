package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/users"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/infrastructure/persistence/models"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/logger"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) GetByPhone(ctx context.Context, phone string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with phone %s not found", phone)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) Upsert(ctx context.Context, user *users.User) (*users.User, error) {
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	var existing models.UserModel
	err := r.db.WithContext(ctx).Where("phone = ?", user.Phone).First(&existing).Error
	switch {
	case err == nil:
		existing.Name = user.Name
		existing.LastLogin = user.LastLogin
		if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		r.logger.Info("Refreshed user with id ", existing.ID)
		return existing.ToDomain(), nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		model := &models.UserModel{}
		model.FromDomain(user)
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		r.logger.Info("Created user with id ", model.ID)
		return model.ToDomain(), nil
	default:
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
}
