package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/samplestore/backend/internal/domain/billing"
	"github.com/samplestore/backend/internal/domain/shared"
	"github.com/samplestore/backend/internal/infrastructure/persistence/models"
)

// GormCustomerProfileRepository implements CustomerProfileRepository using GORM
type GormCustomerProfileRepository struct {
	db *gorm.DB
}

// NewGormCustomerProfileRepository creates a new GormCustomerProfileRepository
func NewGormCustomerProfileRepository(db *gorm.DB) *GormCustomerProfileRepository {
	return &GormCustomerProfileRepository{db: db}
}

// FindByID finds a customer profile by its ID
func (r *GormCustomerProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.CustomerProfile, error) {
	var model models.CustomerProfileModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUserID finds the customer profile owned by a user
func (r *GormCustomerProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*billing.CustomerProfile, error) {
	var model models.CustomerProfileModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all customer profiles matching the filter
func (r *GormCustomerProfileRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.CustomerProfile, error) {
	var profileModels []models.CustomerProfileModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.CustomerProfileModel{}), filter, "created_at DESC")

	if err := query.Find(&profileModels).Error; err != nil {
		return nil, err
	}

	profiles := make([]billing.CustomerProfile, len(profileModels))
	for i, model := range profileModels {
		profiles[i] = *model.ToDomain()
	}
	return profiles, nil
}

// Save creates or updates a customer profile
func (r *GormCustomerProfileRepository) Save(ctx context.Context, profile *billing.CustomerProfile) error {
	model := models.CustomerProfileModelFromDomain(profile)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a customer profile
func (r *GormCustomerProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CustomerProfileModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts customer profiles matching the filter
func (r *GormCustomerProfileRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CustomerProfileModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormCustomerProfileRepository implements CustomerProfileRepository
var _ billing.CustomerProfileRepository = (*GormCustomerProfileRepository)(nil)
