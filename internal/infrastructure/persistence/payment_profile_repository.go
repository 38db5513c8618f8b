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

// GormPaymentProfileRepository implements PaymentProfileRepository using GORM
type GormPaymentProfileRepository struct {
	db *gorm.DB
}

// NewGormPaymentProfileRepository creates a new GormPaymentProfileRepository
func NewGormPaymentProfileRepository(db *gorm.DB) *GormPaymentProfileRepository {
	return &GormPaymentProfileRepository{db: db}
}

// FindByID finds a payment profile by its ID
func (r *GormPaymentProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.CustomerPaymentProfile, error) {
	var model models.PaymentProfileModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProfile finds all payment profiles under a customer profile
func (r *GormPaymentProfileRepository) FindByProfile(ctx context.Context, customerProfileID uuid.UUID) ([]billing.CustomerPaymentProfile, error) {
	var profileModels []models.PaymentProfileModel
	if err := r.db.WithContext(ctx).
		Where("customer_profile_id = ?", customerProfileID).
		Order("created_at ASC").
		Find(&profileModels).Error; err != nil {
		return nil, err
	}

	profiles := make([]billing.CustomerPaymentProfile, len(profileModels))
	for i, model := range profileModels {
		profiles[i] = *model.ToDomain()
	}
	return profiles, nil
}

// FindByProfileAndRemoteID finds the payment profile under a customer
// profile that mirrors the given remote sub-profile ID
func (r *GormPaymentProfileRepository) FindByProfileAndRemoteID(ctx context.Context, customerProfileID uuid.UUID, paymentProfileID string) (*billing.CustomerPaymentProfile, error) {
	var model models.PaymentProfileModel
	if err := r.db.WithContext(ctx).
		Where("customer_profile_id = ? AND payment_profile_id = ?", customerProfileID, paymentProfileID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all payment profiles matching the filter
func (r *GormPaymentProfileRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.CustomerPaymentProfile, error) {
	var profileModels []models.PaymentProfileModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.PaymentProfileModel{}), filter, "created_at DESC")

	if err := query.Find(&profileModels).Error; err != nil {
		return nil, err
	}

	profiles := make([]billing.CustomerPaymentProfile, len(profileModels))
	for i, model := range profileModels {
		profiles[i] = *model.ToDomain()
	}
	return profiles, nil
}

// Save creates or updates a payment profile
func (r *GormPaymentProfileRepository) Save(ctx context.Context, profile *billing.CustomerPaymentProfile) error {
	model := models.PaymentProfileModelFromDomain(profile)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a payment profile
func (r *GormPaymentProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PaymentProfileModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts payment profiles matching the filter
func (r *GormPaymentProfileRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PaymentProfileModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormPaymentProfileRepository implements PaymentProfileRepository
var _ billing.PaymentProfileRepository = (*GormPaymentProfileRepository)(nil)
