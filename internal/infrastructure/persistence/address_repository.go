package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/samplestore/backend/internal/domain/shared"
	"github.com/samplestore/backend/internal/domain/store"
	"github.com/samplestore/backend/internal/infrastructure/persistence/models"
)

// GormAddressRepository implements AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// FindByID finds an address by its ID
func (r *GormAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*store.Address, error) {
	var model models.AddressModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCustomer finds all addresses belonging to a customer
func (r *GormAddressRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]store.Address, error) {
	var addressModels []models.AddressModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("type ASC").
		Find(&addressModels).Error; err != nil {
		return nil, err
	}

	addresses := make([]store.Address, len(addressModels))
	for i, model := range addressModels {
		addresses[i] = *model.ToDomain()
	}
	return addresses, nil
}

// FindAll finds all addresses matching the filter
func (r *GormAddressRepository) FindAll(ctx context.Context, filter shared.Filter) ([]store.Address, error) {
	var addressModels []models.AddressModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.AddressModel{}), filter, "created_at DESC")

	if err := query.Find(&addressModels).Error; err != nil {
		return nil, err
	}

	addresses := make([]store.Address, len(addressModels))
	for i, model := range addressModels {
		addresses[i] = *model.ToDomain()
	}
	return addresses, nil
}

// Save creates or updates an address
func (r *GormAddressRepository) Save(ctx context.Context, address *store.Address) error {
	model := models.AddressModelFromDomain(address)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes an address
func (r *GormAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AddressModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts addresses matching the filter
func (r *GormAddressRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AddressModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormAddressRepository implements AddressRepository
var _ store.AddressRepository = (*GormAddressRepository)(nil)
