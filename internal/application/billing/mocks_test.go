package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/samplestore/backend/internal/domain/billing"
	"github.com/samplestore/backend/internal/domain/shared"
)

// MockCustomerProfileRepository is a mock implementation of CustomerProfileRepository
type MockCustomerProfileRepository struct {
	mock.Mock
}

func (m *MockCustomerProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.CustomerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.CustomerProfile), args.Error(1)
}

func (m *MockCustomerProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*billing.CustomerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.CustomerProfile), args.Error(1)
}

func (m *MockCustomerProfileRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.CustomerProfile, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.CustomerProfile), args.Error(1)
}

func (m *MockCustomerProfileRepository) Save(ctx context.Context, profile *billing.CustomerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockCustomerProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerProfileRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockPaymentProfileRepository is a mock implementation of PaymentProfileRepository
type MockPaymentProfileRepository struct {
	mock.Mock
}

func (m *MockPaymentProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.CustomerPaymentProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.CustomerPaymentProfile), args.Error(1)
}

func (m *MockPaymentProfileRepository) FindByProfile(ctx context.Context, customerProfileID uuid.UUID) ([]billing.CustomerPaymentProfile, error) {
	args := m.Called(ctx, customerProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.CustomerPaymentProfile), args.Error(1)
}

func (m *MockPaymentProfileRepository) FindByProfileAndRemoteID(ctx context.Context, customerProfileID uuid.UUID, paymentProfileID string) (*billing.CustomerPaymentProfile, error) {
	args := m.Called(ctx, customerProfileID, paymentProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.CustomerPaymentProfile), args.Error(1)
}

func (m *MockPaymentProfileRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.CustomerPaymentProfile, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.CustomerPaymentProfile), args.Error(1)
}

func (m *MockPaymentProfileRepository) Save(ctx context.Context, profile *billing.CustomerPaymentProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockPaymentProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentProfileRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockGateway is a mock implementation of billing.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) AddProfile(ctx context.Context, userID uuid.UUID, payment billing.PaymentData, billingData billing.BillingData) (string, []string, error) {
	args := m.Called(ctx, userID, payment, billingData)
	var ids []string
	if args.Get(1) != nil {
		ids = args.Get(1).([]string)
	}
	return args.String(0), ids, args.Error(2)
}

func (m *MockGateway) GetProfile(ctx context.Context, profileID string) ([]billing.RemotePaymentProfile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.RemotePaymentProfile), args.Error(1)
}

func (m *MockGateway) CreatePaymentProfile(ctx context.Context, profileID string, payment billing.PaymentData, billingData billing.BillingData) (string, error) {
	args := m.Called(ctx, profileID, payment, billingData)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) UpdatePaymentProfile(ctx context.Context, profileID, paymentProfileID string, payment billing.PaymentData, billingData billing.BillingData) error {
	args := m.Called(ctx, profileID, paymentProfileID, payment, billingData)
	return args.Error(0)
}

func (m *MockGateway) DeletePaymentProfile(ctx context.Context, profileID, paymentProfileID string) error {
	args := m.Called(ctx, profileID, paymentProfileID)
	return args.Error(0)
}
