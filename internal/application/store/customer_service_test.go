package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/samplestore/backend/internal/domain/identity"
	"github.com/samplestore/backend/internal/domain/shared"
	"github.com/samplestore/backend/internal/domain/store"
)

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*store.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*store.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]store.Customer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *store.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func TestCustomerService_EnsureForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates customer when none exists", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)
		userID := uuid.New()

		repo.On("FindByUserID", ctx, userID).Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.AnythingOfType("*store.Customer")).Return(nil)

		resp, err := service.EnsureForUser(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, userID, resp.UserID)
		assert.True(t, resp.ShippingSameAsBilling)
		repo.AssertExpectations(t)
	})

	t.Run("returns existing customer without saving", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)
		userID := uuid.New()

		existing, err := store.NewCustomer(userID)
		require.NoError(t, err)
		repo.On("FindByUserID", ctx, userID).Return(existing, nil)

		resp, err := service.EnsureForUser(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, existing.ID, resp.ID)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestUserCreatedHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("provisions customer for new user", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)
		handler := NewUserCreatedHandler(service, zap.NewNop())

		user, err := identity.NewUser("jane@example.com", "Jane")
		require.NoError(t, err)
		event := identity.NewUserCreatedEvent(user)

		repo.On("FindByUserID", ctx, user.ID).Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.AnythingOfType("*store.Customer")).Return(nil)

		err = handler.Handle(ctx, event)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("replayed event does not create a duplicate", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo, nil)
		handler := NewUserCreatedHandler(service, zap.NewNop())

		user, err := identity.NewUser("jane@example.com", "Jane")
		require.NoError(t, err)
		event := identity.NewUserCreatedEvent(user)

		existing, err := store.NewCustomer(user.ID)
		require.NoError(t, err)
		repo.On("FindByUserID", ctx, user.ID).Return(existing, nil)

		err = handler.Handle(ctx, event)

		require.NoError(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("subscribes to user created events", func(t *testing.T) {
		handler := NewUserCreatedHandler(nil, zap.NewNop())
		assert.Equal(t, []string{identity.EventTypeUserCreated}, handler.EventTypes())
	})
}
