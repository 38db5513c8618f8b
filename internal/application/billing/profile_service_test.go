package billing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/samplestore/backend/internal/domain/billing"
	"github.com/samplestore/backend/internal/domain/shared"
)

func newProfileService() (*ProfileService, *MockCustomerProfileRepository, *MockPaymentProfileRepository, *MockGateway) {
	profileRepo := new(MockCustomerProfileRepository)
	paymentRepo := new(MockPaymentProfileRepository)
	gateway := new(MockGateway)
	service := NewProfileService(profileRepo, paymentRepo, gateway, zap.NewNop())
	return service, profileRepo, paymentRepo, gateway
}

func TestProfileService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("registers profile with initial payment profile", func(t *testing.T) {
		service, profileRepo, paymentRepo, gateway := newProfileService()
		userID := uuid.New()

		profileRepo.On("FindByUserID", ctx, userID).Return(nil, shared.ErrNotFound)
		gateway.On("AddProfile", ctx, userID, mock.Anything, mock.Anything).
			Return("10001", []string{"20001"}, nil)
		profileRepo.On("Save", ctx, mock.AnythingOfType("*billing.CustomerProfile")).Return(nil)
		paymentRepo.On("Save", ctx, mock.AnythingOfType("*billing.CustomerPaymentProfile")).Return(nil)

		resp, err := service.Create(ctx, CreateProfileRequest{
			UserID:  userID,
			Payment: &PaymentInput{CardNumber: "4111111111111111", ExpirationDate: "2029-12"},
			Billing: BillingInput{FirstName: "Jane", LastName: "Doe"},
		})

		require.NoError(t, err)
		assert.Equal(t, "10001", resp.ProfileID)
		require.Len(t, resp.PaymentProfiles, 1)
		assert.Equal(t, "20001", resp.PaymentProfiles[0].PaymentProfileID)
		assert.Equal(t, "XXXX1111", resp.PaymentProfiles[0].CardNumber)

		profileRepo.AssertExpectations(t)
		paymentRepo.AssertExpectations(t)
		gateway.AssertExpectations(t)
	})

	t.Run("declined gateway response writes nothing locally", func(t *testing.T) {
		service, profileRepo, paymentRepo, gateway := newProfileService()
		userID := uuid.New()

		profileRepo.On("FindByUserID", ctx, userID).Return(nil, shared.ErrNotFound)
		gateway.On("AddProfile", ctx, userID, mock.Anything, mock.Anything).
			Return("", nil, billing.NewBillingError("E00027", "The transaction was unsuccessful."))

		resp, err := service.Create(ctx, CreateProfileRequest{
			UserID:  userID,
			Payment: &PaymentInput{CardNumber: "4111111111111111"},
		})

		require.Error(t, err)
		assert.Nil(t, resp)
		assert.True(t, billing.IsBillingError(err))
		profileRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		paymentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects second profile for the same user", func(t *testing.T) {
		service, profileRepo, _, gateway := newProfileService()
		userID := uuid.New()

		existing, err := billing.NewCustomerProfile(userID, "10001")
		require.NoError(t, err)
		profileRepo.On("FindByUserID", ctx, userID).Return(existing, nil)

		_, err = service.Create(ctx, CreateProfileRequest{UserID: userID})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		gateway.AssertNotCalled(t, "AddProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("profile without payment data skips payment profiles", func(t *testing.T) {
		service, profileRepo, paymentRepo, gateway := newProfileService()
		userID := uuid.New()

		profileRepo.On("FindByUserID", ctx, userID).Return(nil, shared.ErrNotFound)
		gateway.On("AddProfile", ctx, userID, billing.PaymentData{}, mock.Anything).
			Return("10002", nil, nil)
		profileRepo.On("Save", ctx, mock.AnythingOfType("*billing.CustomerProfile")).Return(nil)

		resp, err := service.Create(ctx, CreateProfileRequest{UserID: userID})

		require.NoError(t, err)
		assert.Empty(t, resp.PaymentProfiles)
		paymentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProfileService_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("creates missing local rows and updates existing ones", func(t *testing.T) {
		service, profileRepo, paymentRepo, gateway := newProfileService()

		profile, err := billing.NewCustomerProfile(uuid.New(), "10001")
		require.NoError(t, err)

		existing, err := billing.NewCustomerPaymentProfile(profile.ID, "20001",
			billing.PaymentData{CardNumber: "4111111111111111"},
			billing.BillingData{FirstName: "Jane", City: "Portland"})
		require.NoError(t, err)

		remote := []billing.RemotePaymentProfile{
			{
				PaymentProfileID: "20001",
				Billing:          &billing.BillingData{LastName: "Smith"},
			},
			{
				PaymentProfileID: "20002",
				CreditCard:       &billing.RemoteCreditCard{CardNumber: "XXXX4242"},
			},
		}

		profileRepo.On("FindByID", ctx, profile.ID).Return(profile, nil)
		gateway.On("GetProfile", ctx, "10001").Return(remote, nil)
		paymentRepo.On("FindByProfileAndRemoteID", ctx, profile.ID, "20001").Return(existing, nil)
		paymentRepo.On("FindByProfileAndRemoteID", ctx, profile.ID, "20002").Return(nil, shared.ErrNotFound)

		var saved []*billing.CustomerPaymentProfile
		paymentRepo.On("Save", ctx, mock.AnythingOfType("*billing.CustomerPaymentProfile")).
			Run(func(args mock.Arguments) {
				saved = append(saved, args.Get(1).(*billing.CustomerPaymentProfile))
			}).Return(nil)
		paymentRepo.On("FindByProfile", ctx, profile.ID).Return([]billing.CustomerPaymentProfile{}, nil)

		_, err = service.Sync(ctx, profile.ID)

		require.NoError(t, err)
		require.Len(t, saved, 2)

		// Existing row keeps fields the remote payload omitted
		assert.Equal(t, "Jane", saved[0].FirstName)
		assert.Equal(t, "Smith", saved[0].LastName)
		assert.Equal(t, "Portland", saved[0].City)
		assert.Equal(t, "XXXX1111", saved[0].CardNumber)

		// New row mirrors the remote payload
		assert.Equal(t, "20002", saved[1].PaymentProfileID)
		assert.Equal(t, "XXXX4242", saved[1].CardNumber)
	})

	t.Run("gateway failure leaves local rows untouched", func(t *testing.T) {
		service, profileRepo, paymentRepo, gateway := newProfileService()

		profile, err := billing.NewCustomerProfile(uuid.New(), "10001")
		require.NoError(t, err)

		profileRepo.On("FindByID", ctx, profile.ID).Return(profile, nil)
		gateway.On("GetProfile", ctx, "10001").
			Return(nil, billing.NewBillingError("E00040", "The record cannot be found."))

		_, err = service.Sync(ctx, profile.ID)

		require.Error(t, err)
		assert.True(t, billing.IsBillingError(err))
		paymentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
