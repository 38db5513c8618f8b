package billing

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/samplestore/backend/internal/domain/billing"
	"github.com/samplestore/backend/internal/domain/shared"
)

// PaymentProfileService manages payment profiles under a customer profile.
// Writes follow the remote-then-local order: a failed gateway call leaves
// the local mirror untouched, including deletes.
type PaymentProfileService struct {
	profileRepo billing.CustomerProfileRepository
	paymentRepo billing.PaymentProfileRepository
	gateway     billing.Gateway
	logger      *zap.Logger
}

// NewPaymentProfileService creates a new PaymentProfileService
func NewPaymentProfileService(
	profileRepo billing.CustomerProfileRepository,
	paymentRepo billing.PaymentProfileRepository,
	gateway billing.Gateway,
	logger *zap.Logger,
) *PaymentProfileService {
	return &PaymentProfileService{
		profileRepo: profileRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		logger:      logger,
	}
}

// Create adds a payment profile under a customer profile. With req.Remote
// set the gateway is asked to create the sub-profile first; otherwise the
// sub-profile already exists remotely (created alongside the profile) and
// only the local mirror is written.
func (s *PaymentProfileService) Create(ctx context.Context, customerProfileID uuid.UUID, req CreatePaymentProfileRequest) (*PaymentProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, customerProfileID)
	if err != nil {
		return nil, err
	}

	payment := req.Payment.ToPaymentData()
	billingData := req.Billing.ToBillingData()

	remoteID := req.PaymentProfileID
	if req.Remote {
		remoteID, err = s.gateway.CreatePaymentProfile(ctx, profile.ProfileID, payment, billingData)
		if err != nil {
			return nil, err
		}
	}
	if remoteID == "" {
		return nil, shared.NewDomainError("INVALID_PAYMENT_PROFILE_ID",
			"Payment profile ID is required when no gateway request is made")
	}

	if _, err := s.paymentRepo.FindByProfileAndRemoteID(ctx, profile.ID, remoteID); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Payment profile already exists")
	}

	local, err := billing.NewCustomerPaymentProfile(profile.ID, remoteID, payment, billingData)
	if err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, local); err != nil {
		return nil, err
	}

	s.logger.Info("payment profile created",
		zap.String("profile_id", profile.ProfileID),
		zap.String("payment_profile_id", remoteID),
		zap.Bool("gateway_request", req.Remote),
	)

	return ToPaymentProfileResponse(local), nil
}

// Get retrieves a payment profile by ID
func (s *PaymentProfileService) Get(ctx context.Context, id uuid.UUID) (*PaymentProfileResponse, error) {
	local, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToPaymentProfileResponse(local), nil
}

// Update replaces the card and billing data of a payment profile on the
// gateway, then mirrors the change locally. A declined gateway response
// leaves the local row unchanged.
func (s *PaymentProfileService) Update(ctx context.Context, id uuid.UUID, req UpdatePaymentProfileRequest) (*PaymentProfileResponse, error) {
	local, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.FindByID(ctx, local.CustomerProfileID)
	if err != nil {
		return nil, err
	}

	payment := req.Payment.ToPaymentData()
	billingData := req.Billing.ToBillingData()

	if err := s.gateway.UpdatePaymentProfile(ctx, profile.ProfileID, local.PaymentProfileID, payment, billingData); err != nil {
		return nil, err
	}

	local.ApplyUpdate(payment, billingData)
	if err := s.paymentRepo.Save(ctx, local); err != nil {
		return nil, err
	}

	s.logger.Info("payment profile updated",
		zap.String("profile_id", profile.ProfileID),
		zap.String("payment_profile_id", local.PaymentProfileID),
	)

	return ToPaymentProfileResponse(local), nil
}

// Delete removes a payment profile from the gateway and, only after the
// remote delete succeeds, the local mirror. A failed remote delete keeps
// the local row so the two sides cannot silently diverge.
func (s *PaymentProfileService) Delete(ctx context.Context, id uuid.UUID) error {
	local, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	profile, err := s.profileRepo.FindByID(ctx, local.CustomerProfileID)
	if err != nil {
		return err
	}

	if err := s.gateway.DeletePaymentProfile(ctx, profile.ProfileID, local.PaymentProfileID); err != nil {
		return err
	}

	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("payment profile deleted",
		zap.String("profile_id", profile.ProfileID),
		zap.String("payment_profile_id", local.PaymentProfileID),
	)
	return nil
}
