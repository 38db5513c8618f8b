package billing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/samplestore/backend/internal/domain/billing"
	"github.com/samplestore/backend/internal/domain/shared"
)

// ProfileService manages customer profiles. Every write goes to the
// gateway first; local rows are only touched after the remote side has
// accepted the change.
type ProfileService struct {
	profileRepo billing.CustomerProfileRepository
	paymentRepo billing.PaymentProfileRepository
	gateway     billing.Gateway
	logger      *zap.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	profileRepo billing.CustomerProfileRepository,
	paymentRepo billing.PaymentProfileRepository,
	gateway billing.Gateway,
	logger *zap.Logger,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		logger:      logger,
	}
}

// Create registers a customer profile with the gateway and mirrors the
// result locally. When payment data is supplied the gateway creates an
// initial payment sub-profile in the same request. A declined gateway
// response leaves no local records behind.
func (s *ProfileService) Create(ctx context.Context, req CreateProfileRequest) (*ProfileResponse, error) {
	if existing, err := s.profileRepo.FindByUserID(ctx, req.UserID); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS",
			"User already has a customer profile: "+existing.ProfileID)
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	payment := billing.PaymentData{}
	if req.Payment != nil {
		payment = req.Payment.ToPaymentData()
	}
	billingData := req.Billing.ToBillingData()

	profileID, paymentProfileIDs, err := s.gateway.AddProfile(ctx, req.UserID, payment, billingData)
	if err != nil {
		return nil, err
	}

	profile, err := billing.NewCustomerProfile(req.UserID, profileID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	paymentProfiles := make([]billing.CustomerPaymentProfile, 0, len(paymentProfileIDs))
	for _, remoteID := range paymentProfileIDs {
		local, err := billing.NewCustomerPaymentProfile(profile.ID, remoteID, payment, billingData)
		if err != nil {
			return nil, err
		}
		if err := s.paymentRepo.Save(ctx, local); err != nil {
			return nil, err
		}
		paymentProfiles = append(paymentProfiles, *local)
	}

	s.logger.Info("customer profile registered",
		zap.String("user_id", req.UserID.String()),
		zap.String("profile_id", profileID),
		zap.Int("payment_profiles", len(paymentProfiles)),
	)

	return ToProfileResponse(profile, paymentProfiles), nil
}

// Get retrieves a profile with its payment profiles by ID
func (s *ProfileService) Get(ctx context.Context, id uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withPaymentProfiles(ctx, profile)
}

// GetByUser retrieves the profile owned by a user
func (s *ProfileService) GetByUser(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withPaymentProfiles(ctx, profile)
}

// Sync pulls the remote profile state and reconciles local payment
// profiles against it. Remote sub-profiles without a local row are
// created; existing rows are overwritten with whatever fields the remote
// payload carries.
func (s *ProfileService) Sync(ctx context.Context, id uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	remoteProfiles, err := s.gateway.GetProfile(ctx, profile.ProfileID)
	if err != nil {
		return nil, err
	}

	for _, remote := range remoteProfiles {
		local, err := s.paymentRepo.FindByProfileAndRemoteID(ctx, profile.ID, remote.PaymentProfileID)
		switch {
		case err == nil:
			local.SyncFromRemote(remote)
		case errors.Is(err, shared.ErrNotFound):
			local = billing.NewPaymentProfileFromRemote(profile.ID, remote)
		default:
			return nil, err
		}
		if err := s.paymentRepo.Save(ctx, local); err != nil {
			return nil, err
		}
	}

	s.logger.Info("customer profile synced",
		zap.String("profile_id", profile.ProfileID),
		zap.Int("remote_payment_profiles", len(remoteProfiles)),
	)

	return s.withPaymentProfiles(ctx, profile)
}

func (s *ProfileService) withPaymentProfiles(ctx context.Context, profile *billing.CustomerProfile) (*ProfileResponse, error) {
	paymentProfiles, err := s.paymentRepo.FindByProfile(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	return ToProfileResponse(profile, paymentProfiles), nil
}
