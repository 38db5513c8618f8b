package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/samplestore/backend/internal/domain/billing"
	"github.com/samplestore/backend/internal/domain/shared"
)

// setupProfileTestDB creates an in-memory SQLite database for testing
func setupProfileTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE customer_profiles (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL UNIQUE,
			profile_id TEXT NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`).Error
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE customer_payment_profiles (
			id TEXT PRIMARY KEY,
			customer_profile_id TEXT NOT NULL,
			payment_profile_id TEXT NOT NULL,
			first_name TEXT,
			last_name TEXT,
			company TEXT,
			address TEXT,
			city TEXT,
			state TEXT,
			zip TEXT,
			country TEXT,
			phone TEXT,
			fax TEXT,
			card_number TEXT,
			version INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			UNIQUE(customer_profile_id, payment_profile_id)
		)
	`).Error
	require.NoError(t, err)

	return db
}

func TestGormCustomerProfileRepository_SaveAndFind(t *testing.T) {
	db := setupProfileTestDB(t)
	repo := NewGormCustomerProfileRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	profile, err := billing.NewCustomerProfile(userID, "10001")
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, profile))

	t.Run("finds by user ID", func(t *testing.T) {
		found, err := repo.FindByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, profile.ID, found.ID)
		assert.Equal(t, "10001", found.ProfileID)
	})

	t.Run("missing user yields ErrNotFound", func(t *testing.T) {
		_, err := repo.FindByUserID(ctx, uuid.New())
		assert.Equal(t, shared.ErrNotFound, err)
	})

	t.Run("save updates existing row", func(t *testing.T) {
		profile.ProfileID = "10002"
		profile.IncrementVersion()
		require.NoError(t, repo.Save(ctx, profile))

		found, err := repo.FindByID(ctx, profile.ID)
		require.NoError(t, err)
		assert.Equal(t, "10002", found.ProfileID)
		assert.Equal(t, 2, found.Version)
	})
}

func TestGormPaymentProfileRepository_SyncRoundTrip(t *testing.T) {
	db := setupProfileTestDB(t)
	profileRepo := NewGormCustomerProfileRepository(db)
	paymentRepo := NewGormPaymentProfileRepository(db)
	ctx := context.Background()

	profile, err := billing.NewCustomerProfile(uuid.New(), "10001")
	require.NoError(t, err)
	require.NoError(t, profileRepo.Save(ctx, profile))

	remote := billing.RemotePaymentProfile{
		PaymentProfileID: "4000123456",
		Billing: &billing.BillingData{
			FirstName: "Jane",
			LastName:  "Doe",
			City:      "Portland",
		},
		CreditCard: &billing.RemoteCreditCard{CardNumber: "XXXX1111"},
	}

	t.Run("create from remote then find by composite key", func(t *testing.T) {
		local := billing.NewPaymentProfileFromRemote(profile.ID, remote)
		require.NoError(t, paymentRepo.Save(ctx, local))

		found, err := paymentRepo.FindByProfileAndRemoteID(ctx, profile.ID, "4000123456")
		require.NoError(t, err)
		assert.Equal(t, "Jane", found.FirstName)
		assert.Equal(t, "XXXX1111", found.CardNumber)
	})

	t.Run("sync overwrite keeps fields the payload omits", func(t *testing.T) {
		found, err := paymentRepo.FindByProfileAndRemoteID(ctx, profile.ID, "4000123456")
		require.NoError(t, err)

		found.SyncFromRemote(billing.RemotePaymentProfile{
			PaymentProfileID: "4000123456",
			Billing:          &billing.BillingData{LastName: "Smith"},
		})
		require.NoError(t, paymentRepo.Save(ctx, found))

		updated, err := paymentRepo.FindByProfileAndRemoteID(ctx, profile.ID, "4000123456")
		require.NoError(t, err)
		assert.Equal(t, "Jane", updated.FirstName)
		assert.Equal(t, "Smith", updated.LastName)
		assert.Equal(t, "Portland", updated.City)
		assert.Equal(t, "XXXX1111", updated.CardNumber)
	})

	t.Run("listing is scoped to the owning profile", func(t *testing.T) {
		other, err := billing.NewCustomerProfile(uuid.New(), "20001")
		require.NoError(t, err)
		require.NoError(t, profileRepo.Save(ctx, other))

		profiles, err := paymentRepo.FindByProfile(ctx, other.ID)
		require.NoError(t, err)
		assert.Empty(t, profiles)
	})
}
