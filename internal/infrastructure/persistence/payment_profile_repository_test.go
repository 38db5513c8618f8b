package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/samplestore/backend/internal/domain/billing"
	"github.com/samplestore/backend/internal/domain/shared"
)

// newMockPaymentProfileRepository creates a GormPaymentProfileRepository with a mocked SQL connection
func newMockPaymentProfileRepository(t *testing.T) (*GormPaymentProfileRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormPaymentProfileRepository(gormDB), mock, mockDB
}

func TestGormPaymentProfileRepository_FindByID(t *testing.T) {
	t.Run("finds existing payment profile", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentProfileRepository(t)
		defer mockDB.Close()

		profileID := uuid.New()
		customerProfileID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "customer_profile_id", "payment_profile_id", "first_name", "last_name", "card_number"}).
			AddRow(profileID, customerProfileID, "4000123456", "Jane", "Doe", "XXXX1111")

		mock.ExpectQuery(`SELECT \* FROM "customer_payment_profiles" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(profileID, 1).
			WillReturnRows(rows)

		profile, err := repo.FindByID(context.Background(), profileID)

		assert.NoError(t, err)
		assert.NotNil(t, profile)
		assert.Equal(t, "4000123456", profile.PaymentProfileID)
		assert.Equal(t, "XXXX1111", profile.CardNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing profile", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentProfileRepository(t)
		defer mockDB.Close()

		profileID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "customer_payment_profiles" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(profileID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		profile, err := repo.FindByID(context.Background(), profileID)

		assert.Error(t, err)
		assert.Nil(t, profile)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentProfileRepository_FindByProfileAndRemoteID(t *testing.T) {
	t.Run("finds profile by composite key", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentProfileRepository(t)
		defer mockDB.Close()

		profileID := uuid.New()
		customerProfileID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "customer_profile_id", "payment_profile_id", "card_number"}).
			AddRow(profileID, customerProfileID, "4000123456", "XXXX1111")

		mock.ExpectQuery(`SELECT \* FROM "customer_payment_profiles" WHERE customer_profile_id = \$1 AND payment_profile_id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(customerProfileID, "4000123456", 1).
			WillReturnRows(rows)

		profile, err := repo.FindByProfileAndRemoteID(context.Background(), customerProfileID, "4000123456")

		assert.NoError(t, err)
		assert.NotNil(t, profile)
		assert.Equal(t, customerProfileID, profile.CustomerProfileID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for unknown remote id", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentProfileRepository(t)
		defer mockDB.Close()

		customerProfileID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "customer_payment_profiles" WHERE customer_profile_id = \$1 AND payment_profile_id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(customerProfileID, "9999", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		profile, err := repo.FindByProfileAndRemoteID(context.Background(), customerProfileID, "9999")

		assert.Error(t, err)
		assert.Nil(t, profile)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentProfileRepository_FindByProfile(t *testing.T) {
	t.Run("lists profiles under a customer profile", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentProfileRepository(t)
		defer mockDB.Close()

		customerProfileID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "customer_profile_id", "payment_profile_id", "card_number"}).
			AddRow(uuid.New(), customerProfileID, "4000123456", "XXXX1111").
			AddRow(uuid.New(), customerProfileID, "4000123457", "XXXX4242")

		mock.ExpectQuery(`SELECT \* FROM "customer_payment_profiles" WHERE customer_profile_id = \$1 ORDER BY created_at ASC`).
			WithArgs(customerProfileID).
			WillReturnRows(rows)

		profiles, err := repo.FindByProfile(context.Background(), customerProfileID)

		assert.NoError(t, err)
		assert.Len(t, profiles, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentProfileRepository_Delete(t *testing.T) {
	t.Run("deletes existing profile", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentProfileRepository(t)
		defer mockDB.Close()

		profileID := uuid.New()

		mock.ExpectExec(`DELETE FROM "customer_payment_profiles" WHERE id = \$1`).
			WithArgs(profileID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), profileID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when nothing deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentProfileRepository(t)
		defer mockDB.Close()

		profileID := uuid.New()

		mock.ExpectExec(`DELETE FROM "customer_payment_profiles" WHERE id = \$1`).
			WithArgs(profileID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), profileID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentProfileRepository_Implements(t *testing.T) {
	var _ billing.PaymentProfileRepository = (*GormPaymentProfileRepository)(nil)
}
