package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	checkoutsvc "github.com/paygate-app/paygate/pkg/checkout"
	"github.com/paygate-app/paygate/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() }) //nolint:errcheck

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return NewRepository(db), mock
}

func testSession(userID uuid.UUID) *checkoutsvc.Session {
	return &checkoutsvc.Session{
		ID:          "cs_test_1",
		UserID:      userID,
		Amount:      3000,
		Currency:    "USD",
		Status:      checkoutsvc.StatusPending,
		CheckoutURL: "https://checkout.stripe.com/c/pay/cs_test_1",
		CreatedAt:   time.Now(),
		ExpiresAt:   time.Now().Add(24 * time.Hour),
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	userID := uuid.New()

	mock.ExpectExec(`INSERT INTO "checkout_sessions" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), testSession(userID))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_Error(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO "checkout_sessions" (.+) VALUES (.+)`).
		WillReturnError(errors.New("create error"))

	err := repo.Create(context.Background(), testSession(uuid.New()))
	require.Error(t, err)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	userID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "client_reference_id", "amount", "currency",
		"status", "checkout_url", "payment_intent", "created_at", "expires_at",
	}).AddRow(
		"cs_test_1", userID, "order_42", int64(3000), "USD",
		checkoutsvc.StatusPending, "https://c/1", "", now, now.Add(24*time.Hour),
	)
	mock.ExpectQuery(`SELECT \* FROM "checkout_sessions" WHERE id = (.+)`).
		WithArgs("cs_test_1", 1).
		WillReturnRows(rows)

	session, err := repo.GetByID(context.Background(), "cs_test_1")
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", session.ID)
	assert.Equal(t, userID, session.UserID)
	assert.Equal(t, "order_42", session.ClientReferenceID)
	assert.Equal(t, int64(3000), session.Amount)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "checkout_sessions" WHERE id = (.+)`).
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := repo.GetByID(context.Background(), "cs_missing")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRepository_ListPendingByUser(t *testing.T) {
	repo, mock := newMockRepo(t)
	userID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "client_reference_id", "amount", "currency",
		"status", "checkout_url", "payment_intent", "created_at", "expires_at",
	}).
		AddRow("cs_1", userID, "", int64(1000), "USD",
			checkoutsvc.StatusPending, "https://c/1", "", now, now).
		AddRow("cs_2", userID, "", int64(2000), "EUR",
			checkoutsvc.StatusPending, "https://c/2", "", now, now)
	mock.ExpectQuery(`SELECT \* FROM "checkout_sessions" WHERE user_id = (.+) AND status = (.+)`).
		WithArgs(userID, checkoutsvc.StatusPending).
		WillReturnRows(rows)

	sessions, err := repo.ListPendingByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "cs_1", sessions[0].ID)
	assert.Equal(t, "cs_2", sessions[1].ID)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "checkout_sessions" SET (.+) WHERE id = (.+) AND status = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(
		context.Background(),
		"cs_test_1",
		checkoutsvc.StatusCompleted,
		"pi_1",
	)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE "checkout_sessions" SET (.+) WHERE id = (.+) AND status = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT "status" FROM "checkout_sessions" WHERE id = (.+)`).
		WillReturnError(gorm.ErrRecordNotFound)

	err := repo.UpdateStatus(
		context.Background(),
		"cs_missing",
		checkoutsvc.StatusExpired,
		"",
	)
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRepository_UpdateStatus_AlreadyFinalized(t *testing.T) {
	repo, mock := newMockRepo(t)

	// The guarded update matches nothing for a completed session; the
	// follow-up lookup distinguishes that from a missing record.
	mock.ExpectExec(`UPDATE "checkout_sessions" SET (.+) WHERE id = (.+) AND status = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT "status" FROM "checkout_sessions" WHERE id = (.+)`).
		WithArgs("cs_test_1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).
			AddRow(checkoutsvc.StatusCompleted))

	err := repo.UpdateStatus(
		context.Background(),
		"cs_test_1",
		checkoutsvc.StatusExpired,
		"",
	)
	require.ErrorIs(t, err, domain.ErrSessionAlreadyFinalized)
	require.NoError(t, mock.ExpectationsWereMet())
}
