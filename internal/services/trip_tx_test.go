package services

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	apperrors "globetrotter/internal/errors"
	"globetrotter/internal/models"
	"globetrotter/internal/testutil"
)

// setupMockDB opens a gorm handle on the postgres dialect backed by sqlmock.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("failed to open gorm on sqlmock: %v", err)
	}
	return db, mock
}

func noBackoff(t *testing.T) {
	t.Helper()
	prev := retryBackoff
	retryBackoff = 0
	t.Cleanup(func() { retryBackoff = prev })
}

func tripRows(tripID, userID string) *sqlmock.Rows {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{"id", "user_id", "name", "start_date", "end_date", "visibility", "created_at", "updated_at"}).
		AddRow(tripID, userID, "Locked", day, day.AddDate(0, 0, 9), string(models.TripVisibilityPrivate), day, day)
}

const lockQuery = `SELECT \* FROM "trips" WHERE id = \$1 ORDER BY "trips"\."id" LIMIT .+ FOR UPDATE`

func TestInTripTx(t *testing.T) {
	t.Run("retries_serialization_failure", func(t *testing.T) {
		noBackoff(t)
		db, mock := setupMockDB(t)
		tripID, userID := testutil.NewUserID(), testutil.NewUserID()

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WillReturnError(&pgconn.PgError{Code: pgSerializationFailure})
		mock.ExpectRollback()
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WillReturnRows(tripRows(tripID, userID))
		mock.ExpectCommit()

		calls := 0
		err := inTripTx(db, "test", userID, tripID, func(tx *gorm.DB, trip *models.Trip) error {
			calls++
			if trip.ID != tripID {
				t.Errorf("expected trip %s, got %s", tripID, trip.ID)
			}
			return nil
		})
		testutil.AssertNoError(t, err)

		if calls != 1 {
			t.Errorf("expected body to run once after the retry, got %d", calls)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("gives_up_after_max_attempts", func(t *testing.T) {
		noBackoff(t)
		db, mock := setupMockDB(t)
		tripID, userID := testutil.NewUserID(), testutil.NewUserID()

		for i := 0; i < maxTxAttempts; i++ {
			mock.ExpectBegin()
			mock.ExpectQuery(lockQuery).WillReturnError(&pgconn.PgError{Code: pgDeadlockDetected})
			mock.ExpectRollback()
		}

		err := inTripTx(db, "test", userID, tripID, func(tx *gorm.DB, trip *models.Trip) error {
			t.Fatal("body must not run without the lock")
			return nil
		})
		testutil.AssertAppError(t, err, "INTERNAL_ERROR")

		var pgErr *pgconn.PgError
		if !errors.As(err, &pgErr) || pgErr.Code != pgDeadlockDetected {
			t.Errorf("expected deadlock cause preserved, got %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("no_retry_on_validation_error", func(t *testing.T) {
		noBackoff(t)
		db, mock := setupMockDB(t)
		tripID, userID := testutil.NewUserID(), testutil.NewUserID()

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WillReturnRows(tripRows(tripID, userID))
		mock.ExpectRollback()

		calls := 0
		err := inTripTx(db, "test", userID, tripID, func(tx *gorm.DB, trip *models.Trip) error {
			calls++
			return apperrors.ErrStopOutsideTrip
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		if calls != 1 {
			t.Errorf("expected a single attempt, got %d", calls)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("forbidden_for_other_user", func(t *testing.T) {
		noBackoff(t)
		db, mock := setupMockDB(t)
		tripID := testutil.NewUserID()

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WillReturnRows(tripRows(tripID, testutil.NewUserID()))
		mock.ExpectRollback()

		err := inTripTx(db, "test", testutil.NewUserID(), tripID, func(tx *gorm.DB, trip *models.Trip) error {
			t.Fatal("body must not run for a non-owner")
			return nil
		})
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})

	t.Run("plain_storage_error_is_internal", func(t *testing.T) {
		noBackoff(t)
		db, mock := setupMockDB(t)
		tripID := testutil.NewUserID()

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := inTripTx(db, "test", testutil.NewUserID(), tripID, func(tx *gorm.DB, trip *models.Trip) error {
			return nil
		})
		testutil.AssertAppError(t, err, "INTERNAL_ERROR")
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"duplicate_key", gorm.ErrDuplicatedKey, true},
		{"wrapped_duplicate", apperrors.Wrap(apperrors.ErrInternalServer, gorm.ErrDuplicatedKey), true},
		{"check_violation", &pgconn.PgError{Code: "23514"}, false},
		{"not_found", gorm.ErrRecordNotFound, false},
		{"app_error", apperrors.ErrForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
