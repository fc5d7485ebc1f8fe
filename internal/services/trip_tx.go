package services

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "globetrotter/internal/errors"
	"globetrotter/internal/logger"
	"globetrotter/internal/metrics"
	"globetrotter/internal/models"
)

// maxTxAttempts bounds how often a per-trip transaction is retried on contention.
const maxTxAttempts = 3

// retryBackoff is multiplied by the attempt number between retries.
var retryBackoff = 25 * time.Millisecond

// Postgres error codes that signal a transaction lost a race and may be replayed.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// isRetryable reports whether err is a transient storage conflict. A duplicate
// key here can only come from a concurrent writer taking the same stop position
// or token, so replaying the whole unit of work is safe.
func isRetryable(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
	}
	return false
}

// withRetry runs fn until it succeeds, fails permanently, or runs out of
// attempts. fn must roll back everything it did before returning an error.
func withRetry(op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return asAppError(err)
		}
		logger.Get().Warnw("trip transaction conflict",
			"operation", op,
			"attempt", attempt,
			"error", err,
		)
		if attempt < maxTxAttempts {
			metrics.RecordTxRetry(op)
			time.Sleep(time.Duration(attempt) * retryBackoff)
		}
	}
	logger.Get().Errorw("trip transaction retries exhausted", "operation", op, "error", err)
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

// asAppError passes application errors through and hides anything else
// behind INTERNAL_ERROR.
func asAppError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

// inTripTx runs fn in a transaction that holds the row lock of the trip, after
// checking that userID owns it. Every mutation of a trip's subtree goes
// through here, so changes to one trip serialise while different trips never
// contend. fn must use tx, never the service's own handle.
func inTripTx(db *gorm.DB, op, userID, tripID string, fn func(tx *gorm.DB, trip *models.Trip) error) error {
	return withRetry(op, func() error {
		return db.Transaction(func(tx *gorm.DB) error {
			trip, err := lockTrip(tx, tripID)
			if err != nil {
				return err
			}
			if trip.UserID != userID {
				return apperrors.ErrForbidden
			}
			return fn(tx, trip)
		})
	})
}

// lockTrip loads the trip with SELECT ... FOR UPDATE.
func lockTrip(tx *gorm.DB, tripID string) (*models.Trip, error) {
	var trip models.Trip
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", tripID).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, err
	}
	return &trip, nil
}

// findOwnedTrip loads a trip for a read by its owner. Other users get
// TRIP_NOT_FOUND so private trips do not leak.
func findOwnedTrip(db *gorm.DB, userID, tripID string) (*models.Trip, error) {
	var trip models.Trip
	if err := db.Where("id = ? AND user_id = ?", tripID, userID).First(&trip).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &trip, nil
}

// withStatus fills the derived status of trip as of now.
func withStatus(trip *models.Trip, now time.Time) error {
	status, err := models.DeriveStatus(now, trip.StartDate, trip.EndDate)
	if err != nil {
		logger.Get().Errorw("trip has corrupt date range", "trip_id", trip.ID, "error", err)
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	trip.Status = status
	return nil
}

// deleteStops removes the given stops and every activity attached to them.
func deleteStops(tx *gorm.DB, stopIDs []string) error {
	if len(stopIDs) == 0 {
		return nil
	}
	if err := tx.Where("stop_id IN ?", stopIDs).Delete(&models.Activity{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", stopIDs).Delete(&models.Stop{}).Error
}

// renumberStops closes gaps in the trip's stop positions, keeping relative
// order. Rows are moved in ascending order so each target slot is already
// free and the (trip_id, position) index never sees a duplicate.
func renumberStops(tx *gorm.DB, tripID string) error {
	var stops []models.Stop
	if err := tx.Where("trip_id = ?", tripID).Order("position ASC").Find(&stops).Error; err != nil {
		return err
	}
	for i, stop := range stops {
		want := i + 1
		if stop.Position == want {
			continue
		}
		if err := tx.Model(&models.Stop{}).Where("id = ?", stop.ID).Update("position", want).Error; err != nil {
			return err
		}
	}
	return nil
}
