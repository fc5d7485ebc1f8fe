package testutil

import (
	"errors"
	"testing"

	apperrors "globetrotter/internal/errors"
	"globetrotter/internal/models"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertContiguousOrder fails unless stops carry positions exactly 1..len(stops) in order.
func AssertContiguousOrder(t *testing.T, stops []models.Stop) {
	t.Helper()

	for i, s := range stops {
		if s.Position != i+1 {
			t.Fatalf("expected stop %d to have position %d, got %d (stop %s)", i, i+1, s.Position, s.ID)
		}
	}
}
