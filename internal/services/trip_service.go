package services

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "globetrotter/internal/errors"
	"globetrotter/internal/models"
	"globetrotter/internal/pagination"
)

// publicTokenBytes is the entropy of a public token (256 bits).
const publicTokenBytes = 32

// tripService handles the trip lifecycle: metadata, status and publishing.
type tripService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewTripService creates a new TripServicer. now supplies the clock used to
// derive trip status; nil means time.Now.
func NewTripService(db *gorm.DB, now func() time.Time) TripServicer {
	if now == nil {
		now = time.Now
	}
	return &tripService{db: db, now: now}
}

// CreateTrip creates a private trip owned by userID.
func (s *tripService) CreateTrip(userID string, in TripInput) (*models.Trip, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "trip name is required")
	}
	start, end := models.DateOnly(in.StartDate), models.DateOnly(in.EndDate)
	if start.After(end) {
		return nil, apperrors.ErrInvalidDateRange
	}

	trip := &models.Trip{
		UserID:      userID,
		Name:        name,
		StartDate:   start,
		EndDate:     end,
		Description: in.Description,
		CoverPhoto:  in.CoverPhoto,
		Visibility:  models.TripVisibilityPrivate,
	}
	if err := s.db.Create(trip).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := withStatus(trip, s.now()); err != nil {
		return nil, err
	}
	return trip, nil
}

// GetUserTrips retrieves a paginated list of the user's trips.
func (s *tripService) GetUserTrips(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Trip], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Trip{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var trips []models.Trip
	if err := base.Scopes(pagination.Paginate(page)).Find(&trips).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	now := s.now()
	for i := range trips {
		if err := withStatus(&trips[i], now); err != nil {
			return nil, err
		}
	}

	result := pagination.NewPageResponse(trips, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetTripByID retrieves one of the user's trips.
func (s *tripService) GetTripByID(userID, tripID string) (*models.Trip, error) {
	trip, err := findOwnedTrip(s.db, userID, tripID)
	if err != nil {
		return nil, err
	}
	if err := withStatus(trip, s.now()); err != nil {
		return nil, err
	}
	return trip, nil
}

// UpdateTrip applies patch to the trip. A new date range must still cover
// every stop of the trip.
func (s *tripService) UpdateTrip(userID, tripID string, patch TripPatch) (*models.Trip, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "trip name cannot be empty")
	}

	var updated *models.Trip
	err := inTripTx(s.db, "update_trip", userID, tripID, func(tx *gorm.DB, trip *models.Trip) error {
		if patch.Name != nil {
			trip.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Description != nil {
			trip.Description = patch.Description
		}
		if patch.CoverPhoto != nil {
			trip.CoverPhoto = patch.CoverPhoto
		}

		datesChanged := patch.StartDate != nil || patch.EndDate != nil
		if patch.StartDate != nil {
			trip.StartDate = models.DateOnly(*patch.StartDate)
		}
		if patch.EndDate != nil {
			trip.EndDate = models.DateOnly(*patch.EndDate)
		}
		if trip.StartDate.After(trip.EndDate) {
			return apperrors.ErrInvalidDateRange
		}

		if datesChanged {
			var stops []models.Stop
			if err := tx.Where("trip_id = ?", trip.ID).Find(&stops).Error; err != nil {
				return err
			}
			for _, stop := range stops {
				if !trip.Covers(stop.StartDate, stop.EndDate) {
					return apperrors.ErrTripRangeExcludes
				}
			}
		}

		if err := tx.Save(trip).Error; err != nil {
			return err
		}
		updated = trip
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := withStatus(updated, s.now()); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTrip removes the trip, its stops and their activities.
func (s *tripService) DeleteTrip(userID, tripID string) error {
	return inTripTx(s.db, "delete_trip", userID, tripID, func(tx *gorm.DB, trip *models.Trip) error {
		var stopIDs []string
		if err := tx.Model(&models.Stop{}).Where("trip_id = ?", trip.ID).Pluck("id", &stopIDs).Error; err != nil {
			return err
		}
		if err := deleteStops(tx, stopIDs); err != nil {
			return err
		}
		return tx.Delete(&models.Trip{}, "id = ?", trip.ID).Error
	})
}

// PublishTrip makes the trip public. The token is generated on first publish
// only and is kept for every later publish.
func (s *tripService) PublishTrip(userID, tripID string) (*models.Trip, error) {
	var published models.Trip
	err := inTripTx(s.db, "publish_trip", userID, tripID, func(tx *gorm.DB, trip *models.Trip) error {
		if trip.PublicToken == nil {
			token, err := newPublicToken()
			if err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			// Conditional set: a token that appeared since the lock was taken wins.
			if err := tx.Model(&models.Trip{}).
				Where("id = ? AND public_token IS NULL", trip.ID).
				Update("public_token", token).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&models.Trip{}).
			Where("id = ?", trip.ID).
			Update("visibility", models.TripVisibilityPublic).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", trip.ID).First(&published).Error
	})
	if err != nil {
		return nil, err
	}

	if err := withStatus(&published, s.now()); err != nil {
		return nil, err
	}
	return &published, nil
}

// UnpublishTrip makes the trip private. The token is retained so a later
// publish restores the same public URL; while private it resolves to nothing.
func (s *tripService) UnpublishTrip(userID, tripID string) (*models.Trip, error) {
	var unpublished models.Trip
	err := inTripTx(s.db, "unpublish_trip", userID, tripID, func(tx *gorm.DB, trip *models.Trip) error {
		if err := tx.Model(&models.Trip{}).
			Where("id = ?", trip.ID).
			Update("visibility", models.TripVisibilityPrivate).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", trip.ID).First(&unpublished).Error
	})
	if err != nil {
		return nil, err
	}

	if err := withStatus(&unpublished, s.now()); err != nil {
		return nil, err
	}
	return &unpublished, nil
}

// newPublicToken returns a URL-safe random token.
func newPublicToken() (string, error) {
	buf := make([]byte, publicTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
