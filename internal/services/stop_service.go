package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"globetrotter/internal/catalog"
	apperrors "globetrotter/internal/errors"
	"globetrotter/internal/models"
)

// stopService manages the ordered stops of a trip.
type stopService struct {
	db      *gorm.DB
	catalog catalog.Reader
}

// NewStopService creates a new StopServicer.
func NewStopService(db *gorm.DB, cat catalog.Reader) StopServicer {
	return &stopService{db: db, catalog: cat}
}

// AddStop appends a stop in cityID to the end of the trip's itinerary.
func (s *stopService) AddStop(userID, tripID, cityID string, startDate, endDate time.Time) (*models.Stop, error) {
	start, end := models.DateOnly(startDate), models.DateOnly(endDate)
	if start.After(end) {
		return nil, apperrors.ErrInvalidDateRange
	}

	city, err := s.catalog.GetCity(cityID)
	if err != nil {
		return nil, err
	}

	var stop *models.Stop
	err = inTripTx(s.db, "add_stop", userID, tripID, func(tx *gorm.DB, trip *models.Trip) error {
		if !trip.Covers(start, end) {
			return apperrors.ErrStopOutsideTrip
		}

		var maxPosition int
		if err := tx.Model(&models.Stop{}).
			Where("trip_id = ?", trip.ID).
			Select("COALESCE(MAX(position), 0)").
			Scan(&maxPosition).Error; err != nil {
			return err
		}

		stop = &models.Stop{
			TripID:    trip.ID,
			CityID:    city.ID,
			CityName:  city.Name,
			Country:   city.Country,
			StartDate: start,
			EndDate:   end,
			Position:  maxPosition + 1,
		}
		return tx.Create(stop).Error
	})
	if err != nil {
		return nil, err
	}
	return stop, nil
}

// RemoveStop deletes a stop with its activities and renumbers the remaining
// stops of the trip to 1..N.
func (s *stopService) RemoveStop(userID, stopID string) error {
	var stop models.Stop
	if err := s.db.Where("id = ?", stopID).First(&stop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStopNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return inTripTx(s.db, "remove_stop", userID, stop.TripID, func(tx *gorm.DB, trip *models.Trip) error {
		// The stop may have gone while we waited for the lock.
		var count int64
		if err := tx.Model(&models.Stop{}).Where("id = ? AND trip_id = ?", stop.ID, trip.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperrors.ErrStopNotFound
		}

		if err := deleteStops(tx, []string{stop.ID}); err != nil {
			return err
		}
		return renumberStops(tx, trip.ID)
	})
}

// ListStops returns the trip's stops in itinerary order.
func (s *stopService) ListStops(userID, tripID string) ([]models.Stop, error) {
	if _, err := findOwnedTrip(s.db, userID, tripID); err != nil {
		return nil, err
	}

	stops := []models.Stop{}
	if err := s.db.Where("trip_id = ?", tripID).Order("position ASC").Find(&stops).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return stops, nil
}
