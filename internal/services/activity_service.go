package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"globetrotter/internal/catalog"
	apperrors "globetrotter/internal/errors"
	"globetrotter/internal/models"
)

// activityService attaches template-based or custom activities to stops.
type activityService struct {
	db      *gorm.DB
	catalog catalog.Reader
}

// NewActivityService creates a new ActivityServicer.
func NewActivityService(db *gorm.DB, cat catalog.Reader) ActivityServicer {
	return &activityService{db: db, catalog: cat}
}

// AddActivity attaches an activity to the stop on in.Date.
func (s *activityService) AddActivity(userID, stopID string, in ActivityInput) (*models.Activity, error) {
	var stop models.Stop
	if err := s.db.Where("id = ?", stopID).First(&stop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStopNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	activity, err := s.resolve(&stop, in)
	if err != nil {
		return nil, err
	}

	err = inTripTx(s.db, "add_activity", userID, stop.TripID, func(tx *gorm.DB, trip *models.Trip) error {
		var current models.Stop
		if err := tx.Where("id = ? AND trip_id = ?", stop.ID, trip.ID).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrStopNotFound
			}
			return err
		}
		if !current.Covers(activity.Date) {
			return apperrors.ErrActivityOutsideStop
		}
		return tx.Create(activity).Error
	})
	if err != nil {
		return nil, err
	}
	return activity, nil
}

// resolve builds the activity row from the input, copying template fields
// where the input leaves them unset.
func (s *activityService) resolve(stop *models.Stop, in ActivityInput) (*models.Activity, error) {
	activity := &models.Activity{
		TripID: stop.TripID,
		StopID: stop.ID,
		Date:   models.DateOnly(in.Date),
		Time:   in.Time,
	}

	if in.TemplateID != nil {
		tmpl, err := s.catalog.GetTemplate(*in.TemplateID)
		if err != nil {
			return nil, err
		}
		if tmpl.CityID != stop.CityID {
			return nil, apperrors.ErrTemplateWrongCity
		}
		activity.TemplateID = &tmpl.ID
		activity.Name = tmpl.Name
		activity.Description = tmpl.Description
		activity.Category = tmpl.Category
		activity.Duration = tmpl.Duration
		activity.Cost = tmpl.EstimatedCost
	} else {
		switch {
		case in.Name == nil || strings.TrimSpace(*in.Name) == "":
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required for a custom activity")
		case in.Category == nil:
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required for a custom activity")
		case in.CustomCost == nil:
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "custom_cost is required for a custom activity")
		}
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		activity.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		activity.Description = in.Description
	}
	if in.Category != nil {
		activity.Category = *in.Category
	}
	if in.Duration != nil {
		activity.Duration = *in.Duration
	}
	if in.CustomCost != nil {
		activity.Cost = *in.CustomCost
	}

	if !activity.Category.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown activity category")
	}
	if activity.Cost < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "cost must not be negative")
	}
	if activity.Duration < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "duration must not be negative")
	}
	if !stop.Covers(activity.Date) {
		return nil, apperrors.ErrActivityOutsideStop
	}
	return activity, nil
}

// RemoveActivity deletes a single activity.
func (s *activityService) RemoveActivity(userID, activityID string) error {
	var activity models.Activity
	if err := s.db.Where("id = ?", activityID).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrActivityNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return inTripTx(s.db, "remove_activity", userID, activity.TripID, func(tx *gorm.DB, trip *models.Trip) error {
		res := tx.Where("id = ? AND trip_id = ?", activity.ID, trip.ID).Delete(&models.Activity{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrActivityNotFound
		}
		return nil
	})
}

// ListTripActivities returns every activity of the trip across all stops,
// ordered by date and time.
func (s *activityService) ListTripActivities(userID, tripID string) ([]models.Activity, error) {
	if _, err := findOwnedTrip(s.db, userID, tripID); err != nil {
		return nil, err
	}
	return listActivities(s.db, tripID)
}

func listActivities(db *gorm.DB, tripID string) ([]models.Activity, error) {
	activities := []models.Activity{}
	err := db.Where("trip_id = ?", tripID).
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: clause.Column{Name: "date"}},
			{Column: clause.Column{Name: "time"}},
			{Column: clause.Column{Name: "created_at"}},
		}}).
		Find(&activities).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return activities, nil
}
