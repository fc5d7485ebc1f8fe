package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "globetrotter/internal/errors"
	"globetrotter/internal/models"
)

// PublicTrip is the shareable part of a trip. It carries no owner identity,
// visibility flag or token.
type PublicTrip struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	StartDate   time.Time         `json:"start_date"`
	EndDate     time.Time         `json:"end_date"`
	Description *string           `json:"description,omitempty"`
	CoverPhoto  *string           `json:"cover_photo,omitempty"`
	Status      models.TripStatus `json:"status"`
}

// PublicStop is a stop as shown on a shared itinerary.
type PublicStop struct {
	ID        string    `json:"id"`
	CityID    string    `json:"city_id"`
	CityName  string    `json:"city_name"`
	Country   string    `json:"country"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Order     int       `json:"order"`
}

// PublicActivity is an activity as shown on a shared itinerary.
type PublicActivity struct {
	ID          string                  `json:"id"`
	StopID      string                  `json:"stop_id"`
	Name        string                  `json:"name"`
	Description *string                 `json:"description,omitempty"`
	Category    models.ActivityCategory `json:"category"`
	Duration    int                     `json:"duration"`
	Date        time.Time               `json:"date"`
	Time        *string                 `json:"time,omitempty"`
	Cost        int64                   `json:"cost"`
}

// PublicTripView is the read-only itinerary served for a public token.
type PublicTripView struct {
	Trip       PublicTrip       `json:"trip"`
	Stops      []PublicStop     `json:"stops"`
	Activities []PublicActivity `json:"activities"`
}

type publicTripService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPublicTripService creates a new PublicTripServicer.
func NewPublicTripService(db *gorm.DB, now func() time.Time) PublicTripServicer {
	if now == nil {
		now = time.Now
	}
	return &publicTripService{db: db, now: now}
}

// GetPublicView resolves a public token. Unknown tokens and tokens of trips
// that are currently private both yield TRIP_NOT_FOUND.
func (s *publicTripService) GetPublicView(token string) (*PublicTripView, error) {
	if token == "" {
		return nil, apperrors.ErrTripNotFound
	}

	var trip models.Trip
	err := s.db.Where("public_token = ? AND visibility = ?", token, models.TripVisibilityPublic).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := withStatus(&trip, s.now()); err != nil {
		return nil, err
	}

	var stops []models.Stop
	if err := s.db.Where("trip_id = ?", trip.ID).Order("position ASC").Find(&stops).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	activities, err := listActivities(s.db, trip.ID)
	if err != nil {
		return nil, err
	}

	view := &PublicTripView{
		Trip: PublicTrip{
			ID:          trip.ID,
			Name:        trip.Name,
			StartDate:   trip.StartDate,
			EndDate:     trip.EndDate,
			Description: trip.Description,
			CoverPhoto:  trip.CoverPhoto,
			Status:      trip.Status,
		},
		Stops:      make([]PublicStop, 0, len(stops)),
		Activities: make([]PublicActivity, 0, len(activities)),
	}
	for _, st := range stops {
		view.Stops = append(view.Stops, PublicStop{
			ID:        st.ID,
			CityID:    st.CityID,
			CityName:  st.CityName,
			Country:   st.Country,
			StartDate: st.StartDate,
			EndDate:   st.EndDate,
			Order:     st.Position,
		})
	}
	for _, a := range activities {
		view.Activities = append(view.Activities, PublicActivity{
			ID:          a.ID,
			StopID:      a.StopID,
			Name:        a.Name,
			Description: a.Description,
			Category:    a.Category,
			Duration:    a.Duration,
			Date:        a.Date,
			Time:        a.Time,
			Cost:        a.Cost,
		})
	}
	return view, nil
}
