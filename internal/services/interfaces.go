package services

import (
	"time"

	"globetrotter/internal/models"
	"globetrotter/internal/pagination"
)

// TripInput carries the fields of a new trip.
type TripInput struct {
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	Description *string
	CoverPhoto  *string
}

// TripPatch carries the optional fields of a trip update. Nil fields are left unchanged.
type TripPatch struct {
	Name        *string
	StartDate   *time.Time
	EndDate     *time.Time
	Description *string
	CoverPhoto  *string
}

// TripServicer defines the contract for the trip lifecycle.
type TripServicer interface {
	CreateTrip(userID string, in TripInput) (*models.Trip, error)
	GetUserTrips(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Trip], error)
	GetTripByID(userID, tripID string) (*models.Trip, error)
	UpdateTrip(userID, tripID string, patch TripPatch) (*models.Trip, error)
	DeleteTrip(userID, tripID string) error
	PublishTrip(userID, tripID string) (*models.Trip, error)
	UnpublishTrip(userID, tripID string) (*models.Trip, error)
}

// StopServicer defines the contract for the ordered stops of a trip.
type StopServicer interface {
	AddStop(userID, tripID, cityID string, startDate, endDate time.Time) (*models.Stop, error)
	RemoveStop(userID, stopID string) error
	ListStops(userID, tripID string) ([]models.Stop, error)
}

// ActivityInput describes an activity to attach to a stop. With a TemplateID the
// template supplies name, description, category, duration and cost, and any
// non-nil field here overrides it. Without one, Name, Category and CustomCost
// are required.
type ActivityInput struct {
	TemplateID  *string
	Name        *string
	Description *string
	Category    *models.ActivityCategory
	Duration    *int
	Date        time.Time
	Time        *string
	CustomCost  *int64
}

// ActivityServicer defines the contract for activities attached to stops.
type ActivityServicer interface {
	AddActivity(userID, stopID string, in ActivityInput) (*models.Activity, error)
	RemoveActivity(userID, activityID string) error
	ListTripActivities(userID, tripID string) ([]models.Activity, error)
}

// TripBudget is the spend projection of a trip. Amounts are in cents.
type TripBudget struct {
	TripID          string                            `json:"trip_id"`
	Total           int64                             `json:"total"`
	Breakdown       map[models.ActivityCategory]int64 `json:"breakdown"`
	ActivitiesCount int                               `json:"activities_count"`
}

// BudgetServicer defines the contract for budget aggregation.
type BudgetServicer interface {
	GetTripBudget(userID, tripID string) (*TripBudget, error)
}

// PublicTripServicer defines the contract for the unauthenticated itinerary view.
type PublicTripServicer interface {
	GetPublicView(token string) (*PublicTripView, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
