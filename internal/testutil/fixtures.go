package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"globetrotter/internal/models"
	"globetrotter/internal/uuid"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewUserID returns a fresh owner identity as the auth service would issue it.
func NewUserID() string {
	return uuid.New()
}

// Date parses a YYYY-MM-DD string and fails the test on error.
func Date(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		t.Fatalf("invalid fixture date %q: %v", s, err)
	}
	return d
}

// CreateTestCity creates a catalog city with a unique name.
func CreateTestCity(t *testing.T, db *gorm.DB) *models.City {
	t.Helper()

	n := nextID()
	city := &models.City{
		Name:       fmt.Sprintf("Test City %d", n),
		Country:    "Testland",
		CostIndex:  5.0,
		Popularity: int(n % 100),
	}
	if err := db.Create(city).Error; err != nil {
		t.Fatalf("failed to create test city: %v", err)
	}
	return city
}

// CreateTestTemplate creates an activity template for the city with the given category and cost (in cents).
func CreateTestTemplate(t *testing.T, db *gorm.DB, cityID string, category models.ActivityCategory, cost int64) *models.ActivityTemplate {
	t.Helper()

	desc := "fixture template"
	tmpl := &models.ActivityTemplate{
		CityID:        cityID,
		Name:          fmt.Sprintf("Test Template %d", nextID()),
		Description:   &desc,
		Category:      category,
		EstimatedCost: cost,
		Duration:      2,
	}
	if err := db.Create(tmpl).Error; err != nil {
		t.Fatalf("failed to create test template: %v", err)
	}
	return tmpl
}

// CreateTestTrip creates a private trip for userID spanning start..end (YYYY-MM-DD).
func CreateTestTrip(t *testing.T, db *gorm.DB, userID, start, end string) *models.Trip {
	t.Helper()

	trip := &models.Trip{
		UserID:     userID,
		Name:       fmt.Sprintf("Test Trip %d", nextID()),
		StartDate:  Date(t, start),
		EndDate:    Date(t, end),
		Visibility: models.TripVisibilityPrivate,
	}
	if err := db.Create(trip).Error; err != nil {
		t.Fatalf("failed to create test trip: %v", err)
	}
	return trip
}

// CreateTestStop appends a stop directly, bypassing the stop service.
func CreateTestStop(t *testing.T, db *gorm.DB, trip *models.Trip, city *models.City, position int, start, end string) *models.Stop {
	t.Helper()

	stop := &models.Stop{
		TripID:    trip.ID,
		CityID:    city.ID,
		CityName:  city.Name,
		Country:   city.Country,
		StartDate: Date(t, start),
		EndDate:   Date(t, end),
		Position:  position,
	}
	if err := db.Create(stop).Error; err != nil {
		t.Fatalf("failed to create test stop: %v", err)
	}
	return stop
}

// CreateTestActivity creates a custom activity on the stop's first day.
func CreateTestActivity(t *testing.T, db *gorm.DB, stop *models.Stop, category models.ActivityCategory, cost int64) *models.Activity {
	t.Helper()

	activity := &models.Activity{
		TripID:   stop.TripID,
		StopID:   stop.ID,
		Name:     fmt.Sprintf("Test Activity %d", nextID()),
		Category: category,
		Date:     stop.StartDate,
		Cost:     cost,
	}
	if err := db.Create(activity).Error; err != nil {
		t.Fatalf("failed to create test activity: %v", err)
	}
	return activity
}
