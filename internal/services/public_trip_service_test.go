package services

import (
	"encoding/json"
	"strings"
	"testing"

	"globetrotter/internal/models"
	"globetrotter/internal/testutil"
)

func TestGetPublicView(t *testing.T) {
	t.Run("published", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		trips := NewTripService(db, fixedClock)
		svc := NewPublicTripService(db, fixedClock)
		userID := testutil.NewUserID()
		city := testutil.CreateTestCity(t, db)
		trip := testutil.CreateTestTrip(t, db, userID, "2024-01-10", "2024-01-20")
		stop := testutil.CreateTestStop(t, db, trip, city, 1, "2024-01-10", "2024-01-12")
		testutil.CreateTestActivity(t, db, stop, models.ActivityCategoryFood, 2000)

		published, err := trips.PublishTrip(userID, trip.ID)
		testutil.AssertNoError(t, err)

		view, err := svc.GetPublicView(*published.PublicToken)
		testutil.AssertNoError(t, err)

		if view.Trip.ID != trip.ID || view.Trip.Name != trip.Name {
			t.Errorf("unexpected trip %+v", view.Trip)
		}
		if view.Trip.Status != models.TripStatusOngoing {
			t.Errorf("expected status ongoing, got %s", view.Trip.Status)
		}
		if len(view.Stops) != 1 || view.Stops[0].Order != 1 || view.Stops[0].CityName != city.Name {
			t.Errorf("unexpected stops %+v", view.Stops)
		}
		if len(view.Activities) != 1 || view.Activities[0].StopID != stop.ID || view.Activities[0].Cost != 2000 {
			t.Errorf("unexpected activities %+v", view.Activities)
		}

		body, err := json.Marshal(view)
		testutil.AssertNoError(t, err)
		for _, field := range []string{"user_id", "visibility", "public_token", userID} {
			if strings.Contains(string(body), field) {
				t.Errorf("public view leaks %q: %s", field, body)
			}
		}
	})

	t.Run("unknown_token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPublicTripService(db, fixedClock)

		_, err := svc.GetPublicView("does-not-exist")
		testutil.AssertAppError(t, err, "TRIP_NOT_FOUND")

		_, err = svc.GetPublicView("")
		testutil.AssertAppError(t, err, "TRIP_NOT_FOUND")
	})

	t.Run("unpublished", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		trips := NewTripService(db, fixedClock)
		svc := NewPublicTripService(db, fixedClock)
		userID := testutil.NewUserID()
		trip := testutil.CreateTestTrip(t, db, userID, "2024-01-10", "2024-01-20")

		published, err := trips.PublishTrip(userID, trip.ID)
		testutil.AssertNoError(t, err)
		_, err = trips.UnpublishTrip(userID, trip.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetPublicView(*published.PublicToken)
		testutil.AssertAppError(t, err, "TRIP_NOT_FOUND")

		_, err = trips.PublishTrip(userID, trip.ID)
		testutil.AssertNoError(t, err)
		_, err = svc.GetPublicView(*published.PublicToken)
		testutil.AssertNoError(t, err)
	})
}
