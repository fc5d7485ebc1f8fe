package services

import (
	"sync"
	"testing"

	"globetrotter/internal/catalog"
	"globetrotter/internal/models"
	"globetrotter/internal/testutil"
)

func TestAddStop(t *testing.T) {
	t.Run("appends_in_order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		paris := testutil.CreateTestCity(t, db)
		rome := testutil.CreateTestCity(t, db)
		svc := NewStopService(db, catalog.NewRegistry(db))
		userID := testutil.NewUserID()
		trip := testutil.CreateTestTrip(t, db, userID, "2024-03-01", "2024-03-10")

		first, err := svc.AddStop(userID, trip.ID, paris.ID, testutil.Date(t, "2024-03-01"), testutil.Date(t, "2024-03-04"))
		testutil.AssertNoError(t, err)
		second, err := svc.AddStop(userID, trip.ID, rome.ID, testutil.Date(t, "2024-03-04"), testutil.Date(t, "2024-03-10"))
		testutil.AssertNoError(t, err)

		if first.Position != 1 || second.Position != 2 {
			t.Errorf("expected positions 1 and 2, got %d and %d", first.Position, second.Position)
		}
		if second.CityName != rome.Name || second.Country != rome.Country {
			t.Errorf("expected city %s/%s copied, got %s/%s", rome.Name, rome.Country, second.CityName, second.Country)
		}
	})

	t.Run("overlapping_stops_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		city := testutil.CreateTestCity(t, db)
		svc := NewStopService(db, catalog.NewRegistry(db))
		userID := testutil.NewUserID()
		trip := testutil.CreateTestTrip(t, db, userID, "2024-03-01", "2024-03-10")

		_, err := svc.AddStop(userID, trip.ID, city.ID, testutil.Date(t, "2024-03-01"), testutil.Date(t, "2024-03-10"))
		testutil.AssertNoError(t, err)
		_, err = svc.AddStop(userID, trip.ID, city.ID, testutil.Date(t, "2024-03-02"), testutil.Date(t, "2024-03-03"))
		testutil.AssertNoError(t, err)
	})

	t.Run("before_trip_start", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		city := testutil.CreateTestCity(t, db)
		svc := NewStopService(db, catalog.NewRegistry(db))
		userID := testutil.NewUserID()
		trip := testutil.CreateTestTrip(t, db, userID, "2024-03-01", "2024-03-10")

		_, err := svc.AddStop(userID, trip.ID, city.ID, testutil.Date(t, "2024-02-28"), testutil.Date(t, "2024-03-02"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("after_trip_end", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		city := testutil.CreateTestCity(t, db)
		svc := NewStopService(db, catalog.NewRegistry(db))
		userID := testutil.NewUserID()
		trip := testutil.CreateTestTrip(t, db, userID, "2024-03-01", "2024-03-10")

		_, err := svc.AddStop(userID, trip.ID, city.ID, testutil.Date(t, "2024-03-09"), testutil.Date(t, "2024-03-11"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("inverted_dates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		city := testutil.CreateTestCity(t, db)
		svc := NewStopService(db, catalog.NewRegistry(db))
		userID := testutil.NewUserID()
		trip := testutil.CreateTestTrip(t, db, userID, "2024-03-01", "2024-03-10")

		_, err := svc.AddStop(userID, trip.ID, city.ID, testutil.Date(t, "2024-03-05"), testutil.Date(t, "2024-03-04"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_city", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStopService(db, catalog.NewRegistry(db))
		userID := testutil.NewUserID()
		trip := testutil.CreateTestTrip(t, db, userID, "2024-03-01", "2024-03-10")

		_, err := svc.AddStop(userID, trip.ID, testutil.NewUserID(), testutil.Date(t, "2024-03-01"), testutil.Date(t, "2024-03-02"))
		testutil.AssertAppError(t, err, "CITY_NOT_FOUND")
	})

	t.Run("non_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		city := testutil.CreateTestCity(t, db)
		svc := NewStopService(db, catalog.NewRegistry(db))
		trip := testutil.CreateTestTrip(t, db, testutil.NewUserID(), "2024-03-01", "2024-03-10")

		_, err := svc.AddStop(testutil.NewUserID(), trip.ID, city.ID, testutil.Date(t, "2024-03-01"), testutil.Date(t, "2024-03-02"))
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})

	t.Run("concurrent_appends", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		city := testutil.CreateTestCity(t, db)
		registry := catalog.NewRegistry(db)
		testutil.AssertNoError(t, registry.Load())
		svc := NewStopService(db, registry)
		userID := testutil.NewUserID()
		trip := testutil.CreateTestTrip(t, db, userID, "2024-03-01", "2024-03-10")

		start, end := testutil.Date(t, "2024-03-02"), testutil.Date(t, "2024-03-03")
		const workers = 8
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.AddStop(userID, trip.ID, city.ID, start, end)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			testutil.AssertNoError(t, err)
		}

		stops, err := svc.ListStops(userID, trip.ID)
		testutil.AssertNoError(t, err)
		if len(stops) != workers {
			t.Fatalf("expected %d stops, got %d", workers, len(stops))
		}
		testutil.AssertContiguousOrder(t, stops)
	})
}

func TestRemoveStop(t *testing.T) {
	t.Run("renumbers_and_cascades", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		city := testutil.CreateTestCity(t, db)
		svc := NewStopService(db, catalog.NewRegistry(db))
		activities := NewActivityService(db, catalog.NewRegistry(db))
		userID := testutil.NewUserID()
		trip := testutil.CreateTestTrip(t, db, userID, "2024-03-01", "2024-03-10")
		s1 := testutil.CreateTestStop(t, db, trip, city, 1, "2024-03-01", "2024-03-03")
		s2 := testutil.CreateTestStop(t, db, trip, city, 2, "2024-03-03", "2024-03-06")
		s3 := testutil.CreateTestStop(t, db, trip, city, 3, "2024-03-06", "2024-03-10")
		doomed := testutil.CreateTestActivity(t, db, s2, models.ActivityCategoryFood, 2500)
		kept := testutil.CreateTestActivity(t, db, s3, models.ActivityCategoryTransport, 900)

		testutil.AssertNoError(t, svc.RemoveStop(userID, s2.ID))

		stops, err := svc.ListStops(userID, trip.ID)
		testutil.AssertNoError(t, err)
		if len(stops) != 2 {
			t.Fatalf("expected 2 stops, got %d", len(stops))
		}
		testutil.AssertContiguousOrder(t, stops)
		if stops[0].ID != s1.ID || stops[1].ID != s3.ID {
			t.Error("expected relative order of remaining stops preserved")
		}

		list, err := activities.ListTripActivities(userID, trip.ID)
		testutil.AssertNoError(t, err)
		if len(list) != 1 || list[0].ID != kept.ID {
			t.Errorf("expected only activity %s to remain, got %v", kept.ID, list)
		}
		for _, a := range list {
			if a.ID == doomed.ID {
				t.Error("expected activity of removed stop to be deleted")
			}
		}
	})

	t.Run("remove_first_then_append", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		city := testutil.CreateTestCity(t, db)
		svc := NewStopService(db, catalog.NewRegistry(db))
		userID := testutil.NewUserID()
		trip := testutil.CreateTestTrip(t, db, userID, "2024-03-01", "2024-03-10")

		var ids []string
		for i := 0; i < 4; i++ {
			stop, err := svc.AddStop(userID, trip.ID, city.ID, testutil.Date(t, "2024-03-01"), testutil.Date(t, "2024-03-02"))
			testutil.AssertNoError(t, err)
			ids = append(ids, stop.ID)
		}

		testutil.AssertNoError(t, svc.RemoveStop(userID, ids[0]))
		testutil.AssertNoError(t, svc.RemoveStop(userID, ids[3]))
		appended, err := svc.AddStop(userID, trip.ID, city.ID, testutil.Date(t, "2024-03-05"), testutil.Date(t, "2024-03-06"))
		testutil.AssertNoError(t, err)

		if appended.Position != 3 {
			t.Errorf("expected appended stop at position 3, got %d", appended.Position)
		}
		stops, err := svc.ListStops(userID, trip.ID)
		testutil.AssertNoError(t, err)
		if len(stops) != 3 {
			t.Fatalf("expected 3 stops, got %d", len(stops))
		}
		testutil.AssertContiguousOrder(t, stops)
		if stops[0].ID != ids[1] || stops[1].ID != ids[2] || stops[2].ID != appended.ID {
			t.Error("unexpected stop order after remove and append")
		}
	})

	t.Run("non_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		city := testutil.CreateTestCity(t, db)
		svc := NewStopService(db, catalog.NewRegistry(db))
		trip := testutil.CreateTestTrip(t, db, testutil.NewUserID(), "2024-03-01", "2024-03-10")
		stop := testutil.CreateTestStop(t, db, trip, city, 1, "2024-03-01", "2024-03-03")

		err := svc.RemoveStop(testutil.NewUserID(), stop.ID)
		testutil.AssertAppError(t, err, "FORBIDDEN")

		var count int64
		db.Model(&models.Stop{}).Where("id = ?", stop.ID).Count(&count)
		if count != 1 {
			t.Error("expected stop to survive a non-owner delete")
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStopService(db, catalog.NewRegistry(db))

		err := svc.RemoveStop(testutil.NewUserID(), testutil.NewUserID())
		testutil.AssertAppError(t, err, "STOP_NOT_FOUND")
	})
}

func TestListStops(t *testing.T) {
	t.Run("ordered", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		city := testutil.CreateTestCity(t, db)
		svc := NewStopService(db, catalog.NewRegistry(db))
		userID := testutil.NewUserID()
		trip := testutil.CreateTestTrip(t, db, userID, "2024-03-01", "2024-03-10")
		testutil.CreateTestStop(t, db, trip, city, 2, "2024-03-01", "2024-03-02")
		testutil.CreateTestStop(t, db, trip, city, 1, "2024-03-05", "2024-03-06")

		stops, err := svc.ListStops(userID, trip.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertContiguousOrder(t, stops)
	})

	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStopService(db, catalog.NewRegistry(db))
		userID := testutil.NewUserID()
		trip := testutil.CreateTestTrip(t, db, userID, "2024-03-01", "2024-03-10")

		stops, err := svc.ListStops(userID, trip.ID)
		testutil.AssertNoError(t, err)
		if stops == nil || len(stops) != 0 {
			t.Errorf("expected empty non-nil list, got %v", stops)
		}
	})

	t.Run("other_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewStopService(db, catalog.NewRegistry(db))
		trip := testutil.CreateTestTrip(t, db, testutil.NewUserID(), "2024-03-01", "2024-03-10")

		_, err := svc.ListStops(testutil.NewUserID(), trip.ID)
		testutil.AssertAppError(t, err, "TRIP_NOT_FOUND")
	})
}
