package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/catalog"
	"globetrotter/internal/models"
	"globetrotter/internal/pagination"
	"globetrotter/internal/services"
	"globetrotter/internal/uuid"
	"globetrotter/internal/validator"
)

// --- mock services ---

type mockTripService struct {
	createTripFn    func(userID string, in services.TripInput) (*models.Trip, error)
	getUserTripsFn  func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Trip], error)
	getTripByIDFn   func(userID, tripID string) (*models.Trip, error)
	updateTripFn    func(userID, tripID string, patch services.TripPatch) (*models.Trip, error)
	deleteTripFn    func(userID, tripID string) error
	publishTripFn   func(userID, tripID string) (*models.Trip, error)
	unpublishTripFn func(userID, tripID string) (*models.Trip, error)
}

var _ services.TripServicer = (*mockTripService)(nil)

func (m *mockTripService) CreateTrip(userID string, in services.TripInput) (*models.Trip, error) {
	if m.createTripFn != nil {
		return m.createTripFn(userID, in)
	}
	return &models.Trip{}, nil
}

func (m *mockTripService) GetUserTrips(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Trip], error) {
	if m.getUserTripsFn != nil {
		return m.getUserTripsFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.Trip{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockTripService) GetTripByID(userID, tripID string) (*models.Trip, error) {
	if m.getTripByIDFn != nil {
		return m.getTripByIDFn(userID, tripID)
	}
	return &models.Trip{}, nil
}

func (m *mockTripService) UpdateTrip(userID, tripID string, patch services.TripPatch) (*models.Trip, error) {
	if m.updateTripFn != nil {
		return m.updateTripFn(userID, tripID, patch)
	}
	return &models.Trip{}, nil
}

func (m *mockTripService) DeleteTrip(userID, tripID string) error {
	if m.deleteTripFn != nil {
		return m.deleteTripFn(userID, tripID)
	}
	return nil
}

func (m *mockTripService) PublishTrip(userID, tripID string) (*models.Trip, error) {
	if m.publishTripFn != nil {
		return m.publishTripFn(userID, tripID)
	}
	return &models.Trip{}, nil
}

func (m *mockTripService) UnpublishTrip(userID, tripID string) (*models.Trip, error) {
	if m.unpublishTripFn != nil {
		return m.unpublishTripFn(userID, tripID)
	}
	return &models.Trip{}, nil
}

type mockStopService struct {
	addStopFn    func(userID, tripID, cityID string, start, end time.Time) (*models.Stop, error)
	removeStopFn func(userID, stopID string) error
	listStopsFn  func(userID, tripID string) ([]models.Stop, error)
}

var _ services.StopServicer = (*mockStopService)(nil)

func (m *mockStopService) AddStop(userID, tripID, cityID string, start, end time.Time) (*models.Stop, error) {
	if m.addStopFn != nil {
		return m.addStopFn(userID, tripID, cityID, start, end)
	}
	return &models.Stop{}, nil
}

func (m *mockStopService) RemoveStop(userID, stopID string) error {
	if m.removeStopFn != nil {
		return m.removeStopFn(userID, stopID)
	}
	return nil
}

func (m *mockStopService) ListStops(userID, tripID string) ([]models.Stop, error) {
	if m.listStopsFn != nil {
		return m.listStopsFn(userID, tripID)
	}
	return nil, nil
}

type mockActivityService struct {
	addActivityFn        func(userID, stopID string, in services.ActivityInput) (*models.Activity, error)
	removeActivityFn     func(userID, activityID string) error
	listTripActivitiesFn func(userID, tripID string) ([]models.Activity, error)
}

var _ services.ActivityServicer = (*mockActivityService)(nil)

func (m *mockActivityService) AddActivity(userID, stopID string, in services.ActivityInput) (*models.Activity, error) {
	if m.addActivityFn != nil {
		return m.addActivityFn(userID, stopID, in)
	}
	return &models.Activity{}, nil
}

func (m *mockActivityService) RemoveActivity(userID, activityID string) error {
	if m.removeActivityFn != nil {
		return m.removeActivityFn(userID, activityID)
	}
	return nil
}

func (m *mockActivityService) ListTripActivities(userID, tripID string) ([]models.Activity, error) {
	if m.listTripActivitiesFn != nil {
		return m.listTripActivitiesFn(userID, tripID)
	}
	return nil, nil
}

type mockBudgetService struct {
	getTripBudgetFn func(userID, tripID string) (*services.TripBudget, error)
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

func (m *mockBudgetService) GetTripBudget(userID, tripID string) (*services.TripBudget, error) {
	if m.getTripBudgetFn != nil {
		return m.getTripBudgetFn(userID, tripID)
	}
	budget := services.ComputeBudget(nil)
	budget.TripID = tripID
	return &budget, nil
}

type mockPublicTripService struct {
	getPublicViewFn func(token string) (*services.PublicTripView, error)
}

var _ services.PublicTripServicer = (*mockPublicTripService)(nil)

func (m *mockPublicTripService) GetPublicView(token string) (*services.PublicTripView, error) {
	if m.getPublicViewFn != nil {
		return m.getPublicViewFn(token)
	}
	return &services.PublicTripView{}, nil
}

type mockCatalog struct {
	getCityFn        func(id string) (*models.City, error)
	getTemplateFn    func(id string) (*models.ActivityTemplate, error)
	searchCitiesFn   func(q catalog.CityQuery) ([]models.City, error)
	cityActivitiesFn func(cityID string, f catalog.TemplateFilter) ([]models.ActivityTemplate, error)
	invalidations    int
}

var (
	_ catalog.Reader      = (*mockCatalog)(nil)
	_ catalog.Invalidator = (*mockCatalog)(nil)
)

func (m *mockCatalog) GetCity(id string) (*models.City, error) {
	if m.getCityFn != nil {
		return m.getCityFn(id)
	}
	return &models.City{}, nil
}

func (m *mockCatalog) GetTemplate(id string) (*models.ActivityTemplate, error) {
	if m.getTemplateFn != nil {
		return m.getTemplateFn(id)
	}
	return &models.ActivityTemplate{}, nil
}

func (m *mockCatalog) SearchCities(q catalog.CityQuery) ([]models.City, error) {
	if m.searchCitiesFn != nil {
		return m.searchCitiesFn(q)
	}
	return []models.City{}, nil
}

func (m *mockCatalog) CityActivities(cityID string, f catalog.TemplateFilter) ([]models.ActivityTemplate, error) {
	if m.cityActivitiesFn != nil {
		return m.cityActivitiesFn(cityID, f)
	}
	return []models.ActivityTemplate{}, nil
}

func (m *mockCatalog) Invalidate() { m.invalidations++ }

type mockBroadcaster struct {
	err   error
	calls int
}

func (m *mockBroadcaster) Publish(_ context.Context) error {
	m.calls++
	return m.err
}

type auditEntry struct {
	userID, action, resourceType, resourceID string
}

type mockAuditService struct {
	entries []auditEntry
}

func (m *mockAuditService) Log(userID, action, resourceType, resourceID, _ string, _ map[string]interface{}) {
	m.entries = append(m.entries, auditEntry{userID, action, resourceType, resourceID})
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

var testUserID = uuid.New()

var errSecret = errors.New("dial tcp 10.0.0.5:5432: connection refused")

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}
