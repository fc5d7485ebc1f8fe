// Package catalog serves the read-only city and activity-template reference
// data. The trip domain never writes to it; it only resolves references.
package catalog

import (
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	apperrors "globetrotter/internal/errors"
	"globetrotter/internal/logger"
	"globetrotter/internal/metrics"
	"globetrotter/internal/models"
)

// maxSearchResults caps city search responses.
const maxSearchResults = 100

// CityQuery filters a city search. Both fields match case-insensitive substrings;
// Search matches either the name or the country.
type CityQuery struct {
	Search  string
	Country string
	Limit   int
}

// TemplateFilter narrows the templates of one city.
type TemplateFilter struct {
	Category *models.ActivityCategory
	MaxCost  *int64
}

// Reader is the catalog contract the trip services and handlers depend on.
type Reader interface {
	GetCity(id string) (*models.City, error)
	GetTemplate(id string) (*models.ActivityTemplate, error)
	SearchCities(q CityQuery) ([]models.City, error)
	CityActivities(cityID string, f TemplateFilter) ([]models.ActivityTemplate, error)
}

// Invalidator drops cached catalog state so the next read reloads it.
type Invalidator interface {
	Invalidate()
}

// snapshot is an immutable view of the catalog tables.
type snapshot struct {
	cities          map[string]models.City
	byPopularity    []models.City
	templates       map[string]models.ActivityTemplate
	templatesByCity map[string][]models.ActivityTemplate
	loadedAt        time.Time
}

// Registry holds the process-wide catalog snapshot. Load it once at startup;
// Invalidate it whenever the catalog changes. A read after Invalidate reloads.
type Registry struct {
	db *gorm.DB

	mu   sync.RWMutex
	snap *snapshot
}

var _ Reader = (*Registry)(nil)
var _ Invalidator = (*Registry)(nil)

// NewRegistry creates an empty registry backed by db.
func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{db: db}
}

// Load reads both catalog tables and swaps in a fresh snapshot.
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked()
}

func (r *Registry) loadLocked() error {
	var cities []models.City
	if err := r.db.Order("popularity DESC, name ASC").Find(&cities).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var templates []models.ActivityTemplate
	if err := r.db.Order("name ASC").Find(&templates).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	snap := &snapshot{
		cities:          make(map[string]models.City, len(cities)),
		byPopularity:    cities,
		templates:       make(map[string]models.ActivityTemplate, len(templates)),
		templatesByCity: make(map[string][]models.ActivityTemplate),
		loadedAt:        time.Now(),
	}
	for _, c := range cities {
		snap.cities[c.ID] = c
	}
	for _, tmpl := range templates {
		snap.templates[tmpl.ID] = tmpl
		snap.templatesByCity[tmpl.CityID] = append(snap.templatesByCity[tmpl.CityID], tmpl)
	}

	r.snap = snap
	logger.Named("catalog").Infow("catalog loaded", "cities", len(cities), "templates", len(templates))
	return nil
}

// Invalidate discards the snapshot.
func (r *Registry) Invalidate() {
	r.mu.Lock()
	r.snap = nil
	r.mu.Unlock()
	metrics.RecordCatalogInvalidation()
	logger.Named("catalog").Info("catalog invalidated")
}

// LoadedAt reports when the current snapshot was built; zero if none is loaded.
func (r *Registry) LoadedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.snap == nil {
		return time.Time{}
	}
	return r.snap.loadedAt
}

func (r *Registry) current() (*snapshot, error) {
	r.mu.RLock()
	snap := r.snap
	r.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.snap == nil {
		if err := r.loadLocked(); err != nil {
			return nil, err
		}
	}
	return r.snap, nil
}

// GetCity returns a copy of the city with the given ID.
func (r *Registry) GetCity(id string) (*models.City, error) {
	snap, err := r.current()
	if err != nil {
		return nil, err
	}
	city, ok := snap.cities[id]
	if !ok {
		return nil, apperrors.ErrCityNotFound
	}
	return &city, nil
}

// GetTemplate returns a copy of the activity template with the given ID.
func (r *Registry) GetTemplate(id string) (*models.ActivityTemplate, error) {
	snap, err := r.current()
	if err != nil {
		return nil, err
	}
	tmpl, ok := snap.templates[id]
	if !ok {
		return nil, apperrors.ErrTemplateNotFound
	}
	return &tmpl, nil
}

// SearchCities returns cities matching q, most popular first.
func (r *Registry) SearchCities(q CityQuery) ([]models.City, error) {
	snap, err := r.current()
	if err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 || limit > maxSearchResults {
		limit = maxSearchResults
	}
	search := strings.ToLower(strings.TrimSpace(q.Search))
	country := strings.ToLower(strings.TrimSpace(q.Country))

	result := make([]models.City, 0, limit)
	for _, c := range snap.byPopularity {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Country), search) {
			continue
		}
		if country != "" && !strings.Contains(strings.ToLower(c.Country), country) {
			continue
		}
		result = append(result, c)
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

// CityActivities returns the templates of a city, cheapest first.
func (r *Registry) CityActivities(cityID string, f TemplateFilter) ([]models.ActivityTemplate, error) {
	snap, err := r.current()
	if err != nil {
		return nil, err
	}
	if _, ok := snap.cities[cityID]; !ok {
		return nil, apperrors.ErrCityNotFound
	}

	result := []models.ActivityTemplate{}
	for _, tmpl := range snap.templatesByCity[cityID] {
		if f.Category != nil && tmpl.Category != *f.Category {
			continue
		}
		if f.MaxCost != nil && tmpl.EstimatedCost > *f.MaxCost {
			continue
		}
		result = append(result, tmpl)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].EstimatedCost < result[j].EstimatedCost
	})
	return result, nil
}
