package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/catalog"
	apperrors "globetrotter/internal/errors"
	"globetrotter/internal/logger"
	"globetrotter/internal/models"
)

// Broadcaster tells other API instances that the catalog changed.
type Broadcaster interface {
	Publish(ctx context.Context) error
}

// CatalogHandler serves the read-only city and activity template catalog.
type CatalogHandler struct {
	reader      catalog.Reader
	invalidator catalog.Invalidator
	broadcaster Broadcaster
}

// NewCatalogHandler creates a new CatalogHandler. broadcaster may be nil when
// the API runs as a single instance.
func NewCatalogHandler(reader catalog.Reader, invalidator catalog.Invalidator, broadcaster Broadcaster) *CatalogHandler {
	return &CatalogHandler{reader: reader, invalidator: invalidator, broadcaster: broadcaster}
}

// SearchCitiesRequest represents the query of a city search.
type SearchCitiesRequest struct {
	Search  string `form:"search" binding:"max=100"`
	Country string `form:"country" binding:"max=100"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// CityActivitiesRequest represents the template filters of a city.
type CityActivitiesRequest struct {
	Category *models.ActivityCategory `form:"category" binding:"omitempty,activity_category"`
	MaxCost  *int64                   `form:"max_cost" binding:"omitempty,gte=0"`
}

// CitiesResponse wraps a list of cities.
type CitiesResponse struct {
	Cities []models.City `json:"cities"`
}

// TemplatesResponse wraps a list of activity templates.
type TemplatesResponse struct {
	Activities []models.ActivityTemplate `json:"activities"`
}

// SearchCities handles city search
// @Summary     Search cities
// @Description Case-insensitive match on name or country, most popular first
// @Tags        catalog
// @Produce     json
// @Param       search  query string false "Name or country fragment"
// @Param       country query string false "Country fragment"
// @Param       limit   query int    false "Maximum results (max 100)"
// @Success     200 {object} CitiesResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /cities [get]
func (h *CatalogHandler) SearchCities(c *gin.Context) {
	var req SearchCitiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	cities, err := h.reader.SearchCities(catalog.CityQuery{
		Search:  req.Search,
		Country: req.Country,
		Limit:   req.Limit,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CitiesResponse{Cities: cities})
}

// GetCity handles the retrieval of a single city
// @Summary     Get city
// @Tags        catalog
// @Produce     json
// @Param       id path string true "City ID"
// @Success     200 {object} models.City
// @Failure     404 {object} ErrorResponse "City not found"
// @Router      /cities/{id} [get]
func (h *CatalogHandler) GetCity(c *gin.Context) {
	cityID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	city, err := h.reader.GetCity(cityID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, city)
}

// CityActivities handles listing the activity templates of a city
// @Summary     City activity templates
// @Description Templates of a city, cheapest first
// @Tags        catalog
// @Produce     json
// @Param       id       path  string true  "City ID"
// @Param       category query string false "transport, accommodation, food, activities or other"
// @Param       max_cost query int    false "Upper bound on estimated cost in cents"
// @Success     200 {object} TemplatesResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "City not found"
// @Router      /cities/{id}/activities [get]
func (h *CatalogHandler) CityActivities(c *gin.Context) {
	cityID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CityActivitiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	templates, err := h.reader.CityActivities(cityID, catalog.TemplateFilter{
		Category: req.Category,
		MaxCost:  req.MaxCost,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, TemplatesResponse{Activities: templates})
}

// InvalidateCatalog drops the cached catalog after the catalog service changed it
// @Summary     Invalidate catalog cache
// @Description Drop the in-memory catalog here and, when a bus is configured, on every other instance
// @Tags        admin
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} MessageResponse
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     500 {object} ErrorResponse "Broadcast failed"
// @Router      /admin/catalog/invalidate [post]
func (h *CatalogHandler) InvalidateCatalog(c *gin.Context) {
	h.invalidator.Invalidate()

	if h.broadcaster != nil {
		if err := h.broadcaster.Publish(c.Request.Context()); err != nil {
			_ = c.Error(apperrors.Wrap(apperrors.ErrInternalServer, err))
			return
		}
	}

	logger.Get().Infow("catalog invalidated", "request_id", c.GetString("requestID"))
	c.JSON(http.StatusOK, MessageResponse{Message: "Catalog invalidated"})
}
