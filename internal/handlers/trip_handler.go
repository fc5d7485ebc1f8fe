package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models"
	"globetrotter/internal/pagination"
	"globetrotter/internal/services"
)

// TripHandler handles trip lifecycle requests.
type TripHandler struct {
	tripService  services.TripServicer
	auditService services.AuditServicer
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(tripService services.TripServicer, auditService services.AuditServicer) *TripHandler {
	return &TripHandler{tripService: tripService, auditService: auditService}
}

// CreateTripRequest represents the request payload for creating a trip.
type CreateTripRequest struct {
	Name        string  `json:"name" binding:"required,not_blank,max=200"`
	StartDate   string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" binding:"required,datetime=2006-01-02"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	CoverPhoto  *string `json:"cover_photo" binding:"omitempty,url"`
}

// UpdateTripRequest represents the request payload for updating a trip.
// Omitted fields are left unchanged.
type UpdateTripRequest struct {
	Name        *string `json:"name" binding:"omitempty,not_blank,max=200"`
	StartDate   *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	CoverPhoto  *string `json:"cover_photo" binding:"omitempty,url"`
}

// CreateTrip handles the creation of a new trip
// @Summary     Create a trip
// @Description Create a new private trip for the authenticated user
// @Tags        trips
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTripRequest true "Trip details"
// @Success     201 {object} models.Trip "Trip created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips [post]
func (h *TripHandler) CreateTrip(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	trip, err := h.tripService.CreateTrip(userID, services.TripInput{
		Name:        strings.TrimSpace(req.Name),
		StartDate:   start,
		EndDate:     end,
		Description: req.Description,
		CoverPhoto:  req.CoverPhoto,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionCreate, "trip", trip.ID, c.ClientIP(),
		map[string]interface{}{"name": trip.Name, "start_date": req.StartDate, "end_date": req.EndDate})

	c.JSON(http.StatusCreated, trip)
}

// GetUserTrips handles listing the caller's trips
// @Summary     List trips
// @Description List the authenticated user's trips with derived status
// @Tags        trips
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Page size (max 100)"
// @Param       sort      query string false "start_date, -start_date, created_at, -created_at or name"
// @Success     200 {object} pagination.PageResponse[models.Trip]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips [get]
func (h *TripHandler) GetUserTrips(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.tripService.GetUserTrips(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTrip handles the retrieval of a single trip
// @Summary     Get trip
// @Tags        trips
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Trip ID"
// @Success     200 {object} models.Trip
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Router      /trips/{id} [get]
func (h *TripHandler) GetTrip(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	trip, err := h.tripService.GetTripByID(userID, tripID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, trip)
}

// UpdateTrip handles partial updates of a trip
// @Summary     Update trip
// @Description Update name, dates, description or cover photo. New dates must still cover every stop.
// @Tags        trips
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Trip ID"
// @Param       request body UpdateTripRequest true "Fields to change"
// @Success     200 {object} models.Trip
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Router      /trips/{id} [put]
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	start, err := parseOptionalDate(req.StartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	patch := services.TripPatch{
		StartDate:   start,
		EndDate:     end,
		Description: req.Description,
		CoverPhoto:  req.CoverPhoto,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		patch.Name = &name
	}

	trip, err := h.tripService.UpdateTrip(userID, tripID, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionUpdate, "trip", trip.ID, c.ClientIP(), changedFields(req))

	c.JSON(http.StatusOK, trip)
}

// DeleteTrip handles deleting a trip with its stops and activities
// @Summary     Delete trip
// @Tags        trips
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Trip ID"
// @Success     200 {object} MessageResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Router      /trips/{id} [delete]
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.tripService.DeleteTrip(userID, tripID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionDelete, "trip", tripID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Trip deleted successfully"})
}

// PublishTrip makes a trip reachable through its public token
// @Summary     Publish trip
// @Description Make the trip public. The share token is generated once and reused on later publishes.
// @Tags        trips
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Trip ID"
// @Success     200 {object} models.Trip
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Router      /trips/{id}/publish [post]
func (h *TripHandler) PublishTrip(c *gin.Context) {
	h.setVisibility(c, services.AuditActionPublish, h.tripService.PublishTrip)
}

// UnpublishTrip makes a trip private again
// @Summary     Unpublish trip
// @Description Make the trip private. The share token is kept so a later publish restores the same link.
// @Tags        trips
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Trip ID"
// @Success     200 {object} models.Trip
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Router      /trips/{id}/unpublish [post]
func (h *TripHandler) UnpublishTrip(c *gin.Context) {
	h.setVisibility(c, services.AuditActionUnpublish, h.tripService.UnpublishTrip)
}

func (h *TripHandler) setVisibility(c *gin.Context, action string, apply func(userID, tripID string) (*models.Trip, error)) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	trip, err := apply(userID, tripID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, action, "trip", trip.ID, c.ClientIP(),
		map[string]interface{}{"visibility": trip.Visibility})

	c.JSON(http.StatusOK, trip)
}

// changedFields lists the fields present in an update for the audit trail.
func changedFields(req UpdateTripRequest) map[string]interface{} {
	changes := map[string]interface{}{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.StartDate != nil {
		changes["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		changes["end_date"] = *req.EndDate
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.CoverPhoto != nil {
		changes["cover_photo"] = *req.CoverPhoto
	}
	return changes
}
