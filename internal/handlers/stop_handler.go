package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models"
	"globetrotter/internal/services"
)

// StopHandler handles the ordered stops of a trip.
type StopHandler struct {
	stopService  services.StopServicer
	auditService services.AuditServicer
}

// NewStopHandler creates a new StopHandler.
func NewStopHandler(stopService services.StopServicer, auditService services.AuditServicer) *StopHandler {
	return &StopHandler{stopService: stopService, auditService: auditService}
}

// AddStopRequest represents the request payload for appending a stop.
type AddStopRequest struct {
	CityID    string `json:"city_id" binding:"required,uuid"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
}

// StopsResponse wraps the stops of a trip.
type StopsResponse struct {
	Stops []models.Stop `json:"stops"`
}

// AddStop appends a stop to the end of a trip
// @Summary     Add stop
// @Description Append a stop in a catalog city. The stop dates must lie within the trip.
// @Tags        stops
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string         true "Trip ID"
// @Param       request body AddStopRequest true "Stop details"
// @Success     201 {object} models.Stop
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Trip or city not found"
// @Router      /trips/{id}/stops [post]
func (h *StopHandler) AddStop(c *gin.Context) {
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

	var req AddStopRequest
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

	stop, err := h.stopService.AddStop(userID, tripID, req.CityID, start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionCreate, "stop", stop.ID, c.ClientIP(),
		map[string]interface{}{"trip_id": tripID, "city_id": req.CityID, "order": stop.Position})

	c.JSON(http.StatusCreated, stop)
}

// ListStops returns the stops of a trip in order
// @Summary     List stops
// @Tags        stops
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Trip ID"
// @Success     200 {object} StopsResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Router      /trips/{id}/stops [get]
func (h *StopHandler) ListStops(c *gin.Context) {
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

	stops, err := h.stopService.ListStops(userID, tripID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if stops == nil {
		stops = []models.Stop{}
	}

	c.JSON(http.StatusOK, StopsResponse{Stops: stops})
}

// RemoveStop deletes a stop with its activities and closes the gap in the order
// @Summary     Remove stop
// @Tags        stops
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Stop ID"
// @Success     200 {object} MessageResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Stop not found"
// @Router      /stops/{id} [delete]
func (h *StopHandler) RemoveStop(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	stopID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.stopService.RemoveStop(userID, stopID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionDelete, "stop", stopID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Stop removed successfully"})
}
