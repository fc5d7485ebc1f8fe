package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models"
	"globetrotter/internal/services"
)

// ActivityHandler handles activities attached to stops.
type ActivityHandler struct {
	activityService services.ActivityServicer
	auditService    services.AuditServicer
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService services.ActivityServicer, auditService services.AuditServicer) *ActivityHandler {
	return &ActivityHandler{activityService: activityService, auditService: auditService}
}

// AddActivityRequest represents the request payload for attaching an activity.
// With template_id the template fills in the details and any field given here
// overrides it. Without it, name, category and custom_cost are required.
type AddActivityRequest struct {
	TemplateID  *string                  `json:"template_id" binding:"omitempty,uuid"`
	Name        *string                  `json:"name" binding:"omitempty,not_blank,max=200"`
	Description *string                  `json:"description" binding:"omitempty,max=2000"`
	Category    *models.ActivityCategory `json:"category" binding:"omitempty,activity_category"`
	Duration    *int                     `json:"duration" binding:"omitempty,gte=0"`
	Date        string                   `json:"date" binding:"required,datetime=2006-01-02"`
	Time        *string                  `json:"time" binding:"omitempty,datetime=15:04"`
	CustomCost  *int64                   `json:"custom_cost" binding:"omitempty,gte=0"`
}

// ActivitiesResponse wraps the activities of a trip.
type ActivitiesResponse struct {
	Activities []models.Activity `json:"activities"`
}

// AddActivity attaches an activity to a stop
// @Summary     Add activity
// @Description Attach a catalog template or a custom activity to a stop. The date must lie within the stop.
// @Tags        activities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Stop ID"
// @Param       request body AddActivityRequest true "Activity details"
// @Success     201 {object} models.Activity
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Stop or template not found"
// @Router      /stops/{id}/activities [post]
func (h *ActivityHandler) AddActivity(c *gin.Context) {
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

	var req AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	activity, err := h.activityService.AddActivity(userID, stopID, services.ActivityInput{
		TemplateID:  req.TemplateID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Duration:    req.Duration,
		Date:        date,
		Time:        req.Time,
		CustomCost:  req.CustomCost,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionCreate, "activity", activity.ID, c.ClientIP(),
		map[string]interface{}{"stop_id": stopID, "category": activity.Category, "cost": activity.Cost})

	c.JSON(http.StatusCreated, activity)
}

// ListTripActivities returns every activity of a trip
// @Summary     List trip activities
// @Description Flat list ordered by date, then time, then creation
// @Tags        activities
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Trip ID"
// @Success     200 {object} ActivitiesResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Router      /trips/{id}/activities [get]
func (h *ActivityHandler) ListTripActivities(c *gin.Context) {
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

	activities, err := h.activityService.ListTripActivities(userID, tripID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if activities == nil {
		activities = []models.Activity{}
	}

	c.JSON(http.StatusOK, ActivitiesResponse{Activities: activities})
}

// RemoveActivity deletes an activity
// @Summary     Remove activity
// @Tags        activities
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Activity ID"
// @Success     200 {object} MessageResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Activity not found"
// @Router      /activities/{id} [delete]
func (h *ActivityHandler) RemoveActivity(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	activityID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.activityService.RemoveActivity(userID, activityID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionDelete, "activity", activityID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Activity removed successfully"})
}
