package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/services"
)

// PublicHandler serves published itineraries without authentication.
type PublicHandler struct {
	publicService services.PublicTripServicer
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(publicService services.PublicTripServicer) *PublicHandler {
	return &PublicHandler{publicService: publicService}
}

// GetPublicTrip returns the read-only view of a published trip
// @Summary     Public trip
// @Description Itinerary behind a share token. Private and unknown trips are indistinguishable.
// @Tags        public
// @Produce     json
// @Param       token path string true "Share token"
// @Success     200 {object} services.PublicTripView
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Router      /public/trips/{token} [get]
func (h *PublicHandler) GetPublicTrip(c *gin.Context) {
	view, err := h.publicService.GetPublicView(c.Param("token"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
