package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/services"
)

// BudgetHandler serves the spend projection of a trip.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// GetTripBudget returns the total and per-category cost of a trip
// @Summary     Trip budget
// @Description Sum of activity costs in cents, with every category present
// @Tags        trips
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Trip ID"
// @Success     200 {object} services.TripBudget
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Router      /trips/{id}/budget [get]
func (h *BudgetHandler) GetTripBudget(c *gin.Context) {
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

	budget, err := h.budgetService.GetTripBudget(userID, tripID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, budget)
}
