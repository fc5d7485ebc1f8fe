package services

import (
	"gorm.io/gorm"

	"globetrotter/internal/models"
)

// budgetService derives trip budgets from activity costs. Nothing is cached.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// GetTripBudget sums the effective cost of every activity of the trip.
func (s *budgetService) GetTripBudget(userID, tripID string) (*TripBudget, error) {
	if _, err := findOwnedTrip(s.db, userID, tripID); err != nil {
		return nil, err
	}

	activities, err := listActivities(s.db, tripID)
	if err != nil {
		return nil, err
	}

	budget := ComputeBudget(activities)
	budget.TripID = tripID
	return &budget, nil
}

// ComputeBudget folds activity costs into a total and a per-category
// breakdown. Every category is present, zero when unused. Costs are integer
// cents so the sums are exact.
func ComputeBudget(activities []models.Activity) TripBudget {
	breakdown := make(map[models.ActivityCategory]int64, len(models.ActivityCategories))
	for _, category := range models.ActivityCategories {
		breakdown[category] = 0
	}

	var total int64
	for _, a := range activities {
		category := a.Category
		if !category.Valid() {
			category = models.ActivityCategoryOther
		}
		breakdown[category] += a.Cost
		total += a.Cost
	}

	return TripBudget{
		Total:           total,
		Breakdown:       breakdown,
		ActivitiesCount: len(activities),
	}
}
