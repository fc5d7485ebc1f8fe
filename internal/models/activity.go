package models

import "time"

// ActivityCategory is the closed set of activity kinds, also the budget breakdown keys.
type ActivityCategory string

const (
	ActivityCategoryTransport     ActivityCategory = "transport"
	ActivityCategoryAccommodation ActivityCategory = "accommodation"
	ActivityCategoryFood          ActivityCategory = "food"
	ActivityCategoryActivities    ActivityCategory = "activities"
	ActivityCategoryOther         ActivityCategory = "other"
)

// ActivityCategories lists every category in display order.
var ActivityCategories = []ActivityCategory{
	ActivityCategoryTransport,
	ActivityCategoryAccommodation,
	ActivityCategoryFood,
	ActivityCategoryActivities,
	ActivityCategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c ActivityCategory) Valid() bool {
	for _, known := range ActivityCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Activity is a scheduled, costed entry attached to a stop.
// TripID is denormalised from the stop so trip-wide reads need no join.
type Activity struct {
	Base
	TripID      string           `gorm:"type:uuid;not null;index" json:"trip_id"`
	StopID      string           `gorm:"type:uuid;not null;index" json:"stop_id"`
	TemplateID  *string          `gorm:"type:uuid" json:"template_id,omitempty"`
	Name        string           `gorm:"not null" json:"name"`
	Description *string          `json:"description,omitempty"`
	Category    ActivityCategory `gorm:"not null" json:"category"`
	Duration    int              `gorm:"not null;default:0" json:"duration"`
	Date        time.Time        `gorm:"type:date;not null" json:"date"`
	Time        *string          `json:"time,omitempty"`
	Cost        int64            `gorm:"not null" json:"cost"` // effective cost in cents
}
