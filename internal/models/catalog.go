package models

// City is a catalog destination. Trips reference cities but never write them.
type City struct {
	Base
	Name        string  `gorm:"not null" json:"name"`
	Country     string  `gorm:"not null;index" json:"country"`
	CostIndex   float64 `json:"cost_index"`
	Popularity  int     `json:"popularity"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// ActivityTemplate is a reusable catalog activity scoped to a city.
type ActivityTemplate struct {
	Base
	CityID        string           `gorm:"type:uuid;not null;index" json:"city_id"`
	Name          string           `gorm:"not null" json:"name"`
	Description   *string          `json:"description,omitempty"`
	Category      ActivityCategory `gorm:"not null" json:"category"`
	EstimatedCost int64            `gorm:"not null" json:"estimated_cost"` // cents
	Duration      int              `gorm:"not null" json:"duration"`       // hours
	ImageURL      *string          `json:"image_url,omitempty"`
}
