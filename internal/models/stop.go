package models

import "time"

// Stop is one city segment of a trip. Position orders the itinerary and is
// kept contiguous (1..N) within a trip.
type Stop struct {
	Base
	TripID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_stops_trip_position,priority:1" json:"trip_id"`
	CityID    string    `gorm:"type:uuid;not null;index" json:"city_id"`
	CityName  string    `gorm:"not null" json:"city_name"`
	Country   string    `gorm:"not null" json:"country"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`
	Position  int       `gorm:"not null;uniqueIndex:idx_stops_trip_position,priority:2" json:"order"`
}

// Covers reports whether the calendar day of date lies within the stop.
func (s *Stop) Covers(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(s.StartDate)) && !d.After(DateOnly(s.EndDate))
}
