package models

import (
	"fmt"
	"time"
)

// TripStatus is derived from the trip dates and the current day.
type TripStatus string

const (
	TripStatusUpcoming  TripStatus = "upcoming"
	TripStatusOngoing   TripStatus = "ongoing"
	TripStatusCompleted TripStatus = "completed"
)

// TripVisibility controls whether a trip is reachable through its public token.
type TripVisibility string

const (
	TripVisibilityPrivate TripVisibility = "private"
	TripVisibilityPublic  TripVisibility = "public"
)

// Trip is a user-owned travel plan. It is the root of the stop/activity tree.
type Trip struct {
	Base
	UserID      string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string         `gorm:"not null" json:"name"`
	StartDate   time.Time      `gorm:"type:date;not null" json:"start_date"`
	EndDate     time.Time      `gorm:"type:date;not null" json:"end_date"`
	Description *string        `json:"description,omitempty"`
	CoverPhoto  *string        `json:"cover_photo,omitempty"`
	Visibility  TripVisibility `gorm:"not null" json:"visibility"`
	PublicToken *string        `gorm:"uniqueIndex" json:"public_token,omitempty"`

	// Status is never persisted; services fill it on every read.
	Status TripStatus `gorm:"-" json:"status"`
}

// IsPublic reports whether the trip is currently published.
func (t *Trip) IsPublic() bool {
	return t.Visibility == TripVisibilityPublic
}

// Covers reports whether [start, end] lies within the trip's date range.
func (t *Trip) Covers(start, end time.Time) bool {
	return !DateOnly(start).Before(DateOnly(t.StartDate)) && !DateOnly(end).After(DateOnly(t.EndDate))
}

// DeriveStatus classifies a trip against the calendar day of now (UTC).
// A trip whose start is after its end is corrupt and yields an error.
func DeriveStatus(now, start, end time.Time) (TripStatus, error) {
	start, end = DateOnly(start), DateOnly(end)
	if start.After(end) {
		return "", fmt.Errorf("trip start %s is after end %s", start.Format(DateLayout), end.Format(DateLayout))
	}

	today := DateOnly(now)
	switch {
	case today.Before(start):
		return TripStatusUpcoming, nil
	case today.After(end):
		return TripStatusCompleted, nil
	default:
		return TripStatusOngoing, nil
	}
}

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
