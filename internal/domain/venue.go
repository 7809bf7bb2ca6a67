package domain

import "time"

// Venue holds the operating hours and slot granularity of a venue.
// CloseHour is the hour the venue closes; it is also the last slot start.
type Venue struct {
	ID              int64
	Name            string
	OpenHour        int
	CloseHour       int
	SlotStepMinutes int
	Timezone        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Location resolves the venue timezone, falling back to UTC.
func (v *Venue) Location() *time.Location {
	if v.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// HasValidHours returns true if open < close within one day.
func (v *Venue) HasValidHours() bool {
	return v.OpenHour >= 0 && v.CloseHour <= 24 && v.OpenHour < v.CloseHour
}

// StepMinutes returns the slot step or the default when unset.
func (v *Venue) StepMinutes() int {
	if v.SlotStepMinutes <= 0 {
		return DefaultSlotStepMinutes
	}
	return v.SlotStepMinutes
}
