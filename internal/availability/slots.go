package availability

import "github.com/m04kA/SMC-VenueBookingService/pkg/types"

// GenerateSlots returns the slot start times of a venue-day.
//
// Slots start at openHour:00 and advance by stepMinutes while the point is at
// or before (closeHour-1):00. Callers pass the venue's closing hour plus one,
// so the last generated slot equals the closing hour: GenerateSlots(8, 23, 30)
// yields 08:00 ... 22:00, 29 slots. A step that does not divide 60 is applied
// as is, without realigning to hour boundaries.
func GenerateSlots(openHour, closeHour, stepMinutes int) []types.TimeString {
	if stepMinutes <= 0 || openHour < 0 || closeHour <= openHour {
		return []types.TimeString{}
	}

	first := openHour * 60
	last := (closeHour - 1) * 60
	if last > types.MinutesPerDay-1 {
		last = types.MinutesPerDay - 1
	}
	if first > last {
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, 0, (last-first)/stepMinutes+1)
	for m := first; m <= last; m += stepMinutes {
		slots = append(slots, types.FromMinutes(m))
	}
	return slots
}

// VenueDaySlots generates slots for a venue open from openHour to closeHour,
// including a final slot at closeHour itself.
func VenueDaySlots(openHour, closeHour, stepMinutes int) []types.TimeString {
	return GenerateSlots(openHour, closeHour+1, stepMinutes)
}
