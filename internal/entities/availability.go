package entities

import "barberpro/internal/schedule"

type ServiceSummary struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// AvailabilityResponse lists, per barber, the start times at which the
// requested service can be booked on the requested date. Barbers with no
// free slot are left out.
type AvailabilityResponse struct {
	Service ServiceSummary         `json:"service"`
	Date    string                 `json:"date"`
	Barbers []schedule.BarberSlots `json:"barbers"`
}
