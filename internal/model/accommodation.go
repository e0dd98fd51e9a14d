package model

import "time"

// AccommodationBooking is a stay with a per-night rate and a date range.
// CheckInDate <= CheckOutDate is expected but not validated on every path;
// the budget aggregator floors the night count at 1 to stay defensive.
type AccommodationBooking struct {
	ID           string    `json:"accommodationId"`
	TripID       string    `json:"tripId"`
	HotelName    string    `json:"hotelName"`
	Address      string    `json:"address"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	CostPerNight float64   `json:"costPerNight"`
}

// Nights returns the billable night count for the booking: the number of
// started 24h periods between check-in and check-out, never less than 1.
func (a *AccommodationBooking) Nights() int {
	hours := a.CheckOutDate.Sub(a.CheckInDate).Hours()
	nights := int(hours / 24)
	if hours > float64(nights)*24 {
		nights++ // partial day counts as a full night
	}
	if nights < 1 {
		return 1
	}
	return nights
}
