package model

import "time"

// Rental records a visitor renting an artwork for a date range.
// EndDate is never earlier than StartDate at creation; an early
// return overwrites EndDate with the return day.
type Rental struct {
	Base
	ArtworkID string    `json:"artwork_id"`
	RenterID  string    `json:"renter_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CostCents int64     `json:"cost_cents"`
}
