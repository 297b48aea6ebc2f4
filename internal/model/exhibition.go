package model

import "time"

// Exhibition represents a scheduled showing of a set of artworks.
// Tickets are booked against an exhibition and must fall within its
// date range; the ticket price is copied from TicketPriceCents at
// booking time and does not track later price changes.
type Exhibition struct {
	Base
	Title            string    `json:"title"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	Location         string    `json:"location"`
	ArtworkIDs       []string  `json:"artwork_ids"`
	TicketPriceCents int64     `json:"ticket_price_cents"`
}
