package model

import "time"

// TicketStatus is the lifecycle state of a booked ticket. The
// transitions are deliberately unguarded: UseTicket and CancelTicket
// overwrite the status regardless of its prior value, matching the
// system this contract was lifted from.
type TicketStatus string

const (
	TicketReserved  TicketStatus = "Reserved"
	TicketUsed      TicketStatus = "Used"
	TicketCancelled TicketStatus = "Cancelled"
)

// Ticket links a visitor to an exhibition for a specific visit date.
// PriceCents is the exhibition's ticket price at booking time.
type Ticket struct {
	Base
	ExhibitionID string       `json:"exhibition_id"`
	VisitorID    string       `json:"visitor_id"`
	VisitDate    time.Time    `json:"visit_date"`
	PriceCents   int64        `json:"price_cents"`
	Status       TicketStatus `json:"status"`
}
