package model

// Visitor represents a gallery guest who can book tickets, buy and
// rent artworks. VisitHistory holds free-text visit records appended
// when tickets are booked; PurchaseIDs lists the IDs of sales where
// the visitor was the buyer.
type Visitor struct {
	Base
	FullName     string   `json:"full_name"`
	ContactInfo  string   `json:"contact_info"`
	VisitHistory []string `json:"visit_history"`
	PurchaseIDs  []string `json:"purchase_ids"`
}
