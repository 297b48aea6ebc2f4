package model

import "time"

// Sale records the purchase of an artwork by a visitor. A sale is
// final: the artwork's status moves to Sold and never returns to
// InGallery through this record.
type Sale struct {
	Base
	ArtworkID   string    `json:"artwork_id"`
	BuyerID     string    `json:"buyer_id"`
	Date        time.Time `json:"date"`
	AmountCents int64     `json:"amount_cents"`
}
