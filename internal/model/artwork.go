package model

// ArtworkStatus tracks the availability of an artwork. Exactly one
// status holds at a time: an artwork leaves InGallery when sold or
// rented and returns to it only through a rental return.
type ArtworkStatus string

const (
	ArtworkInGallery ArtworkStatus = "InGallery"
	ArtworkSold      ArtworkStatus = "Sold"
	ArtworkRented    ArtworkStatus = "Rented"
)

// Artwork represents a single piece managed by the gallery. It
// belongs to exactly one artist via ArtistID and is referenced by
// exhibitions, sales and rentals.
//
// Fields:
//
//	Title               – title of the piece.
//	ArtistID            – owning artist.
//	Year                – year of creation.
//	Genre               – genre or subject (e.g. "Landscape").
//	Description         – free-text description.
//	EstimatedValueCents – appraised value in cents.
//	Status              – current availability state.
type Artwork struct {
	Base
	Title               string        `json:"title"`
	ArtistID            string        `json:"artist_id"`
	Year                int           `json:"year"`
	Genre               string        `json:"genre"`
	Description         string        `json:"description"`
	EstimatedValueCents int64         `json:"estimated_value_cents"`
	Status              ArtworkStatus `json:"status"`
}
