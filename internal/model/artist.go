package model

// Artist represents a creator whose works the gallery manages.
// ArtworkIDs is the owning side of the artist↔artwork relationship:
// the service appends to it whenever an artwork is registered under
// the artist.
//
// Fields:
//
//	FullName   – display name of the artist.
//	Country    – country the artist is associated with.
//	LifeYears  – free-text life span (e.g. "1950-2000", "1965-").
//	Style      – artistic movement or style.
//	ArtworkIDs – IDs of artworks owned by this artist.
type Artist struct {
	Base
	FullName   string   `json:"full_name"`
	Country    string   `json:"country"`
	LifeYears  string   `json:"life_years"`
	Style      string   `json:"style"`
	ArtworkIDs []string `json:"artwork_ids"`
}
