// Package model defines the persisted entity records of the gallery.
// Every entity carries an opaque string ID assigned once at creation
// and never reused. The structs hold foreign keys only; derived links
// between entities (an artwork's artist, an exhibition's artworks) are
// computed by the service's reference resolver and never serialized.
package model

// Entity is implemented by every persisted record. The repository
// uses it to address records by ID without knowing their shape.
type Entity interface {
	EntityID() string
}

// Base carries the identifier shared by all entities. It is embedded
// by every model type.
type Base struct {
	ID string `json:"id"`
}

// EntityID returns the record's unique identifier.
func (b *Base) EntityID() string { return b.ID }
