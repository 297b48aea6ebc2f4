package service

import "github.com/iliyamo/art-gallery/internal/model"

// References is the read model produced by a resolution pass: every
// derived link between entities, keyed by the ID of the entity the
// link hangs off. Nothing in here is persisted — the maps are rebuilt
// from the foreign-key fields on every pass and are stale as soon as
// any store mutates. Unmatched foreign keys are simply absent from the
// maps; a missing key is never an error.
type References struct {
	// ArtistByArtwork maps an artwork ID to its owning artist.
	ArtistByArtwork map[string]*model.Artist
	// ArtworksByArtist maps an artist ID to the artworks naming it as
	// owner, in artwork insertion order.
	ArtworksByArtist map[string][]*model.Artwork
	// ArtworksByExhibition maps an exhibition ID to the artworks it
	// lists, in the exhibition's listed order.
	ArtworksByExhibition map[string][]*model.Artwork
	// PurchasesByVisitor maps a visitor ID to the sales where the
	// visitor was the buyer.
	PurchasesByVisitor map[string][]*model.Sale
	// ExhibitionByTicket and VisitorByTicket map a ticket ID to its
	// exhibition and visitor.
	ExhibitionByTicket map[string]*model.Exhibition
	VisitorByTicket    map[string]*model.Visitor
	// ArtworkBySale and BuyerBySale map a sale ID to its artwork and
	// buyer.
	ArtworkBySale map[string]*model.Artwork
	BuyerBySale   map[string]*model.Visitor
	// ArtworkByRental and RenterByRental map a rental ID to its
	// artwork and renter.
	ArtworkByRental map[string]*model.Artwork
	RenterByRental  map[string]*model.Visitor
}

// ResolveReferences joins the current store contents into a fresh
// References read model. It is a pure function of the loaded
// collections: calling it twice without intervening mutation yields
// identical links. Collections are small and fully in memory, so the
// joins are plain linear passes.
func (g *Gallery) ResolveReferences() *References {
	refs := &References{
		ArtistByArtwork:      make(map[string]*model.Artist),
		ArtworksByArtist:     make(map[string][]*model.Artwork),
		ArtworksByExhibition: make(map[string][]*model.Artwork),
		PurchasesByVisitor:   make(map[string][]*model.Sale),
		ExhibitionByTicket:   make(map[string]*model.Exhibition),
		VisitorByTicket:      make(map[string]*model.Visitor),
		ArtworkBySale:        make(map[string]*model.Artwork),
		BuyerBySale:          make(map[string]*model.Visitor),
		ArtworkByRental:      make(map[string]*model.Artwork),
		RenterByRental:       make(map[string]*model.Visitor),
	}

	for _, artwork := range g.artworks.GetAll() {
		if artist, ok := g.artists.GetByID(artwork.ArtistID); ok {
			refs.ArtistByArtwork[artwork.ID] = artist
			refs.ArtworksByArtist[artist.ID] = append(refs.ArtworksByArtist[artist.ID], artwork)
		}
	}

	for _, exhibition := range g.exhibitions.GetAll() {
		for _, artworkID := range exhibition.ArtworkIDs {
			if artwork, ok := g.artworks.GetByID(artworkID); ok {
				refs.ArtworksByExhibition[exhibition.ID] = append(refs.ArtworksByExhibition[exhibition.ID], artwork)
			}
		}
	}

	for _, sale := range g.sales.GetAll() {
		if artwork, ok := g.artworks.GetByID(sale.ArtworkID); ok {
			refs.ArtworkBySale[sale.ID] = artwork
		}
		if buyer, ok := g.visitors.GetByID(sale.BuyerID); ok {
			refs.BuyerBySale[sale.ID] = buyer
			refs.PurchasesByVisitor[buyer.ID] = append(refs.PurchasesByVisitor[buyer.ID], sale)
		}
	}

	for _, ticket := range g.tickets.GetAll() {
		if exhibition, ok := g.exhibitions.GetByID(ticket.ExhibitionID); ok {
			refs.ExhibitionByTicket[ticket.ID] = exhibition
		}
		if visitor, ok := g.visitors.GetByID(ticket.VisitorID); ok {
			refs.VisitorByTicket[ticket.ID] = visitor
		}
	}

	for _, rental := range g.rentals.GetAll() {
		if artwork, ok := g.artworks.GetByID(rental.ArtworkID); ok {
			refs.ArtworkByRental[rental.ID] = artwork
		}
		if renter, ok := g.visitors.GetByID(rental.RenterID); ok {
			refs.RenterByRental[rental.ID] = renter
		}
	}

	return refs
}
