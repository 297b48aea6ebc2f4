package service

import (
	"sort"

	"github.com/iliyamo/art-gallery/internal/model"
)

// ArtworkView pairs an artwork with its resolved artist. Artist is nil
// when the foreign key does not match any stored artist.
type ArtworkView struct {
	Artwork *model.Artwork
	Artist  *model.Artist
}

// ExhibitionView pairs an exhibition with its resolved artworks.
type ExhibitionView struct {
	Exhibition *model.Exhibition
	Artworks   []*model.Artwork
}

// TicketView pairs a ticket with its resolved exhibition and visitor.
type TicketView struct {
	Ticket     *model.Ticket
	Exhibition *model.Exhibition
	Visitor    *model.Visitor
}

// ArtistSales is one row of the popularity report.
type ArtistSales struct {
	Artist    *model.Artist
	SoldCount int
}

// Revenue breaks total takings into the ticket and sale components.
// Cancelled tickets do not count toward ticket revenue.
type Revenue struct {
	TicketCents int64
	SaleCents   int64
	TotalCents  int64
}

// RentedArtwork pairs an active rental with its artwork.
type RentedArtwork struct {
	Artwork *model.Artwork
	Rental  *model.Rental
}

// Artworks returns every artwork joined with its artist.
func (g *Gallery) Artworks() []ArtworkView {
	refs := g.ResolveReferences()
	all := g.artworks.GetAll()
	views := make([]ArtworkView, 0, len(all))
	for _, artwork := range all {
		views = append(views, ArtworkView{Artwork: artwork, Artist: refs.ArtistByArtwork[artwork.ID]})
	}
	return views
}

// Artists returns every artist in insertion order.
func (g *Gallery) Artists() []*model.Artist {
	return g.artists.GetAll()
}

// Exhibitions returns every exhibition joined with its artworks.
func (g *Gallery) Exhibitions() []ExhibitionView {
	refs := g.ResolveReferences()
	all := g.exhibitions.GetAll()
	views := make([]ExhibitionView, 0, len(all))
	for _, exhibition := range all {
		views = append(views, ExhibitionView{Exhibition: exhibition, Artworks: refs.ArtworksByExhibition[exhibition.ID]})
	}
	return views
}

// Visitors returns every visitor in insertion order.
func (g *Gallery) Visitors() []*model.Visitor {
	return g.visitors.GetAll()
}

// Tickets returns every ticket joined with its exhibition and visitor.
func (g *Gallery) Tickets() []TicketView {
	refs := g.ResolveReferences()
	all := g.tickets.GetAll()
	views := make([]TicketView, 0, len(all))
	for _, ticket := range all {
		views = append(views, TicketView{
			Ticket:     ticket,
			Exhibition: refs.ExhibitionByTicket[ticket.ID],
			Visitor:    refs.VisitorByTicket[ticket.ID],
		})
	}
	return views
}

// AvailableArtworks returns the artworks currently in the gallery
// (status InGallery), joined with their artists.
func (g *Gallery) AvailableArtworks() []ArtworkView {
	refs := g.ResolveReferences()
	var views []ArtworkView
	for _, artwork := range g.artworks.GetAll() {
		if artwork.Status != model.ArtworkInGallery {
			continue
		}
		views = append(views, ArtworkView{Artwork: artwork, Artist: refs.ArtistByArtwork[artwork.ID]})
	}
	return views
}

// UpcomingExhibitions returns the exhibitions running now or starting
// within the next month: start date at most one month ahead and end
// date not yet past.
func (g *Gallery) UpcomingExhibitions() []*model.Exhibition {
	g.ResolveReferences()
	now := today()
	oneMonthAhead := now.AddDate(0, 1, 0)

	var upcoming []*model.Exhibition
	for _, exhibition := range g.exhibitions.GetAll() {
		if !exhibition.StartDate.After(oneMonthAhead) && !exhibition.EndDate.Before(now) {
			upcoming = append(upcoming, exhibition)
		}
	}
	return upcoming
}

// PopularArtistsBySales ranks every artist by the number of sales of
// their artworks, descending. Artists with zero sales are included
// with a zero count; ties keep store insertion order.
func (g *Gallery) PopularArtistsBySales() []ArtistSales {
	g.ResolveReferences()

	counts := make(map[string]int)
	for _, sale := range g.sales.GetAll() {
		if artwork, ok := g.artworks.GetByID(sale.ArtworkID); ok {
			counts[artwork.ArtistID]++
		}
	}

	rows := make([]ArtistSales, 0, len(g.artists.GetAll()))
	for _, artist := range g.artists.GetAll() {
		rows = append(rows, ArtistSales{Artist: artist, SoldCount: counts[artist.ID]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].SoldCount > rows[j].SoldCount
	})
	return rows
}

// TotalRevenue sums the prices of all non-cancelled tickets and the
// amounts of all sales.
func (g *Gallery) TotalRevenue() Revenue {
	g.ResolveReferences()

	var rev Revenue
	for _, ticket := range g.tickets.GetAll() {
		if ticket.Status != model.TicketCancelled {
			rev.TicketCents += ticket.PriceCents
		}
	}
	for _, sale := range g.sales.GetAll() {
		rev.SaleCents += sale.AmountCents
	}
	rev.TotalCents = rev.TicketCents + rev.SaleCents
	return rev
}

// RentedArtworks returns the rentals still running (end date today or
// later) paired with their artworks. Rentals whose artwork no longer
// resolves are dropped from the result.
func (g *Gallery) RentedArtworks() []RentedArtwork {
	refs := g.ResolveReferences()
	now := today()

	var out []RentedArtwork
	for _, rental := range g.rentals.GetAll() {
		if rental.EndDate.Before(now) {
			continue
		}
		artwork, ok := refs.ArtworkByRental[rental.ID]
		if !ok {
			continue
		}
		out = append(out, RentedArtwork{Artwork: artwork, Rental: rental})
	}
	return out
}
