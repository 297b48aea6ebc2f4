package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/art-gallery/internal/model"
)

// AddArtist registers a new artist and persists the artist collection.
func (g *Gallery) AddArtist(fullName, country, lifeYears, style string) (*model.Artist, error) {
	artist := &model.Artist{
		Base:       model.Base{ID: uuid.NewString()},
		FullName:   fullName,
		Country:    country,
		LifeYears:  lifeYears,
		Style:      style,
		ArtworkIDs: []string{},
	}
	g.artists.Add(artist)
	if err := g.artists.SaveChanges(); err != nil {
		return nil, err
	}
	g.log.Info("artist added", "artist_id", artist.ID, "name", fullName)
	return artist, nil
}

// AddArtwork registers a new artwork under an existing artist. The
// artwork is persisted first, then the artist's ArtworkIDs
// back-reference. A failure between the two saves leaves an artwork
// without a back-reference; the artwork itself stays valid and the
// link is recomputable from its ArtistID.
func (g *Gallery) AddArtwork(title, artistID string, year int, genre, description string, valueCents int64) (*model.Artwork, error) {
	artist, ok := g.artists.GetByID(artistID)
	if !ok {
		return nil, fmt.Errorf("artist %s: %w", artistID, ErrNotFound)
	}

	artwork := &model.Artwork{
		Base:                model.Base{ID: uuid.NewString()},
		Title:               title,
		ArtistID:            artistID,
		Year:                year,
		Genre:               genre,
		Description:         description,
		EstimatedValueCents: valueCents,
		Status:              model.ArtworkInGallery,
	}
	g.artworks.Add(artwork)
	if err := g.artworks.SaveChanges(); err != nil {
		return nil, err
	}

	artist.ArtworkIDs = append(artist.ArtworkIDs, artwork.ID)
	g.artists.Update(artist)
	if err := g.artists.SaveChanges(); err != nil {
		return nil, err
	}

	g.log.Info("artwork added", "artwork_id", artwork.ID, "artist_id", artistID, "title", title)
	return artwork, nil
}

// AddExhibition schedules a new exhibition. Every listed artwork ID
// must exist before the exhibition is constructed.
func (g *Gallery) AddExhibition(title string, start, end time.Time, location string, artworkIDs []string, priceCents int64) (*model.Exhibition, error) {
	for _, artworkID := range artworkIDs {
		if _, ok := g.artworks.GetByID(artworkID); !ok {
			return nil, fmt.Errorf("artwork %s: %w", artworkID, ErrNotFound)
		}
	}

	exhibition := &model.Exhibition{
		Base:             model.Base{ID: uuid.NewString()},
		Title:            title,
		StartDate:        dateOnly(start),
		EndDate:          dateOnly(end),
		Location:         location,
		ArtworkIDs:       artworkIDs,
		TicketPriceCents: priceCents,
	}
	g.exhibitions.Add(exhibition)
	if err := g.exhibitions.SaveChanges(); err != nil {
		return nil, err
	}
	g.log.Info("exhibition added", "exhibition_id", exhibition.ID, "title", title)
	return exhibition, nil
}

// AddVisitor registers a new visitor.
func (g *Gallery) AddVisitor(fullName, contactInfo string) (*model.Visitor, error) {
	visitor := &model.Visitor{
		Base:         model.Base{ID: uuid.NewString()},
		FullName:     fullName,
		ContactInfo:  contactInfo,
		VisitHistory: []string{},
		PurchaseIDs:  []string{},
	}
	g.visitors.Add(visitor)
	if err := g.visitors.SaveChanges(); err != nil {
		return nil, err
	}
	g.log.Info("visitor added", "visitor_id", visitor.ID, "name", fullName)
	return visitor, nil
}

// SellArtwork sells an in-gallery artwork to a visitor. Save order:
// artwork (status Sold), then the buyer's purchase list, then the new
// sale record.
func (g *Gallery) SellArtwork(artworkID, buyerID string, amountCents int64) (*model.Sale, error) {
	artwork, ok := g.artworks.GetByID(artworkID)
	if !ok {
		return nil, fmt.Errorf("artwork %s: %w", artworkID, ErrNotFound)
	}
	if artwork.Status != model.ArtworkInGallery {
		return nil, fmt.Errorf("artwork %s is not available for sale: %w", artworkID, ErrInvalidState)
	}
	buyer, ok := g.visitors.GetByID(buyerID)
	if !ok {
		return nil, fmt.Errorf("buyer %s: %w", buyerID, ErrNotFound)
	}

	sale := &model.Sale{
		Base:        model.Base{ID: uuid.NewString()},
		ArtworkID:   artworkID,
		BuyerID:     buyerID,
		Date:        time.Now(),
		AmountCents: amountCents,
	}

	artwork.Status = model.ArtworkSold
	g.artworks.Update(artwork)
	if err := g.artworks.SaveChanges(); err != nil {
		return nil, err
	}

	buyer.PurchaseIDs = append(buyer.PurchaseIDs, sale.ID)
	g.visitors.Update(buyer)
	if err := g.visitors.SaveChanges(); err != nil {
		return nil, err
	}

	g.sales.Add(sale)
	if err := g.sales.SaveChanges(); err != nil {
		return nil, err
	}

	g.log.Info("artwork sold", "artwork_id", artworkID, "buyer_id", buyerID, "amount_cents", amountCents)
	return sale, nil
}

// RentArtwork rents an in-gallery artwork to a visitor for the given
// date range. The end date must not precede the start date.
func (g *Gallery) RentArtwork(artworkID, renterID string, start, end time.Time, costCents int64) (*model.Rental, error) {
	artwork, ok := g.artworks.GetByID(artworkID)
	if !ok {
		return nil, fmt.Errorf("artwork %s: %w", artworkID, ErrNotFound)
	}
	if artwork.Status != model.ArtworkInGallery {
		return nil, fmt.Errorf("artwork %s is not available for rent: %w", artworkID, ErrInvalidState)
	}
	_, ok = g.visitors.GetByID(renterID)
	if !ok {
		return nil, fmt.Errorf("renter %s: %w", renterID, ErrNotFound)
	}
	start, end = dateOnly(start), dateOnly(end)
	if end.Before(start) {
		return nil, fmt.Errorf("rental end date %s is before start date %s: %w",
			end.Format(time.DateOnly), start.Format(time.DateOnly), ErrInvalidArgument)
	}

	rental := &model.Rental{
		Base:      model.Base{ID: uuid.NewString()},
		ArtworkID: artworkID,
		RenterID:  renterID,
		StartDate: start,
		EndDate:   end,
		CostCents: costCents,
	}

	artwork.Status = model.ArtworkRented
	g.artworks.Update(artwork)
	if err := g.artworks.SaveChanges(); err != nil {
		return nil, err
	}

	g.rentals.Add(rental)
	if err := g.rentals.SaveChanges(); err != nil {
		return nil, err
	}

	g.log.Info("artwork rented", "artwork_id", artworkID, "renter_id", renterID, "end_date", end.Format(time.DateOnly))
	return rental, nil
}

// ReturnRentedArtwork returns a rented artwork to the gallery. The
// rental's end date is overwritten with today, even when the agreed
// end lies in the future (early-return semantics).
func (g *Gallery) ReturnRentedArtwork(rentalID string) (*model.Rental, error) {
	rental, ok := g.rentals.GetByID(rentalID)
	if !ok {
		return nil, fmt.Errorf("rental %s: %w", rentalID, ErrNotFound)
	}
	artwork, ok := g.artworks.GetByID(rental.ArtworkID)
	if !ok {
		return nil, fmt.Errorf("artwork %s: %w", rental.ArtworkID, ErrNotFound)
	}

	artwork.Status = model.ArtworkInGallery
	g.artworks.Update(artwork)
	if err := g.artworks.SaveChanges(); err != nil {
		return nil, err
	}

	rental.EndDate = today()
	g.rentals.Update(rental)
	if err := g.rentals.SaveChanges(); err != nil {
		return nil, err
	}

	g.log.Info("artwork returned", "rental_id", rentalID, "artwork_id", artwork.ID)
	return rental, nil
}

// BookTicket reserves a ticket for a visitor. The visit date must lie
// within the exhibition's date range, inclusive on both ends; the
// check happens at booking time only. The ticket price is copied from
// the exhibition's current price and a visit record is appended to the
// visitor's history.
func (g *Gallery) BookTicket(exhibitionID, visitorID string, visitDate time.Time) (*model.Ticket, error) {
	exhibition, ok := g.exhibitions.GetByID(exhibitionID)
	if !ok {
		return nil, fmt.Errorf("exhibition %s: %w", exhibitionID, ErrNotFound)
	}
	visitDate = dateOnly(visitDate)
	if visitDate.Before(exhibition.StartDate) || visitDate.After(exhibition.EndDate) {
		return nil, fmt.Errorf("visit date %s is outside the exhibition period %s to %s: %w",
			visitDate.Format(time.DateOnly), exhibition.StartDate.Format(time.DateOnly),
			exhibition.EndDate.Format(time.DateOnly), ErrInvalidArgument)
	}
	visitor, ok := g.visitors.GetByID(visitorID)
	if !ok {
		return nil, fmt.Errorf("visitor %s: %w", visitorID, ErrNotFound)
	}

	ticket := &model.Ticket{
		Base:         model.Base{ID: uuid.NewString()},
		ExhibitionID: exhibitionID,
		VisitorID:    visitorID,
		VisitDate:    visitDate,
		PriceCents:   exhibition.TicketPriceCents,
		Status:       model.TicketReserved,
	}

	visitor.VisitHistory = append(visitor.VisitHistory,
		fmt.Sprintf("%s (%s)", exhibition.Title, visitDate.Format(time.DateOnly)))
	g.visitors.Update(visitor)
	if err := g.visitors.SaveChanges(); err != nil {
		return nil, err
	}

	g.tickets.Add(ticket)
	if err := g.tickets.SaveChanges(); err != nil {
		return nil, err
	}

	g.log.Info("ticket booked", "ticket_id", ticket.ID, "exhibition_id", exhibitionID, "visitor_id", visitorID)
	return ticket, nil
}

// UseTicket marks a ticket as used. The previous status is not
// checked: a cancelled ticket can be used. Matching the system this
// was ported from, the permissive transition is the contract.
func (g *Gallery) UseTicket(ticketID string) error {
	return g.setTicketStatus(ticketID, model.TicketUsed)
}

// CancelTicket marks a ticket as cancelled, from any prior status.
func (g *Gallery) CancelTicket(ticketID string) error {
	return g.setTicketStatus(ticketID, model.TicketCancelled)
}

func (g *Gallery) setTicketStatus(ticketID string, status model.TicketStatus) error {
	ticket, ok := g.tickets.GetByID(ticketID)
	if !ok {
		return fmt.Errorf("ticket %s: %w", ticketID, ErrNotFound)
	}
	ticket.Status = status
	g.tickets.Update(ticket)
	if err := g.tickets.SaveChanges(); err != nil {
		return err
	}
	g.log.Info("ticket status changed", "ticket_id", ticketID, "status", string(status))
	return nil
}
