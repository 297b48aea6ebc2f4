package service

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/iliyamo/art-gallery/internal/model"
)

func newGallery(t *testing.T) *Gallery {
	t.Helper()
	g, err := New(t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func seedArtistAndArtwork(t *testing.T, g *Gallery) (*model.Artist, *model.Artwork) {
	t.Helper()
	artist, err := g.AddArtist("Test Artist", "NL", "1900-2000", "Realism")
	if err != nil {
		t.Fatalf("AddArtist: %v", err)
	}
	artwork, err := g.AddArtwork("Test Painting", artist.ID, 1999, "Landscape", "A test piece", 100000)
	if err != nil {
		t.Fatalf("AddArtwork: %v", err)
	}
	return artist, artwork
}

func seedVisitor(t *testing.T, g *Gallery) *model.Visitor {
	t.Helper()
	visitor, err := g.AddVisitor("Jan Tester", "jan@example.com")
	if err != nil {
		t.Fatalf("AddVisitor: %v", err)
	}
	return visitor
}

func TestAddArtworkLinksArtist(t *testing.T) {
	g := newGallery(t)
	artist, artwork := seedArtistAndArtwork(t, g)

	views := g.Artworks()
	if len(views) != 1 {
		t.Fatalf("expected 1 artwork, got %d", len(views))
	}
	if views[0].Artwork.Status != model.ArtworkInGallery {
		t.Fatalf("new artwork status = %s, want InGallery", views[0].Artwork.Status)
	}
	if views[0].Artist == nil || views[0].Artist.ID != artist.ID {
		t.Fatalf("artwork did not resolve to its artist: %+v", views[0].Artist)
	}

	stored := g.Artists()[0]
	found := false
	for _, id := range stored.ArtworkIDs {
		if id == artwork.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("artist back-reference missing artwork %s: %v", artwork.ID, stored.ArtworkIDs)
	}
}

func TestAddArtworkUnknownArtist(t *testing.T) {
	g := newGallery(t)
	_, err := g.AddArtwork("Orphan", "no-such-artist", 2000, "Genre", "", 100)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "no-such-artist") {
		t.Fatalf("error does not name the missing ID: %v", err)
	}
	if len(g.Artworks()) != 0 {
		t.Fatal("failed AddArtwork left an artwork behind")
	}
}

func TestAddExhibitionUnknownArtwork(t *testing.T) {
	g := newGallery(t)
	_, artwork := seedArtistAndArtwork(t, g)

	now := time.Now()
	_, err := g.AddExhibition("Broken", now, now.AddDate(0, 0, 10), "Hall",
		[]string{artwork.ID, "missing-artwork"}, 1000)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(g.Exhibitions()) != 0 {
		t.Fatal("failed AddExhibition left an exhibition behind")
	}
}

func TestSellArtwork(t *testing.T) {
	g := newGallery(t)
	_, artwork := seedArtistAndArtwork(t, g)
	buyer := seedVisitor(t, g)
	before := g.TotalRevenue()

	sale, err := g.SellArtwork(artwork.ID, buyer.ID, 123400)
	if err != nil {
		t.Fatalf("SellArtwork: %v", err)
	}
	if sale.AmountCents != 123400 || sale.ArtworkID != artwork.ID || sale.BuyerID != buyer.ID {
		t.Fatalf("unexpected sale record: %+v", sale)
	}

	sold, _ := g.artworks.GetByID(artwork.ID)
	if sold.Status != model.ArtworkSold {
		t.Fatalf("artwork status = %s, want Sold", sold.Status)
	}

	after := g.TotalRevenue()
	if after.SaleCents-before.SaleCents != 123400 {
		t.Fatalf("sale revenue delta = %d, want 123400", after.SaleCents-before.SaleCents)
	}
	if after.TicketCents != before.TicketCents {
		t.Fatal("selling an artwork changed ticket revenue")
	}

	updatedBuyer, _ := g.visitors.GetByID(buyer.ID)
	if len(updatedBuyer.PurchaseIDs) != 1 || updatedBuyer.PurchaseIDs[0] != sale.ID {
		t.Fatalf("buyer purchase list = %v, want [%s]", updatedBuyer.PurchaseIDs, sale.ID)
	}
}

func TestSellArtworkNotInGallery(t *testing.T) {
	g := newGallery(t)
	_, artwork := seedArtistAndArtwork(t, g)
	buyer := seedVisitor(t, g)

	if _, err := g.SellArtwork(artwork.ID, buyer.ID, 100); err != nil {
		t.Fatalf("first sale: %v", err)
	}
	_, err := g.SellArtwork(artwork.ID, buyer.ID, 100)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState on second sale, got %v", err)
	}
}

func TestSellArtworkUnknownBuyer(t *testing.T) {
	g := newGallery(t)
	_, artwork := seedArtistAndArtwork(t, g)

	_, err := g.SellArtwork(artwork.ID, "no-such-visitor", 100)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// Validation happens before any mutation: the artwork is untouched.
	current, _ := g.artworks.GetByID(artwork.ID)
	if current.Status != model.ArtworkInGallery {
		t.Fatalf("artwork status changed by failed sale: %s", current.Status)
	}
}

func TestRentArtworkEndBeforeStart(t *testing.T) {
	g := newGallery(t)
	_, artwork := seedArtistAndArtwork(t, g)
	renter := seedVisitor(t, g)

	start := time.Now()
	_, err := g.RentArtwork(artwork.ID, renter.ID, start, start.AddDate(0, 0, -3), 500)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if !strings.Contains(err.Error(), "before start date") {
		t.Fatalf("error does not mention date ordering: %v", err)
	}
	current, _ := g.artworks.GetByID(artwork.ID)
	if current.Status != model.ArtworkInGallery {
		t.Fatalf("failed rental changed artwork status: %s", current.Status)
	}
}

func TestRentAndReturnArtwork(t *testing.T) {
	g := newGallery(t)
	_, artwork := seedArtistAndArtwork(t, g)
	renter := seedVisitor(t, g)

	start := time.Now()
	rental, err := g.RentArtwork(artwork.ID, renter.ID, start, start.AddDate(0, 0, 7), 2500)
	if err != nil {
		t.Fatalf("RentArtwork: %v", err)
	}

	rented, _ := g.artworks.GetByID(artwork.ID)
	if rented.Status != model.ArtworkRented {
		t.Fatalf("artwork status = %s, want Rented", rented.Status)
	}
	if len(g.RentedArtworks()) != 1 {
		t.Fatalf("rented report = %d rows, want 1", len(g.RentedArtworks()))
	}

	returned, err := g.ReturnRentedArtwork(rental.ID)
	if err != nil {
		t.Fatalf("ReturnRentedArtwork: %v", err)
	}
	// Early return overwrites the agreed end date with today.
	if !returned.EndDate.Equal(today()) {
		t.Fatalf("rental end date = %s, want today", returned.EndDate)
	}
	back, _ := g.artworks.GetByID(artwork.ID)
	if back.Status != model.ArtworkInGallery {
		t.Fatalf("artwork status after return = %s, want InGallery", back.Status)
	}
}

func TestRentSoldArtwork(t *testing.T) {
	g := newGallery(t)
	_, artwork := seedArtistAndArtwork(t, g)
	visitor := seedVisitor(t, g)

	if _, err := g.SellArtwork(artwork.ID, visitor.ID, 100); err != nil {
		t.Fatalf("SellArtwork: %v", err)
	}
	now := time.Now()
	_, err := g.RentArtwork(artwork.ID, visitor.ID, now, now.AddDate(0, 0, 3), 100)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestReturnUnknownRental(t *testing.T) {
	g := newGallery(t)
	if _, err := g.ReturnRentedArtwork("no-such-rental"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBookTicket(t *testing.T) {
	g := newGallery(t)
	_, artwork := seedArtistAndArtwork(t, g)
	visitor := seedVisitor(t, g)

	now := time.Now()
	exhibition, err := g.AddExhibition("Spring", now, now.AddDate(0, 0, 10), "Main Hall",
		[]string{artwork.ID}, 35000)
	if err != nil {
		t.Fatalf("AddExhibition: %v", err)
	}

	ticket, err := g.BookTicket(exhibition.ID, visitor.ID, now.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("BookTicket: %v", err)
	}
	if ticket.Status != model.TicketReserved {
		t.Fatalf("ticket status = %s, want Reserved", ticket.Status)
	}
	if ticket.PriceCents != 35000 {
		t.Fatalf("ticket price = %d, want the exhibition price 35000", ticket.PriceCents)
	}

	updated, _ := g.visitors.GetByID(visitor.ID)
	if len(updated.VisitHistory) != 1 || !strings.Contains(updated.VisitHistory[0], "Spring") {
		t.Fatalf("visit history not appended: %v", updated.VisitHistory)
	}
}

func TestBookTicketOutsidePeriod(t *testing.T) {
	g := newGallery(t)
	_, artwork := seedArtistAndArtwork(t, g)
	visitor := seedVisitor(t, g)

	now := time.Now()
	exhibition, err := g.AddExhibition("Short", now, now.AddDate(0, 0, 2), "Hall",
		[]string{artwork.ID}, 1000)
	if err != nil {
		t.Fatalf("AddExhibition: %v", err)
	}

	_, err = g.BookTicket(exhibition.ID, visitor.ID, now.AddDate(0, 0, 5))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if !strings.Contains(err.Error(), "exhibition period") {
		t.Fatalf("error does not mention the period constraint: %v", err)
	}
	if len(g.Tickets()) != 0 {
		t.Fatal("failed booking left a ticket behind")
	}
}

func TestBookTicketBoundaryDates(t *testing.T) {
	g := newGallery(t)
	_, artwork := seedArtistAndArtwork(t, g)
	visitor := seedVisitor(t, g)

	now := time.Now()
	exhibition, err := g.AddExhibition("Window", now, now.AddDate(0, 0, 10), "Hall",
		[]string{artwork.ID}, 1000)
	if err != nil {
		t.Fatalf("AddExhibition: %v", err)
	}

	// Both ends of the period are inclusive.
	if _, err := g.BookTicket(exhibition.ID, visitor.ID, now); err != nil {
		t.Fatalf("booking on the start date failed: %v", err)
	}
	if _, err := g.BookTicket(exhibition.ID, visitor.ID, now.AddDate(0, 0, 10)); err != nil {
		t.Fatalf("booking on the end date failed: %v", err)
	}
}

func TestDoubleBookingRevenue(t *testing.T) {
	g := newGallery(t)
	_, artwork := seedArtistAndArtwork(t, g)
	visitor := seedVisitor(t, g)

	now := time.Now()
	exhibition, err := g.AddExhibition("Priced", now, now.AddDate(0, 0, 10), "Hall",
		[]string{artwork.ID}, 35000)
	if err != nil {
		t.Fatalf("AddExhibition: %v", err)
	}
	before := g.TotalRevenue()

	if _, err := g.BookTicket(exhibition.ID, visitor.ID, now.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := g.BookTicket(exhibition.ID, visitor.ID, now.AddDate(0, 0, 2)); err != nil {
		t.Fatalf("second booking: %v", err)
	}

	after := g.TotalRevenue()
	if delta := after.TicketCents - before.TicketCents; delta != 70000 {
		t.Fatalf("ticket revenue delta = %d, want 70000", delta)
	}
	if after.SaleCents != before.SaleCents {
		t.Fatal("booking tickets changed sale revenue")
	}
}

func TestCancelledTicketExcludedFromRevenue(t *testing.T) {
	g := newGallery(t)
	_, artwork := seedArtistAndArtwork(t, g)
	visitor := seedVisitor(t, g)

	now := time.Now()
	exhibition, err := g.AddExhibition("Refunds", now, now.AddDate(0, 0, 10), "Hall",
		[]string{artwork.ID}, 10000)
	if err != nil {
		t.Fatalf("AddExhibition: %v", err)
	}
	ticket, err := g.BookTicket(exhibition.ID, visitor.ID, now.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("BookTicket: %v", err)
	}
	if err := g.CancelTicket(ticket.ID); err != nil {
		t.Fatalf("CancelTicket: %v", err)
	}

	if rev := g.TotalRevenue(); rev.TicketCents != 0 {
		t.Fatalf("cancelled ticket still counted: %d", rev.TicketCents)
	}
}

func TestTicketStatusTransitionsUnguarded(t *testing.T) {
	g := newGallery(t)
	_, artwork := seedArtistAndArtwork(t, g)
	visitor := seedVisitor(t, g)

	now := time.Now()
	exhibition, err := g.AddExhibition("Loose", now, now.AddDate(0, 0, 10), "Hall",
		[]string{artwork.ID}, 1000)
	if err != nil {
		t.Fatalf("AddExhibition: %v", err)
	}
	ticket, err := g.BookTicket(exhibition.ID, visitor.ID, now.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("BookTicket: %v", err)
	}

	// A used ticket can be cancelled and a cancelled one used again.
	if err := g.UseTicket(ticket.ID); err != nil {
		t.Fatalf("UseTicket: %v", err)
	}
	if err := g.CancelTicket(ticket.ID); err != nil {
		t.Fatalf("CancelTicket after use: %v", err)
	}
	if err := g.UseTicket(ticket.ID); err != nil {
		t.Fatalf("UseTicket after cancel: %v", err)
	}
	current, _ := g.tickets.GetByID(ticket.ID)
	if current.Status != model.TicketUsed {
		t.Fatalf("ticket status = %s, want Used", current.Status)
	}
}

func TestUseTicketNotFound(t *testing.T) {
	g := newGallery(t)
	if err := g.UseTicket("no-such-ticket"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := g.CancelTicket("no-such-ticket"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPopularArtistsBySales(t *testing.T) {
	g := newGallery(t)
	buyer := seedVisitor(t, g)

	x, err := g.AddArtist("Two Sales", "X", "", "")
	if err != nil {
		t.Fatal(err)
	}
	y, err := g.AddArtist("One Sale", "Y", "", "")
	if err != nil {
		t.Fatal(err)
	}
	z, err := g.AddArtist("No Sales", "Z", "", "")
	if err != nil {
		t.Fatal(err)
	}

	for i, artistID := range []string{x.ID, x.ID, y.ID} {
		artwork, err := g.AddArtwork("Piece", artistID, 2000+i, "", "", 100)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := g.SellArtwork(artwork.ID, buyer.ID, 100); err != nil {
			t.Fatal(err)
		}
	}

	rows := g.PopularArtistsBySales()
	if len(rows) != 3 {
		t.Fatalf("expected all 3 artists in the report, got %d", len(rows))
	}
	if rows[0].Artist.ID != x.ID || rows[0].SoldCount != 2 {
		t.Fatalf("rank 1 = %s (%d), want artist X with 2", rows[0].Artist.FullName, rows[0].SoldCount)
	}
	if rows[1].Artist.ID != y.ID || rows[1].SoldCount != 1 {
		t.Fatalf("rank 2 = %s (%d), want artist Y with 1", rows[1].Artist.FullName, rows[1].SoldCount)
	}
	if rows[2].Artist.ID != z.ID || rows[2].SoldCount != 0 {
		t.Fatalf("artist with zero sales missing or misplaced: %s (%d)", rows[2].Artist.FullName, rows[2].SoldCount)
	}
}

func TestUpcomingExhibitions(t *testing.T) {
	g := newGallery(t)
	_, artwork := seedArtistAndArtwork(t, g)

	now := time.Now()
	running, err := g.AddExhibition("Running", now.AddDate(0, 0, -5), now.AddDate(0, 0, 5), "A",
		[]string{artwork.ID}, 100)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddExhibition("Far Future", now.AddDate(0, 2, 0), now.AddDate(0, 3, 0), "B",
		[]string{artwork.ID}, 100); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddExhibition("Finished", now.AddDate(0, 0, -30), now.AddDate(0, 0, -10), "C",
		[]string{artwork.ID}, 100); err != nil {
		t.Fatal(err)
	}

	upcoming := g.UpcomingExhibitions()
	if len(upcoming) != 1 || upcoming[0].ID != running.ID {
		t.Fatalf("upcoming = %d rows, want only the running exhibition", len(upcoming))
	}
}

func TestResolveReferencesIdempotent(t *testing.T) {
	g := newGallery(t)
	_, artwork := seedArtistAndArtwork(t, g)
	visitor := seedVisitor(t, g)

	now := time.Now()
	exhibition, err := g.AddExhibition("Stable", now, now.AddDate(0, 0, 10), "Hall",
		[]string{artwork.ID}, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.BookTicket(exhibition.ID, visitor.ID, now.AddDate(0, 0, 1)); err != nil {
		t.Fatal(err)
	}
	if _, err := g.SellArtwork(artwork.ID, visitor.ID, 500); err != nil {
		t.Fatal(err)
	}

	first := g.ResolveReferences()
	second := g.ResolveReferences()
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two resolver passes without mutation produced different links")
	}
}

func TestRentedArtworksSkipsMissingArtwork(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	orphan := []*model.Rental{{
		Base:      model.Base{ID: "r1"},
		ArtworkID: "ghost-artwork",
		RenterID:  "v1",
		StartDate: now.AddDate(0, 0, -1),
		EndDate:   now.AddDate(0, 0, 5),
		CostCents: 100,
	}}
	data, err := json.Marshal(orphan)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "rentals.json"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := New(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if rented := g.RentedArtworks(); len(rented) != 0 {
		t.Fatalf("rental with missing artwork not dropped: %d rows", len(rented))
	}
}

func TestStatePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	g, err := New(dir, logger)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	artist, err := g.AddArtist("Persisted", "NL", "1900-1980", "Cubism")
	if err != nil {
		t.Fatal(err)
	}
	artwork, err := g.AddArtwork("Kept", artist.ID, 1950, "Portrait", "", 7700)
	if err != nil {
		t.Fatal(err)
	}

	// Statuses are serialized by name, not as numeric codes.
	raw, err := os.ReadFile(filepath.Join(dir, "artworks.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"InGallery"`) {
		t.Fatalf("artwork status not serialized as its name: %s", raw)
	}

	reopened, err := New(dir, logger)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	views := reopened.Artworks()
	if len(views) != 1 || views[0].Artwork.ID != artwork.ID {
		t.Fatalf("artwork not reloaded: %+v", views)
	}
	if views[0].Artist == nil || views[0].Artist.ID != artist.ID {
		t.Fatal("artist link not resolvable after reload")
	}
}
