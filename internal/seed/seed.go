// Package seed populates an empty gallery with a small demonstration
// data set: two artists, two artworks, an exhibition running for the
// next month, a visitor with a booked ticket, one completed sale and
// one active rental.
package seed

import (
	"fmt"
	"time"

	"github.com/iliyamo/art-gallery/internal/service"
)

// Demo seeds the demonstration data set. It is a no-op when the
// gallery already holds any artist, so repeated startups do not
// duplicate records.
func Demo(g *service.Gallery) error {
	if len(g.Artists()) > 0 {
		return nil
	}

	painter, err := g.AddArtist("Ivan Ivanov", "Russia", "1950-2000", "Realism")
	if err != nil {
		return fmt.Errorf("seed artist: %w", err)
	}
	impressionist, err := g.AddArtist("Anna Smirnova", "France", "1965-", "Impressionism")
	if err != nil {
		return fmt.Errorf("seed artist: %w", err)
	}

	morning, err := g.AddArtwork("Morning in the Forest", painter.ID, 1995,
		"Landscape", "A warm spring landscape", 15000000)
	if err != nil {
		return fmt.Errorf("seed artwork: %w", err)
	}
	evening, err := g.AddArtwork("Evening City", impressionist.ID, 2005,
		"Cityscape", "Lights of the night metropolis", 20000000)
	if err != nil {
		return fmt.Errorf("seed artwork: %w", err)
	}

	now := time.Now()
	exhibition, err := g.AddExhibition("Spring Collection",
		now.AddDate(0, 0, 1), now.AddDate(0, 0, 30), "Main Hall",
		[]string{morning.ID, evening.ID}, 50000)
	if err != nil {
		return fmt.Errorf("seed exhibition: %w", err)
	}

	visitor, err := g.AddVisitor("Olga Petrova", "olga.pet@example.com")
	if err != nil {
		return fmt.Errorf("seed visitor: %w", err)
	}

	if _, err := g.BookTicket(exhibition.ID, visitor.ID, now.AddDate(0, 0, 2)); err != nil {
		return fmt.Errorf("seed ticket: %w", err)
	}
	if _, err := g.SellArtwork(morning.ID, visitor.ID, morning.EstimatedValueCents); err != nil {
		return fmt.Errorf("seed sale: %w", err)
	}
	if _, err := g.RentArtwork(evening.ID, visitor.ID, now, now.AddDate(0, 0, 7), 1000000); err != nil {
		return fmt.Errorf("seed rental: %w", err)
	}
	return nil
}
