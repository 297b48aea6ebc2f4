package service

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/iliyamo/art-gallery/internal/model"
	"github.com/iliyamo/art-gallery/internal/repository"
)

// File names of the per-entity collections inside the data directory.
const (
	artistsFile     = "artists.json"
	artworksFile    = "artworks.json"
	exhibitionsFile = "exhibitions.json"
	visitorsFile    = "visitors.json"
	ticketsFile     = "tickets.json"
	salesFile       = "sales.json"
	rentalsFile     = "rentals.json"
)

// Gallery is the domain service. It owns one store per entity kind and
// is the sole mutator of their contents. Operations complete all of
// their sub-writes before returning; there is no atomicity across the
// several SaveChanges calls one operation may issue, so the per-store
// save order inside each operation is part of the contract.
type Gallery struct {
	artists     *repository.Store[*model.Artist]
	artworks    *repository.Store[*model.Artwork]
	exhibitions *repository.Store[*model.Exhibition]
	visitors    *repository.Store[*model.Visitor]
	tickets     *repository.Store[*model.Ticket]
	sales       *repository.Store[*model.Sale]
	rentals     *repository.Store[*model.Rental]

	log *slog.Logger
}

// New loads all collections from dataDir and returns a ready service.
// The directory is created if missing; missing collection files load as
// empty collections. A nil logger falls back to slog.Default.
func New(dataDir string, logger *slog.Logger) (*Gallery, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dataDir, err)
	}

	artists, err := repository.NewStore[*model.Artist](filepath.Join(dataDir, artistsFile))
	if err != nil {
		return nil, err
	}
	artworks, err := repository.NewStore[*model.Artwork](filepath.Join(dataDir, artworksFile))
	if err != nil {
		return nil, err
	}
	exhibitions, err := repository.NewStore[*model.Exhibition](filepath.Join(dataDir, exhibitionsFile))
	if err != nil {
		return nil, err
	}
	visitors, err := repository.NewStore[*model.Visitor](filepath.Join(dataDir, visitorsFile))
	if err != nil {
		return nil, err
	}
	tickets, err := repository.NewStore[*model.Ticket](filepath.Join(dataDir, ticketsFile))
	if err != nil {
		return nil, err
	}
	sales, err := repository.NewStore[*model.Sale](filepath.Join(dataDir, salesFile))
	if err != nil {
		return nil, err
	}
	rentals, err := repository.NewStore[*model.Rental](filepath.Join(dataDir, rentalsFile))
	if err != nil {
		return nil, err
	}

	return &Gallery{
		artists:     artists,
		artworks:    artworks,
		exhibitions: exhibitions,
		visitors:    visitors,
		tickets:     tickets,
		sales:       sales,
		rentals:     rentals,
		log:         logger,
	}, nil
}

// dateOnly truncates a timestamp to midnight in its own location.
// Visit dates, rental ranges and exhibition windows compare at day
// granularity.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// today returns the current day at midnight.
func today() time.Time {
	return dateOnly(time.Now())
}
