package console

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/iliyamo/art-gallery/internal/model"
	"github.com/iliyamo/art-gallery/internal/service"
	"github.com/iliyamo/art-gallery/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginTop(1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	ruleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (c *Console) title(text string) {
	fmt.Fprintln(c.out, titleStyle.Render("== "+text+" =="))
}

func (c *Console) option(key, text string) {
	fmt.Fprintf(c.out, "%s. %s\n", key, text)
}

func (c *Console) failf(format string, args ...any) {
	fmt.Fprintln(c.out, errorStyle.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) field(name, value string) {
	fmt.Fprintf(c.out, "%s %s\n", labelStyle.Render(name+":"), value)
}

func (c *Console) rule() {
	fmt.Fprintln(c.out, ruleStyle.Render("-----------------------------------"))
}

func (c *Console) money(cents int64) string {
	return utils.Money(c.printer, cents)
}

func (c *Console) date(t time.Time) string {
	return utils.Date(t)
}

func (c *Console) period(start, end time.Time) string {
	return utils.Date(start) + " to " + utils.Date(end)
}

func (c *Console) renderArtwork(v service.ArtworkView) {
	artistName := "unknown"
	if v.Artist != nil {
		artistName = v.Artist.FullName
	}
	c.field("ID", v.Artwork.ID)
	c.field("Title", v.Artwork.Title)
	c.field("Artist", artistName)
	c.field("Year", fmt.Sprintf("%d", v.Artwork.Year))
	c.field("Genre", v.Artwork.Genre)
	c.field("Status", string(v.Artwork.Status))
	c.field("Estimated value", c.money(v.Artwork.EstimatedValueCents))
	c.rule()
}

func (c *Console) renderArtist(a *model.Artist) {
	c.field("ID", a.ID)
	c.field("Name", a.FullName)
	c.field("Country", a.Country)
	c.field("Years", a.LifeYears)
	c.field("Style", a.Style)
	c.field("Artworks", fmt.Sprintf("%d", len(a.ArtworkIDs)))
	c.rule()
}

func (c *Console) renderExhibition(v service.ExhibitionView) {
	c.field("ID", v.Exhibition.ID)
	c.field("Title", v.Exhibition.Title)
	c.field("Period", c.period(v.Exhibition.StartDate, v.Exhibition.EndDate))
	c.field("Location", v.Exhibition.Location)
	c.field("Ticket price", c.money(v.Exhibition.TicketPriceCents))
	for _, artwork := range v.Artworks {
		c.field("Artwork", artwork.Title)
	}
	c.rule()
}

func (c *Console) renderVisitor(v *model.Visitor) {
	c.field("ID", v.ID)
	c.field("Name", v.FullName)
	c.field("Contact", v.ContactInfo)
	for _, visit := range v.VisitHistory {
		c.field("Visit", visit)
	}
	c.field("Purchases", fmt.Sprintf("%d", len(v.PurchaseIDs)))
	c.rule()
}

func (c *Console) renderTicket(v service.TicketView) {
	c.field("ID", v.Ticket.ID)
	if v.Exhibition != nil {
		c.field("Exhibition", v.Exhibition.Title)
	}
	if v.Visitor != nil {
		c.field("Visitor", v.Visitor.FullName)
	}
	c.field("Visit date", utils.Date(v.Ticket.VisitDate))
	c.field("Price", c.money(v.Ticket.PriceCents))
	c.field("Status", string(v.Ticket.Status))
	c.rule()
}

func (c *Console) renderRental(v service.RentedArtwork) {
	c.field("Rental ID", v.Rental.ID)
	c.field("Artwork", v.Artwork.Title)
	c.field("Period", utils.Date(v.Rental.StartDate)+" to "+utils.Date(v.Rental.EndDate))
	c.field("Cost", c.money(v.Rental.CostCents))
	c.rule()
}

// promptDate reads and parses an ISO date.
func (c *Console) promptDate(label string) (time.Time, bool) {
	for {
		raw, ok := c.prompt(label + " (YYYY-MM-DD)")
		if !ok {
			return time.Time{}, false
		}
		t, err := utils.ParseDate(raw)
		if err != nil {
			c.failf("invalid date %q, expected YYYY-MM-DD", raw)
			continue
		}
		return t, true
	}
}

// promptMoney reads and parses a decimal amount into cents.
func (c *Console) promptMoney(label string) (int64, bool) {
	for {
		raw, ok := c.prompt(label)
		if !ok {
			return 0, false
		}
		cents, err := utils.ParseMoney(raw)
		if err != nil {
			c.failf("%v", err)
			continue
		}
		return cents, true
	}
}

// promptInt reads and parses an integer.
func (c *Console) promptInt(label string) (int, bool) {
	for {
		raw, ok := c.prompt(label)
		if !ok {
			return 0, false
		}
		var n int
		if _, err := fmt.Sscanf(raw, "%d", &n); err != nil {
			c.failf("invalid number %q", raw)
			continue
		}
		return n, true
	}
}
