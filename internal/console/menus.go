package console

import (
	"fmt"
	"strings"
)

func (c *Console) artworksMenu() {
	for {
		c.title("Artworks")
		c.option("1", "List all artworks")
		c.option("2", "List available artworks")
		c.option("3", "Add artwork")
		c.option("0", "Back")

		choice, ok := c.prompt("Select an option")
		if !ok {
			return
		}
		switch choice {
		case "1":
			views := c.gallery.Artworks()
			if len(views) == 0 {
				fmt.Fprintln(c.out, "No artworks recorded.")
			}
			for _, v := range views {
				c.renderArtwork(v)
			}
		case "2":
			views := c.gallery.AvailableArtworks()
			if len(views) == 0 {
				fmt.Fprintln(c.out, "No artworks available.")
			}
			for _, v := range views {
				c.renderArtwork(v)
			}
		case "3":
			c.addArtwork()
		case "0":
			return
		default:
			c.failf("unknown option %q", choice)
		}
	}
}

func (c *Console) addArtwork() {
	title, ok := c.prompt("Title")
	if !ok {
		return
	}
	artistID, ok := c.prompt("Artist ID")
	if !ok {
		return
	}
	year, ok := c.promptInt("Year")
	if !ok {
		return
	}
	genre, ok := c.prompt("Genre")
	if !ok {
		return
	}
	description, ok := c.prompt("Description")
	if !ok {
		return
	}
	value, ok := c.promptMoney("Estimated value")
	if !ok {
		return
	}
	artwork, err := c.gallery.AddArtwork(title, artistID, year, genre, description, value)
	if err != nil {
		c.failf("add artwork: %v", err)
		return
	}
	fmt.Fprintf(c.out, "Artwork added with ID %s\n", artwork.ID)
}

func (c *Console) artistsMenu() {
	for {
		c.title("Artists")
		c.option("1", "List artists")
		c.option("2", "Add artist")
		c.option("0", "Back")

		choice, ok := c.prompt("Select an option")
		if !ok {
			return
		}
		switch choice {
		case "1":
			artists := c.gallery.Artists()
			if len(artists) == 0 {
				fmt.Fprintln(c.out, "No artists recorded.")
			}
			for _, a := range artists {
				c.renderArtist(a)
			}
		case "2":
			c.addArtist()
		case "0":
			return
		default:
			c.failf("unknown option %q", choice)
		}
	}
}

func (c *Console) addArtist() {
	name, ok := c.prompt("Full name")
	if !ok {
		return
	}
	country, ok := c.prompt("Country")
	if !ok {
		return
	}
	years, ok := c.prompt("Life years")
	if !ok {
		return
	}
	style, ok := c.prompt("Style")
	if !ok {
		return
	}
	artist, err := c.gallery.AddArtist(name, country, years, style)
	if err != nil {
		c.failf("add artist: %v", err)
		return
	}
	fmt.Fprintf(c.out, "Artist added with ID %s\n", artist.ID)
}

func (c *Console) exhibitionsMenu() {
	for {
		c.title("Exhibitions")
		c.option("1", "List exhibitions")
		c.option("2", "List upcoming exhibitions")
		c.option("3", "Add exhibition")
		c.option("0", "Back")

		choice, ok := c.prompt("Select an option")
		if !ok {
			return
		}
		switch choice {
		case "1":
			views := c.gallery.Exhibitions()
			if len(views) == 0 {
				fmt.Fprintln(c.out, "No exhibitions scheduled.")
			}
			for _, v := range views {
				c.renderExhibition(v)
			}
		case "2":
			upcoming := c.gallery.UpcomingExhibitions()
			if len(upcoming) == 0 {
				fmt.Fprintln(c.out, "No upcoming exhibitions.")
			}
			for _, e := range upcoming {
				c.field("Title", e.Title)
				c.field("Period", c.period(e.StartDate, e.EndDate))
				c.field("Location", e.Location)
				c.rule()
			}
		case "3":
			c.addExhibition()
		case "0":
			return
		default:
			c.failf("unknown option %q", choice)
		}
	}
}

func (c *Console) addExhibition() {
	title, ok := c.prompt("Title")
	if !ok {
		return
	}
	start, ok := c.promptDate("Start date")
	if !ok {
		return
	}
	end, ok := c.promptDate("End date")
	if !ok {
		return
	}
	location, ok := c.prompt("Location")
	if !ok {
		return
	}
	rawIDs, ok := c.prompt("Artwork IDs (comma separated)")
	if !ok {
		return
	}
	var artworkIDs []string
	for _, id := range strings.Split(rawIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			artworkIDs = append(artworkIDs, id)
		}
	}
	price, ok := c.promptMoney("Ticket price")
	if !ok {
		return
	}
	exhibition, err := c.gallery.AddExhibition(title, start, end, location, artworkIDs, price)
	if err != nil {
		c.failf("add exhibition: %v", err)
		return
	}
	fmt.Fprintf(c.out, "Exhibition added with ID %s\n", exhibition.ID)
}

func (c *Console) visitorsMenu() {
	for {
		c.title("Visitors")
		c.option("1", "List visitors")
		c.option("2", "Register visitor")
		c.option("0", "Back")

		choice, ok := c.prompt("Select an option")
		if !ok {
			return
		}
		switch choice {
		case "1":
			visitors := c.gallery.Visitors()
			if len(visitors) == 0 {
				fmt.Fprintln(c.out, "No visitors registered.")
			}
			for _, v := range visitors {
				c.renderVisitor(v)
			}
		case "2":
			name, ok := c.prompt("Full name")
			if !ok {
				return
			}
			contact, ok := c.prompt("Contact info")
			if !ok {
				return
			}
			visitor, err := c.gallery.AddVisitor(name, contact)
			if err != nil {
				c.failf("register visitor: %v", err)
				continue
			}
			fmt.Fprintf(c.out, "Visitor registered with ID %s\n", visitor.ID)
		case "0":
			return
		default:
			c.failf("unknown option %q", choice)
		}
	}
}

func (c *Console) ticketsMenu() {
	for {
		c.title("Tickets")
		c.option("1", "List tickets")
		c.option("2", "Book ticket")
		c.option("3", "Use ticket")
		c.option("4", "Cancel ticket")
		c.option("0", "Back")

		choice, ok := c.prompt("Select an option")
		if !ok {
			return
		}
		switch choice {
		case "1":
			views := c.gallery.Tickets()
			if len(views) == 0 {
				fmt.Fprintln(c.out, "No tickets booked.")
			}
			for _, v := range views {
				c.renderTicket(v)
			}
		case "2":
			c.bookTicket()
		case "3":
			id, ok := c.prompt("Ticket ID")
			if !ok {
				return
			}
			if err := c.gallery.UseTicket(id); err != nil {
				c.failf("use ticket: %v", err)
				continue
			}
			fmt.Fprintln(c.out, "Ticket marked as used.")
		case "4":
			id, ok := c.prompt("Ticket ID")
			if !ok {
				return
			}
			if err := c.gallery.CancelTicket(id); err != nil {
				c.failf("cancel ticket: %v", err)
				continue
			}
			fmt.Fprintln(c.out, "Ticket cancelled.")
		case "0":
			return
		default:
			c.failf("unknown option %q", choice)
		}
	}
}

func (c *Console) bookTicket() {
	exhibitionID, ok := c.prompt("Exhibition ID")
	if !ok {
		return
	}
	visitorID, ok := c.prompt("Visitor ID")
	if !ok {
		return
	}
	visitDate, ok := c.promptDate("Visit date")
	if !ok {
		return
	}
	ticket, err := c.gallery.BookTicket(exhibitionID, visitorID, visitDate)
	if err != nil {
		c.failf("book ticket: %v", err)
		return
	}
	fmt.Fprintf(c.out, "Ticket booked with ID %s, price %s\n", ticket.ID, c.money(ticket.PriceCents))
}

func (c *Console) salesMenu() {
	for {
		c.title("Sales & Rentals")
		c.option("1", "Sell artwork")
		c.option("2", "Rent artwork")
		c.option("3", "Return rented artwork")
		c.option("4", "List rented artworks")
		c.option("0", "Back")

		choice, ok := c.prompt("Select an option")
		if !ok {
			return
		}
		switch choice {
		case "1":
			c.sellArtwork()
		case "2":
			c.rentArtwork()
		case "3":
			id, ok := c.prompt("Rental ID")
			if !ok {
				return
			}
			rental, err := c.gallery.ReturnRentedArtwork(id)
			if err != nil {
				c.failf("return rental: %v", err)
				continue
			}
			fmt.Fprintf(c.out, "Artwork returned; rental closed on %s\n", c.date(rental.EndDate))
		case "4":
			rented := c.gallery.RentedArtworks()
			if len(rented) == 0 {
				fmt.Fprintln(c.out, "No artworks currently rented.")
			}
			for _, v := range rented {
				c.renderRental(v)
			}
		case "0":
			return
		default:
			c.failf("unknown option %q", choice)
		}
	}
}

func (c *Console) sellArtwork() {
	artworkID, ok := c.prompt("Artwork ID")
	if !ok {
		return
	}
	buyerID, ok := c.prompt("Buyer (visitor) ID")
	if !ok {
		return
	}
	amount, ok := c.promptMoney("Amount")
	if !ok {
		return
	}
	sale, err := c.gallery.SellArtwork(artworkID, buyerID, amount)
	if err != nil {
		c.failf("sell artwork: %v", err)
		return
	}
	fmt.Fprintf(c.out, "Artwork sold; sale ID %s, amount %s\n", sale.ID, c.money(sale.AmountCents))
}

func (c *Console) rentArtwork() {
	artworkID, ok := c.prompt("Artwork ID")
	if !ok {
		return
	}
	renterID, ok := c.prompt("Renter (visitor) ID")
	if !ok {
		return
	}
	start, ok := c.promptDate("Start date")
	if !ok {
		return
	}
	end, ok := c.promptDate("End date")
	if !ok {
		return
	}
	cost, ok := c.promptMoney("Cost")
	if !ok {
		return
	}
	rental, err := c.gallery.RentArtwork(artworkID, renterID, start, end, cost)
	if err != nil {
		c.failf("rent artwork: %v", err)
		return
	}
	fmt.Fprintf(c.out, "Artwork rented; rental ID %s until %s\n", rental.ID, c.date(rental.EndDate))
}

func (c *Console) reportsMenu() {
	for {
		c.title("Reports")
		c.option("1", "Available artworks")
		c.option("2", "Upcoming exhibitions")
		c.option("3", "Popular artists by sales")
		c.option("4", "Total revenue")
		c.option("5", "Rented artworks")
		c.option("0", "Back")

		choice, ok := c.prompt("Select an option")
		if !ok {
			return
		}
		switch choice {
		case "1":
			for _, v := range c.gallery.AvailableArtworks() {
				c.renderArtwork(v)
			}
		case "2":
			for _, e := range c.gallery.UpcomingExhibitions() {
				c.field("Title", e.Title)
				c.field("Period", c.period(e.StartDate, e.EndDate))
				c.rule()
			}
		case "3":
			for _, row := range c.gallery.PopularArtistsBySales() {
				c.field(row.Artist.FullName, fmt.Sprintf("%d sold", row.SoldCount))
			}
			c.rule()
		case "4":
			rev := c.gallery.TotalRevenue()
			c.field("Ticket revenue", c.money(rev.TicketCents))
			c.field("Sales revenue", c.money(rev.SaleCents))
			c.field("Total revenue", c.money(rev.TotalCents))
			c.rule()
		case "5":
			for _, v := range c.gallery.RentedArtworks() {
				c.renderRental(v)
			}
		case "0":
			return
		default:
			c.failf("unknown option %q", choice)
		}
	}
}
