// Package console implements the interactive menu front end. It is a
// pure I/O layer: every choice maps onto a public operation or report
// of the domain service, results are rendered and failures reported,
// and no business rule is validated here.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/message"

	"github.com/iliyamo/art-gallery/internal/service"
	"github.com/iliyamo/art-gallery/internal/utils"
)

// Console drives the numbered-menu loop over a gallery service.
// Input and output are injected so tests can script a session.
type Console struct {
	gallery *service.Gallery
	in      *bufio.Scanner
	out     io.Writer
	printer *message.Printer
}

// New returns a console bound to the given service and streams. The
// locale selects money and number formatting for all rendered output.
func New(g *service.Gallery, in io.Reader, out io.Writer, locale string) *Console {
	return &Console{
		gallery: g,
		in:      bufio.NewScanner(in),
		out:     out,
		printer: utils.NewPrinter(locale),
	}
}

// Run executes the main menu loop until the user chooses to exit or
// the input stream ends.
func (c *Console) Run() error {
	for {
		c.title("Art Gallery Management")
		c.option("1", "Artworks")
		c.option("2", "Artists")
		c.option("3", "Exhibitions")
		c.option("4", "Visitors")
		c.option("5", "Tickets")
		c.option("6", "Sales & rentals")
		c.option("7", "Reports")
		c.option("0", "Exit")

		choice, ok := c.prompt("Select an option")
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			c.artworksMenu()
		case "2":
			c.artistsMenu()
		case "3":
			c.exhibitionsMenu()
		case "4":
			c.visitorsMenu()
		case "5":
			c.ticketsMenu()
		case "6":
			c.salesMenu()
		case "7":
			c.reportsMenu()
		case "0":
			return nil
		default:
			c.failf("unknown option %q", choice)
		}
	}
}

// prompt prints a label and reads one trimmed input line. The second
// return value is false when the input stream is exhausted.
func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprintf(c.out, "\n%s: ", label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}
