package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jask/rubrica/internal/contact"
)

// printer is the CLI Presenter: it prints to the command's streams and asks
// for confirmation on its input unless assumeYes is set.
type printer struct {
	out       io.Writer
	errOut    io.Writer
	in        io.Reader
	assumeYes bool
	quiet     bool
	reported  *bool
}

func (p *printer) DisplayContact(c contact.Contact) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s\t%s\n", c.ID, c.FullName())
	if c.Address != "" {
		fmt.Fprintf(p.out, "  address: %s\n", c.Address)
	}
	for _, ph := range c.Phones {
		fmt.Fprintf(p.out, "  phone:   %s\n", ph)
	}
	for _, em := range c.Emails {
		fmt.Fprintf(p.out, "  email:   %s\n", em)
	}
}

func (p *printer) DisplayContactList(cs []contact.Contact) {
	if p.quiet {
		return
	}
	tw := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFIRST NAME\tLAST NAME\tPHONE\tEMAIL")
	for _, c := range cs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.FirstName, c.LastName, first(c.Phones), first(c.Emails))
	}
	_ = tw.Flush()
}

func (p *printer) ShowError(msg string) {
	fmt.Fprintln(p.errOut, "error:", msg)
	if p.reported != nil {
		*p.reported = true
	}
}

func (p *printer) Confirm(msg string) bool {
	if p.assumeYes {
		return true
	}
	fmt.Fprintf(p.out, "%s [y/N] ", msg)
	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "si", "sì":
		return true
	}
	return false
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
