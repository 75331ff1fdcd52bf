package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rxdesk/rxdesk/internal/tablet"
)

// tabPadding is the tabwriter cell padding for plain table output.
const tabPadding = 2

// renderTabletsTable writes the collection as a plain tabulated table.
func renderTabletsTable(w io.Writer, tablets []tablet.Tablet) error {
	if len(tablets) == 0 {
		fmt.Fprintln(w, "No tablets found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "ID\tName\tGeneric\tPrice\tDescription")
	fmt.Fprintln(tw, "--\t----\t-------\t-----\t-----------")

	for _, tab := range tablets {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			tablet.ShortID(tab.ID),
			tab.Name,
			tab.GenericName,
			tablet.FormatPrice(tab.Price),
			tab.Description,
		)
	}

	return tw.Flush()
}

// renderTabletsJSON writes the collection as an indented JSON array.
func renderTabletsJSON(w io.Writer, tablets []tablet.Tablet) error {
	if tablets == nil {
		tablets = []tablet.Tablet{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tablets)
}
