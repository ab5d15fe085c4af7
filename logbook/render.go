package logbook

import (
	"fmt"
	"strings"

	"github.com/PeterBowles/Macro-Tracker/macro"
)

// Report renders the document as a human-readable text summary: the goals,
// then each logged day with its entries and running totals.
func Report(d macro.Data) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Goals: %d cal, %.1fg protein\n", d.Goals.Calories, d.Goals.Protein)

	if len(d.Log) == 0 {
		b.WriteString("\nNo entries logged.\n")
		return b.String()
	}

	for _, day := range d.Log {
		calories, protein := day.Totals()
		fmt.Fprintf(&b, "\n%s - %d cal, %.1fg protein\n", day.Date, calories, protein)
		for i, e := range day.Entries {
			fmt.Fprintf(&b, "  [%d] %s  %s - %d cal, %.1fg protein\n",
				i, e.Time, e.Description, e.Calories, e.Protein)
		}
	}

	return b.String()
}
