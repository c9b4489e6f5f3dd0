// Package console renders computed itineraries for the terminal.
package console

import (
	"fmt"
	"io"

	"github.com/paris-metro/planner/internal/metro"
)

const (
	reset = "\x1b[0m"
	bold  = "\x1b[1m"
	green = "\x1b[32m"
)

// Render writes an itinerary in the classic layout: total trip time, then
// one block per line segment showing the line in green, the boarding
// station and the terminus to ride toward, chained with | connectors down
// to the destination. A start==end itinerary renders as the time and the
// station alone.
func Render(w io.Writer, n *metro.Network, it *metro.Itinerary) {
	fmt.Fprintf(w, "\nTrip time: %s%d mins, %d secs%s\n", bold, it.Time.Minutes, it.Time.Seconds, reset)

	start := n.Stations[it.Start]
	fmt.Fprintf(w, "\n%s%s%s\n", bold, start.Name, reset)
	if it.Start == it.End {
		fmt.Fprintln(w)
		return
	}

	fmt.Fprint(w, "|\n|\n")
	fmt.Fprintf(w, "%s%s%s%s - %s%s%s\n|\tTowards %s\n|\n",
		bold, green, start.Line, reset, bold, start.Name, reset,
		n.Stations[it.Directions[0]].Name)
	for i, transfer := range it.Transfers {
		towards := n.Stations[it.Directions[i+1]]
		fmt.Fprintf(w, "%s%s%s%s - %s%s%s\n|\tTowards %s\n|\n",
			bold, green, towards.Line, reset, bold, transfer.Name, reset,
			towards.Name)
	}
	fmt.Fprintf(w, "%s%s%s\n\n", bold, n.Stations[it.End].Name, reset)
}
