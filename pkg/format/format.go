package format

import (
	"fmt"
	"time"
)

// LongDate renders a date for launch summaries, e.g. "July 4, 2025".
func LongDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// Route renders an origin/destination pair, e.g. "SFO → LAX".
func Route(origin, destination string) string {
	return fmt.Sprintf("%s → %s", origin, destination)
}

// Passengers summarizes the passenger mix for display.
func Passengers(adults, children, infants int) string {
	return fmt.Sprintf("%d adult(s), %d child(ren), %d infant(s)", adults, children, infants)
}
