package views

import (
	"time"

	"printshop/internal/domain/entities"
)

// FilamentRemaining is one bar of the remaining-material chart.
type FilamentRemaining struct {
	Label     string
	Remaining float64
}

// RemainingByColour emits exactly one entry per enumerated colour, in the
// enumeration's order, regardless of how many spools share a colour: only
// the first spool whose colour name matches (exactly, case-sensitive) is
// represented. Colours with no spool get remaining 0 and material "N/A".
// The first-match rule is deliberate; additional spools of the same colour
// are not summed.
func RemainingByColour(colours []string, filaments []entities.Filament) []FilamentRemaining {
	out := make([]FilamentRemaining, 0, len(colours))
	for _, colour := range colours {
		entry := FilamentRemaining{Label: colour + " (N/A)"}
		for _, f := range filaments {
			if f.ColourName == colour {
				entry.Label = colour + " (" + f.Material + ")"
				entry.Remaining = f.Remaining()
				break
			}
		}
		out = append(out, entry)
	}
	return out
}

// WeeklyOrderCount is one bucket of the orders-per-week series.
type WeeklyOrderCount struct {
	WeekStart time.Time
	Count     int
}

// OrdersPerWeek buckets orders into ISO weeks (Monday through Sunday) from
// the week containing January 1 of today's year through the week containing
// today, inclusive. Every week in the range is emitted, zero counts
// included, so the series is dense and chart-ready. An order is counted in
// the bucket whose [start, start+6d] range holds its date; orders outside
// the covered interval are ignored.
func OrdersPerWeek(orders []entities.Order, today time.Time) []WeeklyOrderCount {
	yearStart := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var out []WeeklyOrderCount
	for start := mondayOf(yearStart); !start.After(day); start = start.AddDate(0, 0, 7) {
		end := start.AddDate(0, 0, 6)
		count := 0
		for _, o := range orders {
			d := o.DateOfOrder.Time
			if !d.Before(start) && !d.After(end) {
				count++
			}
		}
		out = append(out, WeeklyOrderCount{WeekStart: start, Count: count})
	}
	return out
}

// mondayOf returns the Monday of the ISO week containing t.
func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
