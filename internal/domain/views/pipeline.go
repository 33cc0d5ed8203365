// Package views holds the pure list transforms behind the order dashboard:
// the filter/sort pipeline that produces the displayed order sequence and
// the two derived analytics series. Everything here is a stateless function
// over in-memory slices; callers re-run the transforms on every state change.
package views

import (
	"fmt"
	"sort"

	"printshop/internal/domain/entities"
)

// Direction flips the whole comparison result, for every sort key including
// booleans and dates.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortKey is the closed set of order fields the list can be keyed by.
// Exactly one key applies at a time; there is no multi-key sort.
type SortKey string

const (
	SortByDateOfOrder     SortKey = "date_of_order"
	SortByNickname        SortKey = "nickname"
	SortByColor           SortKey = "color"
	SortBySizeX           SortKey = "size_x"
	SortByEntry           SortKey = "entry"
	SortByPrice           SortKey = "price"
	SortBySourceOfOrder   SortKey = "source_of_order"
	SortByPayment         SortKey = "payment"
	SortByStatus          SortKey = "status"
	SortByPaymentReceived SortKey = "payment_received"
)

var sortKeys = map[SortKey]bool{
	SortByDateOfOrder:     true,
	SortByNickname:        true,
	SortByColor:           true,
	SortBySizeX:           true,
	SortByEntry:           true,
	SortByPrice:           true,
	SortBySourceOfOrder:   true,
	SortByPayment:         true,
	SortByStatus:          true,
	SortByPaymentReceived: true,
}

// ParseSortKey validates a wire-level sort key.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(s)
	if !sortKeys[k] {
		return "", fmt.Errorf("unknown sort key %q", s)
	}
	return k, nil
}

// ParseDirection validates a wire-level sort direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Ascending:
		return Ascending, nil
	case Descending:
		return Descending, nil
	}
	return "", fmt.Errorf("unknown sort direction %q", s)
}

// Filter is the tri-state criteria pair of the list view. A nil pointer (or
// an empty status string) imposes no constraint; set criteria must all match
// exactly.
type Filter struct {
	Status          *entities.OrderStatus
	PaymentReceived *bool
}

// Match reports whether the order satisfies every set criterion.
func (f Filter) Match(o entities.Order) bool {
	if f.Status != nil && *f.Status != "" && o.Status != *f.Status {
		return false
	}
	if f.PaymentReceived != nil && o.PaymentReceived != *f.PaymentReceived {
		return false
	}
	return true
}

// Sort is one sort key plus a direction.
type Sort struct {
	Key       SortKey
	Direction Direction
}

// Query is the full ephemeral view state of the order list.
type Query struct {
	Filter Filter
	Sort   *Sort
}

// ApplyFilter returns the orders satisfying the filter, preserving input
// order. The result is always a fresh slice.
func ApplyFilter(orders []entities.Order, f Filter) []entities.Order {
	out := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if f.Match(o) {
			out = append(out, o)
		}
	}
	return out
}

// Compare is the per-key total order over orders: -1, 0 or 1 with a ascending
// relative to b. Dates compare by calendar value, never as strings; numbers
// numerically; strings lexicographically; booleans false before true. Equal
// keys return 0 and rely on the caller sorting stably.
func Compare(a, b entities.Order, key SortKey) int {
	switch key {
	case SortByDateOfOrder:
		return compareTime(a.DateOfOrder, b.DateOfOrder)
	case SortBySizeX:
		return compareFloat(a.SizeX, b.SizeX)
	case SortByPrice:
		return compareFloat(a.Price, b.Price)
	case SortByPaymentReceived:
		return compareBool(a.PaymentReceived, b.PaymentReceived)
	case SortByNickname:
		return compareString(a.Nickname, b.Nickname)
	case SortByColor:
		return compareString(a.Color, b.Color)
	case SortByEntry:
		return compareString(a.Entry, b.Entry)
	case SortBySourceOfOrder:
		return compareString(a.SourceOfOrder, b.SourceOfOrder)
	case SortByPayment:
		return compareString(a.Payment, b.Payment)
	case SortByStatus:
		return compareString(string(a.Status), string(b.Status))
	}
	return 0
}

// SortOrders stably sorts a copy of orders by the given key and direction.
// Equal keys keep their relative input order in both directions.
func SortOrders(orders []entities.Order, s Sort) []entities.Order {
	out := make([]entities.Order, len(orders))
	copy(out, orders)
	sort.SliceStable(out, func(i, j int) bool {
		c := Compare(out[i], out[j], s.Key)
		if s.Direction == Descending {
			c = -c
		}
		return c < 0
	})
	return out
}

// Render is the view pipeline: filter first, then sort. Filtering before
// sorting keeps counts and positions correct when filters are active. The
// input slice is never mutated. A nil sort leaves the filtered orders in
// input order.
func Render(orders []entities.Order, q Query) []entities.Order {
	filtered := ApplyFilter(orders, q.Filter)
	if q.Sort == nil {
		return filtered
	}
	return SortOrders(filtered, *q.Sort)
}

func compareTime(a, b entities.DateOnly) int {
	// Zero dates sort before any concrete date.
	if a.Time.Before(b.Time) {
		return -1
	}
	if a.Time.After(b.Time) {
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func compareString(a, b string) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func compareBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}
