package response

import (
	"printshop/internal/domain/views"
)

// FilamentRemainingResponse is one bar of the remaining-material chart.
type FilamentRemainingResponse struct {
	Label     string  `json:"label"`
	Remaining float64 `json:"remaining"`
}

func FromFilamentRemaining(items []views.FilamentRemaining) []FilamentRemainingResponse {
	out := make([]FilamentRemainingResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FilamentRemainingResponse{Label: it.Label, Remaining: it.Remaining})
	}
	return out
}

// WeeklyOrdersResponse is one point of the orders-per-week line chart. Week
// is the bucket's Monday formatted like "Jan 2", matching the chart axis.
type WeeklyOrdersResponse struct {
	Week   string `json:"week"`
	Orders int    `json:"orders"`
}

func FromWeeklyOrders(items []views.WeeklyOrderCount) []WeeklyOrdersResponse {
	out := make([]WeeklyOrdersResponse, 0, len(items))
	for _, it := range items {
		out = append(out, WeeklyOrdersResponse{Week: it.WeekStart.Format("Jan 2"), Orders: it.Count})
	}
	return out
}
