package response

import (
	"encoding/json"
	"testing"
	"time"

	"printshop/internal/domain/entities"
	"printshop/internal/domain/views"
)

func TestFromOrder(t *testing.T) {
	fid := 3
	o := entities.Order{
		ID:              1,
		Nickname:        "pony",
		DateOfOrder:     entities.NewDateOnly(time.Date(2024, 5, 1, 15, 4, 5, 0, time.UTC)),
		Status:          entities.StatusPrinting,
		PaymentReceived: true,
		Price:           90,
		FilamentID:      &fid,
		AmountUsed:      12.5,
	}

	resp := FromOrder(o)
	if resp.DateOfOrder != "2024-05-01" {
		t.Fatalf("unexpected date %q", resp.DateOfOrder)
	}
	if resp.Status != "Printing" {
		t.Fatalf("unexpected status %q", resp.Status)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var wire map[string]any
	if err := json.Unmarshal(b, &wire); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if wire["date_of_order"] != "2024-05-01" || wire["filament_id"] != float64(3) {
		t.Fatalf("unexpected wire payload: %v", wire)
	}
}

func TestFromWeeklyOrders(t *testing.T) {
	items := []views.WeeklyOrderCount{
		{WeekStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Count: 2},
		{WeekStart: time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC), Count: 0},
	}
	got := FromWeeklyOrders(items)
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if got[0].Week != "Jan 1" || got[0].Orders != 2 {
		t.Fatalf("unexpected first point: %+v", got[0])
	}
	if got[1].Week != "Jan 8" || got[1].Orders != 0 {
		t.Fatalf("unexpected second point: %+v", got[1])
	}
}
