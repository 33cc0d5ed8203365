package response

import (
	"printshop/internal/domain/entities"
)

// OrderResponse mirrors the stored order. Dates go out as YYYY-MM-DD.
type OrderResponse struct {
	ID              int     `json:"id"`
	SizeX           float64 `json:"size_x"`
	SizeY           float64 `json:"size_y"`
	SizeZ           float64 `json:"size_z"`
	Color           string  `json:"color"`
	Entry           string  `json:"entry"`
	Payment         string  `json:"payment"`
	PaymentStatus   string  `json:"payment_status"`
	Discount        float64 `json:"discount"`
	DateOfOrder     string  `json:"date_of_order"`
	Status          string  `json:"status"`
	PaymentReceived bool    `json:"payment_received"`
	SourceOfOrder   string  `json:"source_of_order"`
	Nickname        string  `json:"nickname"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	FilamentID      *int    `json:"filament_id"`
	AmountUsed      float64 `json:"amount_used"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		SizeX:           o.SizeX,
		SizeY:           o.SizeY,
		SizeZ:           o.SizeZ,
		Color:           o.Color,
		Entry:           o.Entry,
		Payment:         o.Payment,
		PaymentStatus:   o.PaymentStatus,
		Discount:        o.Discount,
		DateOfOrder:     o.DateOfOrder.String(),
		Status:          string(o.Status),
		PaymentReceived: o.PaymentReceived,
		SourceOfOrder:   o.SourceOfOrder,
		Nickname:        o.Nickname,
		Description:     o.Description,
		Price:           o.Price,
		FilamentID:      o.FilamentID,
		AmountUsed:      o.AmountUsed,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
