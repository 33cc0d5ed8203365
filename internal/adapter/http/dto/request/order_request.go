package request

import (
	"printshop/internal/domain/entities"
)

// OrderRequest is the wire payload for POST /data and PUT /data/{id}. Field
// names match the collection format the dashboard front ends already use.
//
// Price arrives as entered on the form; the use case applies the discount at
// save time. FilamentID and AmountUsed travel on the order itself: a save
// that carries both records a material charge.
type OrderRequest struct {
	SizeX           float64 `json:"size_x"`
	SizeY           float64 `json:"size_y"`
	SizeZ           float64 `json:"size_z"`
	Color           string  `json:"color"`
	Entry           string  `json:"entry"`
	Payment         string  `json:"payment"`
	PaymentStatus   string  `json:"payment_status"`
	Discount        float64 `json:"discount"`
	DateOfOrder     string  `json:"date_of_order" binding:"required"`
	Status          string  `json:"status"`
	PaymentReceived bool    `json:"payment_received"`
	SourceOfOrder   string  `json:"source_of_order"`
	Nickname        string  `json:"nickname"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	FilamentID      *int    `json:"filament_id"`
	AmountUsed      float64 `json:"amount_used"`
}

// ToEntity parses the request into an Order with the given id (0 for a new
// order). The date must be a YYYY-MM-DD string.
func (r OrderRequest) ToEntity(id int) (entities.Order, error) {
	date, err := entities.ParseDateOnly(r.DateOfOrder)
	if err != nil {
		return entities.Order{}, err
	}

	status := entities.OrderStatus(r.Status)
	if status == "" {
		status = entities.StatusContact
	}

	return entities.Order{
		ID:              id,
		SizeX:           r.SizeX,
		SizeY:           r.SizeY,
		SizeZ:           r.SizeZ,
		Color:           r.Color,
		Entry:           r.Entry,
		Payment:         r.Payment,
		PaymentStatus:   r.PaymentStatus,
		Discount:        r.Discount,
		DateOfOrder:     date,
		Status:          status,
		PaymentReceived: r.PaymentReceived,
		SourceOfOrder:   r.SourceOfOrder,
		Nickname:        r.Nickname,
		Description:     r.Description,
		Price:           r.Price,
		FilamentID:      r.FilamentID,
		AmountUsed:      r.AmountUsed,
	}, nil
}
