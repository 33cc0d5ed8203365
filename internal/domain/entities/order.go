package entities

// OrderStatus is the workshop workflow stage of an order.
//
// The stages form an ordered progression (Contact -> Sent) but the system
// does not enforce transitions: staff may set any stage directly. The only
// rule tied to status lives in the order use case: a non-initial stage
// requires a filament selection and a positive amount used before a save
// is accepted.

type OrderStatus string

const (
	StatusContact  OrderStatus = "Contact"
	StatusOrder    OrderStatus = "Order"
	StatusPrinting OrderStatus = "Printing"
	StatusPrinted  OrderStatus = "Printed"
	StatusFinished OrderStatus = "Finished"
	StatusSent     OrderStatus = "Sent"
)

// StatusOptions lists the workflow stages in progression order. The first
// entry is the initial stage for a new order.
var StatusOptions = []OrderStatus{
	StatusContact,
	StatusOrder,
	StatusPrinting,
	StatusPrinted,
	StatusFinished,
	StatusSent,
}

// IsInitial reports whether the status is the pre-production stage that
// does not yet consume filament.
func (s OrderStatus) IsInitial() bool {
	return s == StatusContact || s == ""
}

// PaymentOptions is the closed set of payment-method labels offered by the
// order form. The labels are advisory; payment processing is out of scope.
var PaymentOptions = []string{"cash", "card", "paypal", "revolut"}

// ColourOptions is the fixed colour set used by the order form and by the
// filament-remaining chart. Catalog colours (the Colour entity) extend the
// filament side independently; this list is what the charts enumerate.
var ColourOptions = []string{"black", "blue", "lavender", "pink", "green", "yellow"}

// Order is one customer job.
//
// Invariants:
//   - ID == 0 means the order has not been persisted yet.
//   - Price is stored after the discount has been applied at save time and
//     is never rescaled on read.
//   - FilamentID is nil until a spool has been charged for the job.
type Order struct {
	ID              int         `json:"id"`
	SizeX           float64     `json:"size_x"`
	SizeY           float64     `json:"size_y"`
	SizeZ           float64     `json:"size_z"`
	Color           string      `json:"color"`
	Entry           string      `json:"entry"`
	Payment         string      `json:"payment"`
	PaymentStatus   string      `json:"payment_status"`
	Discount        float64     `json:"discount"`
	DateOfOrder     DateOnly    `json:"date_of_order"`
	Status          OrderStatus `json:"status"`
	PaymentReceived bool        `json:"payment_received"`
	SourceOfOrder   string      `json:"source_of_order"`
	Nickname        string      `json:"nickname"`
	Description     string      `json:"description"`
	Price           float64     `json:"price"`
	FilamentID      *int        `json:"filament_id"`
	AmountUsed      float64     `json:"amount_used"`
}
