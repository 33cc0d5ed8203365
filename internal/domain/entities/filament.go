package entities

// Filament is a tracked spool of print material.
//
// Size is the total weight capacity in grams and AmountUsed the cumulative
// weight consumed. A spool is mutated two ways: directly through the catalog,
// or incrementally when an order save records material usage.
type Filament struct {
	ID             int      `json:"id"`
	Size           float64  `json:"size"`
	AmountUsed     float64  `json:"amount_used"`
	DateOfAddition DateOnly `json:"date_of_addition"`
	Material       string   `json:"material"`
	ColourName     string   `json:"colour_name"`
}

// Remaining is the weight left on the spool.
func (f Filament) Remaining() float64 {
	return f.Size - f.AmountUsed
}
