package request

import (
	"printshop/internal/domain/entities"
)

// FilamentRequest is the payload for POST /filaments and PUT /filaments/{id}.
// Size is the spool's total weight capacity in grams; the use case rejects
// non-positive values, so binding does not (a `required` tag on a plain
// float64 would swallow an explicit zero).
type FilamentRequest struct {
	Size           float64 `json:"size"`
	AmountUsed     float64 `json:"amount_used"`
	DateOfAddition string  `json:"date_of_addition" binding:"required"`
	Material       string  `json:"material"`
	ColourName     string  `json:"colour_name" binding:"required"`
}

// ToEntity parses the request into a Filament with the given id.
func (r FilamentRequest) ToEntity(id int) (entities.Filament, error) {
	date, err := entities.ParseDateOnly(r.DateOfAddition)
	if err != nil {
		return entities.Filament{}, err
	}

	return entities.Filament{
		ID:             id,
		Size:           r.Size,
		AmountUsed:     r.AmountUsed,
		DateOfAddition: date,
		Material:       r.Material,
		ColourName:     r.ColourName,
	}, nil
}
