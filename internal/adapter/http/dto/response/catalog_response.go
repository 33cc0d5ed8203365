package response

import (
	"printshop/internal/domain/entities"
)

// IDResponse is the body of every successful POST: the assigned numeric id.
type IDResponse struct {
	ID int `json:"id"`
}

type ColourResponse struct {
	ID         int    `json:"id"`
	ColourName string `json:"colour_name"`
}

func FromColour(c entities.Colour) ColourResponse {
	return ColourResponse{ID: c.ID, ColourName: c.ColourName}
}

func FromColours(colours []entities.Colour) []ColourResponse {
	out := make([]ColourResponse, 0, len(colours))
	for _, c := range colours {
		out = append(out, FromColour(c))
	}
	return out
}

type FilamentResponse struct {
	ID             int     `json:"id"`
	Size           float64 `json:"size"`
	AmountUsed     float64 `json:"amount_used"`
	DateOfAddition string  `json:"date_of_addition"`
	Material       string  `json:"material"`
	ColourName     string  `json:"colour_name"`
}

func FromFilament(f entities.Filament) FilamentResponse {
	return FilamentResponse{
		ID:             f.ID,
		Size:           f.Size,
		AmountUsed:     f.AmountUsed,
		DateOfAddition: f.DateOfAddition.String(),
		Material:       f.Material,
		ColourName:     f.ColourName,
	}
}

func FromFilaments(filaments []entities.Filament) []FilamentResponse {
	out := make([]FilamentResponse, 0, len(filaments))
	for _, f := range filaments {
		out = append(out, FromFilament(f))
	}
	return out
}
