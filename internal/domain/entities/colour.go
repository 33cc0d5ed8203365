package entities

// Colour is a catalog entry. Orders and filaments reference colours by name,
// not by id, and nothing cascades: deleting a colour leaves any orders or
// filaments that carry its name untouched.
type Colour struct {
	ID         int    `json:"id"`
	ColourName string `json:"colour_name"`
}
