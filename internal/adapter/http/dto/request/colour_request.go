package request

// ColourRequest is the payload for POST /colours and PUT /colours/{id}.
type ColourRequest struct {
	ColourName string `json:"colour_name" binding:"required"`
}
