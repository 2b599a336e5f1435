package dto

// VehicleRequest registers a vehicle for a client.
type VehicleRequest struct {
	ClientID       int64   `json:"client_id" binding:"required"`
	VIN            string  `json:"vin" binding:"required"`
	Make           *string `json:"make,omitempty"`
	Model          *string `json:"model,omitempty"`
	Trim           *string `json:"trim,omitempty"`
	Year           *int    `json:"year,omitempty"`
	Color          *string `json:"color,omitempty"`
	Plates         *string `json:"plates,omitempty"`
	InitialMileage int     `json:"initial_mileage"`
}

// VehicleResponse is the public view of a vehicle.
type VehicleResponse struct {
	ID             int64   `json:"id"`
	ClientID       int64   `json:"client_id"`
	VIN            string  `json:"vin"`
	Make           *string `json:"make,omitempty"`
	Model          *string `json:"model,omitempty"`
	Trim           *string `json:"trim,omitempty"`
	Year           *int    `json:"year,omitempty"`
	Color          *string `json:"color,omitempty"`
	Plates         *string `json:"plates,omitempty"`
	InitialMileage int     `json:"initial_mileage"`
}
