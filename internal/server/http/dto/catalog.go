package dto

// ServiceTypeResponse is one catalog base service.
type ServiceTypeResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	BasePrice   float64 `json:"base_price"`
}

// ExtraServiceResponse is one catalog add-on.
type ExtraServiceResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    *string `json:"category,omitempty"`
}
