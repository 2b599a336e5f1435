package dto

// ClientRequest creates or updates a client.
type ClientRequest struct {
	FullName     string  `json:"full_name" binding:"required"`
	TaxID        string  `json:"tax_id" binding:"required"`
	MobilePhone  string  `json:"mobile_phone" binding:"required"`
	HomePhone    *string `json:"home_phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	Street       *string `json:"street,omitempty"`
	ExtNumber    *string `json:"ext_number,omitempty"`
	Neighborhood *string `json:"neighborhood,omitempty"`
	Municipality *string `json:"municipality,omitempty"`
	State        *string `json:"state,omitempty"`
	Country      *string `json:"country,omitempty"`
	PostalCode   *string `json:"postal_code,omitempty"`
}

// ClientResponse is the public view of a client.
type ClientResponse struct {
	ID           int64   `json:"id"`
	FullName     string  `json:"full_name"`
	TaxID        string  `json:"tax_id"`
	MobilePhone  string  `json:"mobile_phone"`
	HomePhone    *string `json:"home_phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	Street       *string `json:"street,omitempty"`
	ExtNumber    *string `json:"ext_number,omitempty"`
	Neighborhood *string `json:"neighborhood,omitempty"`
	Municipality *string `json:"municipality,omitempty"`
	State        *string `json:"state,omitempty"`
	Country      *string `json:"country,omitempty"`
	PostalCode   *string `json:"postal_code,omitempty"`
}
