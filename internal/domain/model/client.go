package model

// Client is a workshop customer.
type Client struct {
	ID           int64
	FullName     string
	TaxID        string
	MobilePhone  string
	HomePhone    *string
	Email        *string
	Street       *string
	ExtNumber    *string
	Neighborhood *string
	Municipality *string
	State        *string
	Country      *string
	PostalCode   *string
	Active       bool
}
