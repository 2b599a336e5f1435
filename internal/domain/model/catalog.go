package model

// ServiceType is a catalog entry for the base service an order can carry.
type ServiceType struct {
	ID          int64
	Name        string
	Description *string
	BasePrice   float64
	Active      bool
}

// ExtraService is a catalog add-on selectable at order creation.
type ExtraService struct {
	ID          int64
	Name        string
	Description *string
	Price       float64
	Category    *string
	Active      bool
}
