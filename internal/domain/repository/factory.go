package repository

// Factory describes access to the different domain repositories.
type Factory interface {
	Users() UserRepository
	Clients() ClientRepository
	Vehicles() VehicleRepository
	Catalog() CatalogRepository
	Orders() OrderRepository
	Parts() PartRepository
}
