package test

import (
	"context"
	"strings"
	"sync"
	"time"

	domainErrors "github.com/carsline/api/internal/domain/errors"
	"github.com/carsline/api/internal/domain/model"
)

// OrderRepositoryStub keeps orders in memory and mirrors the transactional
// guarantees of the real repository: order numbers stay unique per run and
// lifecycle transitions honour terminal states.
type OrderRepositoryStub struct {
	mu      sync.Mutex
	byID    map[int64]*model.Order
	numbers map[string]bool
	nextID  int64

	// FailCreates makes the first N Create calls lose the number race.
	FailCreates int
	CreateFn    func(context.Context, *model.Order) error
	CancelFn    func(context.Context, int64) error
	DeliverFn   func(context.Context, int64, time.Time, model.MaintenancePlanner) (*model.Order, error)

	History []model.ServiceHistory
}

// NewOrderRepositoryStub constructs stub repository with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		byID:    make(map[int64]*model.Order),
		numbers: make(map[string]bool),
		nextID:  1,
	}
}

// Seed stores an order directly, bypassing number assignment.
func (s *OrderRepositoryStub) Seed(order model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.ID == 0 {
		order.ID = s.nextID
		s.nextID++
	} else if order.ID >= s.nextID {
		s.nextID = order.ID + 1
	}
	stored := order
	s.byID[stored.ID] = &stored
	if stored.Number != "" {
		s.numbers[stored.Number] = true
	}
}

// Create assigns the next number for the order's type and stores the order.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailCreates > 0 {
		s.FailCreates--
		return domainErrors.ErrOrderNumberTaken
	}
	prefix := order.Type.Prefix()
	var existing []string
	for number := range s.numbers {
		if strings.HasPrefix(number, prefix+"-") {
			existing = append(existing, number)
		}
	}
	order.Number = model.FormatOrderNumber(prefix, model.NextSequence(existing))
	if s.numbers[order.Number] {
		return domainErrors.ErrOrderNumberTaken
	}
	order.ID = s.nextID
	s.nextID++
	order.CreatedAt = time.Now()
	for i := range order.Extras {
		order.Extras[i].ID = int64(i + 1)
		order.Extras[i].OrderID = order.ID
	}
	stored := *order
	s.byID[stored.ID] = &stored
	s.numbers[stored.Number] = true
	return nil
}

// GetByID fetches an order copy or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.byID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

// ListOpenByAdvisor returns active non-terminal orders for the advisor.
func (s *OrderRepositoryStub) ListOpenByAdvisor(ctx context.Context, advisorID int64, orderType model.OrderType) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Order
	for _, order := range s.byID {
		if order.AdvisorID != advisorID || order.Type != orderType {
			continue
		}
		if !order.Active || order.Status.Terminal() {
			continue
		}
		out = append(out, *order)
	}
	return out, nil
}

// Cancel moves the order to cancelled unless it was delivered.
func (s *OrderRepositoryStub) Cancel(ctx context.Context, orderID int64) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.byID[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	switch order.Status {
	case model.OrderStatusCancelled:
		return nil
	case model.OrderStatusDelivered:
		return domainErrors.ErrOrderClosed
	}
	order.Status = model.OrderStatusCancelled
	order.Active = false
	return nil
}

// Deliver stamps delivery and records service history for serviced orders.
func (s *OrderRepositoryStub) Deliver(ctx context.Context, orderID int64, now time.Time, planner model.MaintenancePlanner) (*model.Order, error) {
	if s.DeliverFn != nil {
		return s.DeliverFn(ctx, orderID, now, planner)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.byID[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if order.Status.Terminal() {
		return nil, domainErrors.ErrOrderClosed
	}
	order.Status = model.OrderStatusDelivered
	deliveredAt := now
	order.DeliveredAt = &deliveredAt
	if order.ServiceTypeID != nil {
		nextMileage := planner.NextMileage(order.Mileage)
		nextDate := planner.NextDate(now)
		s.History = append(s.History, model.ServiceHistory{
			ID:            int64(len(s.History) + 1),
			VehicleID:     order.VehicleID,
			OrderID:       order.ID,
			ServiceTypeID: *order.ServiceTypeID,
			Mileage:       order.Mileage,
			ServiceDate:   now,
			NextMileage:   &nextMileage,
			NextDate:      &nextDate,
			TotalCost:     order.TotalCost,
		})
	}
	copied := *order
	return &copied, nil
}

// DeliveredByVehicle returns delivered orders created at or after since,
// newest first.
func (s *OrderRepositoryStub) DeliveredByVehicle(ctx context.Context, vehicleID int64, since time.Time) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Order
	for _, order := range s.byID {
		if order.VehicleID != vehicleID || order.Status != model.OrderStatusDelivered {
			continue
		}
		if order.CreatedAt.Before(since) {
			continue
		}
		out = append(out, *order)
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

// Numbers returns every order number assigned so far.
func (s *OrderRepositoryStub) Numbers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.numbers))
	for number := range s.numbers {
		out = append(out, number)
	}
	return out
}

// CatalogRepositoryStub serves catalog entries from in-memory slices.
type CatalogRepositoryStub struct {
	ServiceTypeRows  []model.ServiceType
	ExtraServiceRows []model.ExtraService
	Err              error
}

// ServiceTypes returns the configured catalog.
func (s *CatalogRepositoryStub) ServiceTypes(ctx context.Context) ([]model.ServiceType, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.ServiceTypeRows, nil
}

// ExtraServices returns the configured extras.
func (s *CatalogRepositoryStub) ExtraServices(ctx context.Context) ([]model.ExtraService, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.ExtraServiceRows, nil
}

// GetServiceType finds one service type or returns not found.
func (s *CatalogRepositoryStub) GetServiceType(ctx context.Context, id int64) (*model.ServiceType, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, st := range s.ServiceTypeRows {
		if st.ID == id {
			found := st
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ExtraServicesByIDs returns matching extras, silently skipping unknown ids.
func (s *CatalogRepositoryStub) ExtraServicesByIDs(ctx context.Context, ids []int64) ([]model.ExtraService, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.ExtraService
	for _, id := range ids {
		for _, es := range s.ExtraServiceRows {
			if es.ID == id {
				out = append(out, es)
				break
			}
		}
	}
	return out, nil
}

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users    map[string]*model.User
	ByID     map[int64]*model.User
	RoleRows []model.Role
	Next     int64
	Err      error

	LastLoginCalls []int64
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless the username is taken.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) error {
	if s.Err != nil {
		return s.Err
	}
	if _, exists := s.Users[user.Username]; exists {
		return domainErrors.ErrAlreadyExists
	}
	user.ID = s.Next
	s.Next++
	user.CreatedAt = time.Now()
	stored := *user
	s.Users[stored.Username] = &stored
	s.ByID[stored.ID] = &stored
	return nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored user.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.User, 0, len(s.ByID))
	for _, user := range s.ByID {
		out = append(out, *user)
	}
	return out, nil
}

// Roles returns configured role rows.
func (s *UserRepositoryStub) Roles(ctx context.Context) ([]model.Role, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.RoleRows, nil
}

// TouchLastLogin records the call and stamps the user.
func (s *UserRepositoryStub) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	stamped := at
	user.LastLogin = &stamped
	s.LastLoginCalls = append(s.LastLoginCalls, id)
	return nil
}

// ClientRepositoryStub stores clients in-memory for tests.
type ClientRepositoryStub struct {
	ByID map[int64]*model.Client
	Next int64
	Err  error
}

// NewClientRepositoryStub constructs stub repository with initialized maps.
func NewClientRepositoryStub() *ClientRepositoryStub {
	return &ClientRepositoryStub{ByID: make(map[int64]*model.Client), Next: 1}
}

// Create stores the client and assigns an id.
func (s *ClientRepositoryStub) Create(ctx context.Context, client *model.Client) error {
	if s.Err != nil {
		return s.Err
	}
	client.ID = s.Next
	s.Next++
	stored := *client
	s.ByID[stored.ID] = &stored
	return nil
}

// Update replaces the stored client or returns not found.
func (s *ClientRepositoryStub) Update(ctx context.Context, client *model.Client) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[client.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *client
	s.ByID[stored.ID] = &stored
	return nil
}

// GetByID fetches client by identifier or returns not found.
func (s *ClientRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if client, ok := s.ByID[id]; ok {
		copied := *client
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// FindByPhone returns clients whose phone matches exactly.
func (s *ClientRepositoryStub) FindByPhone(ctx context.Context, phone string) ([]model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Client
	for _, client := range s.ByID {
		if client.MobilePhone == phone && client.Active {
			out = append(out, *client)
		}
	}
	return out, nil
}

// VehicleRepositoryStub stores vehicles in-memory for tests.
type VehicleRepositoryStub struct {
	ByVIN map[string]*model.Vehicle
	ByID  map[int64]*model.Vehicle
	Next  int64
	Err   error
}

// NewVehicleRepositoryStub constructs stub repository with initialized maps.
func NewVehicleRepositoryStub() *VehicleRepositoryStub {
	return &VehicleRepositoryStub{
		ByVIN: make(map[string]*model.Vehicle),
		ByID:  make(map[int64]*model.Vehicle),
		Next:  1,
	}
}

// Create stores the vehicle unless the VIN is taken.
func (s *VehicleRepositoryStub) Create(ctx context.Context, vehicle *model.Vehicle) error {
	if s.Err != nil {
		return s.Err
	}
	if _, exists := s.ByVIN[vehicle.VIN]; exists {
		return domainErrors.ErrAlreadyExists
	}
	vehicle.ID = s.Next
	s.Next++
	stored := *vehicle
	s.ByVIN[stored.VIN] = &stored
	s.ByID[stored.ID] = &stored
	return nil
}

// GetByVIN fetches vehicle by VIN or returns not found.
func (s *VehicleRepositoryStub) GetByVIN(ctx context.Context, vin string) (*model.Vehicle, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if vehicle, ok := s.ByVIN[vin]; ok {
		copied := *vehicle
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches vehicle by identifier or returns not found.
func (s *VehicleRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Vehicle, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if vehicle, ok := s.ByID[id]; ok {
		copied := *vehicle
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// PartRepositoryStub stores parts in-memory for tests.
type PartRepositoryStub struct {
	ByID map[int64]*model.Part
	Next int64
	Err  error
}

// NewPartRepositoryStub constructs stub repository with initialized maps.
func NewPartRepositoryStub() *PartRepositoryStub {
	return &PartRepositoryStub{ByID: make(map[int64]*model.Part), Next: 1}
}

// List returns parts that have not been deleted.
func (s *PartRepositoryStub) List(ctx context.Context) ([]model.Part, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Part
	for _, part := range s.ByID {
		if part.Active {
			out = append(out, *part)
		}
	}
	return out, nil
}

// GetByNumber fetches part by number or returns not found.
func (s *PartRepositoryStub) GetByNumber(ctx context.Context, partNumber string) (*model.Part, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, part := range s.ByID {
		if part.PartNumber == partNumber && part.Active {
			copied := *part
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Create stores the part unless the number is taken.
func (s *PartRepositoryStub) Create(ctx context.Context, part *model.Part) error {
	if s.Err != nil {
		return s.Err
	}
	for _, stored := range s.ByID {
		if stored.PartNumber == part.PartNumber {
			return domainErrors.ErrAlreadyExists
		}
	}
	part.ID = s.Next
	s.Next++
	part.Active = true
	stored := *part
	s.ByID[stored.ID] = &stored
	return nil
}

// AdjustQuantity changes stock and refuses to cross below zero.
func (s *PartRepositoryStub) AdjustQuantity(ctx context.Context, id int64, delta int) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	part, ok := s.ByID[id]
	if !ok || !part.Active {
		return 0, domainErrors.ErrNotFound
	}
	next := part.Quantity + delta
	if next < 0 {
		return 0, domainErrors.ErrInsufficientStock
	}
	part.Quantity = next
	return next, nil
}

// Delete soft-deletes the part.
func (s *PartRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	part, ok := s.ByID[id]
	if !ok || !part.Active {
		return domainErrors.ErrNotFound
	}
	part.Active = false
	return nil
}
