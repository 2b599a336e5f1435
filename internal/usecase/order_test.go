package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	domainErrors "github.com/carsline/api/internal/domain/errors"
	"github.com/carsline/api/internal/domain/model"
	"github.com/carsline/api/internal/test"
	"github.com/carsline/api/internal/usecase"
)

func newCatalogStub() *test.CatalogRepositoryStub {
	return &test.CatalogRepositoryStub{
		ServiceTypeRows: []model.ServiceType{
			{ID: 1, Name: "Basic service", BasePrice: 500, Active: true},
			{ID: 2, Name: "Major service", BasePrice: 1200, Active: true},
		},
		ExtraServiceRows: []model.ExtraService{
			{ID: 1, Name: "Wash", Price: 100, Active: true},
			{ID: 2, Name: "Polish", Price: 50, Active: true},
		},
	}
}

func validInput() usecase.CreateOrderInput {
	serviceType := int64(1)
	return usecase.CreateOrderInput{
		Type:          model.OrderTypeService,
		ClientID:      1,
		VehicleID:     1,
		AdvisorID:     1,
		ServiceTypeID: &serviceType,
		Mileage:       30000,
		PromisedAt:    time.Now().Add(48 * time.Hour),
	}
}

func TestCreateOrderAssignsSequentialNumbers(t *testing.T) {
	orders := test.NewOrderRepositoryStub()
	uc := usecase.NewOrderUseCase(orders, newCatalogStub(), model.DefaultPlanner(), 5)

	want := []string{"SRV-000001", "SRV-000002", "SRV-000003"}
	for _, expected := range want {
		order, err := uc.Create(context.Background(), validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Number != expected {
			t.Fatalf("number = %s, want %s", order.Number, expected)
		}
		if order.Status != model.OrderStatusCreated || !order.Active {
			t.Fatalf("new order must be created and active, got %+v", order)
		}
	}

	in := validInput()
	in.Type = model.OrderTypeWarranty
	order, err := uc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Number != "GAR-000001" {
		t.Fatalf("warranty sequence must be independent, got %s", order.Number)
	}
}

func TestCreateOrderConcurrentNumbersUnique(t *testing.T) {
	orders := test.NewOrderRepositoryStub()
	uc := usecase.NewOrderUseCase(orders, newCatalogStub(), model.DefaultPlanner(), 5)

	const workers = 64
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.Create(context.Background(), validInput()); err != nil {
				errCh <- err
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	numbers := orders.Numbers()
	if len(numbers) != workers {
		t.Fatalf("expected %d unique numbers, got %d", workers, len(numbers))
	}
	seen := make(map[string]bool, len(numbers))
	for _, number := range numbers {
		if seen[number] {
			t.Fatalf("duplicate order number %s", number)
		}
		seen[number] = true
	}
}

func TestCreateOrderCostSnapshot(t *testing.T) {
	orders := test.NewOrderRepositoryStub()
	uc := usecase.NewOrderUseCase(orders, newCatalogStub(), model.DefaultPlanner(), 5)

	in := validInput()
	in.ExtraServiceIDs = []int64{1, 2, 99}

	order, err := uc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.TotalCost != 650 {
		t.Fatalf("total = %v, want 650", order.TotalCost)
	}
	if len(order.Extras) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(order.Extras))
	}
	if order.Extras[0].PriceApplied != 100 || order.Extras[1].PriceApplied != 50 {
		t.Fatalf("unexpected applied prices: %+v", order.Extras)
	}
}

func TestCreateOrderUnknownServiceTypePricesAsZero(t *testing.T) {
	orders := test.NewOrderRepositoryStub()
	uc := usecase.NewOrderUseCase(orders, newCatalogStub(), model.DefaultPlanner(), 5)

	in := validInput()
	missing := int64(777)
	in.ServiceTypeID = &missing
	in.ExtraServiceIDs = []int64{2}

	order, err := uc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.TotalCost != 50 {
		t.Fatalf("total = %v, want 50", order.TotalCost)
	}
}

func TestCreateOrderPriceSnapshotIsolation(t *testing.T) {
	orders := test.NewOrderRepositoryStub()
	catalog := newCatalogStub()
	uc := usecase.NewOrderUseCase(orders, catalog, model.DefaultPlanner(), 5)

	in := validInput()
	in.ExtraServiceIDs = []int64{1}
	first, err := uc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	catalog.ServiceTypeRows[0].BasePrice = 900
	catalog.ExtraServiceRows[0].Price = 400

	stored, err := orders.GetByID(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.TotalCost != 600 {
		t.Fatalf("stored total changed after catalog update: %v", stored.TotalCost)
	}

	second, err := uc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.TotalCost != 1300 {
		t.Fatalf("new order must use current prices, got %v", second.TotalCost)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	orders := test.NewOrderRepositoryStub()
	uc := usecase.NewOrderUseCase(orders, newCatalogStub(), model.DefaultPlanner(), 5)

	cases := []struct {
		name   string
		mutate func(*usecase.CreateOrderInput)
	}{
		{"missing type", func(in *usecase.CreateOrderInput) { in.Type = 0 }},
		{"missing client", func(in *usecase.CreateOrderInput) { in.ClientID = 0 }},
		{"missing vehicle", func(in *usecase.CreateOrderInput) { in.VehicleID = 0 }},
		{"missing advisor", func(in *usecase.CreateOrderInput) { in.AdvisorID = 0 }},
		{"negative mileage", func(in *usecase.CreateOrderInput) { in.Mileage = -1 }},
		{"missing promise", func(in *usecase.CreateOrderInput) { in.PromisedAt = time.Time{} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			if _, err := uc.Create(context.Background(), in); !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateOrderRetriesNumberConflict(t *testing.T) {
	orders := test.NewOrderRepositoryStub()
	orders.FailCreates = 2
	uc := usecase.NewOrderUseCase(orders, newCatalogStub(), model.DefaultPlanner(), 5)

	order, err := uc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Number != "SRV-000001" {
		t.Fatalf("number = %s, want SRV-000001", order.Number)
	}
}

func TestCreateOrderRetryExhaustion(t *testing.T) {
	orders := test.NewOrderRepositoryStub()
	orders.FailCreates = 10
	uc := usecase.NewOrderUseCase(orders, newCatalogStub(), model.DefaultPlanner(), 3)

	_, err := uc.Create(context.Background(), validInput())
	if !errors.Is(err, domainErrors.ErrOrderNumberTaken) {
		t.Fatalf("expected number conflict after exhaustion, got %v", err)
	}
}

func TestCreateOrderStopsOnOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	orders := test.NewOrderRepositoryStub()
	calls := 0
	orders.CreateFn = func(context.Context, *model.Order) error {
		calls++
		return boom
	}
	uc := usecase.NewOrderUseCase(orders, newCatalogStub(), model.DefaultPlanner(), 5)

	if _, err := uc.Create(context.Background(), validInput()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("non-conflict errors must not be retried, got %d calls", calls)
	}
}

func TestCancelOrder(t *testing.T) {
	orders := test.NewOrderRepositoryStub()
	uc := usecase.NewOrderUseCase(orders, newCatalogStub(), model.DefaultPlanner(), 5)

	orders.Seed(model.Order{ID: 1, Status: model.OrderStatusInProcess, Active: true})
	deliveredAt := time.Now()
	orders.Seed(model.Order{ID: 2, Status: model.OrderStatusDelivered, DeliveredAt: &deliveredAt})

	if err := uc.Cancel(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cancelled, err := orders.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cancelled.Status != model.OrderStatusCancelled || cancelled.Active {
		t.Fatalf("order not cancelled: %+v", cancelled)
	}

	if err := uc.Cancel(context.Background(), 1); err != nil {
		t.Fatalf("repeated cancel must be a no-op, got %v", err)
	}

	if err := uc.Cancel(context.Background(), 2); !errors.Is(err, domainErrors.ErrOrderClosed) {
		t.Fatalf("cancelling delivered order must fail, got %v", err)
	}

	if err := uc.Cancel(context.Background(), 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeliverOrderWritesHistory(t *testing.T) {
	orders := test.NewOrderRepositoryStub()
	uc := usecase.NewOrderUseCase(orders, newCatalogStub(), model.DefaultPlanner(), 5)

	serviceType := int64(1)
	orders.Seed(model.Order{
		ID:            1,
		VehicleID:     7,
		ServiceTypeID: &serviceType,
		Mileage:       30000,
		Status:        model.OrderStatusFinished,
		TotalCost:     650,
		Active:        true,
	})

	before := time.Now()
	delivered, err := uc.Deliver(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if delivered.Status != model.OrderStatusDelivered || delivered.DeliveredAt == nil {
		t.Fatalf("order not delivered: %+v", delivered)
	}

	if len(orders.History) != 1 {
		t.Fatalf("expected 1 history row, got %d", len(orders.History))
	}
	entry := orders.History[0]
	if entry.VehicleID != 7 || entry.OrderID != 1 || entry.ServiceTypeID != 1 {
		t.Fatalf("unexpected history row: %+v", entry)
	}
	if entry.NextMileage == nil || *entry.NextMileage != 40000 {
		t.Fatalf("next mileage = %v, want 40000", entry.NextMileage)
	}
	wantDate := before.AddDate(0, 6, 0)
	if entry.NextDate == nil || entry.NextDate.Before(wantDate.Add(-time.Minute)) || entry.NextDate.After(wantDate.Add(time.Minute)) {
		t.Fatalf("next date = %v, want about %v", entry.NextDate, wantDate)
	}

	if _, err := uc.Deliver(context.Background(), 1); !errors.Is(err, domainErrors.ErrOrderClosed) {
		t.Fatalf("second delivery must fail, got %v", err)
	}
}

func TestDeliverOrderWithoutServiceTypeSkipsHistory(t *testing.T) {
	orders := test.NewOrderRepositoryStub()
	uc := usecase.NewOrderUseCase(orders, newCatalogStub(), model.DefaultPlanner(), 5)

	orders.Seed(model.Order{ID: 1, VehicleID: 7, Status: model.OrderStatusFinished, Active: true})

	if _, err := uc.Deliver(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders.History) != 0 {
		t.Fatalf("diagnostic delivery must not write history, got %d rows", len(orders.History))
	}
}

func TestDeliverCancelledOrderFails(t *testing.T) {
	orders := test.NewOrderRepositoryStub()
	uc := usecase.NewOrderUseCase(orders, newCatalogStub(), model.DefaultPlanner(), 5)

	orders.Seed(model.Order{ID: 1, Status: model.OrderStatusCancelled})

	if _, err := uc.Deliver(context.Background(), 1); !errors.Is(err, domainErrors.ErrOrderClosed) {
		t.Fatalf("expected closed order error, got %v", err)
	}
}

func TestHistoryByVehicle(t *testing.T) {
	orders := test.NewOrderRepositoryStub()
	uc := usecase.NewOrderUseCase(orders, newCatalogStub(), model.DefaultPlanner(), 5)

	now := time.Now()
	orders.Seed(model.Order{ID: 1, VehicleID: 7, Status: model.OrderStatusDelivered, CreatedAt: now.AddDate(0, -1, 0), Mileage: 42000, TotalCost: 800})
	orders.Seed(model.Order{ID: 2, VehicleID: 7, Status: model.OrderStatusDelivered, CreatedAt: now.AddDate(0, -3, 0), Mileage: 38000, TotalCost: 400})
	orders.Seed(model.Order{ID: 3, VehicleID: 7, Status: model.OrderStatusDelivered, CreatedAt: now.AddDate(0, -8, 0), Mileage: 30000, TotalCost: 999})
	orders.Seed(model.Order{ID: 4, VehicleID: 7, Status: model.OrderStatusInProcess, CreatedAt: now, Active: true})
	orders.Seed(model.Order{ID: 5, VehicleID: 8, Status: model.OrderStatusDelivered, CreatedAt: now})

	history, err := uc.HistoryByVehicle(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if history.Total != 2 {
		t.Fatalf("total = %d, want 2", history.Total)
	}
	if history.AverageCost != 600 {
		t.Fatalf("average = %v, want 600", history.AverageCost)
	}
	if history.LastMileage != 42000 {
		t.Fatalf("last mileage = %d, want 42000", history.LastMileage)
	}
	if history.LastDate == nil || !history.LastDate.Equal(history.Orders[0].CreatedAt) {
		t.Fatalf("last date = %v, want newest order's creation time", history.LastDate)
	}
}

func TestHistoryByVehicleEmpty(t *testing.T) {
	orders := test.NewOrderRepositoryStub()
	uc := usecase.NewOrderUseCase(orders, newCatalogStub(), model.DefaultPlanner(), 5)

	history, err := uc.HistoryByVehicle(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if history.Total != 0 || history.AverageCost != 0 || history.LastDate != nil {
		t.Fatalf("empty history must carry zero stats: %+v", history)
	}
}

func TestListByAdvisor(t *testing.T) {
	orders := test.NewOrderRepositoryStub()
	uc := usecase.NewOrderUseCase(orders, newCatalogStub(), model.DefaultPlanner(), 5)

	orders.Seed(model.Order{ID: 1, AdvisorID: 5, Type: model.OrderTypeService, Status: model.OrderStatusCreated, Active: true})
	orders.Seed(model.Order{ID: 2, AdvisorID: 5, Type: model.OrderTypeService, Status: model.OrderStatusCancelled})
	orders.Seed(model.Order{ID: 3, AdvisorID: 6, Type: model.OrderTypeService, Status: model.OrderStatusCreated, Active: true})

	open, err := uc.ListByAdvisor(context.Background(), 5, model.OrderTypeService)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(open) != 1 || open[0].ID != 1 {
		t.Fatalf("unexpected open orders: %+v", open)
	}
}
