package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/carsline/api/internal/domain/errors"
	"github.com/carsline/api/internal/domain/model"
)

var vehicleColumnNames = []string{
	"id", "client_id", "vin", "make", "model", "trim", "year", "color", "plates", "initial_mileage", "active",
}

func vehicleRow(v model.Vehicle) []any {
	return []any{
		v.ID, v.ClientID, v.VIN, v.Make, v.Model, v.Trim, v.Year, v.Color, v.Plates, v.InitialMileage, v.Active,
	}
}

func TestVehicleCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Vehicles()

	vehicle := &model.Vehicle{ClientID: 4, VIN: "3VW2K7AJ9EM388202", InitialMileage: 100, Active: true}
	mock.ExpectQuery("INSERT INTO vehicles").
		WithArgs(int64(4), "3VW2K7AJ9EM388202",
			(*string)(nil), (*string)(nil), (*string)(nil), (*int)(nil), (*string)(nil), (*string)(nil),
			100, true).
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(7)))

	if err := repo.Create(context.Background(), vehicle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vehicle.ID != 7 {
		t.Fatalf("id not filled: %+v", vehicle)
	}

	mock.ExpectQuery("INSERT INTO vehicles").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "vehicles_vin_key"})
	if err := repo.Create(context.Background(), vehicle); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected duplicate vin error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestVehicleGetByVIN(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Vehicles()

	stored := model.Vehicle{ID: 7, ClientID: 4, VIN: "3VW2K7AJ9EM388202", InitialMileage: 100, Active: true}
	mock.ExpectQuery("FROM vehicles WHERE vin=").
		WithArgs("3VW2K7AJ9EM388202").
		WillReturnRows(pgxmockv3.NewRows(vehicleColumnNames).AddRow(vehicleRow(stored)...))

	got, err := repo.GetByVIN(context.Background(), "3VW2K7AJ9EM388202")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 7 || got.ClientID != 4 {
		t.Fatalf("unexpected vehicle: %+v", got)
	}

	mock.ExpectQuery("FROM vehicles WHERE vin=").
		WithArgs("MISSING0000000000").
		WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByVIN(context.Background(), "MISSING0000000000"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestVehicleGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Vehicles()

	stored := model.Vehicle{ID: 7, ClientID: 4, VIN: "3VW2K7AJ9EM388202", Active: true}
	mock.ExpectQuery("FROM vehicles WHERE id=").
		WithArgs(int64(7)).
		WillReturnRows(pgxmockv3.NewRows(vehicleColumnNames).AddRow(vehicleRow(stored)...))

	got, err := repo.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.VIN != "3VW2K7AJ9EM388202" {
		t.Fatalf("unexpected vehicle: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
