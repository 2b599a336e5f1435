package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/carsline/api/internal/domain/errors"
	"github.com/carsline/api/internal/domain/model"
)

var clientColumnNames = []string{
	"id", "full_name", "tax_id", "mobile_phone", "home_phone", "email", "street",
	"ext_number", "neighborhood", "municipality", "state", "country", "postal_code", "active",
}

func clientRow(c model.Client) []any {
	return []any{
		c.ID, c.FullName, c.TaxID, c.MobilePhone, c.HomePhone, c.Email, c.Street,
		c.ExtNumber, c.Neighborhood, c.Municipality, c.State, c.Country, c.PostalCode, c.Active,
	}
}

func TestClientCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Clients()

	client := &model.Client{FullName: "Ana Silva", TaxID: "XAXX010101000", MobilePhone: "5551234567", Active: true}
	mock.ExpectQuery("INSERT INTO clients").
		WithArgs("Ana Silva", "XAXX010101000", "5551234567",
			(*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil),
			(*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), true).
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(4)))

	if err := repo.Create(context.Background(), client); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.ID != 4 {
		t.Fatalf("id not filled: %+v", client)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestClientUpdate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Clients()

	client := &model.Client{ID: 4, FullName: "Ana Souza", TaxID: "XAXX010101000", MobilePhone: "5551234567", Active: true}

	mock.ExpectExec("UPDATE clients SET").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.Update(context.Background(), client); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE clients SET").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if err := repo.Update(context.Background(), client); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestClientFindByPhone(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Clients()

	stored := model.Client{ID: 4, FullName: "Ana Souza", TaxID: "XAXX010101000", MobilePhone: "5551234567", Active: true}
	mock.ExpectQuery("FROM clients WHERE mobile_phone=").
		WithArgs("5551234567").
		WillReturnRows(pgxmockv3.NewRows(clientColumnNames).AddRow(clientRow(stored)...))

	clients, err := repo.FindByPhone(context.Background(), "5551234567")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clients) != 1 || clients[0].FullName != "Ana Souza" {
		t.Fatalf("unexpected clients: %+v", clients)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestClientGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := storage.Clients()

	mock.ExpectQuery("FROM clients WHERE id=").
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByID(context.Background(), 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
