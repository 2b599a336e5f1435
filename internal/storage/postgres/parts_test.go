package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/carsline/api/internal/domain/errors"
	"github.com/carsline/api/internal/domain/model"
)

func TestPartCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &partRepository{storage: storage}

	now := time.Now()
	part := &model.Part{PartNumber: "F-100", PartType: "filter", Quantity: 3, Active: true}

	mock.ExpectQuery("INSERT INTO parts").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "registered_at", "updated_at"}).AddRow(int64(1), now, now))
	if err := repo.Create(context.Background(), part); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if part.ID != 1 {
		t.Fatalf("id not filled: %+v", part)
	}

	mock.ExpectQuery("INSERT INTO parts").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "parts_part_number_key"})
	if err := repo.Create(context.Background(), part); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestPartAdjustQuantity(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &partRepository{storage: storage}

	t.Run("increase", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT quantity FROM parts WHERE id=").WithArgs(int64(1)).
			WillReturnRows(pgxmockv3.NewRows([]string{"quantity"}).AddRow(3))
		mock.ExpectExec("UPDATE parts SET quantity=").WithArgs(5, int64(1)).
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		qty, err := repo.AdjustQuantity(context.Background(), 1, 2)
		if err != nil || qty != 5 {
			t.Fatalf("adjust = %d, %v; want 5", qty, err)
		}
	})

	t.Run("decrease below zero", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT quantity FROM parts WHERE id=").WithArgs(int64(1)).
			WillReturnRows(pgxmockv3.NewRows([]string{"quantity"}).AddRow(1))
		mock.ExpectRollback()

		if _, err := repo.AdjustQuantity(context.Background(), 1, -2); !errors.Is(err, domainErrors.ErrInsufficientStock) {
			t.Fatalf("expected insufficient stock, got %v", err)
		}
	})

	t.Run("missing part", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT quantity FROM parts WHERE id=").WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		if _, err := repo.AdjustQuantity(context.Background(), 99, 1); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestPartDelete(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &partRepository{storage: storage}

	mock.ExpectExec("UPDATE parts SET active=FALSE").WithArgs(int64(1)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE parts SET active=FALSE").WithArgs(int64(1)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if err := repo.Delete(context.Background(), 1); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
