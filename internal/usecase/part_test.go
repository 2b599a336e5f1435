package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/carsline/api/internal/domain/errors"
	"github.com/carsline/api/internal/domain/model"
	"github.com/carsline/api/internal/test"
	"github.com/carsline/api/internal/usecase"
)

func TestPartCreate(t *testing.T) {
	parts := test.NewPartRepositoryStub()
	uc := usecase.NewPartUseCase(parts)

	part := &model.Part{PartNumber: "  f-100 ", PartType: "filter", Quantity: 3}
	if err := uc.Create(context.Background(), part); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if part.PartNumber != "F-100" {
		t.Fatalf("part number not normalized: %s", part.PartNumber)
	}
	if !part.Active {
		t.Fatal("new part must be active")
	}

	dup := &model.Part{PartNumber: "F-100", PartType: "filter"}
	if err := uc.Create(context.Background(), dup); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestPartCreateValidation(t *testing.T) {
	uc := usecase.NewPartUseCase(test.NewPartRepositoryStub())

	cases := []struct {
		name string
		part model.Part
	}{
		{"missing number", model.Part{PartType: "filter"}},
		{"missing type", model.Part{PartNumber: "F-1"}},
		{"negative quantity", model.Part{PartNumber: "F-1", PartType: "filter", Quantity: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			part := tc.part
			if err := uc.Create(context.Background(), &part); !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestPartStockAdjustments(t *testing.T) {
	parts := test.NewPartRepositoryStub()
	uc := usecase.NewPartUseCase(parts)

	part := &model.Part{PartNumber: "F-100", PartType: "filter", Quantity: 2}
	if err := uc.Create(context.Background(), part); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	qty, err := uc.Increase(context.Background(), part.ID, 3)
	if err != nil || qty != 5 {
		t.Fatalf("increase = %d, %v; want 5", qty, err)
	}

	qty, err = uc.Decrease(context.Background(), part.ID, 5)
	if err != nil || qty != 0 {
		t.Fatalf("decrease = %d, %v; want 0", qty, err)
	}

	if _, err := uc.Decrease(context.Background(), part.ID, 1); !errors.Is(err, domainErrors.ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock, got %v", err)
	}

	if _, err := uc.Increase(context.Background(), part.ID, 0); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("zero adjust must be rejected, got %v", err)
	}
	if _, err := uc.Decrease(context.Background(), part.ID, -1); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("negative adjust must be rejected, got %v", err)
	}
}

func TestPartFindByNumber(t *testing.T) {
	parts := test.NewPartRepositoryStub()
	uc := usecase.NewPartUseCase(parts)

	part := &model.Part{PartNumber: "F-100", PartType: "filter"}
	if err := uc.Create(context.Background(), part); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := uc.FindByNumber(context.Background(), " f-100 ")
	if err != nil || found.ID != part.ID {
		t.Fatalf("lookup failed: %+v %v", found, err)
	}

	if _, err := uc.FindByNumber(context.Background(), ""); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := uc.FindByNumber(context.Background(), "MISSING"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPartDelete(t *testing.T) {
	parts := test.NewPartRepositoryStub()
	uc := usecase.NewPartUseCase(parts)

	part := &model.Part{PartNumber: "F-100", PartType: "filter"}
	if err := uc.Create(context.Background(), part); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Delete(context.Background(), part.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.FindByNumber(context.Background(), "F-100"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("deleted part must be hidden, got %v", err)
	}
	if err := uc.Delete(context.Background(), part.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("double delete must fail, got %v", err)
	}
}
