package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/carsline/api/internal/domain/errors"
	"github.com/carsline/api/internal/domain/model"
	"github.com/carsline/api/internal/domain/repository"
)

// ClientUseCase manages workshop customers.
type ClientUseCase struct {
	clients repository.ClientRepository
}

// NewClientUseCase constructs ClientUseCase.
func NewClientUseCase(clients repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients}
}

func validateClient(c *model.Client) error {
	c.FullName = strings.TrimSpace(c.FullName)
	c.TaxID = strings.ToUpper(strings.TrimSpace(c.TaxID))
	c.MobilePhone = strings.TrimSpace(c.MobilePhone)
	switch {
	case c.FullName == "":
		return fmt.Errorf("%w: full name is required", domainErrors.ErrValidation)
	case c.TaxID == "":
		return fmt.Errorf("%w: tax id is required", domainErrors.ErrValidation)
	case c.MobilePhone == "":
		return fmt.Errorf("%w: mobile phone is required", domainErrors.ErrValidation)
	}
	return nil
}

// Create registers a new client.
func (u *ClientUseCase) Create(ctx context.Context, client *model.Client) error {
	if err := validateClient(client); err != nil {
		return err
	}
	client.Active = true
	return u.clients.Create(ctx, client)
}

// Update replaces the client's contact data.
func (u *ClientUseCase) Update(ctx context.Context, client *model.Client) error {
	if client.ID <= 0 {
		return fmt.Errorf("%w: client id is required", domainErrors.ErrValidation)
	}
	if err := validateClient(client); err != nil {
		return err
	}
	return u.clients.Update(ctx, client)
}

// FindByPhone looks clients up by their mobile phone.
func (u *ClientUseCase) FindByPhone(ctx context.Context, phone string) ([]model.Client, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", domainErrors.ErrValidation)
	}
	return u.clients.FindByPhone(ctx, phone)
}
