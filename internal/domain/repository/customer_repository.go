// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/errors"
)

// ErrCustomerNotFound is returned when a customer id is absent from the store.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository is the customer record store.
type CustomerRepository interface {
	// FindByID retrieves a single customer by id.
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)

	// Create persists a new customer and assigns its id.
	Create(ctx context.Context, customer *entity.Customer) error

	// UpdateStage overwrites the current stage of an existing customer.
	UpdateStage(ctx context.Context, id int64, stage entity.Stage) error
}
