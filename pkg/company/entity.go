package company

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrCompanyExists   = errors.New("company already exists")
	ErrNameRequired    = errors.New("company name is required")
)

// Company is an organization owned by a recruiter.
type Company struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	Location    string    `json:"location,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	OwnerID     uuid.UUID `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Repository is the company store port.
type Repository interface {
	Create(ctx context.Context, c Company) error
	GetByID(ctx context.Context, id uuid.UUID) (Company, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Company, error)
	Update(ctx context.Context, c Company) error
}
