package company

import (
	"context"
	"time"

	"github.com/interbanking/backend/internal/domain/shared"
)

// Repository defines persistence operations for companies
type Repository interface {
	// FindAll returns every company, or only those whose adhesion date falls
	// inside adhesion when it is not nil
	FindAll(ctx context.Context, adhesion *shared.DateRange) ([]Company, error)

	// FindByID returns shared.ErrNotFound when no company has the id
	FindByID(ctx context.Context, id string) (*Company, error)

	// FindByCuit returns nil and no error when the CUIT is not registered
	FindByCuit(ctx context.Context, cuit string) (*Company, error)

	// FindWithTransfersInPeriod returns distinct companies with at least one
	// transfer created between from and to, both inclusive
	FindWithTransfersInPeriod(ctx context.Context, from, to time.Time) ([]Company, error)

	// Save inserts or updates by primary key
	Save(ctx context.Context, company *Company) error

	// Delete removes by primary key, returning shared.ErrNotFound when nothing was deleted
	Delete(ctx context.Context, id string) error
}
