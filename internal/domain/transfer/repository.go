package transfer

import "context"

// Repository defines persistence operations for transfers
type Repository interface {
	// FindAll returns every transfer
	FindAll(ctx context.Context) ([]Transfer, error)

	// FindByID returns shared.ErrNotFound when no transfer has the id
	FindByID(ctx context.Context, id string) (*Transfer, error)

	// Save inserts or updates by primary key
	Save(ctx context.Context, transfer *Transfer) error

	// Delete removes by primary key, returning shared.ErrNotFound when nothing was deleted
	Delete(ctx context.Context, id string) error

	// CountByCompany counts transfers referencing a company
	CountByCompany(ctx context.Context, companyID string) (int64, error)
}
