package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/interbanking/backend/internal/domain/company"
	"github.com/interbanking/backend/internal/domain/shared"
	"github.com/interbanking/backend/internal/domain/transfer"
	"github.com/interbanking/backend/internal/infrastructure/persistence/models"
)

// GormTransferRepository implements transfer.Repository using GORM
type GormTransferRepository struct {
	db *gorm.DB
}

// NewGormTransferRepository creates a new GormTransferRepository
func NewGormTransferRepository(db *gorm.DB) *GormTransferRepository {
	return &GormTransferRepository{db: db}
}

// FindAll returns every transfer, oldest first
func (r *GormTransferRepository) FindAll(ctx context.Context) ([]transfer.Transfer, error) {
	var rows []models.TransferModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return models.TransfersToDomain(rows), nil
}

// FindByID finds a transfer by its ID
func (r *GormTransferRepository) FindByID(ctx context.Context, id string) (*transfer.Transfer, error) {
	var row models.TransferModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transfer: %w", err)
	}
	return row.ToDomain(), nil
}

// Save inserts the transfer or updates it when the id already exists.
// A dangling company reference is reported as a missing company.
func (r *GormTransferRepository) Save(ctx context.Context, t *transfer.Transfer) error {
	row := models.TransferModelFromDomain(t)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return company.NotFoundError(t.CompanyID)
		}
		return fmt.Errorf("failed to save transfer: %w", err)
	}
	return nil
}

// Delete removes a transfer by ID
func (r *GormTransferRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.TransferModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transfer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountByCompany counts the transfers referencing a company
func (r *GormTransferRepository) CountByCompany(ctx context.Context, companyID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.TransferModel{}).
		Where("company_id = ?", companyID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count transfers: %w", err)
	}
	return count, nil
}
