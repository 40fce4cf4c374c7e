package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/interbanking/backend/internal/domain/company"
	"github.com/interbanking/backend/internal/domain/shared"
	"github.com/interbanking/backend/internal/infrastructure/persistence/models"
)

// GormCompanyRepository implements company.Repository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindAll returns every company, optionally restricted to an adhesion window
func (r *GormCompanyRepository) FindAll(ctx context.Context, adhesion *shared.DateRange) ([]company.Company, error) {
	query := r.db.WithContext(ctx).Model(&models.CompanyModel{})
	if adhesion != nil {
		query = query.Where("adhesion_date BETWEEN ? AND ?", adhesion.From.UTC(), adhesion.To.UTC())
	}

	var rows []models.CompanyModel
	if err := query.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return models.CompaniesToDomain(rows), nil
}

// FindByID finds a company by its ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id string) (*company.Company, error) {
	var row models.CompanyModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	return row.ToDomain(), nil
}

// FindByCuit finds a company by CUIT. A missing company is not an error.
func (r *GormCompanyRepository) FindByCuit(ctx context.Context, cuit string) (*company.Company, error) {
	var row models.CompanyModel
	if err := r.db.WithContext(ctx).First(&row, "cuit = ?", cuit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find company by cuit: %w", err)
	}
	return row.ToDomain(), nil
}

// FindWithTransfersInPeriod returns each company with at least one transfer
// created in [from, to] exactly once
func (r *GormCompanyRepository) FindWithTransfersInPeriod(ctx context.Context, from, to time.Time) ([]company.Company, error) {
	var rows []models.CompanyModel
	err := r.db.WithContext(ctx).
		Model(&models.CompanyModel{}).
		Distinct("companies.*").
		Joins("INNER JOIN transfers ON transfers.company_id = companies.id").
		Where("transfers.created_at BETWEEN ? AND ?", from.UTC(), to.UTC()).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list companies with transfers: %w", err)
	}
	return models.CompaniesToDomain(rows), nil
}

// Save inserts the company or updates it when the id already exists
func (r *GormCompanyRepository) Save(ctx context.Context, c *company.Company) error {
	row := models.CompanyModelFromDomain(c)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return company.DuplicateCuitError(c.Cuit.String())
		}
		return fmt.Errorf("failed to save company: %w", err)
	}
	return nil
}

// Delete removes a company by ID
func (r *GormCompanyRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.CompanyModel{}, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return company.HasTransfersError(id)
		}
		return fmt.Errorf("failed to delete company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountByType returns the number of companies per company type
func (r *GormCompanyRepository) CountByType(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Type  string
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.CompanyModel{}).
		Select("type, COUNT(*) AS count").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count companies by type: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Type] = row.Count
	}
	return counts, nil
}
