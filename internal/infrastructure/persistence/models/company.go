package models

import (
	"time"

	"github.com/interbanking/backend/internal/domain/company"
)

// CompanyModel is the persistence model for the companies table
type CompanyModel struct {
	ID           string    `gorm:"type:varchar(36);primaryKey"`
	Cuit         string    `gorm:"type:varchar(13);not null;uniqueIndex:idx_companies_cuit"`
	Name         string    `gorm:"type:varchar(100);not null"`
	AdhesionDate time.Time `gorm:"not null;index:idx_companies_adhesion_date"`
	Type         string    `gorm:"type:varchar(20);not null"`
	Timestamps
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company
func (m *CompanyModel) ToDomain() *company.Company {
	return company.RestoreCompany(m.ID, m.Cuit, m.Name, m.AdhesionDate, m.Type)
}

// FromDomain populates the model from a domain Company
func (m *CompanyModel) FromDomain(c *company.Company) {
	m.ID = c.ID.String()
	m.Cuit = c.Cuit.String()
	m.Name = c.Name.String()
	m.AdhesionDate = c.AdhesionDate.UTC()
	m.Type = c.Type.String()
}

// CompanyModelFromDomain creates a persistence model from a domain Company
func CompanyModelFromDomain(c *company.Company) *CompanyModel {
	m := &CompanyModel{}
	m.FromDomain(c)
	return m
}

// CompaniesToDomain converts a slice of models
func CompaniesToDomain(ms []CompanyModel) []company.Company {
	out := make([]company.Company, len(ms))
	for i := range ms {
		out[i] = *ms[i].ToDomain()
	}
	return out
}
