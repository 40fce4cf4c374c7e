package company

import (
	"time"

	"github.com/interbanking/backend/internal/domain/shared"
)

// Company is a business registered (adhered) with the platform.
// It is immutable once created; there is no update operation.
type Company struct {
	ID           CompanyID
	Cuit         Cuit
	Name         CompanyName
	AdhesionDate time.Time
	Type         CompanyType
}

// NewCompany validates every field and creates a Company.
// The adhesion date is normalized to UTC and must not be after now.
func NewCompany(id, cuit, name string, adhesionDate time.Time, companyType string) (*Company, error) {
	return NewCompanyAt(shared.SystemClock(), id, cuit, name, adhesionDate, companyType)
}

// NewCompanyAt is NewCompany with the future-date check made against now.
func NewCompanyAt(now time.Time, id, cuit, name string, adhesionDate time.Time, companyType string) (*Company, error) {
	companyID, err := NewCompanyID(id)
	if err != nil {
		return nil, err
	}
	c, err := NewCuit(cuit)
	if err != nil {
		return nil, err
	}
	n, err := NewCompanyName(name)
	if err != nil {
		return nil, err
	}
	t, err := ParseCompanyType(companyType)
	if err != nil {
		return nil, err
	}

	adhesionDate = adhesionDate.UTC()
	if adhesionDate.After(now) {
		return nil, shared.NewValidationError("Adhesion date cannot be in the future")
	}

	return &Company{
		ID:           companyID,
		Cuit:         c,
		Name:         n,
		AdhesionDate: adhesionDate,
		Type:         t,
	}, nil
}

// RestoreCompany rebuilds a Company from persisted state without validation.
func RestoreCompany(id, cuit, name string, adhesionDate time.Time, companyType string) *Company {
	return &Company{
		ID:           CompanyID(id),
		Cuit:         Cuit(cuit),
		Name:         CompanyName(name),
		AdhesionDate: adhesionDate.UTC(),
		Type:         CompanyType(companyType),
	}
}

// AdheredWithin reports whether the adhesion date falls inside r.
func (c *Company) AdheredWithin(r shared.DateRange) bool {
	return r.Contains(c.AdhesionDate)
}
