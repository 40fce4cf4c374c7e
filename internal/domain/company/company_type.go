package company

import "github.com/interbanking/backend/internal/domain/shared"

// CompanyType classifies a company by size.
type CompanyType string

const (
	CompanyTypePyme      CompanyType = "PYME"      // small and medium enterprise
	CompanyTypeCorporate CompanyType = "CORPORATE" // large corporation
)

// AllCompanyTypes lists every valid company type.
func AllCompanyTypes() []CompanyType {
	return []CompanyType{CompanyTypePyme, CompanyTypeCorporate}
}

// ParseCompanyType validates raw and returns it as a CompanyType.
func ParseCompanyType(raw string) (CompanyType, error) {
	t := CompanyType(raw)
	if !t.IsValid() {
		return "", shared.NewValidationError("Company type must be one of: PYME, CORPORATE")
	}
	return t, nil
}

// IsValid reports whether t is a known company type.
func (t CompanyType) IsValid() bool {
	switch t {
	case CompanyTypePyme, CompanyTypeCorporate:
		return true
	default:
		return false
	}
}

func (t CompanyType) String() string {
	return string(t)
}
