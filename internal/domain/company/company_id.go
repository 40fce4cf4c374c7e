package company

import (
	"strings"
	"unicode/utf8"

	"github.com/interbanking/backend/internal/domain/shared"
)

// minIDLength is the shortest accepted identifier.
const minIDLength = 3

// CompanyID identifies a company.
type CompanyID string

// NewCompanyID validates raw and returns it as a CompanyID.
func NewCompanyID(raw string) (CompanyID, error) {
	if strings.TrimSpace(raw) == "" {
		return "", shared.NewValidationError("Company ID cannot be empty")
	}
	if utf8.RuneCountInString(raw) < minIDLength {
		return "", shared.NewValidationError("Company ID must be at least 3 characters long")
	}
	return CompanyID(raw), nil
}

func (id CompanyID) String() string {
	return string(id)
}
