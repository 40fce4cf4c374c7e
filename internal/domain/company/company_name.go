package company

import (
	"strings"
	"unicode/utf8"

	"github.com/interbanking/backend/internal/domain/shared"
)

const (
	minNameLength = 2
	maxNameLength = 100
)

// CompanyName is the registered name of a company.
// The minimum length applies to the trimmed value, the maximum to the raw one.
type CompanyName string

// NewCompanyName validates raw and returns it as a CompanyName.
func NewCompanyName(raw string) (CompanyName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", shared.NewValidationError("Company name cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) < minNameLength {
		return "", shared.NewValidationError("Company name must be at least 2 characters long")
	}
	if utf8.RuneCountInString(raw) > maxNameLength {
		return "", shared.NewValidationError("Company name cannot exceed 100 characters")
	}
	return CompanyName(raw), nil
}

func (n CompanyName) String() string {
	return string(n)
}
