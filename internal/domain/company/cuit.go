package company

import (
	"regexp"
	"strings"

	"github.com/interbanking/backend/internal/domain/shared"
)

// cuitPattern is the XX-XXXXXXXX-X layout of an Argentine tax id.
var cuitPattern = regexp.MustCompile(`^\d{2}-\d{8}-\d{1}$`)

const cuitLength = 13

// Cuit is an Argentine tax identification number.
type Cuit string

// NewCuit validates raw and returns it as a Cuit.
func NewCuit(raw string) (Cuit, error) {
	if strings.TrimSpace(raw) == "" {
		return "", shared.NewValidationError("CUIT cannot be empty")
	}
	if !cuitPattern.MatchString(raw) {
		return "", shared.NewValidationError("CUIT must be in format XX-XXXXXXXX-X")
	}
	// Unreachable for values accepted by cuitPattern; kept as a structural guard.
	if len(raw) != cuitLength || !strings.Contains(raw, "-") {
		return "", shared.NewValidationError("Invalid CUIT format")
	}
	return Cuit(raw), nil
}

func (c Cuit) String() string {
	return string(c)
}
