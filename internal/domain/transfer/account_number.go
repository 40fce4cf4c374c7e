package transfer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/interbanking/backend/internal/domain/shared"
)

const (
	minAccountLength = 8
	maxAccountLength = 20
)

var accountPattern = regexp.MustCompile(`^[0-9-]+$`)

// AccountNumber is a bank account made of digits and hyphens.
type AccountNumber string

// NewAccountNumber validates raw and returns it as an AccountNumber.
// Checks run in order: empty, too short, too long, character class.
func NewAccountNumber(raw string) (AccountNumber, error) {
	if strings.TrimSpace(raw) == "" {
		return "", shared.NewValidationError("Account number cannot be empty")
	}
	n := utf8.RuneCountInString(raw)
	if n < minAccountLength {
		return "", shared.NewValidationError("Account number must be at least 8 characters long")
	}
	if n > maxAccountLength {
		return "", shared.NewValidationError("Account number cannot exceed 20 characters")
	}
	if !accountPattern.MatchString(raw) {
		return "", shared.NewValidationError("Account number can only contain numbers and hyphens")
	}
	return AccountNumber(raw), nil
}

func (a AccountNumber) String() string {
	return string(a)
}
