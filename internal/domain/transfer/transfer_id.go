package transfer

import (
	"strings"
	"unicode/utf8"

	"github.com/interbanking/backend/internal/domain/shared"
)

const minIDLength = 3

// TransferID identifies a transfer.
type TransferID string

// NewTransferID validates raw and returns it as a TransferID.
func NewTransferID(raw string) (TransferID, error) {
	if strings.TrimSpace(raw) == "" {
		return "", shared.NewValidationError("Transfer ID cannot be empty")
	}
	if utf8.RuneCountInString(raw) < minIDLength {
		return "", shared.NewValidationError("Transfer ID must be at least 3 characters long")
	}
	return TransferID(raw), nil
}

func (id TransferID) String() string {
	return string(id)
}
