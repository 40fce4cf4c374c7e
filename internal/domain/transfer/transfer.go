package transfer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/interbanking/backend/internal/domain/shared"
)

// Transfer moves funds between two accounts on behalf of a company.
// Immutable once created.
type Transfer struct {
	ID            TransferID
	Amount        Amount
	CompanyID     string
	DebitAccount  AccountNumber
	CreditAccount AccountNumber
	CreatedAt     time.Time
}

// NewTransfer validates every field and creates a Transfer.
// companyID is stored as given; its existence is checked by the caller.
// A zero createdAt defaults to now. The value is normalized to UTC.
func NewTransfer(id string, amount decimal.Decimal, companyID, debitAccount, creditAccount string, createdAt time.Time) (*Transfer, error) {
	transferID, err := NewTransferID(id)
	if err != nil {
		return nil, err
	}
	a, err := NewAmount(amount)
	if err != nil {
		return nil, err
	}
	debit, err := NewAccountNumber(debitAccount)
	if err != nil {
		return nil, err
	}
	credit, err := NewAccountNumber(creditAccount)
	if err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		createdAt = shared.SystemClock()
	}

	return &Transfer{
		ID:            transferID,
		Amount:        a,
		CompanyID:     companyID,
		DebitAccount:  debit,
		CreditAccount: credit,
		CreatedAt:     createdAt.UTC(),
	}, nil
}

// RestoreTransfer rebuilds a Transfer from persisted state without validation.
func RestoreTransfer(id string, amount decimal.Decimal, companyID, debitAccount, creditAccount string, createdAt time.Time) *Transfer {
	return &Transfer{
		ID:            TransferID(id),
		Amount:        Amount{value: amount},
		CompanyID:     companyID,
		DebitAccount:  AccountNumber(debitAccount),
		CreditAccount: AccountNumber(creditAccount),
		CreatedAt:     createdAt.UTC(),
	}
}

// IsInDateRange reports whether from <= CreatedAt <= to.
func (t *Transfer) IsInDateRange(from, to time.Time) bool {
	return !t.CreatedAt.Before(from) && !t.CreatedAt.After(to)
}
