package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/interbanking/backend/internal/domain/transfer"
)

// TransferModel is the persistence model for the transfers table.
// CreatedAt is the domain creation time, not a bookkeeping column.
type TransferModel struct {
	ID            string          `gorm:"type:varchar(36);primaryKey"`
	Amount        decimal.Decimal `gorm:"type:numeric;not null"`
	CompanyID     string          `gorm:"type:varchar(36);not null;index:idx_transfers_company_id"`
	DebitAccount  string          `gorm:"type:varchar(20);not null"`
	CreditAccount string          `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time       `gorm:"not null;index:idx_transfers_created_at"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (TransferModel) TableName() string {
	return "transfers"
}

// ToDomain converts the persistence model to a domain Transfer
func (m *TransferModel) ToDomain() *transfer.Transfer {
	return transfer.RestoreTransfer(m.ID, m.Amount, m.CompanyID, m.DebitAccount, m.CreditAccount, m.CreatedAt)
}

// FromDomain populates the model from a domain Transfer
func (m *TransferModel) FromDomain(t *transfer.Transfer) {
	m.ID = t.ID.String()
	m.Amount = t.Amount.Decimal()
	m.CompanyID = t.CompanyID
	m.DebitAccount = t.DebitAccount.String()
	m.CreditAccount = t.CreditAccount.String()
	m.CreatedAt = t.CreatedAt.UTC()
}

// TransferModelFromDomain creates a persistence model from a domain Transfer
func TransferModelFromDomain(t *transfer.Transfer) *TransferModel {
	m := &TransferModel{}
	m.FromDomain(t)
	return m
}

// TransfersToDomain converts a slice of models
func TransfersToDomain(ms []TransferModel) []transfer.Transfer {
	out := make([]transfer.Transfer, len(ms))
	for i := range ms {
		out[i] = *ms[i].ToDomain()
	}
	return out
}
