package transfer

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/interbanking/backend/internal/domain/shared"
	"github.com/interbanking/backend/internal/domain/transfer"
)

// CreateTransferRequest is the payload to record a transfer.
// A missing amount decodes as zero and is rejected by the domain.
type CreateTransferRequest struct {
	Amount        decimal.Decimal   `json:"amount" swaggertype:"number" example:"1000"`
	CompanyID     string            `json:"companyId" binding:"required" example:"4f1d2c1a-6c55-4d6b-9a9b-4a7a0f3b3f10"`
	DebitAccount  string            `json:"debitAccount" example:"1234567890"`
	CreditAccount string            `json:"creditAccount" example:"0987654321"`
	CreatedAt     *shared.Timestamp `json:"createdAt,omitempty" swaggertype:"string" example:"2024-01-15T10:30:00.000Z"`
}

// TransferResponse is the representation returned to clients. Amount is the
// exact decimal written as a JSON number literal, never rounded through float64.
type TransferResponse struct {
	ID            string      `json:"id"`
	Amount        json.Number `json:"amount" swaggertype:"number" example:"1500.5"`
	CompanyID     string      `json:"companyId"`
	DebitAccount  string      `json:"debitAccount"`
	CreditAccount string      `json:"creditAccount"`
	CreatedAt     string      `json:"createdAt" example:"2024-01-15T10:30:00.000Z"`
}

// ToTransferResponse maps a Transfer to its response DTO.
func ToTransferResponse(t *transfer.Transfer) TransferResponse {
	return TransferResponse{
		ID:            t.ID.String(),
		Amount:        json.Number(t.Amount.String()),
		CompanyID:     t.CompanyID,
		DebitAccount:  t.DebitAccount.String(),
		CreditAccount: t.CreditAccount.String(),
		CreatedAt:     shared.FormatTimestamp(t.CreatedAt),
	}
}

// ToTransferResponses maps a slice of transfers.
func ToTransferResponses(transfers []transfer.Transfer) []TransferResponse {
	responses := make([]TransferResponse, len(transfers))
	for i := range transfers {
		responses[i] = ToTransferResponse(&transfers[i])
	}
	return responses
}
