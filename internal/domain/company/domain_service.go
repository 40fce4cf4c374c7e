package company

import (
	"fmt"

	"github.com/interbanking/backend/internal/domain/shared"
)

// DomainService holds company rules that span more than one aggregate.
type DomainService struct{}

// NewDomainService creates a DomainService.
func NewDomainService() *DomainService {
	return &DomainService{}
}

// ValidateCuitUniqueness fails when existing, the result of a lookup by
// CUIT, is not nil.
func (s *DomainService) ValidateCuitUniqueness(existing *Company) error {
	if existing != nil {
		return DuplicateCuitError(existing.Cuit.String())
	}
	return nil
}

// DuplicateCuitError is returned when a CUIT is already registered.
func DuplicateCuitError(cuit string) error {
	return shared.NewAlreadyExistsError(fmt.Sprintf("Company with CUIT %s already exists", cuit))
}

// NotFoundError is returned when no company has the given id.
func NotFoundError(id string) error {
	return shared.NewNotFoundError("Company", id)
}

// HasTransfersError is returned when deleting a company that still has transfers.
func HasTransfersError(id string) error {
	return shared.NewConflictError(fmt.Sprintf("Company with ID %s has transfers and cannot be deleted", id))
}
