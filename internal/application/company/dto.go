package company

import (
	"time"

	"github.com/interbanking/backend/internal/domain/company"
	"github.com/interbanking/backend/internal/domain/shared"
)

// CreateCompanyRequest is the payload to register (adhere) a company.
// Field rules are enforced by the domain so their messages reach the client.
type CreateCompanyRequest struct {
	Cuit         string            `json:"cuit" example:"20-12345678-9"`
	Name         string            `json:"name" example:"Test Company S.A."`
	AdhesionDate *shared.Timestamp `json:"adhesionDate" binding:"required" swaggertype:"string" example:"2024-01-15T00:00:00.000Z"`
	Type         string            `json:"type" example:"CORPORATE" enums:"PYME,CORPORATE"`
}

// ListFilter restricts List to companies that adhered within a period.
type ListFilter struct {
	Period shared.Period
}

// CompanyResponse is the representation returned to clients.
type CompanyResponse struct {
	ID           string    `json:"id"`
	Cuit         string    `json:"cuit"`
	Name         string    `json:"name"`
	AdhesionDate time.Time `json:"adhesionDate"`
	Type         string    `json:"type"`
}

// ToCompanyResponse maps a Company to its response DTO.
func ToCompanyResponse(c *company.Company) CompanyResponse {
	return CompanyResponse{
		ID:           c.ID.String(),
		Cuit:         c.Cuit.String(),
		Name:         c.Name.String(),
		AdhesionDate: c.AdhesionDate.UTC(),
		Type:         c.Type.String(),
	}
}

// ToCompanyResponses maps a slice of companies.
func ToCompanyResponses(companies []company.Company) []CompanyResponse {
	responses := make([]CompanyResponse, len(companies))
	for i := range companies {
		responses[i] = ToCompanyResponse(&companies[i])
	}
	return responses
}
