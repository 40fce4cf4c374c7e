package handler

import (
	"github.com/gin-gonic/gin"

	companyapp "github.com/interbanking/backend/internal/application/company"
	"github.com/interbanking/backend/internal/domain/shared"
	"github.com/interbanking/backend/internal/interfaces/http/dto"
)

// CompanyHandler handles company-related API endpoints
type CompanyHandler struct {
	BaseHandler
	companyService *companyapp.Service
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companyService *companyapp.Service) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// Create godoc
// @ID           createCompany
// @Summary      Register a company
// @Description  Adheres a new company. The CUIT must be unique.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Replays the stored response for a repeated request"
// @Param        request body companyapp.CreateCompanyRequest true "Company data"
// @Success      201 {object} APIResponse[companyapp.CompanyResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req companyapp.CreateCompanyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	company, err := h.companyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, company)
}

// List godoc
// @ID           listCompanies
// @Summary      List companies
// @Description  Returns every registered company
// @Tags         companies
// @Produce      json
// @Success      200 {object} APIResponse[[]companyapp.CompanyResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companyService.List(c.Request.Context(), nil)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, companies)
}

// ListWithTransfers godoc
// @ID           listCompaniesWithTransfers
// @Summary      Companies with transfers
// @Description  Returns the companies that made at least one transfer within the period
// @Tags         companies
// @Produce      json
// @Param        period query string false "Lookback period" Enums(last_month) default(last_month)
// @Success      200 {object} APIResponse[[]companyapp.CompanyResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /companies/transfers [get]
func (h *CompanyHandler) ListWithTransfers(c *gin.Context) {
	period, ok := h.bindPeriod(c)
	if !ok {
		return
	}

	companies, err := h.companyService.ListWithTransfers(c.Request.Context(), period)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, companies)
}

// ListRecentAdhesions godoc
// @ID           listCompanyAdhesions
// @Summary      Recent adhesions
// @Description  Returns the companies that adhered within the period
// @Tags         companies
// @Produce      json
// @Param        period query string false "Lookback period" Enums(last_month) default(last_month)
// @Success      200 {object} APIResponse[[]companyapp.CompanyResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /companies/adhesions [get]
func (h *CompanyHandler) ListRecentAdhesions(c *gin.Context) {
	period, ok := h.bindPeriod(c)
	if !ok {
		return
	}

	companies, err := h.companyService.ListRecentAdhesions(c.Request.Context(), period)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, companies)
}

// GetByID godoc
// @ID           getCompany
// @Summary      Get company by ID
// @Tags         companies
// @Produce      json
// @Param        id path string true "Company ID"
// @Success      200 {object} APIResponse[companyapp.CompanyResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /companies/{id} [get]
func (h *CompanyHandler) GetByID(c *gin.Context) {
	company, err := h.companyService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, company)
}

// Delete godoc
// @ID           deleteCompany
// @Summary      Delete a company
// @Description  Companies that still have transfers cannot be deleted
// @Tags         companies
// @Param        id path string true "Company ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	if err := h.companyService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

func (h *CompanyHandler) bindPeriod(c *gin.Context) (shared.Period, bool) {
	var query dto.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return "", false
	}

	period, err := shared.ParsePeriod(query.Period)
	if err != nil {
		h.HandleError(c, err)
		return "", false
	}
	return period, true
}
