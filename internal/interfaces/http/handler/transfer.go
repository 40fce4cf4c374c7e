package handler

import (
	"github.com/gin-gonic/gin"

	transferapp "github.com/interbanking/backend/internal/application/transfer"
)

// TransferHandler handles transfer-related API endpoints
type TransferHandler struct {
	BaseHandler
	transferService *transferapp.Service
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(transferService *transferapp.Service) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
	}
}

// Create godoc
// @ID           createTransfer
// @Summary      Record a transfer
// @Description  Records a transfer for an existing company. createdAt defaults to now.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Replays the stored response for a repeated request"
// @Param        request body transferapp.CreateTransferRequest true "Transfer data"
// @Success      201 {object} APIResponse[transferapp.TransferResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /transfers [post]
func (h *TransferHandler) Create(c *gin.Context) {
	var req transferapp.CreateTransferRequest
	if !h.BindJSON(c, &req) {
		return
	}

	transfer, err := h.transferService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, transfer)
}

// List godoc
// @ID           listTransfers
// @Summary      List transfers
// @Tags         transfers
// @Produce      json
// @Success      200 {object} APIResponse[[]transferapp.TransferResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /transfers [get]
func (h *TransferHandler) List(c *gin.Context) {
	transfers, err := h.transferService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, transfers)
}

// GetByID godoc
// @ID           getTransfer
// @Summary      Get transfer by ID
// @Tags         transfers
// @Produce      json
// @Param        id path string true "Transfer ID"
// @Success      200 {object} APIResponse[transferapp.TransferResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /transfers/{id} [get]
func (h *TransferHandler) GetByID(c *gin.Context) {
	transfer, err := h.transferService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, transfer)
}

// Delete godoc
// @ID           deleteTransfer
// @Summary      Delete a transfer
// @Tags         transfers
// @Param        id path string true "Transfer ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /transfers/{id} [delete]
func (h *TransferHandler) Delete(c *gin.Context) {
	if err := h.transferService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
