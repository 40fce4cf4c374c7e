// Package lambda adapts company adhesion to AWS API Gateway proxy events.
package lambda

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	companyapp "github.com/interbanking/backend/internal/application/company"
	"github.com/interbanking/backend/internal/domain/shared"
)

const (
	missingFieldsMessage = "Missing required fields: cuit, name, adhesionDate, type"
	invalidJSONMessage   = "Request body must be valid JSON"
	adheredMessage       = "Company successfully adhered"
)

// CompanyCreator registers a company adhesion.
type CompanyCreator interface {
	Create(ctx context.Context, req companyapp.CreateCompanyRequest) (*companyapp.CompanyResponse, error)
}

// InitFunc builds the CompanyCreator. It runs until it first succeeds and the
// result is kept for the life of the execution environment.
type InitFunc func() (CompanyCreator, error)

// AdhesionRequest is the body accepted by the adhesion function.
type AdhesionRequest struct {
	Cuit         string `json:"cuit"`
	Name         string `json:"name"`
	AdhesionDate string `json:"adhesionDate"`
	Type         string `json:"type"`
}

// AdhesionResponse is the body returned by the adhesion function.
type AdhesionResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	CompanyID string `json:"companyId,omitempty"`
}

// Handler serves company adhesion events.
type Handler struct {
	init   InitFunc
	logger *zap.Logger

	mu      sync.Mutex
	service CompanyCreator
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for failed invocations.
func WithLogger(l *zap.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHandler creates a Handler. init is deferred to the first invocation. A
// failed init is not cached, so a warm container retries it on the next event.
func NewHandler(init InitFunc, opts ...Option) *Handler {
	h := &Handler{
		init:   init,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle processes one API Gateway proxy request.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	service, err := h.companyService()
	if err != nil {
		h.logger.Error("Company service initialization failed", zap.Error(err))
		return respond(http.StatusInternalServerError, AdhesionResponse{Message: err.Error()}), nil
	}

	var req AdhesionRequest
	body := strings.TrimSpace(event.Body)
	if body == "" {
		body = "{}"
	}
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return respond(http.StatusBadRequest, AdhesionResponse{Message: invalidJSONMessage}), nil
	}

	if req.Cuit == "" || req.Name == "" || req.AdhesionDate == "" || req.Type == "" {
		return respond(http.StatusBadRequest, AdhesionResponse{Message: missingFieldsMessage}), nil
	}

	adhesionDate, err := shared.ParseTimestamp(req.AdhesionDate)
	if err != nil {
		return errorResponse(err), nil
	}

	created, err := service.Create(ctx, companyapp.CreateCompanyRequest{
		Cuit:         req.Cuit,
		Name:         req.Name,
		AdhesionDate: &shared.Timestamp{Time: adhesionDate},
		Type:         req.Type,
	})
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			h.logger.Error("Company adhesion failed", zap.String("cuit", req.Cuit), zap.Error(err))
		}
		return errorResponse(err), nil
	}

	h.logger.Info("Company adhered", zap.String("company_id", created.ID))
	return respond(http.StatusCreated, AdhesionResponse{
		Success:   true,
		Message:   adheredMessage,
		CompanyID: created.ID,
	}), nil
}

func (h *Handler) companyService() (CompanyCreator, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.service != nil {
		return h.service, nil
	}
	service, err := h.init()
	if err != nil {
		return nil, err
	}
	h.service = service
	return service, nil
}

func errorResponse(err error) events.APIGatewayProxyResponse {
	return respond(statusFor(err), AdhesionResponse{Message: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, shared.ErrValidation), errors.Is(err, shared.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrAlreadyExists), errors.Is(err, shared.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respond(status int, body AdhesionResponse) events.APIGatewayProxyResponse {
	// AdhesionResponse only holds strings and a bool, so Marshal cannot fail.
	payload, _ := json.Marshal(body)
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(payload),
	}
}
