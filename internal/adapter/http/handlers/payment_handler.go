package handlers

import (
	"errors"
	"log"
	"net/http"

	request "app_oficios/internal/adapter/http/dto/request"
	response "app_oficios/internal/adapter/http/dto/response"
	"app_oficios/internal/usecase"
	"app_oficios/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for Mercado Pago checkout
// preferences issued against finished jobs.

type PaymentHandler struct {
	usecase usecase.IPaymentPreferenceUseCase
}

func NewPaymentHandler(uc usecase.IPaymentPreferenceUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePreference issues a fresh checkout preference for a finished job.
func (h *PaymentHandler) CreatePreference(c *gin.Context) {
	var payload request.CreatePreferenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PREFERENCE_INPUT", "Invalid preference payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] preference start job_id=%s amount=%.2f", payload.JobID, payload.Amount)

	pref, err := h.usecase.CreatePreferenceForJob(c.Request.Context(), usecase.PreferenceCommand{
		JobID:       payload.JobID,
		Title:       payload.Title,
		Description: payload.Description,
		Amount:      payload.Amount,
		Quantity:    payload.Quantity,
	})
	if err != nil {
		log.Printf("[payment][handler] preference failed job_id=%s err=%v", payload.JobID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] preference success job_id=%s preference_id=%s", payload.JobID, pref.PreferenceID)

	c.JSON(http.StatusCreated, response.FromPreference(pref))
}

// GetGatewayConfig exposes the public key and sandbox flag the checkout
// widget needs.
func (h *PaymentHandler) GetGatewayConfig(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromGatewayConfig(h.usecase.GatewayConfig()))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidPreferenceTitle),
		errors.Is(err, usecase.ErrInvalidPreferenceAmount),
		errors.Is(err, usecase.ErrInvalidPreferenceQuantity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFinished):
		return pkg.NewDomainErrorSimple("JOB_NOT_FINISHED", "Job is not finished", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobAlreadyInvoiced):
		return pkg.NewDomainErrorSimple("JOB_ALREADY_INVOICED", "Job already has an invoice", http.StatusConflict)
	case errors.Is(err, usecase.ErrOperationTimeout):
		return pkg.NewDomainErrorSimple("OPERATION_TIMEOUT", "Operation timed out", http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
