package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "app_oficios/internal/adapter/http/dto/request"
	response "app_oficios/internal/adapter/http/dto/response"
	"app_oficios/internal/usecase"
	"app_oficios/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid request payload", http.StatusBadRequest)

// ServiceRequestHandler handles HTTP requests for solicitudes: free-form
// submission, professional responses, the per-role lists, and the weekly
// slot picker that feeds confirmed bookings.

type ServiceRequestHandler struct {
	workflow   usecase.IRequestWorkflowUseCase
	scheduling usecase.ISchedulingUseCase
}

func NewServiceRequestHandler(workflow usecase.IRequestWorkflowUseCase, scheduling usecase.ISchedulingUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{workflow: workflow, scheduling: scheduling}
}

// SubmitRequest creates a free-form PENDIENTE request.
func (h *ServiceRequestHandler) SubmitRequest(c *gin.Context) {
	var payload request.SubmitRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}
	log.Printf("[request][handler] submit start requester_id=%s professional_id=%s", payload.RequesterID, payload.ProfessionalID)

	created, err := h.workflow.SubmitRequest(c.Request.Context(), usecase.SubmitRequestCommand{
		RequesterID:    payload.RequesterID,
		ProfessionalID: payload.ProfessionalID,
		ServiceDate:    payload.ServiceDate,
		ReservedTime:   payload.ReservedTime,
		Note:           payload.Note,
	})
	if err != nil {
		log.Printf("[request][handler] submit failed requester_id=%s err=%v", payload.RequesterID, err)
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[request][handler] submit success request_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromServiceRequest(created))
}

// RespondToRequest resolves a pending request; ?aceptada=true accepts it,
// anything else rejects.
func (h *ServiceRequestHandler) RespondToRequest(c *gin.Context) {
	requestID := c.Param("id_solicitud")
	accepted, err := strconv.ParseBool(c.DefaultQuery("aceptada", "false"))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[request][handler] respond start request_id=%s accepted=%t", requestID, accepted)

	updated, err := h.workflow.RespondToRequest(c.Request.Context(), requestID, accepted)
	if err != nil {
		log.Printf("[request][handler] respond failed request_id=%s err=%v", requestID, err)
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(updated))
}

// ListPendingForProfessional returns the professional's pending inbox.
func (h *ServiceRequestHandler) ListPendingForProfessional(c *gin.Context) {
	professionalID := c.Param("id_profesional")

	list, err := h.workflow.ListPendingForProfessional(c.Request.Context(), professionalID)
	if err != nil {
		log.Printf("[request][handler] list-pending failed professional_id=%s err=%v", professionalID, err)
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequests(list))
}

// ListForRequester returns the user's requests joined with each
// professional's public profile.
func (h *ServiceRequestHandler) ListForRequester(c *gin.Context) {
	requesterID := c.Param("id_usuario")

	list, err := h.workflow.ListForRequester(c.Request.Context(), requesterID)
	if err != nil {
		log.Printf("[request][handler] list-for-user failed requester_id=%s err=%v", requesterID, err)
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequestsWithProfessional(list))
}

// CheckPendingExists reports whether the pair already has a pending request.
// The probe fails open, so this endpoint never errors.
func (h *ServiceRequestHandler) CheckPendingExists(c *gin.Context) {
	requesterID := c.Param("id_usuario")
	professionalID := c.Param("id_profesional")

	exists := h.workflow.CheckPendingExists(c.Request.Context(), requesterID, professionalID)

	c.JSON(http.StatusOK, response.PendingCheckResponse{PendingExists: exists})
}

// GetWeeklySlots lists the professional's bookable slots for the 7 days
// starting at ?fecha_inicio, grouped per day.
func (h *ServiceRequestHandler) GetWeeklySlots(c *gin.Context) {
	professionalID := c.Param("id_profesional")
	weekStart := c.Query("fecha_inicio")

	duration := 0
	if raw := c.Query("duracion"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_SLOT_DURATION", "Invalid slot duration", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		duration = parsed
	}

	slots, err := h.scheduling.GetAvailableSlotsForWeek(c.Request.Context(), professionalID, weekStart, duration)
	if err != nil {
		log.Printf("[scheduling][handler] weekly-slots failed professional_id=%s week_start=%s err=%v", professionalID, weekStart, err)
		appErr := mapSchedulingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSlots(slots, usecase.GroupSlotsByDate(slots)))
}

// ConfirmSlot books a chosen slot, creating the request directly ACEPTADA.
func (h *ServiceRequestHandler) ConfirmSlot(c *gin.Context) {
	var payload request.ConfirmSlotRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}
	log.Printf("[scheduling][handler] confirm start requester_id=%s professional_id=%s date=%s time=%s", payload.RequesterID, payload.ProfessionalID, payload.Date, payload.StartTime)

	created, err := h.scheduling.ConfirmSlot(c.Request.Context(), usecase.ConfirmSlotCommand{
		RequesterID:     payload.RequesterID,
		ProfessionalID:  payload.ProfessionalID,
		Date:            payload.Date,
		StartTime:       payload.StartTime,
		DurationMinutes: payload.ResolveDuration(),
		Note:            payload.Note,
	})
	if err != nil {
		log.Printf("[scheduling][handler] confirm failed requester_id=%s err=%v", payload.RequesterID, err)
		appErr := mapSchedulingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[scheduling][handler] confirm success request_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromServiceRequest(created))
}

func mapServiceRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequesterID),
		errors.Is(err, usecase.ErrInvalidProfessionalID),
		errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidServiceDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceDateNotFuture):
		return pkg.NewDomainErrorSimple("SERVICE_DATE_NOT_FUTURE", "Service date must be at least tomorrow", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoteTooShort):
		return pkg.NewDomainErrorSimple("NOTE_TOO_SHORT", "Note must have at least 10 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPendingRequestExists):
		return pkg.NewDomainErrorSimple("PENDING_REQUEST_EXISTS", "A pending request already exists for this professional", http.StatusConflict)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestAlreadyResolved):
		return pkg.NewDomainErrorSimple("REQUEST_ALREADY_RESOLVED", "Request already resolved", http.StatusConflict)
	case errors.Is(err, usecase.ErrOperationTimeout):
		return pkg.NewDomainErrorSimple("OPERATION_TIMEOUT", "Operation timed out", http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapSchedulingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequesterID),
		errors.Is(err, usecase.ErrInvalidProfessionalID),
		errors.Is(err, usecase.ErrInvalidWeekStart),
		errors.Is(err, usecase.ErrInvalidSlotDuration),
		errors.Is(err, usecase.ErrInvalidServiceDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSlotDateInPast):
		return pkg.NewDomainErrorSimple("SLOT_DATE_IN_PAST", "Slot date is in the past", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfessionalNotFound):
		return pkg.NewDomainErrorSimple("PROFESSIONAL_NOT_FOUND", "Professional not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSlotNotAvailable):
		return pkg.NewDomainErrorSimple("SLOT_NOT_AVAILABLE", "Slot is no longer available", http.StatusConflict)
	case errors.Is(err, usecase.ErrSlotOutsideAgenda):
		return pkg.NewDomainErrorSimple("SLOT_OUTSIDE_AGENDA", "Slot falls outside the professional's agenda", http.StatusConflict)
	// A fetch that timed out wraps both sentinels; the timeout wins.
	case errors.Is(err, usecase.ErrOperationTimeout):
		return pkg.NewDomainErrorSimple("OPERATION_TIMEOUT", "Operation timed out", http.StatusGatewayTimeout)
	case errors.Is(err, usecase.ErrSlotsUnavailable):
		return pkg.NewDomainErrorSimple("SLOTS_UNAVAILABLE", "Available slots could not be fetched", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
