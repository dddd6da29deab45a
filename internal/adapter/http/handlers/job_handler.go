package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "app_oficios/internal/adapter/http/dto/request"
	response "app_oficios/internal/adapter/http/dto/response"
	"app_oficios/internal/domain/entities"
	"app_oficios/internal/usecase"
	"app_oficios/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)

// JobHandler handles HTTP requests for trabajos: creation from accepted
// requests, the state-machine transitions, and the per-role job lists.

type JobHandler struct {
	usecase usecase.IJobLifecycleUseCase
}

func NewJobHandler(uc usecase.IJobLifecycleUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// CreateFromRequest spawns the job owned by an accepted request. Retrying
// after a partial accept+create failure is safe: a duplicate yields 409.
func (h *JobHandler) CreateFromRequest(c *gin.Context) {
	requestID := c.Param("id_solicitud")
	log.Printf("[job][handler] create start request_id=%s", requestID)

	created, err := h.usecase.CreateFromAcceptedRequest(c.Request.Context(), requestID)
	if err != nil {
		log.Printf("[job][handler] create failed request_id=%s err=%v", requestID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[job][handler] create success job_id=%s request_id=%s status=%s", created.ID, requestID, created.Status)

	c.JSON(http.StatusCreated, response.FromJob(created))
}

func (h *JobHandler) StartJob(c *gin.Context) {
	h.transition(c, "start", h.usecase.Start)
}

func (h *JobHandler) PauseJob(c *gin.Context) {
	h.transition(c, "pause", h.usecase.Pause)
}

func (h *JobHandler) ResumeJob(c *gin.Context) {
	h.transition(c, "resume", h.usecase.Resume)
}

// FinalizeJob settles the job with its closing description and cost.
func (h *JobHandler) FinalizeJob(c *gin.Context) {
	jobID := c.Param("id")
	var payload request.FinalizeJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}
	log.Printf("[job][handler] finalize start job_id=%s", jobID)

	updated, err := h.usecase.Finalize(c.Request.Context(), jobID, payload.Description, payload.FinalCost)
	if err != nil {
		log.Printf("[job][handler] finalize failed job_id=%s err=%v", jobID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[job][handler] finalize success job_id=%s worked_seconds=%d", jobID, updated.TotalWorkedSeconds)

	c.JSON(http.StatusOK, response.FromJob(updated))
}

// CancelJob cancels the job with a mandatory ?motivo= reason.
func (h *JobHandler) CancelJob(c *gin.Context) {
	jobID := c.Param("id")
	reason := c.Query("motivo")
	log.Printf("[job][handler] cancel start job_id=%s", jobID)

	updated, err := h.usecase.Cancel(c.Request.Context(), jobID, reason)
	if err != nil {
		log.Printf("[job][handler] cancel failed job_id=%s err=%v", jobID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(updated))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	jobID := c.Param("id")

	j, err := h.usecase.GetByID(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(j))
}

func (h *JobHandler) GetJobByRequest(c *gin.Context) {
	requestID := c.Param("id_solicitud")

	j, err := h.usecase.GetByRequestID(c.Request.Context(), requestID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(j))
}

// ListByProfessional lists the professional's jobs, optionally filtered by
// ?estado=.
func (h *JobHandler) ListByProfessional(c *gin.Context) {
	professionalID := c.Param("id")
	status, ok := parseJobStatus(c.Query("estado"))
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_JOB_STATUS", "Invalid job status filter", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	list, err := h.usecase.ListByProfessional(c.Request.Context(), professionalID, status)
	if err != nil {
		log.Printf("[job][handler] list-by-professional failed professional_id=%s err=%v", professionalID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobs(list))
}

// ListByRequester lists the user's jobs, optionally filtered by ?estado=.
func (h *JobHandler) ListByRequester(c *gin.Context) {
	requesterID := c.Param("id")
	status, ok := parseJobStatus(c.Query("estado"))
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_JOB_STATUS", "Invalid job status filter", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	list, err := h.usecase.ListByRequester(c.Request.Context(), requesterID, status)
	if err != nil {
		log.Printf("[job][handler] list-by-requester failed requester_id=%s err=%v", requesterID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobs(list))
}

// ListUnbilled lists finished jobs that still lack an invoice.
func (h *JobHandler) ListUnbilled(c *gin.Context) {
	list, err := h.usecase.ListUnbilled(c.Request.Context())
	if err != nil {
		log.Printf("[job][handler] list-unbilled failed err=%v", err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobs(list))
}

func (h *JobHandler) transition(
	c *gin.Context,
	name string,
	op func(ctx context.Context, jobID string) (entities.Job, error),
) {
	jobID := c.Param("id")
	log.Printf("[job][handler] %s start job_id=%s", name, jobID)

	updated, err := op(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[job][handler] %s failed job_id=%s err=%v", name, jobID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[job][handler] %s success job_id=%s status=%s", name, jobID, updated.Status)

	c.JSON(http.StatusOK, response.FromJob(updated))
}

func parseJobStatus(raw string) (entities.JobStatus, bool) {
	switch entities.JobStatus(raw) {
	case "", entities.JobStatusPendiente, entities.JobStatusEnProgreso,
		entities.JobStatusPausado, entities.JobStatusFinalizado, entities.JobStatusCancelado:
		return entities.JobStatus(raw), true
	default:
		return "", false
	}
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidRequesterID),
		errors.Is(err, usecase.ErrInvalidProfessionalID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyFinalDescription):
		return pkg.NewDomainErrorSimple("EMPTY_FINAL_DESCRIPTION", "Finalization description is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFinalCost):
		return pkg.NewDomainErrorSimple("INVALID_FINAL_COST", "Final cost must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyCancellationReason):
		return pkg.NewDomainErrorSimple("EMPTY_CANCELLATION_REASON", "Cancellation reason is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotAccepted):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_ACCEPTED", "Request is not accepted", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobAlreadyExists):
		return pkg.NewDomainErrorSimple("JOB_ALREADY_EXISTS", "A job already exists for this request", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStateTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATE_TRANSITION", "Invalid state transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrOperationTimeout):
		return pkg.NewDomainErrorSimple("OPERATION_TIMEOUT", "Operation timed out", http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
