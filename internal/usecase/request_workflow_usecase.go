package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"app_oficios/internal/domain/entities"
	"app_oficios/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidRequesterID     = errors.New("invalid requester id")
	ErrInvalidProfessionalID  = errors.New("invalid professional id")
	ErrInvalidServiceDate     = errors.New("invalid service date")
	ErrServiceDateNotFuture   = errors.New("service date must be at least tomorrow")
	ErrNoteTooShort           = errors.New("note must have at least 10 characters")
	ErrPendingRequestExists   = errors.New("a pending request already exists for this professional")
	ErrRequestNotFound        = errors.New("request not found")
	ErrRequestAlreadyResolved = errors.New("request already resolved")
	ErrInvalidRequestID       = errors.New("invalid request id")
)

const minNoteLength = 10

// SubmitRequestCommand is the free-form submission payload. ServiceDate uses
// the YYYY-MM-DD wire format; ReservedTime is optional (HH:mm:ss).
type SubmitRequestCommand struct {
	RequesterID    string
	ProfessionalID string
	ServiceDate    string
	ReservedTime   string
	Note           string
}

// IRequestWorkflowUseCase exposes the solicitud workflow: safe submission
// with duplicate-pending protection, professional responses, and the
// per-role request lists.
//
// Accepting a request is step one of a two-step sequence; spawning the job
// belongs to IJobLifecycleUseCase so a failed second step can be retried
// without re-accepting.

type IRequestWorkflowUseCase interface {
	SubmitRequest(ctx context.Context, cmd SubmitRequestCommand) (entities.ServiceRequest, error)
	RespondToRequest(ctx context.Context, requestID string, accepted bool) (entities.ServiceRequest, error)
	CheckPendingExists(ctx context.Context, requesterID, professionalID string) bool
	ListPendingForProfessional(ctx context.Context, professionalID string) ([]entities.ServiceRequest, error)
	ListForRequester(ctx context.Context, requesterID string) ([]entities.RequestWithProfessional, error)
}

type RequestWorkflowUseCase struct {
	repo      interfaces.IServiceRequestRepository
	profRepo  interfaces.IProfessionalRepository
	opTimeout time.Duration
	now       func() time.Time
}

var _ IRequestWorkflowUseCase = (*RequestWorkflowUseCase)(nil)

func NewRequestWorkflowUseCase(repo interfaces.IServiceRequestRepository, profRepo interfaces.IProfessionalRepository) *RequestWorkflowUseCase {
	return &RequestWorkflowUseCase{
		repo:      repo,
		profRepo:  profRepo,
		opTimeout: opTimeoutFromEnv(),
		now:       time.Now,
	}
}

// SubmitRequest validates the command, rejects duplicates for the pair, and
// creates the request PENDIENTE. All validation failures happen before any
// repository call.
func (u *RequestWorkflowUseCase) SubmitRequest(ctx context.Context, cmd SubmitRequestCommand) (entities.ServiceRequest, error) {
	requesterID := strings.TrimSpace(cmd.RequesterID)
	professionalID := strings.TrimSpace(cmd.ProfessionalID)
	note := strings.TrimSpace(cmd.Note)

	if requesterID == "" {
		return entities.ServiceRequest{}, ErrInvalidRequesterID
	}
	if professionalID == "" {
		return entities.ServiceRequest{}, ErrInvalidProfessionalID
	}
	if len([]rune(note)) < minNoteLength {
		return entities.ServiceRequest{}, ErrNoteTooShort
	}

	serviceDate, err := time.Parse(entities.SlotDateLayout, strings.TrimSpace(cmd.ServiceDate))
	if err != nil {
		return entities.ServiceRequest{}, ErrInvalidServiceDate
	}
	// Minimum-date rule: tomorrow or later, never same-day.
	today := u.now().UTC().Truncate(24 * time.Hour)
	if !serviceDate.After(today) {
		return entities.ServiceRequest{}, ErrServiceDateNotFuture
	}

	ctx, cancel := withOpTimeout(ctx, u.opTimeout)
	defer cancel()

	existing, err := u.repo.FindPending(ctx, requesterID, professionalID)
	if err != nil {
		log.Printf("[request][usecase] pending lookup failed requester_id=%s professional_id=%s err=%v", requesterID, professionalID, err)
		return entities.ServiceRequest{}, mapTimeout(err)
	}
	if existing.ID != "" {
		return entities.ServiceRequest{}, ErrPendingRequestExists
	}

	r := entities.ServiceRequest{
		ID:             uuid.NewString(),
		RequesterID:    requesterID,
		ProfessionalID: professionalID,
		RequestedAt:    u.now().UTC(),
		ServiceDate:    serviceDate.Format(entities.SlotDateLayout),
		ReservedTime:   strings.TrimSpace(cmd.ReservedTime),
		Note:           note,
		Status:         entities.RequestStatusPendiente,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[request][usecase] create failed requester_id=%s professional_id=%s err=%v", requesterID, professionalID, err)
		return entities.ServiceRequest{}, mapTimeout(err)
	}
	log.Printf("[request][usecase] submitted request_id=%s requester_id=%s professional_id=%s service_date=%s", created.ID, requesterID, professionalID, created.ServiceDate)
	return created, nil
}

// RespondToRequest resolves a PENDIENTE request to ACEPTADA or RECHAZADA.
// Resolved requests are terminal and never re-opened.
func (u *RequestWorkflowUseCase) RespondToRequest(ctx context.Context, requestID string, accepted bool) (entities.ServiceRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.ServiceRequest{}, ErrInvalidRequestID
	}

	ctx, cancel := withOpTimeout(ctx, u.opTimeout)
	defer cancel()

	r, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		return entities.ServiceRequest{}, mapTimeout(err)
	}
	if r.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	if r.Status != entities.RequestStatusPendiente {
		return entities.ServiceRequest{}, ErrRequestAlreadyResolved
	}

	status := entities.RequestStatusRechazada
	if accepted {
		status = entities.RequestStatusAceptada
	}

	updated, err := u.repo.UpdateStatus(ctx, requestID, status)
	if err != nil {
		log.Printf("[request][usecase] respond failed request_id=%s accepted=%t err=%v", requestID, accepted, err)
		return entities.ServiceRequest{}, mapTimeout(err)
	}
	log.Printf("[request][usecase] responded request_id=%s status=%s", requestID, status)
	return updated, nil
}

// CheckPendingExists reports whether the pair already has a PENDIENTE
// request. It fails open: a lookup failure yields false so a flaky backend
// never blocks the submission form, and the submission itself remains the
// final authority.
func (u *RequestWorkflowUseCase) CheckPendingExists(ctx context.Context, requesterID, professionalID string) bool {
	requesterID = strings.TrimSpace(requesterID)
	professionalID = strings.TrimSpace(professionalID)
	if requesterID == "" || professionalID == "" {
		return false
	}

	ctx, cancel := withOpTimeout(ctx, u.opTimeout)
	defer cancel()

	existing, err := u.repo.FindPending(ctx, requesterID, professionalID)
	if err != nil {
		log.Printf("[request][usecase] pending check failed (treating as none) requester_id=%s professional_id=%s err=%v", requesterID, professionalID, err)
		return false
	}
	return existing.ID != ""
}

// ListPendingForProfessional returns the professional's inbox. No pending
// requests is an empty list, not an error.
func (u *RequestWorkflowUseCase) ListPendingForProfessional(ctx context.Context, professionalID string) ([]entities.ServiceRequest, error) {
	professionalID = strings.TrimSpace(professionalID)
	if professionalID == "" {
		return nil, ErrInvalidProfessionalID
	}

	ctx, cancel := withOpTimeout(ctx, u.opTimeout)
	defer cancel()

	list, err := u.repo.ListPendingByProfessional(ctx, professionalID)
	if err != nil {
		return nil, mapTimeout(err)
	}
	if list == nil {
		list = []entities.ServiceRequest{}
	}
	return list, nil
}

// ListForRequester joins each request with the professional's public profile.
// A missing profile degrades to the bare request rather than failing the
// whole list.
func (u *RequestWorkflowUseCase) ListForRequester(ctx context.Context, requesterID string) ([]entities.RequestWithProfessional, error) {
	requesterID = strings.TrimSpace(requesterID)
	if requesterID == "" {
		return nil, ErrInvalidRequesterID
	}

	ctx, cancel := withOpTimeout(ctx, u.opTimeout)
	defer cancel()

	list, err := u.repo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, mapTimeout(err)
	}

	profiles := make(map[string]entities.Professional, len(list))
	out := make([]entities.RequestWithProfessional, 0, len(list))
	for _, r := range list {
		p, ok := profiles[r.ProfessionalID]
		if !ok {
			p, err = u.profRepo.GetByID(ctx, r.ProfessionalID)
			if err != nil {
				log.Printf("[request][usecase] professional lookup failed professional_id=%s err=%v", r.ProfessionalID, err)
				p = entities.Professional{}
			}
			profiles[r.ProfessionalID] = p
		}
		out = append(out, entities.RequestWithProfessional{
			ServiceRequest:       r,
			ProfessionalName:     p.Name,
			ProfessionalLastName: p.LastName,
			Trade:                p.Trade,
			ImageURL:             p.ImageURL,
		})
	}
	return out, nil
}
