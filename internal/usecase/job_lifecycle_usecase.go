package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"app_oficios/internal/domain/entities"
	"app_oficios/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidJobID            = errors.New("invalid job id")
	ErrJobNotFound             = errors.New("job not found")
	ErrJobAlreadyExists        = errors.New("a job already exists for this request")
	ErrRequestNotAccepted      = errors.New("request is not accepted")
	ErrInvalidStateTransition  = errors.New("invalid state transition")
	ErrEmptyFinalDescription   = errors.New("finalization description is required")
	ErrInvalidFinalCost        = errors.New("final cost must be greater than zero")
	ErrEmptyCancellationReason = errors.New("cancellation reason is required")
)

// JobLifecycleConfig tunes flow behavior that differs per dashboard.
// AutoStartOnCreation reproduces the flow where an accepted request's job
// goes straight to EN_PROGRESO; the default keeps the manual-start flow.
type JobLifecycleConfig struct {
	AutoStartOnCreation bool
}

// IJobLifecycleUseCase enforces the trabajo state machine and spawns jobs
// from accepted requests. Every operation is a single storage mutation with
// no automatic retry; failures carry the job id and attempted transition so
// the caller can retry deliberately.

type IJobLifecycleUseCase interface {
	CreateFromAcceptedRequest(ctx context.Context, requestID string) (entities.Job, error)
	Start(ctx context.Context, jobID string) (entities.Job, error)
	Pause(ctx context.Context, jobID string) (entities.Job, error)
	Resume(ctx context.Context, jobID string) (entities.Job, error)
	Finalize(ctx context.Context, jobID, description string, finalCost float64) (entities.Job, error)
	Cancel(ctx context.Context, jobID, reason string) (entities.Job, error)
	GetByID(ctx context.Context, jobID string) (entities.Job, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.Job, error)
	ListByProfessional(ctx context.Context, professionalID string, status entities.JobStatus) ([]entities.Job, error)
	ListByRequester(ctx context.Context, requesterID string, status entities.JobStatus) ([]entities.Job, error)
	ListUnbilled(ctx context.Context) ([]entities.Job, error)
}

type JobLifecycleUseCase struct {
	repo        interfaces.IJobRepository
	requestRepo interfaces.IServiceRequestRepository
	cfg         JobLifecycleConfig
	opTimeout   time.Duration
	now         func() time.Time
}

var _ IJobLifecycleUseCase = (*JobLifecycleUseCase)(nil)

func NewJobLifecycleUseCase(repo interfaces.IJobRepository, requestRepo interfaces.IServiceRequestRepository, cfg JobLifecycleConfig) *JobLifecycleUseCase {
	return &JobLifecycleUseCase{
		repo:        repo,
		requestRepo: requestRepo,
		cfg:         cfg,
		opTimeout:   opTimeoutFromEnv(),
		now:         time.Now,
	}
}

// CreateFromAcceptedRequest spawns the single job an accepted request owns.
// This is step two of the accept→create saga: it can be retried on its own
// after a partial failure without re-accepting the request.
func (u *JobLifecycleUseCase) CreateFromAcceptedRequest(ctx context.Context, requestID string) (entities.Job, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.Job{}, ErrInvalidRequestID
	}

	ctx, cancel := withOpTimeout(ctx, u.opTimeout)
	defer cancel()

	r, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return entities.Job{}, mapTimeout(err)
	}
	if r.ID == "" {
		return entities.Job{}, ErrRequestNotFound
	}
	if r.Status != entities.RequestStatusAceptada {
		return entities.Job{}, ErrRequestNotAccepted
	}

	// Exactly one job per accepted request.
	if existing, err := u.repo.GetByRequestID(ctx, requestID); err != nil {
		return entities.Job{}, mapTimeout(err)
	} else if existing.ID != "" {
		return entities.Job{}, ErrJobAlreadyExists
	}

	now := u.now().UTC()
	j := entities.Job{
		ID:             uuid.NewString(),
		RequestID:      requestID,
		RequesterID:    r.RequesterID,
		ProfessionalID: r.ProfessionalID,
		Status:         entities.JobStatusPendiente,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if u.cfg.AutoStartOnCreation {
		j.Status = entities.JobStatusEnProgreso
		j.StartedAt = now
	}

	created, err := u.repo.Create(ctx, j)
	if err != nil {
		log.Printf("[job][usecase] create failed request_id=%s err=%v", requestID, err)
		return entities.Job{}, mapTimeout(err)
	}
	log.Printf("[job][usecase] created job_id=%s request_id=%s status=%s", created.ID, requestID, created.Status)
	return created, nil
}

func (u *JobLifecycleUseCase) Start(ctx context.Context, jobID string) (entities.Job, error) {
	return u.transition(ctx, jobID, "start", func(j *entities.Job, now time.Time) error {
		if j.Status != entities.JobStatusPendiente {
			return transitionError(j.ID, j.Status, "start")
		}
		j.Status = entities.JobStatusEnProgreso
		j.StartedAt = now
		return nil
	})
}

// Pause freezes time accumulation: the open EN_PROGRESO segment is folded
// into WorkedBeforePauseSeconds.
func (u *JobLifecycleUseCase) Pause(ctx context.Context, jobID string) (entities.Job, error) {
	return u.transition(ctx, jobID, "pause", func(j *entities.Job, now time.Time) error {
		if j.Status != entities.JobStatusEnProgreso {
			return transitionError(j.ID, j.Status, "pause")
		}
		j.WorkedBeforePauseSeconds = j.WorkedSecondsAt(now)
		j.Status = entities.JobStatusPausado
		j.LastPausedAt = now
		return nil
	})
}

func (u *JobLifecycleUseCase) Resume(ctx context.Context, jobID string) (entities.Job, error) {
	return u.transition(ctx, jobID, "resume", func(j *entities.Job, now time.Time) error {
		if j.Status != entities.JobStatusPausado {
			return transitionError(j.ID, j.Status, "resume")
		}
		j.Status = entities.JobStatusEnProgreso
		j.ResumedAt = now
		return nil
	})
}

// Finalize settles the job from any non-terminal state. The payload is
// validated before anything is loaded or called.
func (u *JobLifecycleUseCase) Finalize(ctx context.Context, jobID, description string, finalCost float64) (entities.Job, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return entities.Job{}, ErrEmptyFinalDescription
	}
	if finalCost <= 0 {
		return entities.Job{}, ErrInvalidFinalCost
	}

	return u.transition(ctx, jobID, "finalize", func(j *entities.Job, now time.Time) error {
		if j.IsTerminal() {
			return transitionError(j.ID, j.Status, "finalize")
		}
		j.TotalWorkedSeconds = j.WorkedSecondsAt(now)
		j.Status = entities.JobStatusFinalizado
		j.FinishedAt = now
		j.FinalDescription = description
		j.FinalCost = finalCost
		return nil
	})
}

func (u *JobLifecycleUseCase) Cancel(ctx context.Context, jobID, reason string) (entities.Job, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Job{}, ErrEmptyCancellationReason
	}

	return u.transition(ctx, jobID, "cancel", func(j *entities.Job, now time.Time) error {
		if j.IsTerminal() {
			return transitionError(j.ID, j.Status, "cancel")
		}
		j.TotalWorkedSeconds = j.WorkedSecondsAt(now)
		j.Status = entities.JobStatusCancelado
		j.FinishedAt = now
		j.CancellationReason = reason
		return nil
	})
}

// transition loads the job, applies a guarded mutation, and stores the
// rewritten record wholesale.
func (u *JobLifecycleUseCase) transition(
	ctx context.Context,
	jobID, name string,
	apply func(j *entities.Job, now time.Time) error,
) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	ctx, cancel := withOpTimeout(ctx, u.opTimeout)
	defer cancel()

	j, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, mapTimeout(err)
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	now := u.now().UTC()
	if err := apply(&j, now); err != nil {
		return entities.Job{}, err
	}
	j.UpdatedAt = now

	updated, err := u.repo.Update(ctx, j)
	if err != nil {
		log.Printf("[job][usecase] %s failed job_id=%s err=%v", name, jobID, err)
		return entities.Job{}, mapTimeout(err)
	}
	log.Printf("[job][usecase] %s job_id=%s status=%s", name, jobID, updated.Status)
	return updated, nil
}

// transitionError wraps ErrInvalidStateTransition with the job id and
// attempted operation so callers can retry with full context.
func transitionError(jobID string, from entities.JobStatus, op string) error {
	return fmt.Errorf("job %s: cannot %s from %s: %w", jobID, op, from, ErrInvalidStateTransition)
}

func (u *JobLifecycleUseCase) GetByID(ctx context.Context, jobID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	j, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, mapTimeout(err)
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobLifecycleUseCase) GetByRequestID(ctx context.Context, requestID string) (entities.Job, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.Job{}, ErrInvalidRequestID
	}

	j, err := u.repo.GetByRequestID(ctx, requestID)
	if err != nil {
		return entities.Job{}, mapTimeout(err)
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobLifecycleUseCase) ListByProfessional(ctx context.Context, professionalID string, status entities.JobStatus) ([]entities.Job, error) {
	professionalID = strings.TrimSpace(professionalID)
	if professionalID == "" {
		return nil, ErrInvalidProfessionalID
	}
	list, err := u.repo.ListByProfessional(ctx, professionalID, status)
	if err != nil {
		return nil, mapTimeout(err)
	}
	if list == nil {
		list = []entities.Job{}
	}
	return list, nil
}

func (u *JobLifecycleUseCase) ListByRequester(ctx context.Context, requesterID string, status entities.JobStatus) ([]entities.Job, error) {
	requesterID = strings.TrimSpace(requesterID)
	if requesterID == "" {
		return nil, ErrInvalidRequesterID
	}
	list, err := u.repo.ListByRequester(ctx, requesterID, status)
	if err != nil {
		return nil, mapTimeout(err)
	}
	if list == nil {
		list = []entities.Job{}
	}
	return list, nil
}

func (u *JobLifecycleUseCase) ListUnbilled(ctx context.Context) ([]entities.Job, error) {
	list, err := u.repo.ListUnbilled(ctx)
	if err != nil {
		return nil, mapTimeout(err)
	}
	if list == nil {
		list = []entities.Job{}
	}
	return list, nil
}
