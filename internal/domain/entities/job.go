package entities

import "time"

// JobStatus represents the lifecycle of a trabajo (job).
//
// Legal transitions:
//
//	PENDIENTE --(start)--> EN_PROGRESO
//	EN_PROGRESO --(pause)--> PAUSADO
//	PAUSADO --(resume)--> EN_PROGRESO
//	PENDIENTE/EN_PROGRESO/PAUSADO --(finalize)--> FINALIZADO
//	PENDIENTE/EN_PROGRESO/PAUSADO --(cancel)--> CANCELADO
//
// FINALIZADO and CANCELADO are terminal.

type JobStatus string

const (
	JobStatusPendiente  JobStatus = "PENDIENTE"
	JobStatusEnProgreso JobStatus = "EN_PROGRESO"
	JobStatusPausado    JobStatus = "PAUSADO"
	JobStatusFinalizado JobStatus = "FINALIZADO"
	JobStatusCancelado  JobStatus = "CANCELADO"
)

// Job is the unit of work spawned by an accepted service request, tracked
// through its lifecycle to completion or cancellation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (request_id-index): request_id
//   - GSI2 (professional_id-index): professional_id
//   - GSI3 (requester_id-index): requester_id
//
// RequesterID and ProfessionalID are denormalized from the spawning request
// so the per-role job lists don't need a join.
//
// Time accounting: WorkedBeforePauseSeconds freezes the accumulated time at
// each pause; while EN_PROGRESO the open segment runs from ResumedAt (or
// StartedAt if the job never paused). TotalWorkedSeconds is settled on
// finalization.

type Job struct {
	ID             string    `json:"id"`
	RequestID      string    `json:"request_id"`
	RequesterID    string    `json:"requester_id"`
	ProfessionalID string    `json:"professional_id"`
	Status         JobStatus `json:"status"`

	StartedAt  time.Time `json:"started_at,omitempty"`
	FinishedAt time.Time `json:"finished_at,omitempty"`
	ResumedAt  time.Time `json:"resumed_at,omitempty"`

	LastPausedAt             time.Time `json:"last_paused_at,omitempty"`
	WorkedBeforePauseSeconds int64     `json:"worked_before_pause_seconds"`
	TotalWorkedSeconds       int64     `json:"total_worked_seconds"`

	FinalDescription   string  `json:"final_description,omitempty"`
	FinalCost          float64 `json:"final_cost,omitempty"`
	CancellationReason string  `json:"cancellation_reason,omitempty"`

	InvoiceID     string `json:"invoice_id,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsTerminal reports whether no further transitions are permitted.
func (j Job) IsTerminal() bool {
	return j.Status == JobStatusFinalizado || j.Status == JobStatusCancelado
}

// WorkedSecondsAt returns the accumulated worked time as of now, counting the
// open EN_PROGRESO segment if one is running.
func (j Job) WorkedSecondsAt(now time.Time) int64 {
	total := j.WorkedBeforePauseSeconds
	if j.Status == JobStatusEnProgreso {
		segmentStart := j.StartedAt
		if !j.ResumedAt.IsZero() {
			segmentStart = j.ResumedAt
		}
		if !segmentStart.IsZero() && now.After(segmentStart) {
			total += int64(now.Sub(segmentStart).Seconds())
		}
	}
	return total
}
