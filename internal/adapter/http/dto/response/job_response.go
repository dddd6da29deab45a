package response

import (
	"time"

	"app_oficios/internal/domain/entities"
)

type JobResponse struct {
	ID             string `json:"id"`
	RequestID      string `json:"request_id"`
	RequesterID    string `json:"requester_id"`
	ProfessionalID string `json:"professional_id"`
	Status         string `json:"status"`

	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`

	TotalWorkedSeconds int64 `json:"total_worked_seconds"`

	FinalDescription   string  `json:"final_description,omitempty"`
	FinalCost          float64 `json:"final_cost,omitempty"`
	CancellationReason string  `json:"cancellation_reason,omitempty"`

	InvoiceID     string `json:"invoice_id,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:                 j.ID,
		RequestID:          j.RequestID,
		RequesterID:        j.RequesterID,
		ProfessionalID:     j.ProfessionalID,
		Status:             string(j.Status),
		StartedAt:          optionalTime(j.StartedAt),
		FinishedAt:         optionalTime(j.FinishedAt),
		TotalWorkedSeconds: j.TotalWorkedSeconds,
		FinalDescription:   j.FinalDescription,
		FinalCost:          j.FinalCost,
		CancellationReason: j.CancellationReason,
		InvoiceID:          j.InvoiceID,
		PaymentStatus:      j.PaymentStatus,
	}
}

func FromJobs(list []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(list))
	for _, j := range list {
		out = append(out, FromJob(j))
	}
	return out
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
