package response

import (
	"time"

	"app_oficios/internal/domain/entities"
)

type ServiceRequestResponse struct {
	ID              string    `json:"id"`
	RequesterID     string    `json:"requester_id"`
	ProfessionalID  string    `json:"professional_id"`
	RequestedAt     time.Time `json:"requested_at"`
	ServiceDate     string    `json:"service_date"`
	ReservedTime    string    `json:"reserved_time,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	Note            string    `json:"note"`
	Status          string    `json:"status"`
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	return ServiceRequestResponse{
		ID:              r.ID,
		RequesterID:     r.RequesterID,
		ProfessionalID:  r.ProfessionalID,
		RequestedAt:     r.RequestedAt,
		ServiceDate:     r.ServiceDate,
		ReservedTime:    r.ReservedTime,
		DurationMinutes: r.DurationMinutes,
		Note:            r.Note,
		Status:          string(r.Status),
	}
}

func FromServiceRequests(list []entities.ServiceRequest) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromServiceRequest(r))
	}
	return out
}

// RequestWithProfessionalResponse adds the professional's public profile to
// the client-facing request list.
type RequestWithProfessionalResponse struct {
	ServiceRequestResponse
	ProfessionalName     string `json:"professional_name"`
	ProfessionalLastName string `json:"professional_last_name"`
	Trade                string `json:"trade,omitempty"`
	ImageURL             string `json:"image_url,omitempty"`
}

func FromRequestWithProfessional(r entities.RequestWithProfessional) RequestWithProfessionalResponse {
	return RequestWithProfessionalResponse{
		ServiceRequestResponse: FromServiceRequest(r.ServiceRequest),
		ProfessionalName:       r.ProfessionalName,
		ProfessionalLastName:   r.ProfessionalLastName,
		Trade:                  r.Trade,
		ImageURL:               r.ImageURL,
	}
}

func FromRequestsWithProfessional(list []entities.RequestWithProfessional) []RequestWithProfessionalResponse {
	out := make([]RequestWithProfessionalResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromRequestWithProfessional(r))
	}
	return out
}

// PendingCheckResponse reports the duplicate-pending probe result.
type PendingCheckResponse struct {
	PendingExists bool `json:"pending_exists"`
}
