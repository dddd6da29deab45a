package entities

import "time"

// RequestStatus represents the lifecycle of a solicitud (service request).
//
// A request is created PENDIENTE by the client and resolved exactly once by
// the professional (ACEPTADA or RECHAZADA). Resolved requests are terminal.

type RequestStatus string

const (
	RequestStatusPendiente RequestStatus = "PENDIENTE"
	RequestStatusAceptada  RequestStatus = "ACEPTADA"
	RequestStatusRechazada RequestStatus = "RECHAZADA"
)

// ServiceRequest is a client's request for a professional's services on a
// given date.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (professional_id-index): professional_id
//   - GSI2 (requester_id-index): requester_id
//
// Slot bookings (confirmed turnos) carry ReservedTime + DurationMinutes and
// are created directly ACEPTADA; free-form requests leave ReservedTime empty
// and go through the PENDIENTE/ACEPTADA flow.
//
// Domain rule: at most one PENDIENTE request may exist for a given
// (requester, professional) pair. The workflow use case enforces it with an
// existence check before creating.

type ServiceRequest struct {
	ID              string        `json:"id"`
	RequesterID     string        `json:"requester_id"`
	ProfessionalID  string        `json:"professional_id"`
	RequestedAt     time.Time     `json:"requested_at"`
	ServiceDate     string        `json:"service_date"`            // YYYY-MM-DD
	ReservedTime    string        `json:"reserved_time,omitempty"` // HH:mm:ss
	DurationMinutes int           `json:"duration_minutes,omitempty"`
	Note            string        `json:"note"`
	Status          RequestStatus `json:"status"`
}

// IsResolved reports whether the request reached a terminal status.
func (r ServiceRequest) IsResolved() bool {
	return r.Status == RequestStatusAceptada || r.Status == RequestStatusRechazada
}

// RequestWithProfessional is a read model for the client's request list,
// joining the request with the professional's public profile.
type RequestWithProfessional struct {
	ServiceRequest
	ProfessionalName     string `json:"professional_name"`
	ProfessionalLastName string `json:"professional_last_name"`
	Trade                string `json:"trade,omitempty"`
	ImageURL             string `json:"image_url,omitempty"`
}
