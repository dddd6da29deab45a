package request

// SubmitRequestRequest is the free-form solicitud submission payload.
// ServiceDate uses YYYY-MM-DD; ReservedTime, when present, uses HH:mm:ss.
type SubmitRequestRequest struct {
	RequesterID    string `json:"requester_id" binding:"required"`
	ProfessionalID string `json:"professional_id" binding:"required"`
	ServiceDate    string `json:"service_date" binding:"required"`
	ReservedTime   string `json:"reserved_time"`
	Note           string `json:"note" binding:"required"`
}

// ConfirmSlotRequest books a concrete turno out of the weekly availability
// listing. Duration defaults to 60 minutes when omitted.
type ConfirmSlotRequest struct {
	RequesterID     string `json:"requester_id" binding:"required"`
	ProfessionalID  string `json:"professional_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
	Note            string `json:"note"`
}

func (r ConfirmSlotRequest) ResolveDuration() int {
	if r.DurationMinutes == 0 {
		return 60
	}
	return r.DurationMinutes
}
