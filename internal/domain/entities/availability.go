package entities

import "time"

// Wire formats for slot dates and times. The backend exposes LocalDate /
// LocalTime style strings, so slots keep them as strings and the scheduling
// use case parses only when it needs arithmetic.
const (
	SlotDateLayout = "2006-01-02"
	SlotTimeLayout = "15:04:05"
)

// AvailableSlot (turno disponible) is a bookable time window within a
// professional's agenda. Slots are derived per query window and never
// persisted; Available=false marks windows already taken by a reservation.

type AvailableSlot struct {
	Date      string `json:"date"`       // YYYY-MM-DD
	StartTime string `json:"start_time"` // HH:mm:ss
	EndTime   string `json:"end_time"`   // HH:mm:ss
	Available bool   `json:"available"`
}

// SlotGroup is one calendar day's slots, sorted ascending by start time.
type SlotGroup struct {
	Date  string          `json:"date"`
	Slots []AvailableSlot `json:"slots"`
}

// DayAvailability is a professional's working window for one weekday.
// A weekday without an entry is a non-working day.
type DayAvailability struct {
	Weekday   time.Weekday `json:"weekday"`
	WorkStart string       `json:"work_start"` // HH:mm:ss
	WorkEnd   string       `json:"work_end"`   // HH:mm:ss
}

// Professional is the public profile of a service professional (oficio
// holder), including the weekly agenda the scheduling resolver works from.
//
// Storage model (DynamoDB):
//   - PK: id

type Professional struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	LastName  string            `json:"last_name"`
	Trade     string            `json:"trade,omitempty"`
	ImageURL  string            `json:"image_url,omitempty"`
	Agenda    []DayAvailability `json:"agenda,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
