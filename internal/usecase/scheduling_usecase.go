package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"app_oficios/internal/domain/entities"
	"app_oficios/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidWeekStart     = errors.New("invalid week start date")
	ErrInvalidSlotDuration  = errors.New("slot duration must be positive")
	ErrProfessionalNotFound = errors.New("professional not found")
	ErrSlotsUnavailable     = errors.New("available slots could not be fetched")
	ErrSlotNotAvailable     = errors.New("slot is no longer available")
	ErrSlotDateInPast       = errors.New("slot date is in the past")
	ErrSlotOutsideAgenda    = errors.New("slot falls outside the professional's agenda")
)

// DefaultSlotDurationMinutes is the granularity used when the caller does
// not pick one.
const DefaultSlotDurationMinutes = 60

const weekDays = 7

// ConfirmSlotCommand books a concrete turno. Unlike free-form submission,
// same-day bookings are allowed: the slot list itself starts at today.
type ConfirmSlotCommand struct {
	RequesterID     string
	ProfessionalID  string
	Date            string // YYYY-MM-DD
	StartTime       string // HH:mm:ss
	DurationMinutes int
	Note            string
}

// ISchedulingUseCase computes a professional's bookable slots over a 7-day
// window and converts a chosen slot into a confirmed request (the fast-path
// entry into the request lifecycle).

type ISchedulingUseCase interface {
	GetAvailableSlotsForWeek(ctx context.Context, professionalID, weekStart string, durationMinutes int) ([]entities.AvailableSlot, error)
	ConfirmSlot(ctx context.Context, cmd ConfirmSlotCommand) (entities.ServiceRequest, error)
}

type SchedulingUseCase struct {
	profRepo    interfaces.IProfessionalRepository
	requestRepo interfaces.IServiceRequestRepository
	opTimeout   time.Duration
	now         func() time.Time
}

var _ ISchedulingUseCase = (*SchedulingUseCase)(nil)

func NewSchedulingUseCase(profRepo interfaces.IProfessionalRepository, requestRepo interfaces.IServiceRequestRepository) *SchedulingUseCase {
	return &SchedulingUseCase{
		profRepo:    profRepo,
		requestRepo: requestRepo,
		opTimeout:   opTimeoutFromEnv(),
		now:         time.Now,
	}
}

// GetAvailableSlotsForWeek derives the 7-day slot list starting at weekStart:
// each working day's window is split into duration-sized slots, and slots
// colliding with an existing reservation are marked unavailable. A fetch
// failure surfaces as ErrSlotsUnavailable so "no slots" and "could not load"
// stay distinguishable.
func (u *SchedulingUseCase) GetAvailableSlotsForWeek(ctx context.Context, professionalID, weekStart string, durationMinutes int) ([]entities.AvailableSlot, error) {
	professionalID = strings.TrimSpace(professionalID)
	if professionalID == "" {
		return nil, ErrInvalidProfessionalID
	}
	if durationMinutes == 0 {
		durationMinutes = DefaultSlotDurationMinutes
	}
	if durationMinutes < 0 {
		return nil, ErrInvalidSlotDuration
	}
	start, err := time.Parse(entities.SlotDateLayout, strings.TrimSpace(weekStart))
	if err != nil {
		return nil, ErrInvalidWeekStart
	}

	ctx, cancel := withOpTimeout(ctx, u.opTimeout)
	defer cancel()

	prof, err := u.profRepo.GetByID(ctx, professionalID)
	if err != nil {
		log.Printf("[scheduling][usecase] professional fetch failed professional_id=%s err=%v", professionalID, err)
		return nil, fmt.Errorf("%w: %w", ErrSlotsUnavailable, mapTimeout(err))
	}
	if prof.ID == "" {
		return nil, ErrProfessionalNotFound
	}

	endDate := start.AddDate(0, 0, weekDays-1)
	reservations, err := u.requestRepo.ListReservationsBetween(ctx, professionalID, start.Format(entities.SlotDateLayout), endDate.Format(entities.SlotDateLayout))
	if err != nil {
		log.Printf("[scheduling][usecase] reservations fetch failed professional_id=%s err=%v", professionalID, err)
		return nil, fmt.Errorf("%w: %w", ErrSlotsUnavailable, mapTimeout(err))
	}

	agenda := make(map[time.Weekday]entities.DayAvailability, len(prof.Agenda))
	for _, d := range prof.Agenda {
		agenda[d.Weekday] = d
	}

	duration := time.Duration(durationMinutes) * time.Minute
	slots := make([]entities.AvailableSlot, 0, weekDays*8)
	for day := 0; day < weekDays; day++ {
		date := start.AddDate(0, 0, day)
		window, ok := agenda[date.Weekday()]
		if !ok {
			continue
		}
		daySlots, err := splitWindow(date, window, duration)
		if err != nil {
			log.Printf("[scheduling][usecase] skipping malformed window professional_id=%s weekday=%s err=%v", professionalID, date.Weekday(), err)
			continue
		}
		for i := range daySlots {
			daySlots[i].Available = !overlapsReservation(daySlots[i], reservations)
		}
		slots = append(slots, daySlots...)
	}
	return slots, nil
}

// ConfirmSlot re-validates the chosen window before booking: the date must be
// today or later, the window must sit inside the professional's agenda for
// that weekday, and it must not collide with current reservations. Only then
// is the request created, directly ACEPTADA with the slot bound to it.
func (u *SchedulingUseCase) ConfirmSlot(ctx context.Context, cmd ConfirmSlotCommand) (entities.ServiceRequest, error) {
	requesterID := strings.TrimSpace(cmd.RequesterID)
	professionalID := strings.TrimSpace(cmd.ProfessionalID)
	if requesterID == "" {
		return entities.ServiceRequest{}, ErrInvalidRequesterID
	}
	if professionalID == "" {
		return entities.ServiceRequest{}, ErrInvalidProfessionalID
	}
	if cmd.DurationMinutes <= 0 {
		return entities.ServiceRequest{}, ErrInvalidSlotDuration
	}
	date, err := time.Parse(entities.SlotDateLayout, strings.TrimSpace(cmd.Date))
	if err != nil {
		return entities.ServiceRequest{}, ErrInvalidServiceDate
	}
	startTime, err := time.Parse(entities.SlotTimeLayout, strings.TrimSpace(cmd.StartTime))
	if err != nil {
		return entities.ServiceRequest{}, ErrInvalidServiceDate
	}

	// Same-day bookings are fine; anything earlier is not bookable.
	today := u.now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return entities.ServiceRequest{}, ErrSlotDateInPast
	}
	slotEnd := startTime.Add(time.Duration(cmd.DurationMinutes) * time.Minute)

	ctx, cancel := withOpTimeout(ctx, u.opTimeout)
	defer cancel()

	prof, err := u.profRepo.GetByID(ctx, professionalID)
	if err != nil {
		log.Printf("[scheduling][usecase] professional fetch failed professional_id=%s err=%v", professionalID, err)
		return entities.ServiceRequest{}, mapTimeout(err)
	}
	if prof.ID == "" {
		return entities.ServiceRequest{}, ErrProfessionalNotFound
	}
	if !withinAgenda(prof.Agenda, date.Weekday(), startTime, slotEnd) {
		return entities.ServiceRequest{}, ErrSlotOutsideAgenda
	}

	dateStr := date.Format(entities.SlotDateLayout)
	reservations, err := u.requestRepo.ListReservationsBetween(ctx, professionalID, dateStr, dateStr)
	if err != nil {
		return entities.ServiceRequest{}, mapTimeout(err)
	}

	candidate := entities.AvailableSlot{
		Date:      dateStr,
		StartTime: startTime.Format(entities.SlotTimeLayout),
		EndTime:   slotEnd.Format(entities.SlotTimeLayout),
	}
	if overlapsReservation(candidate, reservations) {
		return entities.ServiceRequest{}, ErrSlotNotAvailable
	}

	r := entities.ServiceRequest{
		ID:              uuid.NewString(),
		RequesterID:     requesterID,
		ProfessionalID:  professionalID,
		RequestedAt:     u.now().UTC(),
		ServiceDate:     dateStr,
		ReservedTime:    candidate.StartTime,
		DurationMinutes: cmd.DurationMinutes,
		Note:            strings.TrimSpace(cmd.Note),
		Status:          entities.RequestStatusAceptada,
	}

	created, err := u.requestRepo.Create(ctx, r)
	if err != nil {
		log.Printf("[scheduling][usecase] confirm failed requester_id=%s professional_id=%s date=%s err=%v", requesterID, professionalID, dateStr, err)
		return entities.ServiceRequest{}, mapTimeout(err)
	}
	log.Printf("[scheduling][usecase] confirmed request_id=%s professional_id=%s date=%s time=%s", created.ID, professionalID, dateStr, created.ReservedTime)
	return created, nil
}

// GroupSlotsByDate groups slots per calendar day, days ascending, each day's
// slots ascending by start time. Pure and deterministic.
func GroupSlotsByDate(slots []entities.AvailableSlot) []entities.SlotGroup {
	byDate := make(map[string][]entities.AvailableSlot)
	for _, s := range slots {
		byDate[s.Date] = append(byDate[s.Date], s)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	groups := make([]entities.SlotGroup, 0, len(dates))
	for _, d := range dates {
		day := byDate[d]
		sort.Slice(day, func(i, j int) bool { return day[i].StartTime < day[j].StartTime })
		groups = append(groups, entities.SlotGroup{Date: d, Slots: day})
	}
	return groups
}

// ShiftWeek moves a week window start ±7 days. forward=false shifts back.
func ShiftWeek(weekStart string, forward bool) (string, error) {
	start, err := time.Parse(entities.SlotDateLayout, strings.TrimSpace(weekStart))
	if err != nil {
		return "", ErrInvalidWeekStart
	}
	days := weekDays
	if !forward {
		days = -weekDays
	}
	return start.AddDate(0, 0, days).Format(entities.SlotDateLayout), nil
}

// splitWindow cuts one day's working window into duration-sized slots.
// A tail shorter than the duration is dropped.
func splitWindow(date time.Time, window entities.DayAvailability, duration time.Duration) ([]entities.AvailableSlot, error) {
	workStart, err := time.Parse(entities.SlotTimeLayout, window.WorkStart)
	if err != nil {
		return nil, err
	}
	workEnd, err := time.Parse(entities.SlotTimeLayout, window.WorkEnd)
	if err != nil {
		return nil, err
	}
	if !workEnd.After(workStart) {
		return nil, fmt.Errorf("work window end %s not after start %s", window.WorkEnd, window.WorkStart)
	}

	dateStr := date.Format(entities.SlotDateLayout)
	var slots []entities.AvailableSlot
	for cur := workStart; !cur.Add(duration).After(workEnd); cur = cur.Add(duration) {
		slots = append(slots, entities.AvailableSlot{
			Date:      dateStr,
			StartTime: cur.Format(entities.SlotTimeLayout),
			EndTime:   cur.Add(duration).Format(entities.SlotTimeLayout),
		})
	}
	return slots, nil
}

// withinAgenda reports whether [start, end) fits inside the professional's
// working window for the given weekday. A weekday without an agenda entry, or
// one with a malformed window, is not bookable.
func withinAgenda(agenda []entities.DayAvailability, weekday time.Weekday, start, end time.Time) bool {
	for _, d := range agenda {
		if d.Weekday != weekday {
			continue
		}
		workStart, err1 := time.Parse(entities.SlotTimeLayout, d.WorkStart)
		workEnd, err2 := time.Parse(entities.SlotTimeLayout, d.WorkEnd)
		if err1 != nil || err2 != nil {
			return false
		}
		return !start.Before(workStart) && !end.After(workEnd)
	}
	return false
}

// overlapsReservation reports whether the slot collides with any existing
// reservation on the same date. Reservations without a parseable time are
// treated defensively as all-day blocks.
func overlapsReservation(slot entities.AvailableSlot, reservations []entities.ServiceRequest) bool {
	slotStart, err1 := time.Parse(entities.SlotTimeLayout, slot.StartTime)
	slotEnd, err2 := time.Parse(entities.SlotTimeLayout, slot.EndTime)
	if err1 != nil || err2 != nil {
		return true
	}

	for _, r := range reservations {
		if r.ServiceDate != slot.Date {
			continue
		}
		resStart, err := time.Parse(entities.SlotTimeLayout, r.ReservedTime)
		if err != nil {
			return true
		}
		minutes := r.DurationMinutes
		if minutes <= 0 {
			minutes = DefaultSlotDurationMinutes
		}
		resEnd := resStart.Add(time.Duration(minutes) * time.Minute)
		if slotStart.Before(resEnd) && resStart.Before(slotEnd) {
			return true
		}
	}
	return false
}
