package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"app_oficios/internal/domain/entities"
	mock_interfaces "app_oficios/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// 2026-03-09 is a Monday; 2026-03-16 is the Monday after fixedNow.
const (
	testWeekStart = "2026-03-09"
	testSlotDate  = "2026-03-16"
)

func mondayAgenda() []entities.DayAvailability {
	return []entities.DayAvailability{
		{Weekday: time.Monday, WorkStart: "09:00:00", WorkEnd: "12:00:00"},
	}
}

func newSchedulingUC(t *testing.T) (*SchedulingUseCase, *mock_interfaces.MockIProfessionalRepository, *mock_interfaces.MockIServiceRequestRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	profRepo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
	requestRepo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
	uc := NewSchedulingUseCase(profRepo, requestRepo)
	uc.now = fixedNow
	return uc, profRepo, requestRepo
}

func TestSchedulingUseCase_GetAvailableSlotsForWeek(t *testing.T) {
	t.Run("invalid week start", func(t *testing.T) {
		uc := NewSchedulingUseCase(nil, nil)
		_, err := uc.GetAvailableSlotsForWeek(context.Background(), "pro-1", "not-a-date", 60)
		if !errors.Is(err, ErrInvalidWeekStart) {
			t.Fatalf("expected ErrInvalidWeekStart, got %v", err)
		}
	})

	t.Run("negative duration", func(t *testing.T) {
		uc := NewSchedulingUseCase(nil, nil)
		_, err := uc.GetAvailableSlotsForWeek(context.Background(), "pro-1", testWeekStart, -30)
		if !errors.Is(err, ErrInvalidSlotDuration) {
			t.Fatalf("expected ErrInvalidSlotDuration, got %v", err)
		}
	})

	t.Run("professional not found", func(t *testing.T) {
		uc, profRepo, _ := newSchedulingUC(t)
		profRepo.EXPECT().GetByID(gomock.Any(), "pro-1").Return(entities.Professional{}, nil)

		_, err := uc.GetAvailableSlotsForWeek(context.Background(), "pro-1", testWeekStart, 60)
		if !errors.Is(err, ErrProfessionalNotFound) {
			t.Fatalf("expected ErrProfessionalNotFound, got %v", err)
		}
	})

	t.Run("reservation fetch failure surfaces as slots unavailable", func(t *testing.T) {
		uc, profRepo, requestRepo := newSchedulingUC(t)
		profRepo.EXPECT().GetByID(gomock.Any(), "pro-1").Return(entities.Professional{ID: "pro-1", Agenda: mondayAgenda()}, nil)
		requestRepo.EXPECT().ListReservationsBetween(gomock.Any(), "pro-1", testWeekStart, "2026-03-15").Return(nil, errors.New("db down"))

		_, err := uc.GetAvailableSlotsForWeek(context.Background(), "pro-1", testWeekStart, 60)
		if !errors.Is(err, ErrSlotsUnavailable) {
			t.Fatalf("expected ErrSlotsUnavailable, got %v", err)
		}
	})

	t.Run("splits working window and marks collisions", func(t *testing.T) {
		uc, profRepo, requestRepo := newSchedulingUC(t)
		profRepo.EXPECT().GetByID(gomock.Any(), "pro-1").Return(entities.Professional{ID: "pro-1", Agenda: mondayAgenda()}, nil)
		requestRepo.EXPECT().ListReservationsBetween(gomock.Any(), "pro-1", testWeekStart, "2026-03-15").Return([]entities.ServiceRequest{
			{ServiceDate: testWeekStart, ReservedTime: "10:00:00", DurationMinutes: 60, Status: entities.RequestStatusAceptada},
		}, nil)

		slots, err := uc.GetAvailableSlotsForWeek(context.Background(), "pro-1", testWeekStart, 60)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(slots) != 3 {
			t.Fatalf("expected 3 slots for a 09-12 window, got %d", len(slots))
		}
		if !slots[0].Available || slots[1].Available || !slots[2].Available {
			t.Fatalf("expected only the 10:00 slot blocked, got %+v", slots)
		}
	})

	t.Run("short tail is dropped", func(t *testing.T) {
		uc, profRepo, requestRepo := newSchedulingUC(t)
		profRepo.EXPECT().GetByID(gomock.Any(), "pro-1").Return(entities.Professional{
			ID:     "pro-1",
			Agenda: []entities.DayAvailability{{Weekday: time.Monday, WorkStart: "09:00:00", WorkEnd: "10:30:00"}},
		}, nil)
		requestRepo.EXPECT().ListReservationsBetween(gomock.Any(), "pro-1", testWeekStart, "2026-03-15").Return(nil, nil)

		slots, err := uc.GetAvailableSlotsForWeek(context.Background(), "pro-1", testWeekStart, 60)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(slots) != 1 || slots[0].StartTime != "09:00:00" {
			t.Fatalf("expected single 09:00 slot, got %+v", slots)
		}
	})

	t.Run("fetch timeout surfaces as operation timeout", func(t *testing.T) {
		uc, profRepo, requestRepo := newSchedulingUC(t)
		profRepo.EXPECT().GetByID(gomock.Any(), "pro-1").Return(entities.Professional{ID: "pro-1", Agenda: mondayAgenda()}, nil)
		requestRepo.EXPECT().ListReservationsBetween(gomock.Any(), "pro-1", testWeekStart, "2026-03-15").Return(nil, context.DeadlineExceeded)

		_, err := uc.GetAvailableSlotsForWeek(context.Background(), "pro-1", testWeekStart, 60)
		if !errors.Is(err, ErrOperationTimeout) {
			t.Fatalf("expected ErrOperationTimeout, got %v", err)
		}
		if !errors.Is(err, ErrSlotsUnavailable) {
			t.Fatalf("expected ErrSlotsUnavailable to still match, got %v", err)
		}
	})

	t.Run("days off the agenda yield no slots", func(t *testing.T) {
		uc, profRepo, requestRepo := newSchedulingUC(t)
		profRepo.EXPECT().GetByID(gomock.Any(), "pro-1").Return(entities.Professional{
			ID:     "pro-1",
			Agenda: []entities.DayAvailability{{Weekday: time.Saturday, WorkStart: "09:00:00", WorkEnd: "11:00:00"}},
		}, nil)
		requestRepo.EXPECT().ListReservationsBetween(gomock.Any(), "pro-1", testWeekStart, "2026-03-15").Return(nil, nil)

		slots, err := uc.GetAvailableSlotsForWeek(context.Background(), "pro-1", testWeekStart, 60)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, s := range slots {
			if s.Date != "2026-03-14" {
				t.Fatalf("expected slots only on Saturday 2026-03-14, got %+v", s)
			}
		}
		if len(slots) != 2 {
			t.Fatalf("expected 2 Saturday slots, got %d", len(slots))
		}
	})
}

func TestSchedulingUseCase_ConfirmSlot(t *testing.T) {
	t.Run("non-positive duration", func(t *testing.T) {
		uc := NewSchedulingUseCase(nil, nil)
		_, err := uc.ConfirmSlot(context.Background(), ConfirmSlotCommand{
			RequesterID: "user-1", ProfessionalID: "pro-1", Date: testWeekStart, StartTime: "09:00:00",
		})
		if !errors.Is(err, ErrInvalidSlotDuration) {
			t.Fatalf("expected ErrInvalidSlotDuration, got %v", err)
		}
	})

	t.Run("past date rejected", func(t *testing.T) {
		uc := NewSchedulingUseCase(nil, nil)
		uc.now = fixedNow
		_, err := uc.ConfirmSlot(context.Background(), ConfirmSlotCommand{
			RequesterID: "user-1", ProfessionalID: "pro-1",
			Date: "2020-01-01", StartTime: "03:00:00", DurationMinutes: 60,
		})
		if !errors.Is(err, ErrSlotDateInPast) {
			t.Fatalf("expected ErrSlotDateInPast, got %v", err)
		}
	})

	t.Run("unknown professional rejected", func(t *testing.T) {
		uc, profRepo, _ := newSchedulingUC(t)
		profRepo.EXPECT().GetByID(gomock.Any(), "pro-9").Return(entities.Professional{}, nil)

		_, err := uc.ConfirmSlot(context.Background(), ConfirmSlotCommand{
			RequesterID: "user-1", ProfessionalID: "pro-9",
			Date: testSlotDate, StartTime: "09:00:00", DurationMinutes: 60,
		})
		if !errors.Is(err, ErrProfessionalNotFound) {
			t.Fatalf("expected ErrProfessionalNotFound, got %v", err)
		}
	})

	t.Run("time outside working window rejected", func(t *testing.T) {
		uc, profRepo, _ := newSchedulingUC(t)
		profRepo.EXPECT().GetByID(gomock.Any(), "pro-1").Return(entities.Professional{ID: "pro-1", Agenda: mondayAgenda()}, nil)

		_, err := uc.ConfirmSlot(context.Background(), ConfirmSlotCommand{
			RequesterID: "user-1", ProfessionalID: "pro-1",
			Date: testSlotDate, StartTime: "13:00:00", DurationMinutes: 60,
		})
		if !errors.Is(err, ErrSlotOutsideAgenda) {
			t.Fatalf("expected ErrSlotOutsideAgenda, got %v", err)
		}
	})

	t.Run("weekday off the agenda rejected", func(t *testing.T) {
		uc, profRepo, _ := newSchedulingUC(t)
		profRepo.EXPECT().GetByID(gomock.Any(), "pro-1").Return(entities.Professional{ID: "pro-1", Agenda: mondayAgenda()}, nil)

		// 2026-03-17 is a Tuesday; the agenda only has Monday.
		_, err := uc.ConfirmSlot(context.Background(), ConfirmSlotCommand{
			RequesterID: "user-1", ProfessionalID: "pro-1",
			Date: "2026-03-17", StartTime: "09:00:00", DurationMinutes: 60,
		})
		if !errors.Is(err, ErrSlotOutsideAgenda) {
			t.Fatalf("expected ErrSlotOutsideAgenda, got %v", err)
		}
	})

	t.Run("taken slot rejected", func(t *testing.T) {
		uc, profRepo, requestRepo := newSchedulingUC(t)
		profRepo.EXPECT().GetByID(gomock.Any(), "pro-1").Return(entities.Professional{ID: "pro-1", Agenda: mondayAgenda()}, nil)
		requestRepo.EXPECT().ListReservationsBetween(gomock.Any(), "pro-1", testSlotDate, testSlotDate).Return([]entities.ServiceRequest{
			{ServiceDate: testSlotDate, ReservedTime: "09:30:00", DurationMinutes: 60},
		}, nil)

		_, err := uc.ConfirmSlot(context.Background(), ConfirmSlotCommand{
			RequesterID: "user-1", ProfessionalID: "pro-1",
			Date: testSlotDate, StartTime: "09:00:00", DurationMinutes: 60,
		})
		if !errors.Is(err, ErrSlotNotAvailable) {
			t.Fatalf("expected ErrSlotNotAvailable, got %v", err)
		}
	})

	t.Run("free slot confirmed as accepted request", func(t *testing.T) {
		uc, profRepo, requestRepo := newSchedulingUC(t)
		profRepo.EXPECT().GetByID(gomock.Any(), "pro-1").Return(entities.Professional{ID: "pro-1", Agenda: mondayAgenda()}, nil)
		requestRepo.EXPECT().ListReservationsBetween(gomock.Any(), "pro-1", testSlotDate, testSlotDate).Return(nil, nil)
		requestRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error) {
				return r, nil
			})

		created, err := uc.ConfirmSlot(context.Background(), ConfirmSlotCommand{
			RequesterID: "user-1", ProfessionalID: "pro-1",
			Date: testSlotDate, StartTime: "09:00:00", DurationMinutes: 60, Note: "revisar la caldera",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.RequestStatusAceptada {
			t.Fatalf("expected ACEPTADA, got %s", created.Status)
		}
		if created.ReservedTime != "09:00:00" || created.DurationMinutes != 60 {
			t.Fatalf("expected slot bound to request, got %+v", created)
		}
	})

	t.Run("same-day booking allowed", func(t *testing.T) {
		// fixedNow is Tuesday 2026-03-10.
		uc, profRepo, requestRepo := newSchedulingUC(t)
		profRepo.EXPECT().GetByID(gomock.Any(), "pro-1").Return(entities.Professional{
			ID:     "pro-1",
			Agenda: []entities.DayAvailability{{Weekday: time.Tuesday, WorkStart: "09:00:00", WorkEnd: "18:00:00"}},
		}, nil)
		requestRepo.EXPECT().ListReservationsBetween(gomock.Any(), "pro-1", "2026-03-10", "2026-03-10").Return(nil, nil)
		requestRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error) {
				return r, nil
			})

		created, err := uc.ConfirmSlot(context.Background(), ConfirmSlotCommand{
			RequesterID: "user-1", ProfessionalID: "pro-1",
			Date: "2026-03-10", StartTime: "15:00:00", DurationMinutes: 60,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ServiceDate != "2026-03-10" {
			t.Fatalf("expected same-day booking, got %+v", created)
		}
	})
}

func TestGroupSlotsByDate(t *testing.T) {
	slots := []entities.AvailableSlot{
		{Date: "2026-03-10", StartTime: "11:00:00", EndTime: "12:00:00"},
		{Date: "2026-03-09", StartTime: "10:00:00", EndTime: "11:00:00"},
		{Date: "2026-03-10", StartTime: "09:00:00", EndTime: "10:00:00"},
		{Date: "2026-03-09", StartTime: "09:00:00", EndTime: "10:00:00"},
	}

	groups := GroupSlotsByDate(slots)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Date != "2026-03-09" || groups[1].Date != "2026-03-10" {
		t.Fatalf("expected dates ascending, got %+v", groups)
	}
	if groups[0].Slots[0].StartTime != "09:00:00" || groups[1].Slots[0].StartTime != "09:00:00" {
		t.Fatalf("expected slots ascending within each day, got %+v", groups)
	}
}

func TestShiftWeek(t *testing.T) {
	next, err := ShiftWeek(testWeekStart, true)
	if err != nil || next != "2026-03-16" {
		t.Fatalf("expected 2026-03-16, got %s (%v)", next, err)
	}

	prev, err := ShiftWeek(testWeekStart, false)
	if err != nil || prev != "2026-03-02" {
		t.Fatalf("expected 2026-03-02, got %s (%v)", prev, err)
	}

	if _, err := ShiftWeek("bogus", true); !errors.Is(err, ErrInvalidWeekStart) {
		t.Fatalf("expected ErrInvalidWeekStart, got %v", err)
	}
}
