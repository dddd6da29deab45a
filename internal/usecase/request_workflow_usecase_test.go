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

func fixedNow() time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
}

func TestRequestWorkflowUseCase_SubmitRequest_Validations(t *testing.T) {
	// nil repos prove validation failures never reach the repository.
	newUC := func() *RequestWorkflowUseCase {
		uc := NewRequestWorkflowUseCase(nil, nil)
		uc.now = fixedNow
		return uc
	}

	t.Run("empty requester id", func(t *testing.T) {
		_, err := newUC().SubmitRequest(context.Background(), SubmitRequestCommand{
			RequesterID: " ", ProfessionalID: "pro-1", ServiceDate: "2026-03-11", Note: "necesito un plomero",
		})
		if !errors.Is(err, ErrInvalidRequesterID) {
			t.Fatalf("expected ErrInvalidRequesterID, got %v", err)
		}
	})

	t.Run("empty professional id", func(t *testing.T) {
		_, err := newUC().SubmitRequest(context.Background(), SubmitRequestCommand{
			RequesterID: "user-1", ProfessionalID: "", ServiceDate: "2026-03-11", Note: "necesito un plomero",
		})
		if !errors.Is(err, ErrInvalidProfessionalID) {
			t.Fatalf("expected ErrInvalidProfessionalID, got %v", err)
		}
	})

	t.Run("note too short", func(t *testing.T) {
		_, err := newUC().SubmitRequest(context.Background(), SubmitRequestCommand{
			RequesterID: "user-1", ProfessionalID: "pro-1", ServiceDate: "2026-03-11", Note: "corto",
		})
		if !errors.Is(err, ErrNoteTooShort) {
			t.Fatalf("expected ErrNoteTooShort, got %v", err)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := newUC().SubmitRequest(context.Background(), SubmitRequestCommand{
			RequesterID: "user-1", ProfessionalID: "pro-1", ServiceDate: "11/03/2026", Note: "necesito un plomero",
		})
		if !errors.Is(err, ErrInvalidServiceDate) {
			t.Fatalf("expected ErrInvalidServiceDate, got %v", err)
		}
	})

	t.Run("same-day date rejected", func(t *testing.T) {
		_, err := newUC().SubmitRequest(context.Background(), SubmitRequestCommand{
			RequesterID: "user-1", ProfessionalID: "pro-1", ServiceDate: "2026-03-10", Note: "necesito un plomero",
		})
		if !errors.Is(err, ErrServiceDateNotFuture) {
			t.Fatalf("expected ErrServiceDateNotFuture, got %v", err)
		}
	})

	t.Run("past date rejected", func(t *testing.T) {
		_, err := newUC().SubmitRequest(context.Background(), SubmitRequestCommand{
			RequesterID: "user-1", ProfessionalID: "pro-1", ServiceDate: "2026-03-01", Note: "necesito un plomero",
		})
		if !errors.Is(err, ErrServiceDateNotFuture) {
			t.Fatalf("expected ErrServiceDateNotFuture, got %v", err)
		}
	})
}

func TestRequestWorkflowUseCase_SubmitRequest(t *testing.T) {
	t.Run("duplicate pending blocks creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewRequestWorkflowUseCase(repo, nil)
		uc.now = fixedNow

		repo.EXPECT().FindPending(gomock.Any(), "user-1", "pro-1").Return(entities.ServiceRequest{ID: "req-0", Status: entities.RequestStatusPendiente}, nil)

		_, err := uc.SubmitRequest(context.Background(), SubmitRequestCommand{
			RequesterID: "user-1", ProfessionalID: "pro-1", ServiceDate: "2026-03-11", Note: "necesito un plomero",
		})
		if !errors.Is(err, ErrPendingRequestExists) {
			t.Fatalf("expected ErrPendingRequestExists, got %v", err)
		}
	})

	t.Run("success creates pending request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewRequestWorkflowUseCase(repo, nil)
		uc.now = fixedNow

		repo.EXPECT().FindPending(gomock.Any(), "user-1", "pro-1").Return(entities.ServiceRequest{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error) {
				return r, nil
			})

		created, err := uc.SubmitRequest(context.Background(), SubmitRequestCommand{
			RequesterID: "user-1", ProfessionalID: "pro-1", ServiceDate: "2026-03-11", Note: "  necesito un plomero  ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatal("expected generated id")
		}
		if created.Status != entities.RequestStatusPendiente {
			t.Fatalf("expected PENDIENTE, got %s", created.Status)
		}
		if created.ServiceDate != "2026-03-11" {
			t.Fatalf("expected normalized date, got %s", created.ServiceDate)
		}
		if created.Note != "necesito un plomero" {
			t.Fatalf("expected trimmed note, got %q", created.Note)
		}
	})
}

func TestRequestWorkflowUseCase_RespondToRequest(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewRequestWorkflowUseCase(nil, nil)
		_, err := uc.RespondToRequest(context.Background(), "  ", true)
		if !errors.Is(err, ErrInvalidRequestID) {
			t.Fatalf("expected ErrInvalidRequestID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewRequestWorkflowUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{}, nil)

		_, err := uc.RespondToRequest(context.Background(), "req-1", true)
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("already resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewRequestWorkflowUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusAceptada}, nil)

		_, err := uc.RespondToRequest(context.Background(), "req-1", false)
		if !errors.Is(err, ErrRequestAlreadyResolved) {
			t.Fatalf("expected ErrRequestAlreadyResolved, got %v", err)
		}
	})

	t.Run("accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewRequestWorkflowUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusPendiente}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusAceptada).Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusAceptada}, nil)

		updated, err := uc.RespondToRequest(context.Background(), "req-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.RequestStatusAceptada {
			t.Fatalf("expected ACEPTADA, got %s", updated.Status)
		}
	})

	t.Run("reject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewRequestWorkflowUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusPendiente}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusRechazada).Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusRechazada}, nil)

		updated, err := uc.RespondToRequest(context.Background(), "req-1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.RequestStatusRechazada {
			t.Fatalf("expected RECHAZADA, got %s", updated.Status)
		}
	})
}

func TestRequestWorkflowUseCase_CheckPendingExists(t *testing.T) {
	t.Run("blank ids short-circuit", func(t *testing.T) {
		uc := NewRequestWorkflowUseCase(nil, nil)
		if uc.CheckPendingExists(context.Background(), "", "pro-1") {
			t.Fatal("expected false for blank requester")
		}
	})

	t.Run("fails open on lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewRequestWorkflowUseCase(repo, nil)

		repo.EXPECT().FindPending(gomock.Any(), "user-1", "pro-1").Return(entities.ServiceRequest{}, errors.New("db down"))

		if uc.CheckPendingExists(context.Background(), "user-1", "pro-1") {
			t.Fatal("expected false when lookup fails")
		}
	})

	t.Run("pending exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewRequestWorkflowUseCase(repo, nil)

		repo.EXPECT().FindPending(gomock.Any(), "user-1", "pro-1").Return(entities.ServiceRequest{ID: "req-1"}, nil)

		if !uc.CheckPendingExists(context.Background(), "user-1", "pro-1") {
			t.Fatal("expected true")
		}
	})
}

func TestRequestWorkflowUseCase_Lists(t *testing.T) {
	t.Run("pending list never nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewRequestWorkflowUseCase(repo, nil)

		repo.EXPECT().ListPendingByProfessional(gomock.Any(), "pro-1").Return(nil, nil)

		list, err := uc.ListPendingForProfessional(context.Background(), "pro-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list == nil || len(list) != 0 {
			t.Fatalf("expected empty slice, got %v", list)
		}
	})

	t.Run("requester list joins profile once per professional", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		profRepo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewRequestWorkflowUseCase(repo, profRepo)

		repo.EXPECT().ListByRequester(gomock.Any(), "user-1").Return([]entities.ServiceRequest{
			{ID: "req-1", ProfessionalID: "pro-1"},
			{ID: "req-2", ProfessionalID: "pro-1"},
		}, nil)
		profRepo.EXPECT().GetByID(gomock.Any(), "pro-1").Return(entities.Professional{ID: "pro-1", Name: "Ana", LastName: "Gomez", Trade: "plomeria"}, nil).Times(1)

		list, err := uc.ListForRequester(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(list))
		}
		if list[0].ProfessionalName != "Ana" || list[1].Trade != "plomeria" {
			t.Fatalf("expected joined profile, got %+v", list)
		}
	})

	t.Run("missing profile degrades to bare request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		profRepo := mock_interfaces.NewMockIProfessionalRepository(ctrl)
		uc := NewRequestWorkflowUseCase(repo, profRepo)

		repo.EXPECT().ListByRequester(gomock.Any(), "user-1").Return([]entities.ServiceRequest{
			{ID: "req-1", ProfessionalID: "pro-ghost"},
		}, nil)
		profRepo.EXPECT().GetByID(gomock.Any(), "pro-ghost").Return(entities.Professional{}, errors.New("not reachable"))

		list, err := uc.ListForRequester(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 || list[0].ID != "req-1" || list[0].ProfessionalName != "" {
			t.Fatalf("expected bare request row, got %+v", list)
		}
	})
}
