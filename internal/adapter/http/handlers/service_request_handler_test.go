package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"app_oficios/internal/adapter/http/handlers/mocks"
	"app_oficios/internal/domain/entities"
	"app_oficios/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newRequestRouter(h *ServiceRequestHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/solicitudes/enviar", h.SubmitRequest)
	r.PUT("/v1/solicitudes/responder/:id_solicitud", h.RespondToRequest)
	r.GET("/v1/solicitudes/pendientes/:id_profesional", h.ListPendingForProfessional)
	r.GET("/v1/solicitudes/verificar/:id_usuario/:id_profesional", h.CheckPendingExists)
	r.GET("/v1/solicitudes/turnos-disponibles/:id_profesional", h.GetWeeklySlots)
	r.POST("/v1/solicitudes/confirmar-turno", h.ConfirmSlot)
	return r
}

func TestServiceRequestHandler_SubmitRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIRequestWorkflowUseCase(ctrl)
		h := NewServiceRequestHandler(workflow, nil)
		r := newRequestRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/solicitudes/enviar", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate pending maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIRequestWorkflowUseCase(ctrl)
		h := NewServiceRequestHandler(workflow, nil)
		r := newRequestRouter(h)

		workflow.EXPECT().SubmitRequest(gomock.Any(), gomock.Any()).Return(entities.ServiceRequest{}, usecase.ErrPendingRequestExists)

		body := `{"requester_id":"user-1","professional_id":"pro-1","service_date":"2026-03-11","note":"necesito un plomero"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/solicitudes/enviar", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns created request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIRequestWorkflowUseCase(ctrl)
		h := NewServiceRequestHandler(workflow, nil)
		r := newRequestRouter(h)

		workflow.EXPECT().SubmitRequest(gomock.Any(), usecase.SubmitRequestCommand{
			RequesterID: "user-1", ProfessionalID: "pro-1", ServiceDate: "2026-03-11", Note: "necesito un plomero",
		}).Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusPendiente}, nil)

		body := `{"requester_id":"user-1","professional_id":"pro-1","service_date":"2026-03-11","note":"necesito un plomero"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/solicitudes/enviar", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["id"] != "req-1" || got["status"] != "PENDIENTE" {
			t.Fatalf("unexpected body: %v", got)
		}
	})
}

func TestServiceRequestHandler_RespondToRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIRequestWorkflowUseCase(ctrl)
		h := NewServiceRequestHandler(workflow, nil)
		r := newRequestRouter(h)

		workflow.EXPECT().RespondToRequest(gomock.Any(), "req-1", true).Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusAceptada}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/solicitudes/responder/req-1?aceptada=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing flag defaults to reject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIRequestWorkflowUseCase(ctrl)
		h := NewServiceRequestHandler(workflow, nil)
		r := newRequestRouter(h)

		workflow.EXPECT().RespondToRequest(gomock.Any(), "req-1", false).Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusRechazada}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/solicitudes/responder/req-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("already resolved maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIRequestWorkflowUseCase(ctrl)
		h := NewServiceRequestHandler(workflow, nil)
		r := newRequestRouter(h)

		workflow.EXPECT().RespondToRequest(gomock.Any(), "req-1", true).Return(entities.ServiceRequest{}, usecase.ErrRequestAlreadyResolved)

		req := httptest.NewRequest(http.MethodPut, "/v1/solicitudes/responder/req-1?aceptada=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestServiceRequestHandler_CheckPendingExists(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	workflow := mocks.NewMockIRequestWorkflowUseCase(ctrl)
	h := NewServiceRequestHandler(workflow, nil)
	r := newRequestRouter(h)

	workflow.EXPECT().CheckPendingExists(gomock.Any(), "user-1", "pro-1").Return(true)

	req := httptest.NewRequest(http.MethodGet, "/v1/solicitudes/verificar/user-1/pro-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !got["pending_exists"] {
		t.Fatalf("expected pending_exists=true, got %v", got)
	}
}

func TestServiceRequestHandler_GetWeeklySlots(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid duration query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		scheduling := mocks.NewMockISchedulingUseCase(ctrl)
		h := NewServiceRequestHandler(nil, scheduling)
		r := newRequestRouter(h)

		req := httptest.NewRequest(http.MethodGet, "/v1/solicitudes/turnos-disponibles/pro-1?fecha_inicio=2026-03-09&duracion=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("fetch failure maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		scheduling := mocks.NewMockISchedulingUseCase(ctrl)
		h := NewServiceRequestHandler(nil, scheduling)
		r := newRequestRouter(h)

		scheduling.EXPECT().GetAvailableSlotsForWeek(gomock.Any(), "pro-1", "2026-03-09", 0).Return(nil, usecase.ErrSlotsUnavailable)

		req := httptest.NewRequest(http.MethodGet, "/v1/solicitudes/turnos-disponibles/pro-1?fecha_inicio=2026-03-09", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("fetch timeout maps to gateway timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		scheduling := mocks.NewMockISchedulingUseCase(ctrl)
		h := NewServiceRequestHandler(nil, scheduling)
		r := newRequestRouter(h)

		scheduling.EXPECT().GetAvailableSlotsForWeek(gomock.Any(), "pro-1", "2026-03-09", 0).
			Return(nil, fmt.Errorf("%w: %w", usecase.ErrSlotsUnavailable, usecase.ErrOperationTimeout))

		req := httptest.NewRequest(http.MethodGet, "/v1/solicitudes/turnos-disponibles/pro-1?fecha_inicio=2026-03-09", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusGatewayTimeout {
			t.Fatalf("expected 504, got %d", w.Code)
		}
	})

	t.Run("success groups slots per day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		scheduling := mocks.NewMockISchedulingUseCase(ctrl)
		h := NewServiceRequestHandler(nil, scheduling)
		r := newRequestRouter(h)

		scheduling.EXPECT().GetAvailableSlotsForWeek(gomock.Any(), "pro-1", "2026-03-09", 30).Return([]entities.AvailableSlot{
			{Date: "2026-03-09", StartTime: "09:00:00", EndTime: "09:30:00", Available: true},
			{Date: "2026-03-10", StartTime: "09:00:00", EndTime: "09:30:00", Available: false},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/solicitudes/turnos-disponibles/pro-1?fecha_inicio=2026-03-09&duracion=30", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got struct {
			Slots  []map[string]any `json:"slots"`
			ByDate []map[string]any `json:"by_date"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(got.Slots) != 2 || len(got.ByDate) != 2 {
			t.Fatalf("expected 2 slots in 2 groups, got %+v", got)
		}
	})
}

func TestServiceRequestHandler_ConfirmSlot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("taken slot maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		scheduling := mocks.NewMockISchedulingUseCase(ctrl)
		h := NewServiceRequestHandler(nil, scheduling)
		r := newRequestRouter(h)

		scheduling.EXPECT().ConfirmSlot(gomock.Any(), gomock.Any()).Return(entities.ServiceRequest{}, usecase.ErrSlotNotAvailable)

		body := `{"requester_id":"user-1","professional_id":"pro-1","date":"2026-03-09","start_time":"09:00:00"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/solicitudes/confirmar-turno", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("past date maps to bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		scheduling := mocks.NewMockISchedulingUseCase(ctrl)
		h := NewServiceRequestHandler(nil, scheduling)
		r := newRequestRouter(h)

		scheduling.EXPECT().ConfirmSlot(gomock.Any(), gomock.Any()).Return(entities.ServiceRequest{}, usecase.ErrSlotDateInPast)

		body := `{"requester_id":"user-1","professional_id":"pro-1","date":"2020-01-01","start_time":"03:00:00"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/solicitudes/confirmar-turno", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["code"] != "SLOT_DATE_IN_PAST" {
			t.Fatalf("expected SLOT_DATE_IN_PAST, got %v", got)
		}
	})

	t.Run("slot outside agenda maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		scheduling := mocks.NewMockISchedulingUseCase(ctrl)
		h := NewServiceRequestHandler(nil, scheduling)
		r := newRequestRouter(h)

		scheduling.EXPECT().ConfirmSlot(gomock.Any(), gomock.Any()).Return(entities.ServiceRequest{}, usecase.ErrSlotOutsideAgenda)

		body := `{"requester_id":"user-1","professional_id":"pro-1","date":"2026-03-16","start_time":"22:00:00"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/solicitudes/confirmar-turno", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("duration defaults to 60", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		scheduling := mocks.NewMockISchedulingUseCase(ctrl)
		h := NewServiceRequestHandler(nil, scheduling)
		r := newRequestRouter(h)

		scheduling.EXPECT().ConfirmSlot(gomock.Any(), usecase.ConfirmSlotCommand{
			RequesterID: "user-1", ProfessionalID: "pro-1",
			Date: "2026-03-09", StartTime: "09:00:00", DurationMinutes: 60,
		}).Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusAceptada}, nil)

		body := `{"requester_id":"user-1","professional_id":"pro-1","date":"2026-03-09","start_time":"09:00:00"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/solicitudes/confirmar-turno", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}
