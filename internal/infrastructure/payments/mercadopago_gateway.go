package payments

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"app_oficios/internal/domain/entities"
	"app_oficios/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway issues checkout preferences through the Mercado Pago
// SDK. Each preference is one-shot: the caller redirects to InitPoint and the
// outcome is reconciled via the gateway's own notifications.

type MercadoPagoGateway struct {
	client    preference.Client
	publicKey string
	sandbox   bool
	mockMode  bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	publicKey := strings.TrimSpace(os.Getenv("MERCADOPAGO_PUBLIC_KEY"))
	sandbox := strings.HasPrefix(strings.TrimSpace(accessToken), "TEST-")

	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{publicKey: publicKey, sandbox: true, mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized sandbox=%t", sandbox)

	return &MercadoPagoGateway{
		client:    preference.NewClient(cfg),
		publicKey: publicKey,
		sandbox:   sandbox,
	}, nil
}

// CreatePreference maps the domain command onto a single-item preference.
// The job id travels as external_reference so gateway notifications can be
// reconciled with the job later.
func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, req entities.PreferenceRequest) (entities.PaymentPreference, error) {
	if g != nil && g.mockMode {
		id := uuid.NewString()
		log.Printf("[payment][gateway] mock preference created job_id=%s preference_id=%s", req.JobID, id)
		return entities.PaymentPreference{
			PreferenceID:     id,
			InitPoint:        "https://sandbox.mercadopago.test/checkout/" + id,
			SandboxInitPoint: "https://sandbox.mercadopago.test/checkout/" + id,
		}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.PaymentPreference{}, ErrMercadoPagoGatewayNotConfigured
	}

	log.Printf("[payment][gateway] create preference start job_id=%s amount=%.2f", req.JobID, req.Amount)
	resp, err := g.client.Create(ctx, preference.Request{
		ExternalReference: req.JobID,
		Items: []preference.ItemRequest{
			{
				ID:          req.JobID,
				Title:       req.Title,
				Description: req.Description,
				Quantity:    req.Quantity,
				UnitPrice:   req.Amount,
			},
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed job_id=%s err=%v", req.JobID, err)
		return entities.PaymentPreference{}, err
	}

	log.Printf("[payment][gateway] create preference success job_id=%s preference_id=%s", req.JobID, resp.ID)
	return entities.PaymentPreference{
		PreferenceID:     resp.ID,
		InitPoint:        resp.InitPoint,
		SandboxInitPoint: resp.SandboxInitPoint,
	}, nil
}

func (g *MercadoPagoGateway) Config() entities.GatewayConfig {
	if g == nil {
		return entities.GatewayConfig{}
	}
	return entities.GatewayConfig{PublicKey: g.publicKey, Sandbox: g.sandbox}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
