package interfaces

import (
	"context"

	"app_oficios/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// CreatePreference issues a one-shot checkout preference; the returned
// InitPoint is a redirect URL with no cancellation path once handed to the
// browser.
type IPaymentGateway interface {
	CreatePreference(ctx context.Context, req entities.PreferenceRequest) (entities.PaymentPreference, error)
	Config() entities.GatewayConfig
}
