package response

import "app_oficios/internal/domain/entities"

type PreferenceResponse struct {
	PreferenceID     string `json:"preference_id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`
	InvoiceID        string `json:"invoice_id,omitempty"`
}

func FromPreference(p entities.PaymentPreference) PreferenceResponse {
	return PreferenceResponse{
		PreferenceID:     p.PreferenceID,
		InitPoint:        p.InitPoint,
		SandboxInitPoint: p.SandboxInitPoint,
		InvoiceID:        p.InvoiceID,
	}
}

type GatewayConfigResponse struct {
	PublicKey string `json:"public_key"`
	Sandbox   bool   `json:"sandbox"`
}

func FromGatewayConfig(c entities.GatewayConfig) GatewayConfigResponse {
	return GatewayConfigResponse{PublicKey: c.PublicKey, Sandbox: c.Sandbox}
}
