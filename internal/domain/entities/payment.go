package entities

// PaymentPreference is a gateway-issued, one-shot redirect target for
// collecting a finished job's final cost. It is ephemeral: the caller is
// expected to navigate to InitPoint immediately, and an abandoned redirect is
// resolved out-of-band by the gateway's webhook.

type PaymentPreference struct {
	PreferenceID     string `json:"preference_id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`
	InvoiceID        string `json:"invoice_id,omitempty"`
}

// PreferenceRequest is the domain command handed to the payment gateway.
type PreferenceRequest struct {
	JobID       string  `json:"job_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Quantity    int     `json:"quantity"`
}

// GatewayConfig is the public gateway configuration the checkout UI needs.
type GatewayConfig struct {
	PublicKey string `json:"public_key"`
	Sandbox   bool   `json:"sandbox"`
}
