package requests

// CreateIntentRequest is the outbound payload for the gateway intents API.
// PayerRef and SubjectRef are opaque references the gateway echoes back.
type CreateIntentRequest struct {
	Amount     int64  `json:"amount" validate:"required,gt=0"`
	Currency   string `json:"currency" validate:"required"`
	PayerRef   string `json:"payer_ref" validate:"required"`
	SubjectRef string `json:"subject_ref" validate:"required"`
}

// GatewayEvent is an inbound webhook payload from the payment gateway.
type GatewayEvent struct {
	ID   string           `json:"id"`
	Type string           `json:"type"`
	Data GatewayEventData `json:"data"`
}

type GatewayEventData struct {
	PaymentIntentID string `json:"payment_intent_id"`
	RefundStatus    string `json:"refund_status,omitempty"`
}
