package constvars

// Payment gateway intent statuses as reported by VerifyStatus.
const (
	GatewayStatusSucceeded = "succeeded"
	GatewayStatusPending   = "pending"
	GatewayStatusError     = "error"
)

// Inbound webhook event types.
const (
	GatewayEventPaymentSucceeded = "payment_intent.succeeded"
	GatewayEventPaymentFailed    = "payment_intent.payment_failed"
	GatewayEventRefundUpdated    = "charge.refund.updated"
)

const (
	GatewayRefundStatusSucceeded = "succeeded"
)

const (
	HeaderGatewaySignature = "X-Gateway-Signature"
)
