package contracts

import (
	"context"

	"mosefak-service/internal/pkg/dto/requests"
	"mosefak-service/internal/pkg/dto/responses"
)

// PaymentGatewayService is the narrow contract over the external payment
// provider. Calls are at-most-once: the implementation never retries, so a
// failure here is a failure to the caller.
type PaymentGatewayService interface {
	CreateIntent(ctx context.Context, request *requests.CreateIntentRequest) (*responses.PaymentIntent, error)
	VerifyStatus(ctx context.Context, paymentIntentID string) (string, error)
	Refund(ctx context.Context, paymentIntentID string) (bool, error)
	VerifySignature(payload []byte, signature string) error
}
