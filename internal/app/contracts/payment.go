package contracts

import (
	"context"
	"database/sql"

	"mosefak-service/internal/app/models"
)

type PaymentUsecase interface {
	CreateOrGetPaymentIntent(ctx context.Context, appointmentID int64) (string, error)
	ConfirmPayment(ctx context.Context, appointmentID int64) (bool, error)
	HandlePaymentSucceeded(ctx context.Context, paymentIntentID string) error
	HandlePaymentFailed(ctx context.Context, paymentIntentID string) error
	HandleRefundUpdated(ctx context.Context, paymentIntentID string, refundSucceeded bool) error
}

type PaymentRepository interface {
	WithTx(tx *sql.Tx) PaymentRepository
	FindByAppointmentID(ctx context.Context, appointmentID int64) (*models.Payment, error)
	FindByIntentID(ctx context.Context, paymentIntentID string) (*models.Payment, error)
	CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	UpdatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)
}
