package models

import (
	"time"
)

type PaymentStatus string

const (
	PaymentPending      PaymentStatus = "pending"
	PaymentPaid         PaymentStatus = "paid"
	PaymentFailed       PaymentStatus = "failed"
	PaymentRefunded     PaymentStatus = "refunded"
	PaymentRefundFailed PaymentStatus = "refund_failed"
)

// Payment mirrors a gateway payment intent for one appointment. The client
// secret is safe to hand to the frontend; the intent id stays server-side.
type Payment struct {
	ID              int64         `json:"id"`
	AppointmentID   int64         `json:"appointment_id"`
	PaymentIntentID string        `json:"payment_intent_id"`
	ClientSecret    string        `json:"client_secret"`
	Amount          int64         `json:"amount"`
	Currency        string        `json:"currency"`
	Status          PaymentStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
