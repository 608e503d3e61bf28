package models

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentPendingApproval   AppointmentStatus = "pending_approval"
	AppointmentPendingPayment    AppointmentStatus = "pending_payment"
	AppointmentConfirmed         AppointmentStatus = "confirmed"
	AppointmentCompleted         AppointmentStatus = "completed"
	AppointmentCanceledByPatient AppointmentStatus = "canceled_by_patient"
	AppointmentCanceledByDoctor  AppointmentStatus = "canceled_by_doctor"
	AppointmentAutoCanceled      AppointmentStatus = "auto_canceled"
)

// IsCanceled reports whether the status is one of the cancelled branches.
// Cancelled appointments do not occupy their slot anymore.
func (s AppointmentStatus) IsCanceled() bool {
	switch s {
	case AppointmentCanceledByPatient, AppointmentCanceledByDoctor, AppointmentAutoCanceled:
		return true
	}
	return false
}

// IsTerminal reports whether no further lifecycle transition is allowed.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentCompleted || s.IsCanceled()
}

type Appointment struct {
	ID                 int64             `json:"id"`
	DoctorID           int64             `json:"doctor_id"`
	PatientID          int64             `json:"patient_id"`
	AppointmentTypeID  int64             `json:"appointment_type_id"`
	StartDate          time.Time         `json:"start_date"`
	EndDate            time.Time         `json:"end_date"`
	Status             AppointmentStatus `json:"status"`
	PaymentStatus      PaymentStatus     `json:"payment_status"`
	PaymentDueTime     *time.Time        `json:"payment_due_time,omitempty"`
	CancellationReason *string           `json:"cancellation_reason,omitempty"`
	ProblemDescription *string           `json:"problem_description,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
	ConfirmedAt        *time.Time        `json:"confirmed_at,omitempty"`
	CancelledAt        *time.Time        `json:"cancelled_at,omitempty"`
	CompletedAt        *time.Time        `json:"completed_at,omitempty"`
}

// AppointmentType is immutable reference data owned by a doctor. Duration
// drives the computed end time and ConsultationFee the charge amount.
type AppointmentType struct {
	ID                int64  `json:"id"`
	DoctorID          int64  `json:"doctor_id"`
	Name              string `json:"name"`
	DurationInMinutes int    `json:"duration_in_minutes"`
	ConsultationFee   int64  `json:"consultation_fee"`
	Currency          string `json:"currency"`
}
