package responses

import (
	"time"

	"mosefak-service/internal/app/models"
)

type Appointment struct {
	ID                 int64      `json:"id"`
	DoctorID           int64      `json:"doctor_id"`
	PatientID          int64      `json:"patient_id"`
	StartDate          time.Time  `json:"start_date"`
	EndDate            time.Time  `json:"end_date"`
	Status             string     `json:"status"`
	PaymentStatus      string     `json:"payment_status"`
	PaymentDueTime     *time.Time `json:"payment_due_time,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	ProblemDescription *string    `json:"problem_description,omitempty"`
}

func NewAppointment(model *models.Appointment) Appointment {
	return Appointment{
		ID:                 model.ID,
		DoctorID:           model.DoctorID,
		PatientID:          model.PatientID,
		StartDate:          model.StartDate,
		EndDate:            model.EndDate,
		Status:             string(model.Status),
		PaymentStatus:      string(model.PaymentStatus),
		PaymentDueTime:     model.PaymentDueTime,
		CancellationReason: model.CancellationReason,
		ProblemDescription: model.ProblemDescription,
	}
}
