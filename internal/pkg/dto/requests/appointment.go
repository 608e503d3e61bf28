package requests

import (
	"time"
)

type BookAppointmentRequest struct {
	DoctorID           int64     `json:"doctor_id" validate:"required,gt=0"`
	PatientID          int64     `json:"patient_id" validate:"required,gt=0"`
	AppointmentTypeID  int64     `json:"appointment_type_id" validate:"required,gt=0"`
	StartDate          time.Time `json:"start_date" validate:"required"`
	ProblemDescription string    `json:"problem_description,omitempty" validate:"max=2000"`
}

type RescheduleAppointmentRequest struct {
	AppointmentID int64     `json:"appointment_id" validate:"required,gt=0"`
	StartDate     time.Time `json:"start_date" validate:"required"`
	EndDate       time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
}

type CancelAppointmentRequest struct {
	AppointmentID      int64  `json:"appointment_id" validate:"required,gt=0"`
	CancellationReason string `json:"cancellation_reason,omitempty" validate:"max=2000"`
}

type Pagination struct {
	Page     int `json:"page" validate:"gte=1"`
	PageSize int `json:"page_size" validate:"gte=1,lte=100"`
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func DefaultPagination() Pagination {
	return Pagination{Page: 1, PageSize: 10}
}
