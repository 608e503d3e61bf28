package contracts

import (
	"context"
	"database/sql"
	"time"

	"mosefak-service/internal/app/models"
	"mosefak-service/internal/pkg/dto/requests"
	"mosefak-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	Book(ctx context.Context, request *requests.BookAppointmentRequest) (*responses.Appointment, error)
	Approve(ctx context.Context, appointmentID int64) error
	Reject(ctx context.Context, appointmentID int64, rejectionReason string) error
	CancelByPatient(ctx context.Context, patientID int64, request *requests.CancelAppointmentRequest) error
	CancelByDoctor(ctx context.Context, request *requests.CancelAppointmentRequest) error
	MarkCompleted(ctx context.Context, appointmentID int64) error
	Reschedule(ctx context.Context, request *requests.RescheduleAppointmentRequest) error
	GetStatus(ctx context.Context, appointmentID int64) (models.AppointmentStatus, error)
	FindPatientAppointments(ctx context.Context, patientID int64, status models.AppointmentStatus, page requests.Pagination) ([]responses.Appointment, int, error)
	FindDoctorAppointments(ctx context.Context, doctorID int64, status models.AppointmentStatus, page requests.Pagination) ([]responses.Appointment, int, error)
	AutoCancelExpired(ctx context.Context) (int, error)
}

type AppointmentRepository interface {
	// WithTx returns a copy of the repository bound to tx so availability
	// checks and writes share one transaction.
	WithTx(tx *sql.Tx) AppointmentRepository
	FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error)
	FindByIDForPatient(ctx context.Context, appointmentID, patientID int64) (*models.Appointment, error)
	CountOverlapping(ctx context.Context, doctorID int64, start, end time.Time, excludeAppointmentID int64) (int, error)
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindByPatient(ctx context.Context, patientID int64, status models.AppointmentStatus, limit, offset int) ([]models.Appointment, int, error)
	FindByDoctor(ctx context.Context, doctorID int64, status models.AppointmentStatus, limit, offset int) ([]models.Appointment, int, error)
	FindExpiredUnpaid(ctx context.Context, now time.Time) ([]models.Appointment, error)
	AutoCancelByIDs(ctx context.Context, appointmentIDs []int64, reason string, cancelledAt time.Time) (int64, error)
}
