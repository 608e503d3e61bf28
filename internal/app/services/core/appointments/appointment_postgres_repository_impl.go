package appointments

import (
	"context"
	"database/sql"
	"time"

	"mosefak-service/internal/app/contracts"
	"mosefak-service/internal/app/models"
	"mosefak-service/internal/pkg/exceptions"
	"mosefak-service/internal/pkg/queries"

	"github.com/lib/pq"
)

// dbtx is the common surface of *sql.DB and *sql.Tx the repository needs.
type dbtx interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type appointmentPostgresRepository struct {
	DB dbtx
}

func NewAppointmentPostgresRepository(db *sql.DB) contracts.AppointmentRepository {
	return &appointmentPostgresRepository{
		DB: db,
	}
}

func (repo *appointmentPostgresRepository) WithTx(tx *sql.Tx) contracts.AppointmentRepository {
	return &appointmentPostgresRepository{
		DB: tx,
	}
}

func scanAppointment(scan func(dest ...interface{}) error, model *models.Appointment) error {
	return scan(
		&model.ID,
		&model.DoctorID,
		&model.PatientID,
		&model.AppointmentTypeID,
		&model.StartDate,
		&model.EndDate,
		&model.Status,
		&model.PaymentStatus,
		&model.PaymentDueTime,
		&model.CancellationReason,
		&model.ProblemDescription,
		&model.CreatedAt,
		&model.UpdatedAt,
		&model.ConfirmedAt,
		&model.CancelledAt,
		&model.CompletedAt,
	)
}

func (repo *appointmentPostgresRepository) FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	query := queries.GetAppointmentByID
	var appointment models.Appointment
	err := scanAppointment(repo.DB.QueryRowContext(ctx, query, appointmentID).Scan, &appointment)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &appointment, nil
}

func (repo *appointmentPostgresRepository) FindByIDForPatient(ctx context.Context, appointmentID, patientID int64) (*models.Appointment, error) {
	query := queries.GetAppointmentByIDForPatient
	var appointment models.Appointment
	err := scanAppointment(repo.DB.QueryRowContext(ctx, query, appointmentID, patientID).Scan, &appointment)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &appointment, nil
}

func (repo *appointmentPostgresRepository) CountOverlapping(ctx context.Context, doctorID int64, start, end time.Time, excludeAppointmentID int64) (int, error) {
	query := queries.CountOverlappingAppointments
	var count int
	err := repo.DB.QueryRowContext(ctx, query, doctorID, start, end, excludeAppointmentID).Scan(&count)
	if err != nil {
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return count, nil
}

func (repo *appointmentPostgresRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	query := queries.InsertAppointment
	var inserted models.Appointment
	err := scanAppointment(repo.DB.QueryRowContext(ctx, query,
		appointment.DoctorID,
		appointment.PatientID,
		appointment.AppointmentTypeID,
		appointment.StartDate,
		appointment.EndDate,
		appointment.Status,
		appointment.PaymentStatus,
		appointment.PaymentDueTime,
		appointment.CancellationReason,
		appointment.ProblemDescription,
	).Scan, &inserted)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return &inserted, nil
}

func (repo *appointmentPostgresRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	query := queries.UpdateAppointment
	var updated models.Appointment
	err := scanAppointment(repo.DB.QueryRowContext(ctx, query,
		appointment.StartDate,
		appointment.EndDate,
		appointment.Status,
		appointment.PaymentStatus,
		appointment.PaymentDueTime,
		appointment.CancellationReason,
		appointment.ConfirmedAt,
		appointment.CancelledAt,
		appointment.CompletedAt,
		appointment.ID,
	).Scan, &updated)
	if err == sql.ErrNoRows {
		return nil, exceptions.ErrPostgresDBZeroRowsAffected(err)
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	return &updated, nil
}

func (repo *appointmentPostgresRepository) FindByPatient(ctx context.Context, patientID int64, status models.AppointmentStatus, limit, offset int) ([]models.Appointment, int, error) {
	appointments, err := repo.queryAppointments(ctx, queries.GetAppointmentsByPatient, patientID, string(status), limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int
	err = repo.DB.QueryRowContext(ctx, queries.CountAppointmentsByPatient, patientID, string(status)).Scan(&total)
	if err != nil {
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}
	return appointments, total, nil
}

func (repo *appointmentPostgresRepository) FindByDoctor(ctx context.Context, doctorID int64, status models.AppointmentStatus, limit, offset int) ([]models.Appointment, int, error) {
	appointments, err := repo.queryAppointments(ctx, queries.GetAppointmentsByDoctor, doctorID, string(status), limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int
	err = repo.DB.QueryRowContext(ctx, queries.CountAppointmentsByDoctor, doctorID, string(status)).Scan(&total)
	if err != nil {
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}
	return appointments, total, nil
}

func (repo *appointmentPostgresRepository) FindExpiredUnpaid(ctx context.Context, now time.Time) ([]models.Appointment, error) {
	query := queries.GetExpiredUnpaidAppointments
	rows, err := repo.DB.QueryContext(ctx, query, now)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var appointments []models.Appointment
	for rows.Next() {
		var model models.Appointment
		if err := scanAppointment(rows.Scan, &model); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		appointments = append(appointments, model)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return appointments, nil
}

func (repo *appointmentPostgresRepository) AutoCancelByIDs(ctx context.Context, appointmentIDs []int64, reason string, cancelledAt time.Time) (int64, error) {
	query := queries.AutoCancelAppointmentsByIDs
	result, err := repo.DB.ExecContext(ctx, query, pq.Array(appointmentIDs), reason, cancelledAt)
	if err != nil {
		return 0, exceptions.ErrPostgresDBUpdateData(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, exceptions.ErrPostgresDBUpdateData(err)
	}
	return affected, nil
}

func (repo *appointmentPostgresRepository) queryAppointments(ctx context.Context, query string, ownerID int64, status string, limit, offset int) ([]models.Appointment, error) {
	rows, err := repo.DB.QueryContext(ctx, query, ownerID, status, limit, offset)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var appointments []models.Appointment
	for rows.Next() {
		var model models.Appointment
		if err := scanAppointment(rows.Scan, &model); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		appointments = append(appointments, model)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return appointments, nil
}
