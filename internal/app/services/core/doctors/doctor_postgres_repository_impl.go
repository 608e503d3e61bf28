package doctors

import (
	"context"
	"database/sql"

	"mosefak-service/internal/app/contracts"
	"mosefak-service/internal/app/models"
	"mosefak-service/internal/pkg/exceptions"
	"mosefak-service/internal/pkg/queries"
)

type doctorPostgresRepository struct {
	DB *sql.DB
}

func NewDoctorPostgresRepository(db *sql.DB) contracts.DoctorRepository {
	return &doctorPostgresRepository{
		DB: db,
	}
}

func (repo *doctorPostgresRepository) FindByID(ctx context.Context, doctorID int64) (*models.Doctor, error) {
	query := queries.GetDoctorByID
	var doctor models.Doctor
	err := repo.DB.QueryRowContext(ctx, query, doctorID).Scan(
		&doctor.ID,
		&doctor.AppUserID,
		&doctor.FullName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &doctor, nil
}

type appointmentTypePostgresRepository struct {
	DB *sql.DB
}

func NewAppointmentTypePostgresRepository(db *sql.DB) contracts.AppointmentTypeRepository {
	return &appointmentTypePostgresRepository{
		DB: db,
	}
}

func (repo *appointmentTypePostgresRepository) FindByIDForDoctor(ctx context.Context, appointmentTypeID, doctorID int64) (*models.AppointmentType, error) {
	query := queries.GetAppointmentTypeByIDForDoctor
	var appointmentType models.AppointmentType
	err := repo.DB.QueryRowContext(ctx, query, appointmentTypeID, doctorID).Scan(
		&appointmentType.ID,
		&appointmentType.DoctorID,
		&appointmentType.Name,
		&appointmentType.DurationInMinutes,
		&appointmentType.ConsultationFee,
		&appointmentType.Currency,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &appointmentType, nil
}
