package contracts

import (
	"context"

	"mosefak-service/internal/app/models"
)

type DoctorRepository interface {
	FindByID(ctx context.Context, doctorID int64) (*models.Doctor, error)
}

type AppointmentTypeRepository interface {
	FindByIDForDoctor(ctx context.Context, appointmentTypeID, doctorID int64) (*models.AppointmentType, error)
}
