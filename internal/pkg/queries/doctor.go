package queries

const (
	GetDoctorByID = `
		SELECT
			id,
			app_user_id,
			full_name
		FROM doctors
		WHERE id = $1
	`

	GetAppointmentTypeByIDForDoctor = `
		SELECT
			id,
			doctor_id,
			name,
			duration_in_minutes,
			consultation_fee,
			currency
		FROM appointment_types
		WHERE id = $1 AND doctor_id = $2
	`
)
