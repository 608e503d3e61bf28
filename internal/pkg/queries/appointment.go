package queries

const appointmentColumns = `
		id,
		doctor_id,
		patient_id,
		appointment_type_id,
		start_date,
		end_date,
		status,
		payment_status,
		payment_due_time,
		cancellation_reason,
		problem_description,
		created_at,
		updated_at,
		confirmed_at,
		cancelled_at,
		completed_at`

const (
	GetAppointmentByID = `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE id = $1
	`

	GetAppointmentByIDForPatient = `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE id = $1 AND patient_id = $2
	`

	// Half-open interval intersection against every active appointment of the
	// doctor. $4 excludes the appointment being rescheduled (0 for bookings).
	CountOverlappingAppointments = `
		SELECT COUNT(*)
		FROM appointments
		WHERE doctor_id = $1
		  AND id <> $4
		  AND status NOT IN ('canceled_by_patient', 'canceled_by_doctor', 'auto_canceled')
		  AND start_date < $3
		  AND end_date > $2
	`

	InsertAppointment = `
		INSERT INTO appointments (
			doctor_id,
			patient_id,
			appointment_type_id,
			start_date,
			end_date,
			status,
			payment_status,
			payment_due_time,
			cancellation_reason,
			problem_description,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING ` + appointmentColumns + `
	`

	UpdateAppointment = `
		UPDATE appointments
		SET
			start_date = $1,
			end_date = $2,
			status = $3,
			payment_status = $4,
			payment_due_time = $5,
			cancellation_reason = $6,
			confirmed_at = $7,
			cancelled_at = $8,
			completed_at = $9,
			updated_at = NOW()
		WHERE id = $10
		RETURNING ` + appointmentColumns + `
	`

	GetAppointmentsByPatient = `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE patient_id = $1
		  AND ($2::text = '' OR status = $2)
		ORDER BY start_date DESC
		LIMIT $3 OFFSET $4
	`

	CountAppointmentsByPatient = `
		SELECT COUNT(*)
		FROM appointments
		WHERE patient_id = $1
		  AND ($2::text = '' OR status = $2)
	`

	GetAppointmentsByDoctor = `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE doctor_id = $1
		  AND ($2::text = '' OR status = $2)
		ORDER BY start_date DESC
		LIMIT $3 OFFSET $4
	`

	CountAppointmentsByDoctor = `
		SELECT COUNT(*)
		FROM appointments
		WHERE doctor_id = $1
		  AND ($2::text = '' OR status = $2)
	`

	GetExpiredUnpaidAppointments = `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE status = 'pending_payment'
		  AND payment_status <> 'paid'
		  AND payment_due_time < $1
	`

	AutoCancelAppointmentsByIDs = `
		UPDATE appointments
		SET
			status = 'auto_canceled',
			cancellation_reason = $2,
			cancelled_at = $3,
			updated_at = NOW()
		WHERE id = ANY($1)
		  AND status = 'pending_payment'
		  AND payment_status <> 'paid'
	`
)
