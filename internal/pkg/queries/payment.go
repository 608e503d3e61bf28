package queries

const paymentColumns = `
		id,
		appointment_id,
		payment_intent_id,
		client_secret,
		amount,
		currency,
		status,
		created_at,
		updated_at`

const (
	GetPaymentByAppointmentID = `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE appointment_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	GetPaymentByIntentID = `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE payment_intent_id = $1
	`

	InsertPayment = `
		INSERT INTO payments (
			appointment_id,
			payment_intent_id,
			client_secret,
			amount,
			currency,
			status,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + paymentColumns + `
	`

	UpdatePayment = `
		UPDATE payments
		SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2
		RETURNING ` + paymentColumns + `
	`
)
