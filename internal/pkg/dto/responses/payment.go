package responses

// PaymentIntent is the gateway's answer to an intent creation call.
type PaymentIntent struct {
	IntentID     string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

type CreatePaymentIntent struct {
	AppointmentID int64  `json:"appointment_id"`
	ClientSecret  string `json:"client_secret"`
}
