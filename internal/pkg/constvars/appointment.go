package constvars

// Notification copy used by lifecycle transitions. Kept in one place so the
// sweep job and the usecases stay consistent.
const (
	NotificationTitleNewBookingRequest = "New Booking Request"
	NotificationTitleApproved          = "Appointment Approved"
	NotificationTitleRejected          = "Appointment Rejected"
	NotificationTitleCanceled          = "Appointment Canceled"
	NotificationTitleCanceledByDoctor  = "Appointment Canceled by Doctor"
	NotificationTitleCompleted         = "Appointment Completed"
	NotificationTitleAutoCanceled      = "Appointment Auto-Canceled"
	NotificationTitleRescheduled       = "Appointment Rescheduled"
	NotificationTitlePaymentSuccessful = "Payment Successful!"
	NotificationTitlePaymentFailed     = "Payment Failed"
	NotificationTitleAppointmentConfirmed = "Appointment Confirmed"
	NotificationTitleRefundProcessed      = "Refund Processed"

	NotificationMessageNewBookingRequest = "You have received a new appointment request that requires your approval."
	NotificationMessageApproved          = "Your appointment request has been approved. Please complete the payment within 24 hours to confirm your session."
	NotificationMessageCompleted         = "Your appointment has been marked as completed. We hope you had a great experience!"
	NotificationMessageAutoCanceled      = "Your appointment was automatically canceled because the payment was not completed within the required timeframe."
	NotificationMessagePaymentFailed     = "We were unable to process your payment for the recent appointment. Please try again or use a different payment method."
)

const (
	AutoCancelReason            = "Payment not completed within the required timeframe."
	CancellationReasonNotGiven  = "Not specified."
)
