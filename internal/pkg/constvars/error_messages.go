package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"uuid":     "must be a valid UUID",
	"gtfield":  "must be after %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"oneof":   true,
	"gt":      true,
	"gte":     true,
	"lt":      true,
	"lte":     true,
	"gtfield": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientAppointmentNotFound           = "appointment does not exist"
	ErrClientDoctorNotFound                = "doctor does not exist"
	ErrClientAppointmentTypeNotFound       = "this appointment type does not exist for this doctor"
	ErrClientPaymentNotFound               = "payment record not found"
	ErrClientSlotAlreadyBooked             = "cannot book appointment; the selected time slot is already booked, please try another time"
	ErrClientNotPendingApproval            = "appointment is not in a pending approval state"
	ErrClientNotPendingPayment             = "invalid appointment status for payment"
	ErrClientNotConfirmed                  = "only confirmed appointments can be completed"
	ErrClientNotCancellable                = "appointment cannot be canceled"
	ErrClientNotReschedulable              = "cannot reschedule a canceled or completed appointment"
	ErrClientInvalidTimeSlot               = "invalid time slot, end time must be after start time"
	ErrClientPaymentFailed                 = "payment operation failed"
	ErrClientRefundFailed                  = "failed to process payment refund"
	ErrClientInvalidWebhook                = "invalid webhook event"
)

// Error messages for developers
const (
	ErrDevInvalidInput            = "invalid input"
	ErrDevValidationFailed        = "request validation failed"
	ErrDevCannotParseJSON         = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON       = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseTime         = "cannot parse time into the given format"
	ErrDevDBFailedToFindData      = "failed to find data in database"
	ErrDevDBFailedToInsertData    = "failed to insert data into database"
	ErrDevDBFailedToUpdateData    = "failed to update data in database"
	ErrDevDBZeroRowsAffected      = "expected write affected zero rows"
	ErrDevDBUniqueViolation       = "unique constraint violation on active appointment slot"
	ErrDevDBTxBegin               = "failed to begin database transaction"
	ErrDevDBTxCommit              = "failed to commit database transaction"
	ErrDevMongoDBFailedToInsert   = "failed to insert document into mongodb"
	ErrDevRedisSetData            = "failed to set data to redis"
	ErrDevRedisGetData            = "failed to get data from redis"
	ErrDevRedisDeleteData         = "failed to delete data from redis"
	ErrDevRedisUnlock             = "failed to release redis lock"
	ErrDevGatewayCreateIntent     = "payment gateway failed to create payment intent"
	ErrDevGatewayEmptyIntentID    = "payment gateway returned an empty payment intent id"
	ErrDevGatewayVerifyStatus     = "payment gateway failed to verify payment status"
	ErrDevGatewayRefund           = "payment gateway refund call failed"
	ErrDevCreateHTTPRequest       = "failed to create http request"
	ErrDevSendHTTPRequest         = "failed to send http request"
	ErrDevRabbitMQPublishMessage  = "failed to publish message to rabbitmq queue %s"
	ErrDevWebhookBadSignature     = "webhook signature verification failed"
	ErrDevReadBody                = "failed to read request body"
	ErrDevMissingRequestID        = "request id missing from context"
	ErrDevDeadlineExceeded        = "request deadline exceeded"
	ErrDevInvalidTransition       = "illegal appointment status transition"
	ErrDevAppointmentNotExists    = "appointment does not exist"
	ErrDevDoctorNotExists         = "doctor does not exist"
	ErrDevAppointmentTypeNotExist = "appointment type does not exist for doctor"
	ErrDevPaymentNotExists        = "payment record does not exist"
)
