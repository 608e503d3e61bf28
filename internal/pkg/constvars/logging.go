package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingDataKey             = "data"
	LoggingRequestKey          = "request"
	LoggingResponseKey         = "response"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingDoctorIDKey         = "doctor_id"
	LoggingPatientIDKey        = "patient_id"
	LoggingPaymentIDKey        = "payment_id"
	LoggingPaymentIntentIDKey  = "payment_intent_id"
	LoggingPaymentStatusKey    = "payment_status"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingStatusKey           = "status"
	LoggingStartKey            = "start"
	LoggingEndKey              = "end"
	LoggingEventTypeKey        = "event_type"
	LoggingRecipientKey        = "recipient_user_id"
	LoggingRedisKey            = "redis_key"
	LoggingLockValueKey        = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingQueueNameKey        = "queue_name"
	LoggingOperationKey        = "operation"
	LoggingDurationKey         = "duration"
	LoggingSuccessKey          = "success"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingStatusCodeKey       = "status_code"
)
