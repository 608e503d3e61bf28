package exceptions

import (
	"fmt"
	"mosefak-service/internal/pkg/constvars"
)

var (
	// Validation / parsing
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindFatal, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindFatal, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindFatal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseTime = func(err error) *CustomError {
		return BuildNewCustomError(err, KindFatal, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseTime)
	}

	// NotFound
	ErrAppointmentNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNotFound, constvars.StatusNotFound, constvars.ErrClientAppointmentNotFound, constvars.ErrDevAppointmentNotExists)
	}
	ErrDoctorNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNotFound, constvars.StatusNotFound, constvars.ErrClientDoctorNotFound, constvars.ErrDevDoctorNotExists)
	}
	ErrAppointmentTypeNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNotFound, constvars.StatusNotFound, constvars.ErrClientAppointmentTypeNotFound, constvars.ErrDevAppointmentTypeNotExist)
	}
	ErrPaymentNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNotFound, constvars.StatusNotFound, constvars.ErrClientPaymentNotFound, constvars.ErrDevPaymentNotExists)
	}

	// InvalidState
	ErrNotPendingApproval = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidState, constvars.StatusBadRequest, constvars.ErrClientNotPendingApproval, constvars.ErrDevInvalidTransition)
	}
	ErrNotPendingPayment = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidState, constvars.StatusBadRequest, constvars.ErrClientNotPendingPayment, constvars.ErrDevInvalidTransition)
	}
	ErrNotConfirmed = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidState, constvars.StatusBadRequest, constvars.ErrClientNotConfirmed, constvars.ErrDevInvalidTransition)
	}
	ErrNotCancellable = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidState, constvars.StatusBadRequest, constvars.ErrClientNotCancellable, constvars.ErrDevInvalidTransition)
	}
	ErrNotReschedulable = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidState, constvars.StatusBadRequest, constvars.ErrClientNotReschedulable, constvars.ErrDevInvalidTransition)
	}
	ErrInvalidTimeSlot = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidState, constvars.StatusBadRequest, constvars.ErrClientInvalidTimeSlot, constvars.ErrDevInvalidInput)
	}

	// Conflict
	ErrSlotTaken = func(err error) *CustomError {
		return BuildNewCustomError(err, KindConflict, constvars.StatusConflict, constvars.ErrClientSlotAlreadyBooked, constvars.ErrDevDBUniqueViolation)
	}

	// GatewayFailure
	ErrGatewayCreateIntent = func(err error) *CustomError {
		return BuildNewCustomError(err, KindGatewayFailure, constvars.StatusBadGateway, constvars.ErrClientPaymentFailed, constvars.ErrDevGatewayCreateIntent)
	}
	ErrGatewayEmptyIntentID = func(err error) *CustomError {
		return BuildNewCustomError(err, KindGatewayFailure, constvars.StatusBadGateway, constvars.ErrClientPaymentFailed, constvars.ErrDevGatewayEmptyIntentID)
	}
	ErrGatewayVerifyStatus = func(err error) *CustomError {
		return BuildNewCustomError(err, KindGatewayFailure, constvars.StatusBadGateway, constvars.ErrClientPaymentFailed, constvars.ErrDevGatewayVerifyStatus)
	}
	ErrGatewayRefund = func(err error) *CustomError {
		return BuildNewCustomError(err, KindGatewayFailure, constvars.StatusBadGateway, constvars.ErrClientRefundFailed, constvars.ErrDevGatewayRefund)
	}
	ErrWebhookBadSignature = func(err error) *CustomError {
		return BuildNewCustomError(err, KindGatewayFailure, constvars.StatusUnauthorized, constvars.ErrClientInvalidWebhook, constvars.ErrDevWebhookBadSignature)
	}

	// HTTP transport
	ErrReadBody = func(err error) *CustomError {
		return BuildNewCustomError(err, KindFatal, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevReadBody)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, KindFatal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, KindFatal, constvars.StatusGatewayTimeout, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDeadlineExceeded)
	}

	// Fatal persistence failures
	ErrPostgresDBFindData = func(err error) *CustomError {
		return BuildNewCustomError(err, KindFatal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindData)
	}
	ErrPostgresDBInsertData = func(err error) *CustomError {
		return BuildNewCustomError(err, KindFatal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertData)
	}
	ErrPostgresDBUpdateData = func(err error) *CustomError {
		return BuildNewCustomError(err, KindFatal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateData)
	}
	ErrPostgresDBZeroRowsAffected = func(err error) *CustomError {
		return BuildNewCustomError(err, KindFatal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBZeroRowsAffected)
	}
	ErrPostgresDBTxBegin = func(err error) *CustomError {
		return BuildNewCustomError(err, KindFatal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBTxBegin)
	}
	ErrPostgresDBTxCommit = func(err error) *CustomError {
		return BuildNewCustomError(err, KindFatal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBTxCommit)
	}

	// Mongo DB
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, KindFatal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBFailedToInsert)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindFatal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindFatal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, KindFatal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, KindFatal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, KindFatal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindFatal, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindGatewayFailure, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSendHTTPRequest)
	}
)
