package payments

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"mosefak-service/internal/app/contracts"
	"mosefak-service/internal/app/models"
	"mosefak-service/internal/pkg/constvars"
	"mosefak-service/internal/pkg/dto/requests"
	"mosefak-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type paymentUsecase struct {
	PaymentRepository         contracts.PaymentRepository
	AppointmentRepository     contracts.AppointmentRepository
	AppointmentTypeRepository contracts.AppointmentTypeRepository
	DoctorRepository          contracts.DoctorRepository
	GatewayService            contracts.PaymentGatewayService
	NotificationService       contracts.NotificationService
	TxRunner                  contracts.TxRunner
	Log                       *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	appointmentRepository contracts.AppointmentRepository,
	appointmentTypeRepository contracts.AppointmentTypeRepository,
	doctorRepository contracts.DoctorRepository,
	gatewayService contracts.PaymentGatewayService,
	notificationService contracts.NotificationService,
	txRunner contracts.TxRunner,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		instance := &paymentUsecase{
			PaymentRepository:         paymentRepository,
			AppointmentRepository:     appointmentRepository,
			AppointmentTypeRepository: appointmentTypeRepository,
			DoctorRepository:          doctorRepository,
			GatewayService:            gatewayService,
			NotificationService:       notificationService,
			TxRunner:                  txRunner,
			Log:                       logger,
		}
		paymentUsecaseInstance = instance
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) CreateOrGetPaymentIntent(ctx context.Context, appointmentID int64) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreateOrGetPaymentIntent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return "", err
	}
	if appointment == nil {
		return "", exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.Status != models.AppointmentPendingPayment {
		return "", exceptions.ErrNotPendingPayment(fmt.Errorf("appointment %d is %s", appointmentID, appointment.Status))
	}

	existing, err := uc.PaymentRepository.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		return "", err
	}
	if existing != nil && existing.Status == models.PaymentPending {
		uc.Log.Info("paymentUsecase.CreateOrGetPaymentIntent reusing pending intent",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIntentIDKey, existing.PaymentIntentID),
		)
		return existing.ClientSecret, nil
	}

	appointmentType, err := uc.AppointmentTypeRepository.FindByIDForDoctor(ctx, appointment.AppointmentTypeID, appointment.DoctorID)
	if err != nil {
		return "", err
	}
	if appointmentType == nil {
		return "", exceptions.ErrAppointmentTypeNotFound(nil)
	}

	currency := appointmentType.Currency
	if currency == "" {
		currency = constvars.CurrencyUSDollar
	}

	intent, err := uc.GatewayService.CreateIntent(ctx, &requests.CreateIntentRequest{
		Amount:     appointmentType.ConsultationFee,
		Currency:   currency,
		PayerRef:   fmt.Sprintf("patient-%d", appointment.PatientID),
		SubjectRef: fmt.Sprintf("appointment-%d", appointment.ID),
	})
	if err != nil {
		uc.Log.Error("paymentUsecase.CreateOrGetPaymentIntent error creating gateway intent",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	payment := &models.Payment{
		AppointmentID:   appointment.ID,
		PaymentIntentID: intent.IntentID,
		ClientSecret:    intent.ClientSecret,
		Amount:          appointmentType.ConsultationFee,
		Currency:        currency,
		Status:          models.PaymentPending,
	}
	created, err := uc.PaymentRepository.CreatePayment(ctx, payment)
	if err != nil {
		uc.Log.Error("paymentUsecase.CreateOrGetPaymentIntent error saving payment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	uc.Log.Info("paymentUsecase.CreateOrGetPaymentIntent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIntentIDKey, created.PaymentIntentID),
	)
	return created.ClientSecret, nil
}

func (uc *paymentUsecase) ConfirmPayment(ctx context.Context, appointmentID int64) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.ConfirmPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	payment, err := uc.PaymentRepository.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		return false, err
	}
	if payment == nil {
		return false, exceptions.ErrPaymentNotFound(nil)
	}
	if payment.Status == models.PaymentPaid {
		return true, nil
	}

	status, err := uc.GatewayService.VerifyStatus(ctx, payment.PaymentIntentID)
	if err != nil {
		uc.Log.Error("paymentUsecase.ConfirmPayment error verifying gateway status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIntentIDKey, payment.PaymentIntentID),
			zap.Error(err),
		)
		return false, err
	}

	uc.Log.Info("paymentUsecase.ConfirmPayment gateway status received",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIntentIDKey, payment.PaymentIntentID),
		zap.String(constvars.LoggingPaymentStatusKey, status),
	)

	switch status {
	case constvars.GatewayStatusSucceeded:
		if err := uc.markPaid(ctx, payment); err != nil {
			return false, err
		}
		return true, nil
	case constvars.GatewayStatusError:
		if err := uc.markFailed(ctx, payment); err != nil {
			return false, err
		}
		return false, nil
	default:
		return false, nil
	}
}

func (uc *paymentUsecase) HandlePaymentSucceeded(ctx context.Context, paymentIntentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.HandlePaymentSucceeded called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIntentIDKey, paymentIntentID),
	)

	payment, err := uc.PaymentRepository.FindByIntentID(ctx, paymentIntentID)
	if err != nil {
		return err
	}
	if payment == nil {
		return exceptions.ErrPaymentNotFound(fmt.Errorf("no payment for intent %s", paymentIntentID))
	}
	if payment.Status == models.PaymentPaid {
		return nil
	}

	return uc.markPaid(ctx, payment)
}

func (uc *paymentUsecase) HandlePaymentFailed(ctx context.Context, paymentIntentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.HandlePaymentFailed called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIntentIDKey, paymentIntentID),
	)

	payment, err := uc.PaymentRepository.FindByIntentID(ctx, paymentIntentID)
	if err != nil {
		return err
	}
	if payment == nil {
		return exceptions.ErrPaymentNotFound(fmt.Errorf("no payment for intent %s", paymentIntentID))
	}
	// A failure event that arrives after success is stale.
	if payment.Status == models.PaymentPaid || payment.Status == models.PaymentFailed {
		return nil
	}

	return uc.markFailed(ctx, payment)
}

func (uc *paymentUsecase) HandleRefundUpdated(ctx context.Context, paymentIntentID string, refundSucceeded bool) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.HandleRefundUpdated called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIntentIDKey, paymentIntentID),
		zap.Bool("refund_succeeded", refundSucceeded),
	)

	payment, err := uc.PaymentRepository.FindByIntentID(ctx, paymentIntentID)
	if err != nil {
		return err
	}
	if payment == nil {
		return exceptions.ErrPaymentNotFound(fmt.Errorf("no payment for intent %s", paymentIntentID))
	}

	targetStatus := models.PaymentRefunded
	if !refundSucceeded {
		targetStatus = models.PaymentRefundFailed
	}
	if payment.Status == targetStatus {
		return nil
	}

	var appointment *models.Appointment
	err = uc.TxRunner.RunInTx(ctx, func(tx *sql.Tx) error {
		paymentRepo := uc.PaymentRepository.WithTx(tx)
		appointmentRepo := uc.AppointmentRepository.WithTx(tx)

		payment.Status = targetStatus
		if _, err := paymentRepo.UpdatePayment(ctx, payment); err != nil {
			return err
		}

		appointment, err = appointmentRepo.FindByID(ctx, payment.AppointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return exceptions.ErrAppointmentNotFound(fmt.Errorf("payment %d references missing appointment %d", payment.ID, payment.AppointmentID))
		}

		appointment.PaymentStatus = targetStatus
		_, err = appointmentRepo.UpdateAppointment(ctx, appointment)
		return err
	})
	if err != nil {
		uc.Log.Error("paymentUsecase.HandleRefundUpdated error applying refund update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if refundSucceeded {
		uc.notify(ctx, appointment.PatientID,
			constvars.NotificationTitleRefundProcessed,
			"Your payment has been refunded for the canceled appointment.",
		)
	} else {
		uc.Log.Error("paymentUsecase.HandleRefundUpdated refund failed at the gateway",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIntentIDKey, paymentIntentID),
		)
	}
	return nil
}

// markPaid flips the payment to paid and confirms the appointment in one
// transaction. Safe to call from both the webhook path and the verify path.
func (uc *paymentUsecase) markPaid(ctx context.Context, payment *models.Payment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var appointment *models.Appointment
	err := uc.TxRunner.RunInTx(ctx, func(tx *sql.Tx) error {
		paymentRepo := uc.PaymentRepository.WithTx(tx)
		appointmentRepo := uc.AppointmentRepository.WithTx(tx)

		payment.Status = models.PaymentPaid
		if _, err := paymentRepo.UpdatePayment(ctx, payment); err != nil {
			return err
		}

		var err error
		appointment, err = appointmentRepo.FindByID(ctx, payment.AppointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return exceptions.ErrAppointmentNotFound(fmt.Errorf("payment %d references missing appointment %d", payment.ID, payment.AppointmentID))
		}

		appointment.PaymentStatus = models.PaymentPaid
		if appointment.Status == models.AppointmentPendingPayment {
			now := time.Now().UTC()
			appointment.Status = models.AppointmentConfirmed
			appointment.ConfirmedAt = &now
		}

		_, err = appointmentRepo.UpdateAppointment(ctx, appointment)
		return err
	})
	if err != nil {
		uc.Log.Error("paymentUsecase.markPaid error confirming appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPaymentIDKey, payment.ID),
			zap.Error(err),
		)
		return err
	}

	uc.notify(ctx, appointment.PatientID,
		constvars.NotificationTitlePaymentSuccessful,
		"Your payment was received.",
	)
	uc.notifyDoctor(ctx, appointment.DoctorID,
		constvars.NotificationTitleAppointmentConfirmed,
		fmt.Sprintf("The appointment on %s has been paid and confirmed.", appointment.StartDate.Format(time.RFC1123)),
	)

	uc.Log.Info("paymentUsecase.markPaid succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return nil
}

func (uc *paymentUsecase) markFailed(ctx context.Context, payment *models.Payment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var appointment *models.Appointment
	err := uc.TxRunner.RunInTx(ctx, func(tx *sql.Tx) error {
		paymentRepo := uc.PaymentRepository.WithTx(tx)
		appointmentRepo := uc.AppointmentRepository.WithTx(tx)

		payment.Status = models.PaymentFailed
		if _, err := paymentRepo.UpdatePayment(ctx, payment); err != nil {
			return err
		}

		var err error
		appointment, err = appointmentRepo.FindByID(ctx, payment.AppointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return exceptions.ErrAppointmentNotFound(fmt.Errorf("payment %d references missing appointment %d", payment.ID, payment.AppointmentID))
		}

		// The appointment stays pending_payment: the patient may retry with a
		// fresh intent until the payment due time passes.
		appointment.PaymentStatus = models.PaymentFailed
		_, err = appointmentRepo.UpdateAppointment(ctx, appointment)
		return err
	})
	if err != nil {
		uc.Log.Error("paymentUsecase.markFailed error recording failed payment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPaymentIDKey, payment.ID),
			zap.Error(err),
		)
		return err
	}

	uc.notify(ctx, appointment.PatientID,
		constvars.NotificationTitlePaymentFailed,
		constvars.NotificationMessagePaymentFailed,
	)
	return nil
}

// notifyDoctor resolves the doctor's user account before dispatching.
func (uc *paymentUsecase) notifyDoctor(ctx context.Context, doctorID int64, title, message string) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil || doctor == nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("paymentUsecase.notifyDoctor error resolving doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return
	}
	uc.notify(ctx, doctor.AppUserID, title, message)
}

func (uc *paymentUsecase) notify(ctx context.Context, recipientUserID int64, title, message string) {
	if err := uc.NotificationService.SendAndSave(ctx, recipientUserID, title, message); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("paymentUsecase.notify error dispatching notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingRecipientKey, recipientUserID),
			zap.Error(err),
		)
	}
}
