package appointments

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"mosefak-service/internal/app/config"
	"mosefak-service/internal/app/contracts"
	"mosefak-service/internal/app/models"
	"mosefak-service/internal/pkg/constvars"
	"mosefak-service/internal/pkg/dto/requests"
	"mosefak-service/internal/pkg/dto/responses"
	"mosefak-service/internal/pkg/exceptions"
	"mosefak-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository     contracts.AppointmentRepository
	DoctorRepository          contracts.DoctorRepository
	AppointmentTypeRepository contracts.AppointmentTypeRepository
	PaymentRepository         contracts.PaymentRepository
	GatewayService            contracts.PaymentGatewayService
	NotificationService       contracts.NotificationService
	LockService               contracts.LockerService
	TxRunner                  contracts.TxRunner
	InternalConfig            *config.InternalConfig
	Log                       *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	appointmentTypeRepository contracts.AppointmentTypeRepository,
	paymentRepository contracts.PaymentRepository,
	gatewayService contracts.PaymentGatewayService,
	notificationService contracts.NotificationService,
	lockService contracts.LockerService,
	txRunner contracts.TxRunner,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			AppointmentRepository:     appointmentRepository,
			DoctorRepository:          doctorRepository,
			AppointmentTypeRepository: appointmentTypeRepository,
			PaymentRepository:         paymentRepository,
			GatewayService:            gatewayService,
			NotificationService:       notificationService,
			LockService:               lockService,
			TxRunner:                  txRunner,
			InternalConfig:            internalConfig,
			Log:                       logger,
		}
		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) Book(ctx context.Context, request *requests.BookAppointmentRequest) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Book called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.Int64(constvars.LoggingPatientIDKey, request.PatientID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Book error fetching doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	appointmentType, err := uc.AppointmentTypeRepository.FindByIDForDoctor(ctx, request.AppointmentTypeID, request.DoctorID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Book error fetching appointment type",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if appointmentType == nil {
		return nil, exceptions.ErrAppointmentTypeNotFound(nil)
	}

	startDate := request.StartDate.UTC()
	if !startDate.After(time.Now().UTC()) {
		return nil, exceptions.ErrInvalidTimeSlot(fmt.Errorf("start date %s is not in the future", startDate))
	}
	endDate := startDate.Add(time.Duration(appointmentType.DurationInMinutes) * time.Minute)

	unlock := uc.tryDoctorLock(ctx, request.DoctorID)
	defer unlock()

	var created *models.Appointment
	err = uc.TxRunner.RunInTx(ctx, func(tx *sql.Tx) error {
		repo := uc.AppointmentRepository.WithTx(tx)

		overlapping, err := repo.CountOverlapping(ctx, request.DoctorID, startDate, endDate, 0)
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return exceptions.ErrSlotTaken(nil)
		}

		appointment := &models.Appointment{
			DoctorID:          request.DoctorID,
			PatientID:         request.PatientID,
			AppointmentTypeID: request.AppointmentTypeID,
			StartDate:         startDate,
			EndDate:           endDate,
			Status:            models.AppointmentPendingApproval,
			PaymentStatus:     models.PaymentPending,
		}
		if request.ProblemDescription != "" {
			appointment.ProblemDescription = &request.ProblemDescription
		}

		created, err = repo.CreateAppointment(ctx, appointment)
		return err
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.Book error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.notify(ctx, doctor.AppUserID,
		constvars.NotificationTitleNewBookingRequest,
		constvars.NotificationMessageNewBookingRequest,
	)

	uc.Log.Info("appointmentUsecase.Book succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, created.ID),
	)
	response := responses.NewAppointment(created)
	return &response, nil
}

func (uc *appointmentUsecase) Approve(ctx context.Context, appointmentID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Approve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	var updated *models.Appointment
	err := uc.TxRunner.RunInTx(ctx, func(tx *sql.Tx) error {
		repo := uc.AppointmentRepository.WithTx(tx)

		appointment, err := repo.FindByID(ctx, appointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return exceptions.ErrAppointmentNotFound(nil)
		}
		if appointment.Status != models.AppointmentPendingApproval {
			return exceptions.ErrNotPendingApproval(fmt.Errorf("appointment %d is %s", appointmentID, appointment.Status))
		}

		paymentDueTime := time.Now().UTC().Add(time.Duration(uc.InternalConfig.App.PaymentDueWindowInHours) * time.Hour)
		appointment.Status = models.AppointmentPendingPayment
		appointment.PaymentDueTime = &paymentDueTime

		updated, err = repo.UpdateAppointment(ctx, appointment)
		return err
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.Approve error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.notify(ctx, updated.PatientID,
		constvars.NotificationTitleApproved,
		constvars.NotificationMessageApproved,
	)

	uc.Log.Info("appointmentUsecase.Approve succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) Reject(ctx context.Context, appointmentID int64, rejectionReason string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Reject called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	if rejectionReason == "" {
		rejectionReason = constvars.CancellationReasonNotGiven
	}

	var updated *models.Appointment
	err := uc.TxRunner.RunInTx(ctx, func(tx *sql.Tx) error {
		repo := uc.AppointmentRepository.WithTx(tx)

		appointment, err := repo.FindByID(ctx, appointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return exceptions.ErrAppointmentNotFound(nil)
		}
		if appointment.Status != models.AppointmentPendingApproval {
			return exceptions.ErrNotPendingApproval(fmt.Errorf("appointment %d is %s", appointmentID, appointment.Status))
		}

		now := time.Now().UTC()
		appointment.Status = models.AppointmentCanceledByDoctor
		appointment.CancellationReason = &rejectionReason
		appointment.CancelledAt = &now

		updated, err = repo.UpdateAppointment(ctx, appointment)
		return err
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.Reject error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.notify(ctx, updated.PatientID,
		constvars.NotificationTitleRejected,
		fmt.Sprintf("Your appointment request was rejected. Reason: %s", rejectionReason),
	)

	uc.Log.Info("appointmentUsecase.Reject succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) CancelByPatient(ctx context.Context, patientID int64, request *requests.CancelAppointmentRequest) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, request.AppointmentID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	reason := request.CancellationReason
	if reason == "" {
		reason = constvars.CancellationReasonNotGiven
	}

	var updated *models.Appointment
	var refunded bool
	err := uc.TxRunner.RunInTx(ctx, func(tx *sql.Tx) error {
		repo := uc.AppointmentRepository.WithTx(tx)

		appointment, err := repo.FindByIDForPatient(ctx, request.AppointmentID, patientID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return exceptions.ErrAppointmentNotFound(nil)
		}
		if appointment.Status.IsTerminal() {
			return exceptions.ErrNotCancellable(fmt.Errorf("appointment %d is %s", request.AppointmentID, appointment.Status))
		}

		refunded, err = uc.refundIfPaid(ctx, tx, appointment)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		appointment.Status = models.AppointmentCanceledByPatient
		appointment.CancellationReason = &reason
		appointment.CancelledAt = &now

		updated, err = repo.UpdateAppointment(ctx, appointment)
		return err
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.CancelByPatient error cancelling appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.notifyDoctor(ctx, updated.DoctorID,
		constvars.NotificationTitleCanceled,
		fmt.Sprintf("The appointment scheduled for %s was canceled by the patient.", updated.StartDate.Format(time.RFC1123)),
	)
	if refunded {
		uc.notify(ctx, updated.PatientID,
			constvars.NotificationTitleRefundProcessed,
			"Your payment has been refunded for the canceled appointment.",
		)
	}

	uc.Log.Info("appointmentUsecase.CancelByPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, request.AppointmentID),
		zap.Bool("refunded", refunded),
	)
	return nil
}

func (uc *appointmentUsecase) CancelByDoctor(ctx context.Context, request *requests.CancelAppointmentRequest) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelByDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	reason := request.CancellationReason
	if reason == "" {
		reason = constvars.CancellationReasonNotGiven
	}

	var updated *models.Appointment
	var refunded bool
	err := uc.TxRunner.RunInTx(ctx, func(tx *sql.Tx) error {
		repo := uc.AppointmentRepository.WithTx(tx)

		appointment, err := repo.FindByID(ctx, request.AppointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return exceptions.ErrAppointmentNotFound(nil)
		}
		if appointment.Status.IsTerminal() {
			return exceptions.ErrNotCancellable(fmt.Errorf("appointment %d is %s", request.AppointmentID, appointment.Status))
		}

		refunded, err = uc.refundIfPaid(ctx, tx, appointment)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		appointment.Status = models.AppointmentCanceledByDoctor
		appointment.CancellationReason = &reason
		appointment.CancelledAt = &now

		updated, err = repo.UpdateAppointment(ctx, appointment)
		return err
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.CancelByDoctor error cancelling appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.notify(ctx, updated.PatientID,
		constvars.NotificationTitleCanceledByDoctor,
		fmt.Sprintf("Your appointment scheduled for %s was canceled by the doctor. Reason: %s", updated.StartDate.Format(time.RFC1123), reason),
	)
	if refunded {
		uc.notify(ctx, updated.PatientID,
			constvars.NotificationTitleRefundProcessed,
			"Your payment has been refunded for the canceled appointment.",
		)
	}

	uc.Log.Info("appointmentUsecase.CancelByDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, request.AppointmentID),
		zap.Bool("refunded", refunded),
	)
	return nil
}

func (uc *appointmentUsecase) MarkCompleted(ctx context.Context, appointmentID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.MarkCompleted called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	var updated *models.Appointment
	err := uc.TxRunner.RunInTx(ctx, func(tx *sql.Tx) error {
		repo := uc.AppointmentRepository.WithTx(tx)

		appointment, err := repo.FindByID(ctx, appointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return exceptions.ErrAppointmentNotFound(nil)
		}
		if appointment.Status != models.AppointmentConfirmed {
			return exceptions.ErrNotConfirmed(fmt.Errorf("appointment %d is %s", appointmentID, appointment.Status))
		}

		now := time.Now().UTC()
		appointment.Status = models.AppointmentCompleted
		appointment.CompletedAt = &now

		updated, err = repo.UpdateAppointment(ctx, appointment)
		return err
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.MarkCompleted error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.notify(ctx, updated.PatientID,
		constvars.NotificationTitleCompleted,
		constvars.NotificationMessageCompleted,
	)

	uc.Log.Info("appointmentUsecase.MarkCompleted succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) Reschedule(ctx context.Context, request *requests.RescheduleAppointmentRequest) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Reschedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, request.AppointmentID),
		zap.Time(constvars.LoggingStartKey, request.StartDate),
		zap.Time(constvars.LoggingEndKey, request.EndDate),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	startDate := request.StartDate.UTC()
	endDate := request.EndDate.UTC()
	if !startDate.After(time.Now().UTC()) {
		return exceptions.ErrInvalidTimeSlot(fmt.Errorf("start date %s is not in the future", startDate))
	}

	var updated *models.Appointment
	err := uc.TxRunner.RunInTx(ctx, func(tx *sql.Tx) error {
		repo := uc.AppointmentRepository.WithTx(tx)

		appointment, err := repo.FindByID(ctx, request.AppointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return exceptions.ErrAppointmentNotFound(nil)
		}
		if appointment.Status.IsTerminal() {
			return exceptions.ErrNotReschedulable(fmt.Errorf("appointment %d is %s", request.AppointmentID, appointment.Status))
		}

		overlapping, err := repo.CountOverlapping(ctx, appointment.DoctorID, startDate, endDate, appointment.ID)
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return exceptions.ErrSlotTaken(nil)
		}

		appointment.StartDate = startDate
		appointment.EndDate = endDate

		updated, err = repo.UpdateAppointment(ctx, appointment)
		return err
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.Reschedule error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.notifyDoctor(ctx, updated.DoctorID,
		constvars.NotificationTitleRescheduled,
		fmt.Sprintf("The appointment has been rescheduled to %s.", startDate.Format(time.RFC1123)),
	)

	uc.Log.Info("appointmentUsecase.Reschedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) GetStatus(ctx context.Context, appointmentID int64) (models.AppointmentStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetStatus called",
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
	return appointment.Status, nil
}

func (uc *appointmentUsecase) FindPatientAppointments(ctx context.Context, patientID int64, status models.AppointmentStatus, page requests.Pagination) ([]responses.Appointment, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindPatientAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingStatusKey, string(status)),
	)

	if err := utils.ValidateStruct(page); err != nil {
		return nil, 0, exceptions.ErrInputValidation(err)
	}

	appointments, total, err := uc.AppointmentRepository.FindByPatient(ctx, patientID, status, page.PageSize, page.Offset())
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindPatientAppointments error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}
	return buildAppointmentResponses(appointments), total, nil
}

func (uc *appointmentUsecase) FindDoctorAppointments(ctx context.Context, doctorID int64, status models.AppointmentStatus, page requests.Pagination) ([]responses.Appointment, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindDoctorAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingStatusKey, string(status)),
	)

	if err := utils.ValidateStruct(page); err != nil {
		return nil, 0, exceptions.ErrInputValidation(err)
	}

	appointments, total, err := uc.AppointmentRepository.FindByDoctor(ctx, doctorID, status, page.PageSize, page.Offset())
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindDoctorAppointments error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}
	return buildAppointmentResponses(appointments), total, nil
}

func (uc *appointmentUsecase) AutoCancelExpired(ctx context.Context) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.AutoCancelExpired called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	now := time.Now().UTC()
	expired, err := uc.AppointmentRepository.FindExpiredUnpaid(ctx, now)
	if err != nil {
		uc.Log.Error("appointmentUsecase.AutoCancelExpired error fetching expired appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}

	appointmentIDs := make([]int64, 0, len(expired))
	for _, appointment := range expired {
		appointmentIDs = append(appointmentIDs, appointment.ID)
	}

	affected, err := uc.AppointmentRepository.AutoCancelByIDs(ctx, appointmentIDs, constvars.AutoCancelReason, now)
	if err != nil {
		uc.Log.Error("appointmentUsecase.AutoCancelExpired error cancelling appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, err
	}

	for _, appointment := range expired {
		uc.notify(ctx, appointment.PatientID,
			constvars.NotificationTitleAutoCanceled,
			constvars.NotificationMessageAutoCanceled,
		)
	}

	uc.Log.Info("appointmentUsecase.AutoCancelExpired succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentCountKey, affected),
	)
	return int(affected), nil
}

// refundIfPaid refunds the gateway payment of a paid appointment while the
// cancelling transaction is still open. A failed refund aborts the whole
// cancellation.
func (uc *appointmentUsecase) refundIfPaid(ctx context.Context, tx *sql.Tx, appointment *models.Appointment) (bool, error) {
	if appointment.PaymentStatus != models.PaymentPaid {
		return false, nil
	}

	paymentRepo := uc.PaymentRepository.WithTx(tx)
	payment, err := paymentRepo.FindByAppointmentID(ctx, appointment.ID)
	if err != nil {
		return false, err
	}
	if payment == nil {
		return false, exceptions.ErrPaymentNotFound(fmt.Errorf("paid appointment %d has no payment record", appointment.ID))
	}

	refunded, err := uc.GatewayService.Refund(ctx, payment.PaymentIntentID)
	if err != nil {
		return false, err
	}
	if !refunded {
		return false, exceptions.ErrGatewayRefund(fmt.Errorf("gateway declined the refund for intent %s", payment.PaymentIntentID))
	}

	payment.Status = models.PaymentRefunded
	if _, err := paymentRepo.UpdatePayment(ctx, payment); err != nil {
		return false, err
	}
	appointment.PaymentStatus = models.PaymentRefunded
	return true, nil
}

// tryDoctorLock takes a short per-doctor booking lock. The lock only narrows
// the race window, the overlap check inside the transaction and the active
// slot unique index stay authoritative.
func (uc *appointmentUsecase) tryDoctorLock(ctx context.Context, doctorID int64) func() {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	lockKey := fmt.Sprintf(constvars.BookingLockKeyFormat, doctorID)
	lockTTL := time.Duration(uc.InternalConfig.App.BookingLockTTLInSeconds) * time.Second

	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, lockTTL)
	if err != nil || !acquired {
		uc.Log.Warn("appointmentUsecase.tryDoctorLock proceeding without lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
			zap.Error(err),
		)
		return func() {}
	}
	return func() {
		if err := uc.LockService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("appointmentUsecase.tryDoctorLock error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}
}

func (uc *appointmentUsecase) notify(ctx context.Context, recipientUserID int64, title, message string) {
	if err := uc.NotificationService.SendAndSave(ctx, recipientUserID, title, message); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("appointmentUsecase.notify error dispatching notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingRecipientKey, recipientUserID),
			zap.Error(err),
		)
	}
}

// notifyDoctor resolves the doctor's user account before dispatching.
func (uc *appointmentUsecase) notifyDoctor(ctx context.Context, doctorID int64, title, message string) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil || doctor == nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("appointmentUsecase.notifyDoctor error resolving doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return
	}
	uc.notify(ctx, doctor.AppUserID, title, message)
}

func buildAppointmentResponses(appointments []models.Appointment) []responses.Appointment {
	response := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		response = append(response, responses.NewAppointment(&appointments[i]))
	}
	return response
}
