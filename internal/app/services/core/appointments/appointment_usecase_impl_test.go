package appointments

import (
	"context"
	"sync"
	"testing"
	"time"

	"mosefak-service/internal/app/config"
	"mosefak-service/internal/app/models"
	"mosefak-service/internal/pkg/constvars"
	"mosefak-service/internal/pkg/dto/requests"
	"mosefak-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type usecaseFixture struct {
	usecase         *appointmentUsecase
	appointmentRepo *fakeAppointmentRepo
	paymentRepo     *fakePaymentRepo
	gateway         *fakeGateway
	notifications   *fakeNotificationService
	locker          *fakeLocker
}

func newUsecaseFixture() *usecaseFixture {
	appointmentRepo := newFakeAppointmentRepo()
	paymentRepo := newFakePaymentRepo()
	gateway := &fakeGateway{refundOk: true}
	notifications := &fakeNotificationService{}
	locker := &fakeLocker{}

	usecase := &appointmentUsecase{
		AppointmentRepository: appointmentRepo,
		DoctorRepository: &fakeDoctorRepo{doctors: map[int64]models.Doctor{
			1: {ID: 1, AppUserID: 101, FullName: "Dr. Sarah Ahmed"},
		}},
		AppointmentTypeRepository: &fakeAppointmentTypeRepo{types: map[int64]models.AppointmentType{
			1: {ID: 1, DoctorID: 1, Name: "Consultation", DurationInMinutes: 30, ConsultationFee: 15000, Currency: "usd"},
		}},
		PaymentRepository:   paymentRepo,
		GatewayService:      gateway,
		NotificationService: notifications,
		LockService:         locker,
		TxRunner:            &fakeTxRunner{},
		InternalConfig: &config.InternalConfig{App: config.App{
			PaymentDueWindowInHours: 24,
			BookingLockTTLInSeconds: 10,
		}},
		Log: zap.NewNop(),
	}

	return &usecaseFixture{
		usecase:         usecase,
		appointmentRepo: appointmentRepo,
		paymentRepo:     paymentRepo,
		gateway:         gateway,
		notifications:   notifications,
		locker:          locker,
	}
}

func (f *usecaseFixture) book(t *testing.T, start time.Time) *models.Appointment {
	t.Helper()
	response, err := f.usecase.Book(context.Background(), &requests.BookAppointmentRequest{
		DoctorID:          1,
		PatientID:         7,
		AppointmentTypeID: 1,
		StartDate:         start,
	})
	assert.NoError(t, err)
	appointment, err := f.appointmentRepo.FindByID(context.Background(), response.ID)
	assert.NoError(t, err)
	return appointment
}

func TestAppointmentUsecaseBook(t *testing.T) {
	tomorrow := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Minute)

	t.Run("creates appointment awaiting approval", func(t *testing.T) {
		fixture := newUsecaseFixture()

		appointment := fixture.book(t, tomorrow)

		assert.Equal(t, models.AppointmentPendingApproval, appointment.Status)
		assert.Equal(t, models.PaymentPending, appointment.PaymentStatus)
		assert.Equal(t, tomorrow.Add(30*time.Minute), appointment.EndDate, "end date follows the appointment type duration")
		assert.Nil(t, appointment.PaymentDueTime)
		assert.Contains(t, fixture.notifications.titles(), constvars.NotificationTitleNewBookingRequest)
		assert.Equal(t, int64(101), fixture.notifications.sent[0].RecipientUserID, "doctor user account is the recipient")
	})

	t.Run("unknown doctor", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.Book(context.Background(), &requests.BookAppointmentRequest{
			DoctorID:          99,
			PatientID:         7,
			AppointmentTypeID: 1,
			StartDate:         tomorrow,
		})

		assert.True(t, exceptions.IsKind(err, exceptions.KindNotFound))
	})

	t.Run("unknown appointment type", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.Book(context.Background(), &requests.BookAppointmentRequest{
			DoctorID:          1,
			PatientID:         7,
			AppointmentTypeID: 42,
			StartDate:         tomorrow,
		})

		assert.True(t, exceptions.IsKind(err, exceptions.KindNotFound))
	})

	t.Run("start date in the past", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.Book(context.Background(), &requests.BookAppointmentRequest{
			DoctorID:          1,
			PatientID:         7,
			AppointmentTypeID: 1,
			StartDate:         time.Now().UTC().Add(-time.Hour),
		})

		assert.True(t, exceptions.IsKind(err, exceptions.KindInvalidState))
	})

	t.Run("overlapping slot is a conflict", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.book(t, tomorrow)

		_, err := fixture.usecase.Book(context.Background(), &requests.BookAppointmentRequest{
			DoctorID:          1,
			PatientID:         8,
			AppointmentTypeID: 1,
			StartDate:         tomorrow.Add(15 * time.Minute),
		})

		assert.True(t, exceptions.IsKind(err, exceptions.KindConflict))
	})

	t.Run("proceeds when the booking lock is held elsewhere", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.locker.denied = true

		appointment := fixture.book(t, tomorrow)

		assert.Equal(t, models.AppointmentPendingApproval, appointment.Status)
		assert.Equal(t, 0, fixture.locker.released)
	})

	t.Run("concurrent bookings for one slot produce a single winner", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.locker.denied = true // force every caller through the overlap check

		const attempts = 10
		var wg sync.WaitGroup
		errs := make([]error, attempts)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = fixture.usecase.Book(context.Background(), &requests.BookAppointmentRequest{
					DoctorID:          1,
					PatientID:         int64(100 + i),
					AppointmentTypeID: 1,
					StartDate:         tomorrow,
				})
			}(i)
		}
		wg.Wait()

		winners := 0
		for _, err := range errs {
			if err == nil {
				winners++
			} else {
				assert.True(t, exceptions.IsKind(err, exceptions.KindConflict))
			}
		}
		assert.Equal(t, 1, winners)
	})
}

func TestAppointmentUsecaseApprove(t *testing.T) {
	tomorrow := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Minute)

	t.Run("moves to pending payment with a due time", func(t *testing.T) {
		fixture := newUsecaseFixture()
		appointment := fixture.book(t, tomorrow)

		err := fixture.usecase.Approve(context.Background(), appointment.ID)
		assert.NoError(t, err)

		updated, _ := fixture.appointmentRepo.FindByID(context.Background(), appointment.ID)
		assert.Equal(t, models.AppointmentPendingPayment, updated.Status)
		assert.NotNil(t, updated.PaymentDueTime)
		assert.WithinDuration(t, time.Now().UTC().Add(24*time.Hour), *updated.PaymentDueTime, time.Minute)
		assert.Contains(t, fixture.notifications.titles(), constvars.NotificationTitleApproved)
	})

	t.Run("rejects appointments not awaiting approval", func(t *testing.T) {
		fixture := newUsecaseFixture()
		appointment := fixture.book(t, tomorrow)
		assert.NoError(t, fixture.usecase.Approve(context.Background(), appointment.ID))

		err := fixture.usecase.Approve(context.Background(), appointment.ID)
		assert.True(t, exceptions.IsKind(err, exceptions.KindInvalidState))
	})

	t.Run("unknown appointment", func(t *testing.T) {
		fixture := newUsecaseFixture()
		err := fixture.usecase.Approve(context.Background(), 999)
		assert.True(t, exceptions.IsKind(err, exceptions.KindNotFound))
	})
}

func TestAppointmentUsecaseReject(t *testing.T) {
	tomorrow := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Minute)

	t.Run("cancels with the given reason", func(t *testing.T) {
		fixture := newUsecaseFixture()
		appointment := fixture.book(t, tomorrow)

		err := fixture.usecase.Reject(context.Background(), appointment.ID, "fully booked that day")
		assert.NoError(t, err)

		updated, _ := fixture.appointmentRepo.FindByID(context.Background(), appointment.ID)
		assert.Equal(t, models.AppointmentCanceledByDoctor, updated.Status)
		assert.Equal(t, "fully booked that day", *updated.CancellationReason)
		assert.NotNil(t, updated.CancelledAt)
		assert.Contains(t, fixture.notifications.titles(), constvars.NotificationTitleRejected)
	})

	t.Run("defaults the reason when empty", func(t *testing.T) {
		fixture := newUsecaseFixture()
		appointment := fixture.book(t, tomorrow)

		assert.NoError(t, fixture.usecase.Reject(context.Background(), appointment.ID, ""))

		updated, _ := fixture.appointmentRepo.FindByID(context.Background(), appointment.ID)
		assert.Equal(t, constvars.CancellationReasonNotGiven, *updated.CancellationReason)
	})

	t.Run("only pending approval can be rejected", func(t *testing.T) {
		fixture := newUsecaseFixture()
		appointment := fixture.book(t, tomorrow)
		assert.NoError(t, fixture.usecase.Approve(context.Background(), appointment.ID))

		err := fixture.usecase.Reject(context.Background(), appointment.ID, "too late")
		assert.True(t, exceptions.IsKind(err, exceptions.KindInvalidState))
	})
}

func TestAppointmentUsecaseCancelByPatient(t *testing.T) {
	tomorrow := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Minute)

	t.Run("cancels an unpaid appointment without touching the gateway", func(t *testing.T) {
		fixture := newUsecaseFixture()
		appointment := fixture.book(t, tomorrow)

		err := fixture.usecase.CancelByPatient(context.Background(), 7, &requests.CancelAppointmentRequest{
			AppointmentID:      appointment.ID,
			CancellationReason: "cannot make it",
		})
		assert.NoError(t, err)

		updated, _ := fixture.appointmentRepo.FindByID(context.Background(), appointment.ID)
		assert.Equal(t, models.AppointmentCanceledByPatient, updated.Status)
		assert.Empty(t, fixture.gateway.refundCalls)
		assert.Contains(t, fixture.notifications.titles(), constvars.NotificationTitleCanceled)
	})

	t.Run("another patient's appointment is not found", func(t *testing.T) {
		fixture := newUsecaseFixture()
		appointment := fixture.book(t, tomorrow)

		err := fixture.usecase.CancelByPatient(context.Background(), 8, &requests.CancelAppointmentRequest{
			AppointmentID: appointment.ID,
		})
		assert.True(t, exceptions.IsKind(err, exceptions.KindNotFound))
	})

	t.Run("refunds a paid appointment before cancelling", func(t *testing.T) {
		fixture := newUsecaseFixture()
		appointment := fixture.book(t, tomorrow)
		markPaidForTest(t, fixture, appointment.ID)

		err := fixture.usecase.CancelByPatient(context.Background(), 7, &requests.CancelAppointmentRequest{
			AppointmentID: appointment.ID,
		})
		assert.NoError(t, err)

		updated, _ := fixture.appointmentRepo.FindByID(context.Background(), appointment.ID)
		assert.Equal(t, models.AppointmentCanceledByPatient, updated.Status)
		assert.Equal(t, models.PaymentRefunded, updated.PaymentStatus)
		assert.Equal(t, []string{"pi_fake"}, fixture.gateway.refundCalls)

		payment, _ := fixture.paymentRepo.FindByAppointmentID(context.Background(), appointment.ID)
		assert.Equal(t, models.PaymentRefunded, payment.Status)
		assert.Contains(t, fixture.notifications.titles(), constvars.NotificationTitleRefundProcessed)
	})

	t.Run("a declined refund aborts the cancellation", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.gateway.refundOk = false
		appointment := fixture.book(t, tomorrow)
		markPaidForTest(t, fixture, appointment.ID)

		err := fixture.usecase.CancelByPatient(context.Background(), 7, &requests.CancelAppointmentRequest{
			AppointmentID: appointment.ID,
		})
		assert.True(t, exceptions.IsKind(err, exceptions.KindGatewayFailure))

		updated, _ := fixture.appointmentRepo.FindByID(context.Background(), appointment.ID)
		assert.Equal(t, models.AppointmentConfirmed, updated.Status, "appointment keeps its state when the refund fails")
		assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)
	})

	t.Run("completed appointments cannot be cancelled", func(t *testing.T) {
		fixture := newUsecaseFixture()
		appointment := fixture.book(t, tomorrow)
		markPaidForTest(t, fixture, appointment.ID)
		assert.NoError(t, fixture.usecase.MarkCompleted(context.Background(), appointment.ID))

		err := fixture.usecase.CancelByPatient(context.Background(), 7, &requests.CancelAppointmentRequest{
			AppointmentID: appointment.ID,
		})
		assert.True(t, exceptions.IsKind(err, exceptions.KindInvalidState))
	})
}

func TestAppointmentUsecaseCancelByDoctor(t *testing.T) {
	tomorrow := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Minute)

	t.Run("cancels any non-terminal appointment", func(t *testing.T) {
		fixture := newUsecaseFixture()
		appointment := fixture.book(t, tomorrow)
		assert.NoError(t, fixture.usecase.Approve(context.Background(), appointment.ID))

		err := fixture.usecase.CancelByDoctor(context.Background(), &requests.CancelAppointmentRequest{
			AppointmentID:      appointment.ID,
			CancellationReason: "emergency",
		})
		assert.NoError(t, err)

		updated, _ := fixture.appointmentRepo.FindByID(context.Background(), appointment.ID)
		assert.Equal(t, models.AppointmentCanceledByDoctor, updated.Status)
		assert.Contains(t, fixture.notifications.titles(), constvars.NotificationTitleCanceledByDoctor)
	})

	t.Run("refund failure keeps the appointment confirmed", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.gateway.refundErr = exceptions.ErrGatewayRefund(nil)
		appointment := fixture.book(t, tomorrow)
		markPaidForTest(t, fixture, appointment.ID)

		err := fixture.usecase.CancelByDoctor(context.Background(), &requests.CancelAppointmentRequest{
			AppointmentID: appointment.ID,
		})
		assert.True(t, exceptions.IsKind(err, exceptions.KindGatewayFailure))

		updated, _ := fixture.appointmentRepo.FindByID(context.Background(), appointment.ID)
		assert.Equal(t, models.AppointmentConfirmed, updated.Status)
	})
}

func TestAppointmentUsecaseMarkCompleted(t *testing.T) {
	tomorrow := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Minute)

	t.Run("completes a confirmed appointment", func(t *testing.T) {
		fixture := newUsecaseFixture()
		appointment := fixture.book(t, tomorrow)
		markPaidForTest(t, fixture, appointment.ID)

		err := fixture.usecase.MarkCompleted(context.Background(), appointment.ID)
		assert.NoError(t, err)

		updated, _ := fixture.appointmentRepo.FindByID(context.Background(), appointment.ID)
		assert.Equal(t, models.AppointmentCompleted, updated.Status)
		assert.NotNil(t, updated.CompletedAt)
		assert.Contains(t, fixture.notifications.titles(), constvars.NotificationTitleCompleted)
	})

	t.Run("unconfirmed appointments cannot complete", func(t *testing.T) {
		fixture := newUsecaseFixture()
		appointment := fixture.book(t, tomorrow)

		err := fixture.usecase.MarkCompleted(context.Background(), appointment.ID)
		assert.True(t, exceptions.IsKind(err, exceptions.KindInvalidState))
	})
}

func TestAppointmentUsecaseReschedule(t *testing.T) {
	tomorrow := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Minute)

	t.Run("moves the appointment to a free slot", func(t *testing.T) {
		fixture := newUsecaseFixture()
		appointment := fixture.book(t, tomorrow)

		newStart := tomorrow.Add(2 * time.Hour)
		err := fixture.usecase.Reschedule(context.Background(), &requests.RescheduleAppointmentRequest{
			AppointmentID: appointment.ID,
			StartDate:     newStart,
			EndDate:       newStart.Add(30 * time.Minute),
		})
		assert.NoError(t, err)

		updated, _ := fixture.appointmentRepo.FindByID(context.Background(), appointment.ID)
		assert.Equal(t, newStart, updated.StartDate)
		assert.Contains(t, fixture.notifications.titles(), constvars.NotificationTitleRescheduled)
	})

	t.Run("the appointment's own slot does not conflict", func(t *testing.T) {
		fixture := newUsecaseFixture()
		appointment := fixture.book(t, tomorrow)

		// shift by five minutes, overlapping the current slot
		newStart := tomorrow.Add(5 * time.Minute)
		err := fixture.usecase.Reschedule(context.Background(), &requests.RescheduleAppointmentRequest{
			AppointmentID: appointment.ID,
			StartDate:     newStart,
			EndDate:       newStart.Add(30 * time.Minute),
		})
		assert.NoError(t, err)
	})

	t.Run("target slot held by another appointment conflicts", func(t *testing.T) {
		fixture := newUsecaseFixture()
		first := fixture.book(t, tomorrow)

		otherStart := tomorrow.Add(2 * time.Hour)
		_, err := fixture.usecase.Book(context.Background(), &requests.BookAppointmentRequest{
			DoctorID:          1,
			PatientID:         8,
			AppointmentTypeID: 1,
			StartDate:         otherStart,
		})
		assert.NoError(t, err)

		err = fixture.usecase.Reschedule(context.Background(), &requests.RescheduleAppointmentRequest{
			AppointmentID: first.ID,
			StartDate:     otherStart.Add(10 * time.Minute),
			EndDate:       otherStart.Add(40 * time.Minute),
		})
		assert.True(t, exceptions.IsKind(err, exceptions.KindConflict))
	})

	t.Run("terminal appointments cannot move", func(t *testing.T) {
		fixture := newUsecaseFixture()
		appointment := fixture.book(t, tomorrow)
		assert.NoError(t, fixture.usecase.Reject(context.Background(), appointment.ID, ""))

		newStart := tomorrow.Add(2 * time.Hour)
		err := fixture.usecase.Reschedule(context.Background(), &requests.RescheduleAppointmentRequest{
			AppointmentID: appointment.ID,
			StartDate:     newStart,
			EndDate:       newStart.Add(30 * time.Minute),
		})
		assert.True(t, exceptions.IsKind(err, exceptions.KindInvalidState))
	})
}

func TestAppointmentUsecaseAutoCancelExpired(t *testing.T) {
	t.Run("cancels only overdue unpaid appointments", func(t *testing.T) {
		fixture := newUsecaseFixture()

		overdue := time.Now().UTC().Add(-time.Hour)
		future := time.Now().UTC().Add(6 * time.Hour)
		expired1 := seedPendingPayment(fixture, 7, overdue)
		expired2 := seedPendingPayment(fixture, 8, overdue)
		fresh := seedPendingPayment(fixture, 9, future)

		cancelled, err := fixture.usecase.AutoCancelExpired(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 2, cancelled)

		for _, id := range []int64{expired1, expired2} {
			appointment, _ := fixture.appointmentRepo.FindByID(context.Background(), id)
			assert.Equal(t, models.AppointmentAutoCanceled, appointment.Status)
			assert.Equal(t, constvars.AutoCancelReason, *appointment.CancellationReason)
		}

		untouched, _ := fixture.appointmentRepo.FindByID(context.Background(), fresh)
		assert.Equal(t, models.AppointmentPendingPayment, untouched.Status)

		titles := fixture.notifications.titles()
		autoCancelNotices := 0
		for _, title := range titles {
			if title == constvars.NotificationTitleAutoCanceled {
				autoCancelNotices++
			}
		}
		assert.Equal(t, 2, autoCancelNotices)
	})

	t.Run("overdue appointment with a failed payment is still swept", func(t *testing.T) {
		fixture := newUsecaseFixture()
		id := seedPendingPayment(fixture, 7, time.Now().UTC().Add(-time.Hour))

		appointment, _ := fixture.appointmentRepo.FindByID(context.Background(), id)
		appointment.PaymentStatus = models.PaymentFailed
		_, err := fixture.appointmentRepo.UpdateAppointment(context.Background(), appointment)
		assert.NoError(t, err)

		cancelled, err := fixture.usecase.AutoCancelExpired(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 1, cancelled)

		swept, _ := fixture.appointmentRepo.FindByID(context.Background(), id)
		assert.Equal(t, models.AppointmentAutoCanceled, swept.Status)
	})

	t.Run("nothing to cancel", func(t *testing.T) {
		fixture := newUsecaseFixture()
		cancelled, err := fixture.usecase.AutoCancelExpired(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 0, cancelled)
	})

	t.Run("sweep is idempotent", func(t *testing.T) {
		fixture := newUsecaseFixture()
		seedPendingPayment(fixture, 7, time.Now().UTC().Add(-time.Hour))

		first, err := fixture.usecase.AutoCancelExpired(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 1, first)

		second, err := fixture.usecase.AutoCancelExpired(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 0, second)
	})
}

func TestAppointmentUsecaseFindAppointments(t *testing.T) {
	tomorrow := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Minute)

	t.Run("filters by status for a patient", func(t *testing.T) {
		fixture := newUsecaseFixture()
		first := fixture.book(t, tomorrow)
		fixture.book(t, tomorrow.Add(2*time.Hour))
		assert.NoError(t, fixture.usecase.Approve(context.Background(), first.ID))

		found, total, err := fixture.usecase.FindPatientAppointments(context.Background(), 7, models.AppointmentPendingPayment, requests.DefaultPagination())
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, found, 1)
		assert.Equal(t, first.ID, found[0].ID)
	})

	t.Run("lists everything for a doctor when status is empty", func(t *testing.T) {
		fixture := newUsecaseFixture()
		fixture.book(t, tomorrow)
		fixture.book(t, tomorrow.Add(2*time.Hour))

		_, total, err := fixture.usecase.FindDoctorAppointments(context.Background(), 1, "", requests.DefaultPagination())
		assert.NoError(t, err)
		assert.Equal(t, 2, total)
	})
}

func TestAppointmentUsecaseGetStatus(t *testing.T) {
	tomorrow := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Minute)

	fixture := newUsecaseFixture()
	appointment := fixture.book(t, tomorrow)

	status, err := fixture.usecase.GetStatus(context.Background(), appointment.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.AppointmentPendingApproval, status)

	_, err = fixture.usecase.GetStatus(context.Background(), 999)
	assert.True(t, exceptions.IsKind(err, exceptions.KindNotFound))
}

// markPaidForTest pushes a booked appointment through approval and payment so
// cancellation paths see a confirmed, paid appointment.
func markPaidForTest(t *testing.T, fixture *usecaseFixture, appointmentID int64) {
	t.Helper()
	ctx := context.Background()
	assert.NoError(t, fixture.usecase.Approve(ctx, appointmentID))

	payment, err := fixture.paymentRepo.CreatePayment(ctx, &models.Payment{
		AppointmentID:   appointmentID,
		PaymentIntentID: "pi_fake",
		ClientSecret:    "pi_fake_secret",
		Amount:          15000,
		Currency:        "usd",
		Status:          models.PaymentPaid,
	})
	assert.NoError(t, err)
	assert.NotNil(t, payment)

	appointment, err := fixture.appointmentRepo.FindByID(ctx, appointmentID)
	assert.NoError(t, err)
	now := time.Now().UTC()
	appointment.Status = models.AppointmentConfirmed
	appointment.PaymentStatus = models.PaymentPaid
	appointment.ConfirmedAt = &now
	_, err = fixture.appointmentRepo.UpdateAppointment(ctx, appointment)
	assert.NoError(t, err)
}

func seedPendingPayment(fixture *usecaseFixture, patientID int64, dueTime time.Time) int64 {
	start := time.Now().UTC().Add(48 * time.Hour)
	created, _ := fixture.appointmentRepo.CreateAppointment(context.Background(), &models.Appointment{
		DoctorID:          1,
		PatientID:         patientID,
		AppointmentTypeID: 1,
		StartDate:         start.Add(time.Duration(patientID) * time.Hour),
		EndDate:           start.Add(time.Duration(patientID)*time.Hour + 30*time.Minute),
		Status:            models.AppointmentPendingPayment,
		PaymentStatus:     models.PaymentPending,
		PaymentDueTime:    &dueTime,
	})
	return created.ID
}
