package appointments

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"mosefak-service/internal/app/contracts"
	"mosefak-service/internal/app/models"
	"mosefak-service/internal/pkg/dto/requests"
	"mosefak-service/internal/pkg/dto/responses"
	"mosefak-service/internal/pkg/exceptions"
)

// fakeTxRunner serializes "transactions" with a mutex so concurrent callers
// observe the same atomicity the database provides.
type fakeTxRunner struct {
	mu sync.Mutex
}

func (r *fakeTxRunner) RunInTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(nil)
}

type fakeAppointmentRepo struct {
	mu           sync.Mutex
	nextID       int64
	appointments map[int64]models.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{nextID: 1, appointments: make(map[int64]models.Appointment)}
}

func (r *fakeAppointmentRepo) WithTx(tx *sql.Tx) contracts.AppointmentRepository { return r }

func (r *fakeAppointmentRepo) FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if appointment, ok := r.appointments[appointmentID]; ok {
		copy := appointment
		return &copy, nil
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) FindByIDForPatient(ctx context.Context, appointmentID, patientID int64) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if appointment, ok := r.appointments[appointmentID]; ok && appointment.PatientID == patientID {
		copy := appointment
		return &copy, nil
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) CountOverlapping(ctx context.Context, doctorID int64, start, end time.Time, excludeAppointmentID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, appointment := range r.appointments {
		if appointment.DoctorID != doctorID || appointment.ID == excludeAppointmentID {
			continue
		}
		if appointment.Status.IsCanceled() {
			continue
		}
		if appointment.StartDate.Before(end) && appointment.EndDate.After(start) {
			count++
		}
	}
	return count, nil
}

func (r *fakeAppointmentRepo) CreateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := *appointment
	created.ID = r.nextID
	created.CreatedAt = time.Now().UTC()
	created.UpdatedAt = created.CreatedAt
	r.nextID++
	r.appointments[created.ID] = created
	copy := created
	return &copy, nil
}

func (r *fakeAppointmentRepo) UpdateAppointment(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appointments[appointment.ID]; !ok {
		return nil, exceptions.ErrPostgresDBZeroRowsAffected(fmt.Errorf("appointment %d missing", appointment.ID))
	}
	updated := *appointment
	updated.UpdatedAt = time.Now().UTC()
	r.appointments[updated.ID] = updated
	copy := updated
	return &copy, nil
}

func (r *fakeAppointmentRepo) FindByPatient(ctx context.Context, patientID int64, status models.AppointmentStatus, limit, offset int) ([]models.Appointment, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []models.Appointment
	for _, appointment := range r.appointments {
		if appointment.PatientID == patientID && (status == "" || appointment.Status == status) {
			matched = append(matched, appointment)
		}
	}
	return paginate(matched, limit, offset), len(matched), nil
}

func (r *fakeAppointmentRepo) FindByDoctor(ctx context.Context, doctorID int64, status models.AppointmentStatus, limit, offset int) ([]models.Appointment, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []models.Appointment
	for _, appointment := range r.appointments {
		if appointment.DoctorID == doctorID && (status == "" || appointment.Status == status) {
			matched = append(matched, appointment)
		}
	}
	return paginate(matched, limit, offset), len(matched), nil
}

func (r *fakeAppointmentRepo) FindExpiredUnpaid(ctx context.Context, now time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var expired []models.Appointment
	for _, appointment := range r.appointments {
		if appointment.Status == models.AppointmentPendingPayment &&
			appointment.PaymentStatus != models.PaymentPaid &&
			appointment.PaymentDueTime != nil &&
			appointment.PaymentDueTime.Before(now) {
			expired = append(expired, appointment)
		}
	}
	return expired, nil
}

func (r *fakeAppointmentRepo) AutoCancelByIDs(ctx context.Context, appointmentIDs []int64, reason string, cancelledAt time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var affected int64
	for _, id := range appointmentIDs {
		appointment, ok := r.appointments[id]
		if !ok || appointment.Status != models.AppointmentPendingPayment || appointment.PaymentStatus == models.PaymentPaid {
			continue
		}
		appointment.Status = models.AppointmentAutoCanceled
		appointment.CancellationReason = &reason
		appointment.CancelledAt = &cancelledAt
		r.appointments[id] = appointment
		affected++
	}
	return affected, nil
}

func paginate(appointments []models.Appointment, limit, offset int) []models.Appointment {
	if offset >= len(appointments) {
		return nil
	}
	end := offset + limit
	if end > len(appointments) {
		end = len(appointments)
	}
	return appointments[offset:end]
}

type fakeDoctorRepo struct {
	doctors map[int64]models.Doctor
}

func (r *fakeDoctorRepo) FindByID(ctx context.Context, doctorID int64) (*models.Doctor, error) {
	if doctor, ok := r.doctors[doctorID]; ok {
		return &doctor, nil
	}
	return nil, nil
}

type fakeAppointmentTypeRepo struct {
	types map[int64]models.AppointmentType
}

func (r *fakeAppointmentTypeRepo) FindByIDForDoctor(ctx context.Context, appointmentTypeID, doctorID int64) (*models.AppointmentType, error) {
	if appointmentType, ok := r.types[appointmentTypeID]; ok && appointmentType.DoctorID == doctorID {
		return &appointmentType, nil
	}
	return nil, nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	nextID   int64
	payments map[int64]models.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{nextID: 1, payments: make(map[int64]models.Payment)}
}

func (r *fakePaymentRepo) WithTx(tx *sql.Tx) contracts.PaymentRepository { return r }

func (r *fakePaymentRepo) FindByAppointmentID(ctx context.Context, appointmentID int64) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *models.Payment
	for id := range r.payments {
		payment := r.payments[id]
		if payment.AppointmentID != appointmentID {
			continue
		}
		if latest == nil || payment.ID > latest.ID {
			copy := payment
			latest = &copy
		}
	}
	return latest, nil
}

func (r *fakePaymentRepo) FindByIntentID(ctx context.Context, paymentIntentID string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id := range r.payments {
		if r.payments[id].PaymentIntentID == paymentIntentID {
			copy := r.payments[id]
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := *payment
	created.ID = r.nextID
	r.nextID++
	r.payments[created.ID] = created
	copy := created
	return &copy, nil
}

func (r *fakePaymentRepo) UpdatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[payment.ID]; !ok {
		return nil, exceptions.ErrPostgresDBZeroRowsAffected(fmt.Errorf("payment %d missing", payment.ID))
	}
	r.payments[payment.ID] = *payment
	copy := *payment
	return &copy, nil
}

type fakeGateway struct {
	mu            sync.Mutex
	refundCalls   []string
	refundOk      bool
	refundErr     error
	verifyStatus  string
	createdIntent *responses.PaymentIntent
}

func (g *fakeGateway) CreateIntent(ctx context.Context, request *requests.CreateIntentRequest) (*responses.PaymentIntent, error) {
	if g.createdIntent != nil {
		return g.createdIntent, nil
	}
	return &responses.PaymentIntent{IntentID: "pi_fake", ClientSecret: "pi_fake_secret", Status: "pending"}, nil
}

func (g *fakeGateway) VerifyStatus(ctx context.Context, paymentIntentID string) (string, error) {
	return g.verifyStatus, nil
}

func (g *fakeGateway) Refund(ctx context.Context, paymentIntentID string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.refundCalls = append(g.refundCalls, paymentIntentID)
	return g.refundOk, g.refundErr
}

func (g *fakeGateway) VerifySignature(payload []byte, signature string) error { return nil }

type sentNotification struct {
	RecipientUserID int64
	Title           string
}

type fakeNotificationService struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (s *fakeNotificationService) SendAndSave(ctx context.Context, recipientUserID int64, title, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentNotification{RecipientUserID: recipientUserID, Title: title})
	return nil
}

func (s *fakeNotificationService) titles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	titles := make([]string, 0, len(s.sent))
	for _, notification := range s.sent {
		titles = append(titles, notification.Title)
	}
	return titles
}

type fakeLocker struct {
	mu       sync.Mutex
	denied   bool
	acquired int
	released int
}

func (l *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.denied {
		return false, "", nil
	}
	l.acquired++
	return true, "token", nil
}

func (l *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.released++
	return nil
}

func (l *fakeLocker) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return nil
}
