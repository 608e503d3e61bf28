package payments

import (
	"context"
	"database/sql"

	"mosefak-service/internal/app/contracts"
	"mosefak-service/internal/app/models"
	"mosefak-service/internal/pkg/exceptions"
	"mosefak-service/internal/pkg/queries"
)

type dbtx interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type paymentPostgresRepository struct {
	DB dbtx
}

func NewPaymentPostgresRepository(db *sql.DB) contracts.PaymentRepository {
	return &paymentPostgresRepository{
		DB: db,
	}
}

func (repo *paymentPostgresRepository) WithTx(tx *sql.Tx) contracts.PaymentRepository {
	return &paymentPostgresRepository{
		DB: tx,
	}
}

func scanPayment(scan func(dest ...interface{}) error, model *models.Payment) error {
	return scan(
		&model.ID,
		&model.AppointmentID,
		&model.PaymentIntentID,
		&model.ClientSecret,
		&model.Amount,
		&model.Currency,
		&model.Status,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
}

func (repo *paymentPostgresRepository) FindByAppointmentID(ctx context.Context, appointmentID int64) (*models.Payment, error) {
	query := queries.GetPaymentByAppointmentID
	var payment models.Payment
	err := scanPayment(repo.DB.QueryRowContext(ctx, query, appointmentID).Scan, &payment)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &payment, nil
}

func (repo *paymentPostgresRepository) FindByIntentID(ctx context.Context, paymentIntentID string) (*models.Payment, error) {
	query := queries.GetPaymentByIntentID
	var payment models.Payment
	err := scanPayment(repo.DB.QueryRowContext(ctx, query, paymentIntentID).Scan, &payment)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &payment, nil
}

func (repo *paymentPostgresRepository) CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	query := queries.InsertPayment
	var inserted models.Payment
	err := scanPayment(repo.DB.QueryRowContext(ctx, query,
		payment.AppointmentID,
		payment.PaymentIntentID,
		payment.ClientSecret,
		payment.Amount,
		payment.Currency,
		payment.Status,
	).Scan, &inserted)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return &inserted, nil
}

func (repo *paymentPostgresRepository) UpdatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	query := queries.UpdatePayment
	var updated models.Payment
	err := scanPayment(repo.DB.QueryRowContext(ctx, query,
		payment.Status,
		payment.ID,
	).Scan, &updated)
	if err == sql.ErrNoRows {
		return nil, exceptions.ErrPostgresDBZeroRowsAffected(err)
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	return &updated, nil
}
