package storage

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"net"
	"time"

	"mosefak-service/internal/app/contracts"
	"mosefak-service/internal/pkg/exceptions"

	"github.com/lib/pq"
)

const (
	maxTxAttempts  = 3
	retryBaseDelay = 100 * time.Millisecond
)

// pq error classes considered transient. Class 08 is connection exceptions,
// 40001/40P01 are serialization/deadlock failures that are safe to re-run.
func isTransientPqCode(code pq.ErrorCode) bool {
	if code.Class() == "08" {
		return true
	}
	return code == "40001" || code == "40P01"
}

// IsTransient reports whether err is a connectivity-level failure worth
// retrying with a fresh transaction. Business errors are never transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return isTransientPqCode(pqErr.Code)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, driverBadConn) || errors.Is(err, io.EOF)
}

// sql.ErrConnDone / driver.ErrBadConn without importing database/sql/driver
// at every call site.
var driverBadConn = sql.ErrConnDone

// IsUniqueViolation reports whether err is a postgres unique constraint
// violation (the active-slot index rejecting a double booking).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

type txRunner struct {
	DB *sql.DB
}

func NewTxRunner(db *sql.DB) contracts.TxRunner {
	return &txRunner{DB: db}
}

// RunInTx executes fn inside a transaction, rolling back on any error and
// retrying only transient connectivity failures a bounded number of times.
func (r *txRunner) RunInTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	var lastErr error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		lastErr = r.runOnce(ctx, fn)
		if lastErr == nil {
			return nil
		}
		if !IsTransient(lastErr) {
			return lastErr
		}
		select {
		case <-ctx.Done():
			return lastErr
		case <-time.After(retryBaseDelay * time.Duration(attempt)):
		}
	}
	return lastErr
}

func (r *txRunner) runOnce(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return exceptions.ErrPostgresDBTxBegin(err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		if IsUniqueViolation(err) {
			return exceptions.ErrSlotTaken(err)
		}
		return exceptions.ErrPostgresDBTxCommit(err)
	}
	return nil
}
