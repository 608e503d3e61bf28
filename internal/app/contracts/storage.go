package contracts

import (
	"context"
	"database/sql"
)

// TxRunner runs fn inside a database transaction. Any error rolls the whole
// transaction back before it is returned. Transient connectivity failures may
// be retried (with a fresh transaction); business errors never are.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(tx *sql.Tx) error) error
}
