package transaction

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// HandleError annotates an error raised inside a transaction with the
// transaction name and step, keeping the PostgreSQL code visible in the
// message.
func HandleError(operation, step string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %s: pg %s: %w", operation, step, pgErr.Code, err)
	}
	return fmt.Errorf("%s: %s: %w", operation, step, err)
}
