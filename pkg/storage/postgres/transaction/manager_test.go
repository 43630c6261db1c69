package transaction_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"freightqa/pkg/storage/postgres/transaction"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	testCases := []struct {
		desc     string
		err      error
		expected bool
	}{
		{desc: "Deadlock", err: &pgconn.PgError{Code: "40P01"}, expected: true},
		{desc: "SerializationFailure", err: &pgconn.PgError{Code: "40001"}, expected: true},
		{desc: "WrappedConnectionFailure", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "08006"}), expected: true},
		{desc: "UniqueViolation", err: &pgconn.PgError{Code: "23505"}, expected: false},
		{desc: "Canceled", err: context.Canceled, expected: false},
		{desc: "DeadlineExceeded", err: fmt.Errorf("query: %w", context.DeadlineExceeded), expected: false},
		{desc: "Plain", err: errors.New("boom"), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.expected, transaction.IsRetryable(tc.err))
		})
	}
}

func TestNewManager_Options(t *testing.T) {
	testCases := []struct {
		desc    string
		opts    []transaction.Option
		wantErr string
	}{
		{desc: "Defaults"},
		{desc: "Serializable", opts: []transaction.Option{transaction.Isolation(pgx.Serializable)}},
		{desc: "ZeroAttempts", opts: []transaction.Option{transaction.MaxAttempts(0)}, wantErr: "max attempts 0"},
		{
			desc:    "InvertedDelays",
			opts:    []transaction.Option{transaction.RetryDelays(time.Second, time.Millisecond)},
			wantErr: "retry delays",
		},
		{desc: "UnknownIsolation", opts: []transaction.Option{transaction.Isolation("chaos")}, wantErr: "isolation level"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			m, err := transaction.NewManager(nil, nil, nil, tc.opts...)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, m)
		})
	}
}
