package postgres_test

import (
	"context"
	"testing"
	"time"

	"freightqa/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func TestNewPostgres_InvalidOptions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc    string
		opts    []postgres.Option
		wantErr string
	}{
		{desc: "zero pool", opts: []postgres.Option{postgres.MaxPoolSize(0)}, wantErr: "max pool size 0"},
		{
			desc:    "min above max",
			opts:    []postgres.Option{postgres.MaxPoolSize(4), postgres.MinPoolSize(8)},
			wantErr: "min pool size 8",
		},
		{desc: "no attempts", opts: []postgres.Option{postgres.MaxConnAttempts(0)}, wantErr: "connection attempts 0"},
		{
			desc:    "inverted delays",
			opts:    []postgres.Option{postgres.RetryDelays(time.Second, time.Millisecond)},
			wantErr: "retry delays",
		},
		{desc: "zero connect timeout", opts: []postgres.Option{postgres.ConnectTimeout(0)}, wantErr: "connect timeout"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			db, err := postgres.NewPostgres(context.Background(), "postgres://u:p@localhost:1/db", nil, tc.opts...)
			require.ErrorContains(t, err, "validation")
			require.ErrorContains(t, err, tc.wantErr)
			require.Nil(t, db)
		})
	}
}
