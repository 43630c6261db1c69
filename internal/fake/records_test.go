package fake

import (
	"testing"
	"time"

	"freightqa/internal/entity"
	"freightqa/internal/shacl"

	"github.com/stretchr/testify/require"
)

func TestGenerator_RecordsAreValid(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	v := shacl.New()

	for seed := uint64(1); seed <= 25; seed++ {
		g := New(seed, func() time.Time { return now })
		for _, kind := range entity.RecordKinds {
			rec, err := g.Record(kind)
			require.NoError(t, err)

			res, err := v.Validate(kind, rec)
			require.NoError(t, err)
			require.Truef(t, res.IsValid, "seed %d kind %s: %+v", seed, kind, res.Violations)
		}

		require.True(t, v.ValidateBatch(g.Batch(2)).OverallValid, "seed %d batch", seed)
	}
}

func TestCorrupt(t *testing.T) {
	t.Parallel()

	g := New(7, nil)
	v := shacl.New()

	testCases := []struct {
		desc string
		kind entity.Kind
	}{
		{desc: "shipper id format", kind: entity.KindShipper},
		{desc: "booking quantity", kind: entity.KindBooking},
		{desc: "prediction confidence", kind: entity.KindPrediction},
		{desc: "route ports", kind: entity.KindRoute},
		{desc: "batch route", kind: entity.KindBatch},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			rec, err := g.Record(tc.kind)
			require.NoError(t, err)

			Corrupt(rec)

			if batch, ok := rec.(*entity.BatchRequest); ok {
				require.False(t, v.ValidateBatch(batch).OverallValid)
				return
			}
			res, err := v.Validate(tc.kind, rec)
			require.NoError(t, err)
			require.False(t, res.IsValid)
		})
	}
}

func TestGenerator_UnknownKind(t *testing.T) {
	t.Parallel()

	_, err := New(1, nil).Record("invoice")
	require.ErrorIs(t, err, entity.ErrUnknownKind)
}
