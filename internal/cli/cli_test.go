package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"freightqa/internal/entity"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

const validShippers = `
- shipperId: SHP001
  shipperName: Samsung Electronics
  businessType: Electronics
  avgMonthlyVolume: 650
  customerGrade: VIP
- shipperId: SHP002
  shipperName: Hyundai Mobis
  businessType: Auto Parts
  churnRisk: 0.2
`

const invalidRoute = `{"routeCode": "RT001", "routeName": "Busan Loop", "originPort": "PUS", "destinationPort": "PUS", "transitTime": 3, "baseRate": 900}`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd(func() time.Time { return time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC) })
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc     string
		args     []string
		stdin    string
		wantErr  error
		contains []string
	}{
		{
			desc:     "valid shipper list",
			args:     []string{"validate", "shippers", writeFile(t, "shippers.yaml", validShippers)},
			contains: []string{"shipper[0] SHP001: valid", "shipper[1] SHP002: valid"},
		},
		{
			desc:     "single json route from stdin",
			args:     []string{"validate", "route", "-"},
			stdin:    invalidRoute,
			wantErr:  ErrInvalidRecords,
			contains: []string{"route[0] RT001: invalid", "error"},
		},
		{
			desc:    "unknown kind",
			args:    []string{"validate", "invoice", "-"},
			wantErr: entity.ErrUnknownKind,
		},
		{
			desc:    "batch kind rejected",
			args:    []string{"validate", "batch", "-"},
			wantErr: entity.ErrUnknownKind,
		},
		{
			desc:    "malformed yaml",
			args:    []string{"validate", "shipper", "-"},
			stdin:   "shipperId: [unterminated",
			wantErr: entity.ErrMalformedRecord,
		},
		{
			desc:    "empty input",
			args:    []string{"validate", "shipper", "-"},
			wantErr: entity.ErrMalformedRecord,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			out, err := run(t, tc.stdin, tc.args...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			for _, s := range tc.contains {
				require.Contains(t, out, s)
			}
		})
	}
}

func TestValidate_JSONOutput(t *testing.T) {
	t.Parallel()

	out, err := run(t, invalidRoute, "validate", "route", "-", "--output", "json")
	require.ErrorIs(t, err, ErrInvalidRecords)

	var results []RecordResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	require.Equal(t, "RT001", results[0].SubjectKey)
	require.False(t, results[0].Result.IsValid)
	require.NotEmpty(t, results[0].Result.Violations)
}

func TestValidate_Language(t *testing.T) {
	t.Parallel()

	en, err := run(t, invalidRoute, "validate", "route", "-", "--lang", "en")
	require.ErrorIs(t, err, ErrInvalidRecords)

	ko, err := run(t, invalidRoute, "validate", "route", "-", "--lang", "ko-KR")
	require.ErrorIs(t, err, ErrInvalidRecords)

	require.NotEqual(t, en, ko)
}

func TestBatch(t *testing.T) {
	t.Parallel()

	sample, err := run(t, "", "sample", "batch", "-o", "json")
	require.NoError(t, err)

	out, err := run(t, sample, "batch", "-")
	require.NoError(t, err)
	require.Contains(t, out, "overall: valid")

	broken := `{"routes": [` + invalidRoute + `]}`
	out, err = run(t, broken, "batch", "-")
	require.ErrorIs(t, err, ErrInvalidRecords)
	require.Contains(t, out, "overall: invalid")
}

func TestSample(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "sample", "shippers", "-o", "json")
	require.NoError(t, err)

	var shipper entity.Shipper
	require.NoError(t, json.Unmarshal([]byte(out), &shipper))
	require.Equal(t, "SHP001", shipper.SubjectKey())

	out, err = run(t, "", "sample", "route")
	require.NoError(t, err)
	require.Contains(t, out, "routeCode: RT001")

	_, err = run(t, "", "sample", "invoice")
	require.ErrorIs(t, err, entity.ErrUnknownKind)
}

func TestFlags(t *testing.T) {
	t.Parallel()

	_, err := run(t, "", "sample", "route", "--output", "xml")
	require.ErrorContains(t, err, "unknown output format")

	_, err = run(t, "", "sample", "route", "--lang", "???")
	require.Error(t, err)
}
