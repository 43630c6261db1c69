package repository

import (
	"context"
	"fmt"

	"freightqa/internal/entity"
	"freightqa/pkg/storage/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const _violationsTable = "report_violations"

var violationColumns = []string{
	"report_id", "position", "severity", "shape", "property", "value", "message", "path",
}

type ViolationRepository struct {
	db *postgres.Postgres
}

func NewViolationRepository(db *postgres.Postgres) *ViolationRepository {
	return &ViolationRepository{db}
}

// Create bulk-inserts violations with COPY, keeping their order in position.
func (vr *ViolationRepository) Create(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	reportID uuid.UUID,
	violations []entity.Violation,
) error {
	const op = "repository.violation.Create"

	if len(violations) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(violations))
	for i, v := range violations {
		value, err := encodeValue(v.Value)
		if err != nil {
			return fmt.Errorf("%s: encode value of %s: %w", op, v.Property, err)
		}
		rows = append(rows, []any{
			reportID,
			int16(i),
			string(v.Severity),
			v.Shape,
			v.Property,
			value,
			v.Message,
			v.Path,
		})
	}

	if _, err := queryExecuter.CopyFrom(
		ctx,
		pgx.Identifier{_violationsTable},
		violationColumns,
		pgx.CopyFromRows(rows),
	); err != nil {
		return fmt.Errorf("%s: copy from: %w", op, err)
	}

	return nil
}

// ListByReportIDs returns the violations of every given report in
// evaluation order. Reports without violations map to an empty slice.
func (vr *ViolationRepository) ListByReportIDs(
	ctx context.Context,
	reportIDs []uuid.UUID,
) (map[uuid.UUID][]entity.Violation, error) {
	const op = "repository.violation.ListByReportIDs"

	result := make(map[uuid.UUID][]entity.Violation, len(reportIDs))
	if len(reportIDs) == 0 {
		return result, nil
	}
	for _, id := range reportIDs {
		result[id] = []entity.Violation{}
	}

	query := vr.db.Builder.Select(violationColumns...).
		From(_violationsTable).
		Where(squirrel.Eq{"report_id": reportIDs}).
		OrderBy("report_id", "position")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := vr.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			reportID uuid.UUID
			position int16
			severity string
			raw      []byte
			v        entity.Violation
		)
		err = rows.Scan(&reportID, &position, &severity, &v.Shape, &v.Property, &raw, &v.Message, &v.Path)
		if err != nil {
			return nil, fmt.Errorf("%s: row scan: %w", op, err)
		}

		v.Severity = entity.Severity(severity)
		if v.Value, err = decodeValue(raw); err != nil {
			return nil, fmt.Errorf("%s: decode value: %w", op, err)
		}
		result[reportID] = append(result[reportID], v)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return result, nil
}

// encodeValue returns raw JSON for the jsonb column, or nil for SQL NULL.
func encodeValue(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func decodeValue(raw []byte) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
