package repository

import (
	"context"
	"errors"
	"fmt"

	"freightqa/internal/entity"
	"freightqa/pkg/storage/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	_reportsTable = "validation_reports"

	_pgUniqueViolation = "23505"
)

var reportColumns = []string{
	"report_id", "batch_id", "kind", "source", "subject_key",
	"is_valid", "total_checks", "passed", "failed", "created_at",
}

type ReportRepository struct {
	db *postgres.Postgres
}

func NewReportRepository(db *postgres.Postgres) *ReportRepository {
	return &ReportRepository{db}
}

func (rr *ReportRepository) Create(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	report *entity.Report,
) error {
	const op = "repository.report.Create"

	res := report.Result
	query := rr.db.Builder.Insert(_reportsTable).
		Columns(reportColumns...).
		Values(
			report.ID,
			report.BatchID,
			string(report.Kind),
			string(report.Source),
			report.SubjectKey,
			res.IsValid,
			res.Summary.TotalChecks,
			res.Summary.Passed,
			res.Summary.Failed,
			report.CreatedAt,
		)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: building query: %w", op, err)
	}

	if _, err = queryExecuter.Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == _pgUniqueViolation {
			return entity.ErrConflictingData
		}
		return fmt.Errorf("%s: exec: %w", op, err)
	}

	return nil
}

// GetByID returns the report without its violations.
func (rr *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	const op = "repository.report.GetByID"

	query := rr.db.Builder.Select(reportColumns...).
		From(_reportsTable).
		Where(squirrel.Eq{"report_id": id}).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	report, err := scanReport(rr.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return report, nil
}

// List returns reports newest first, without their violations.
func (rr *ReportRepository) List(ctx context.Context, filter entity.ReportFilter) ([]*entity.Report, error) {
	const op = "repository.report.List"

	query := rr.db.Builder.Select(reportColumns...).
		From(_reportsTable).
		OrderBy("created_at DESC", "report_id")

	if filter.Kind != "" {
		query = query.Where(squirrel.Eq{"kind": string(filter.Kind)})
	}
	if filter.Valid != nil {
		query = query.Where(squirrel.Eq{"is_valid": *filter.Valid})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := rr.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	reports := make([]*entity.Report, 0)
	for rows.Next() {
		report, scanErr := scanReport(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: row scan: %w", op, scanErr)
		}
		reports = append(reports, report)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return reports, nil
}

// Stats aggregates reports and their violations per kind.
func (rr *ReportRepository) Stats(ctx context.Context) ([]entity.KindStats, error) {
	const op = "repository.report.Stats"

	perReport := rr.db.Builder.Select(
		"report_id",
		"COUNT(*) FILTER (WHERE severity = 'error') AS errors",
		"COUNT(*) FILTER (WHERE severity = 'warning') AS warnings",
		"COUNT(*) FILTER (WHERE severity = 'info') AS infos",
	).
		From(_violationsTable).
		GroupBy("report_id")

	query := rr.db.Builder.Select(
		"r.kind",
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE r.is_valid)",
		"COALESCE(SUM(v.errors), 0)",
		"COALESCE(SUM(v.warnings), 0)",
		"COALESCE(SUM(v.infos), 0)",
	).
		From(_reportsTable + " r").
		JoinClause(perReport.Prefix("LEFT JOIN (").Suffix(") v ON v.report_id = r.report_id")).
		GroupBy("r.kind").
		OrderBy("r.kind")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := rr.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	stats := make([]entity.KindStats, 0, len(entity.RecordKinds))
	for rows.Next() {
		var (
			s    entity.KindStats
			kind string
		)
		if err = rows.Scan(&kind, &s.Reports, &s.Valid, &s.Errors, &s.Warnings, &s.Infos); err != nil {
			return nil, fmt.Errorf("%s: row scan: %w", op, err)
		}
		s.Kind = entity.Kind(kind)
		stats = append(stats, s)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return stats, nil
}

func scanReport(row pgx.Row) (*entity.Report, error) {
	var (
		report       entity.Report
		batchID      *uuid.UUID
		kind, source string
		result       = entity.NewValidationResult(nil)
	)

	err := row.Scan(
		&report.ID,
		&batchID,
		&kind,
		&source,
		&report.SubjectKey,
		&result.IsValid,
		&result.Summary.TotalChecks,
		&result.Summary.Passed,
		&result.Summary.Failed,
		&report.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	report.BatchID = batchID
	report.Kind = entity.Kind(kind)
	report.Source = entity.Source(source)
	report.Result = result

	return &report, nil
}
