package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freightqa/internal/entity"
	"freightqa/internal/shacl"
	"freightqa/pkg/cache"
	"freightqa/pkg/logger"
	"freightqa/pkg/metric"
	"freightqa/pkg/storage/postgres"
	"freightqa/pkg/storage/postgres/transaction"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

//go:generate mockgen -source=service.go -destination=../repository/mock/repository.go -package=mock_repository

const (
	_defaultContextTimeout = 500 * time.Millisecond
	_slowOperation         = 200 * time.Millisecond

	_outcomeValid   = "valid"
	_outcomeInvalid = "invalid"
)

type (
	ReportRepository interface {
		Create(ctx context.Context, queryExecuter postgres.QueryExecuter, report *entity.Report) error
		GetByID(ctx context.Context, id uuid.UUID) (*entity.Report, error)
		List(ctx context.Context, filter entity.ReportFilter) ([]*entity.Report, error)
		Stats(ctx context.Context) ([]entity.KindStats, error)
	}

	ViolationRepository interface {
		Create(
			ctx context.Context,
			queryExecuter postgres.QueryExecuter,
			reportID uuid.UUID,
			violations []entity.Violation,
		) error
		ListByReportIDs(ctx context.Context, reportIDs []uuid.UUID) (map[uuid.UUID][]entity.Violation, error)
	}

	// Request describes where a validation came from. A zero ReportID gets a
	// fresh random id; a set one makes the call idempotent.
	Request struct {
		ReportID uuid.UUID
		Source   entity.Source
		Language language.Tag
	}

	ValidationService struct {
		engines       map[language.Tag]*shacl.Validator
		reportRepo    ReportRepository
		violationRepo ViolationRepository
		txManager     transaction.Manager
		logger        logger.Logger
		metrics       metric.Validation
		cache         cache.Cache[uuid.UUID, *entity.Report]
		cacheTTL      time.Duration
		now           func() time.Time
	}
)

func NewValidationService(
	reportRepo ReportRepository,
	violationRepo ViolationRepository,
	txManager transaction.Manager,
	logger logger.Logger,
	metrics metric.Validation,
	cache cache.Cache[uuid.UUID, *entity.Report],
	cacheTTL time.Duration,
) *ValidationService {
	engines := make(map[language.Tag]*shacl.Validator, len(shacl.Languages))
	for _, tag := range shacl.Languages {
		engines[tag] = shacl.New(shacl.WithLanguage(tag))
	}

	cache.SetOnEvicted(func(key uuid.UUID, _ *entity.Report) {
		logger.Debug("report evicted from cache", "report_id", key.String())
	})

	return &ValidationService{
		engines:       engines,
		reportRepo:    reportRepo,
		violationRepo: violationRepo,
		txManager:     txManager,
		logger:        logger,
		metrics:       metrics,
		cache:         cache,
		cacheTTL:      cacheTTL,
		now:           time.Now,
	}
}

// Engine returns the validator producing messages in the language closest
// to tag.
func (vs *ValidationService) Engine(tag language.Tag) *shacl.Validator {
	return vs.engines[shacl.MatchLanguage(tag)]
}

func (vs *ValidationService) ValidateShipper(
	ctx context.Context,
	req Request,
	rec *entity.Shipper,
) (*entity.Report, error) {
	return vs.validate(ctx, req, entity.KindShipper, rec.SubjectKey(), func(v *shacl.Validator) *entity.ValidationResult {
		return v.ValidateShipper(rec)
	})
}

func (vs *ValidationService) ValidateBooking(
	ctx context.Context,
	req Request,
	rec *entity.Booking,
) (*entity.Report, error) {
	return vs.validate(ctx, req, entity.KindBooking, rec.SubjectKey(), func(v *shacl.Validator) *entity.ValidationResult {
		return v.ValidateBooking(rec)
	})
}

func (vs *ValidationService) ValidatePrediction(
	ctx context.Context,
	req Request,
	rec *entity.Prediction,
) (*entity.Report, error) {
	return vs.validate(ctx, req, entity.KindPrediction, rec.SubjectKey(), func(v *shacl.Validator) *entity.ValidationResult {
		return v.ValidatePrediction(rec)
	})
}

func (vs *ValidationService) ValidateRoute(
	ctx context.Context,
	req Request,
	rec *entity.Route,
) (*entity.Report, error) {
	return vs.validate(ctx, req, entity.KindRoute, rec.SubjectKey(), func(v *shacl.Validator) *entity.ValidationResult {
		return v.ValidateRoute(rec)
	})
}

// ValidateRecord dispatches a decoded record of kind to its validator.
func (vs *ValidationService) ValidateRecord(
	ctx context.Context,
	req Request,
	kind entity.Kind,
	rec any,
) (*entity.Report, error) {
	const op = "service.ValidateRecord"

	switch r := rec.(type) {
	case *entity.Shipper:
		if kind == entity.KindShipper {
			return vs.ValidateShipper(ctx, req, r)
		}
	case *entity.Booking:
		if kind == entity.KindBooking {
			return vs.ValidateBooking(ctx, req, r)
		}
	case *entity.Prediction:
		if kind == entity.KindPrediction {
			return vs.ValidatePrediction(ctx, req, r)
		}
	case *entity.Route:
		if kind == entity.KindRoute {
			return vs.ValidateRoute(ctx, req, r)
		}
	}
	return nil, fmt.Errorf("%s: %w: %T as %s", op, entity.ErrUnknownKind, rec, kind)
}

func (vs *ValidationService) validate(
	ctx context.Context,
	req Request,
	kind entity.Kind,
	subjectKey string,
	run func(v *shacl.Validator) *entity.ValidationResult,
) (*entity.Report, error) {
	const op = "service.Validate"
	log := vs.logger.Ctx(ctx)

	if req.ReportID != uuid.Nil {
		existing, err := vs.recordedReport(ctx, req.ReportID, kind, subjectKey)
		if err == nil {
			log.LogAttrs(ctx, logger.InfoLevel, "report already recorded",
				logger.String("op", op),
				logger.String("report_id", req.ReportID.String()),
			)
			return existing, nil
		}
		if !errors.Is(err, entity.ErrDataNotFound) {
			return nil, fmt.Errorf("%s: check duplicate: %w", op, err)
		}
	}

	startTime := time.Now()
	defer vs.warnIfSlow(ctx, op, kind, startTime)

	engine := vs.Engine(req.Language)
	result := run(engine)

	report := &entity.Report{
		ID:         req.ReportID,
		Kind:       kind,
		Source:     req.Source,
		SubjectKey: subjectKey,
		CreatedAt:  vs.now().UTC(),
		Result:     result,
	}
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}

	err := vs.txManager.ExecuteInTransaction(ctx, "RecordReport", func(tx postgres.QueryExecuter) error {
		return vs.recordInTx(ctx, tx, report)
	})
	if err != nil {
		if errors.Is(err, entity.ErrConflictingData) {
			existing, getErr := vs.recordedReport(ctx, report.ID, kind, subjectKey)
			if getErr != nil {
				return nil, fmt.Errorf("%s: %w", op, getErr)
			}
			return existing, nil
		}
		log.LogAttrs(ctx, logger.ErrorLevel, "recording report failed",
			logger.String("op", op),
			logger.String("report_id", report.ID.String()),
			logger.Err(err),
		)
		return nil, fmt.Errorf("%s: record report: %w", op, err)
	}

	vs.cache.Put(report.ID, report, vs.cacheTTL)
	vs.observe(report, time.Since(startTime))

	log.LogAttrs(ctx, logger.InfoLevel, "record validated",
		logger.String("op", op),
		logger.String("report_id", report.ID.String()),
		logger.String("kind", kind.String()),
		logger.String("subject", subjectKey),
		logger.String("language", engine.Language().String()),
		logger.Bool("valid", result.IsValid),
		logger.Int("violations", len(result.Violations)),
	)

	return report, nil
}

// ValidateBatch records every element of the batch as its own report under
// one batch id. Element ids derive from the batch id, so replaying a batch
// with the same ReportID records nothing new.
func (vs *ValidationService) ValidateBatch(
	ctx context.Context,
	req Request,
	batch *entity.BatchRequest,
) (*entity.BatchReport, error) {
	const op = "service.ValidateBatch"
	log := vs.logger.Ctx(ctx)

	startTime := time.Now()
	defer vs.warnIfSlow(ctx, op, entity.KindBatch, startTime)

	if batch == nil {
		batch = &entity.BatchRequest{}
	}

	batchID := req.ReportID
	if batchID == uuid.Nil {
		batchID = uuid.New()
	}

	result := vs.Engine(req.Language).ValidateBatch(batch)
	createdAt := vs.now().UTC()

	reports := make([]*entity.Report, 0, batch.Len())
	result.Each(func(kind entity.Kind, index int, res *entity.ValidationResult) {
		reports = append(reports, &entity.Report{
			ID:         ElementReportID(batchID, kind, index),
			BatchID:    &batchID,
			Kind:       kind,
			Source:     req.Source,
			SubjectKey: batchSubjectKey(batch, kind, index),
			CreatedAt:  createdAt,
			Result:     res,
		})
	})

	err := vs.txManager.ExecuteInTransaction(ctx, "RecordBatch", func(tx postgres.QueryExecuter) error {
		for _, report := range reports {
			if err := vs.recordInTx(ctx, tx, report); err != nil {
				return err
			}
		}
		return nil
	})

	switch {
	case errors.Is(err, entity.ErrConflictingData):
		log.LogAttrs(ctx, logger.InfoLevel, "batch already recorded",
			logger.String("op", op),
			logger.String("batch_id", batchID.String()),
		)
	case err != nil:
		log.LogAttrs(ctx, logger.ErrorLevel, "recording batch failed",
			logger.String("op", op),
			logger.String("batch_id", batchID.String()),
			logger.Err(err),
		)
		return nil, fmt.Errorf("%s: record batch: %w", op, err)
	default:
		elapsed := time.Since(startTime)
		for _, report := range reports {
			vs.cache.Put(report.ID, report, vs.cacheTTL)
			vs.observe(report, elapsed)
		}
	}

	log.LogAttrs(ctx, logger.InfoLevel, "batch validated",
		logger.String("op", op),
		logger.String("batch_id", batchID.String()),
		logger.Int("records", len(reports)),
		logger.Bool("overall_valid", result.OverallValid),
	)

	return &entity.BatchReport{
		BatchID: batchID,
		Reports: reports,
		Result:  result,
	}, nil
}

func (vs *ValidationService) recordInTx(ctx context.Context, tx postgres.QueryExecuter, report *entity.Report) error {
	if err := vs.reportRepo.Create(ctx, tx, report); err != nil {
		if errors.Is(err, entity.ErrConflictingData) {
			return err
		}
		return transaction.HandleError("RecordReport", "create report", err)
	}
	if err := vs.violationRepo.Create(ctx, tx, report.ID, report.Result.Violations); err != nil {
		return transaction.HandleError("RecordReport", "create violations", err)
	}
	return nil
}

// recordedReport returns the report stored under id only if it was recorded
// for the same kind and subject.
func (vs *ValidationService) recordedReport(
	ctx context.Context,
	id uuid.UUID,
	kind entity.Kind,
	subjectKey string,
) (*entity.Report, error) {
	existing, err := vs.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Kind != kind || existing.SubjectKey != subjectKey {
		return nil, fmt.Errorf("%w: report %s was recorded for %s %q, not %s %q",
			entity.ErrConflictingData, id, existing.Kind, existing.SubjectKey, kind, subjectKey)
	}
	return existing, nil
}

// GetReport serves from the cache and falls back to the database.
func (vs *ValidationService) GetReport(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	const op = "service.GetReport"
	log := vs.logger.Ctx(ctx)

	if cached, found := vs.cache.Get(id); found {
		log.LogAttrs(ctx, logger.DebugLevel, "report served from cache",
			logger.String("op", op),
			logger.String("report_id", id.String()),
		)
		return cached, nil
	}

	report, err := vs.fetchReportFromDB(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrDataNotFound) {
			return nil, err
		}
		log.LogAttrs(ctx, logger.ErrorLevel, "failed to get report from database",
			logger.String("op", op),
			logger.String("report_id", id.String()),
			logger.Err(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	vs.cache.Put(id, report, vs.cacheTTL)
	return report, nil
}

func (vs *ValidationService) fetchReportFromDB(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, _defaultContextTimeout)
	defer cancel()

	report, err := vs.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	violations, err := vs.violationRepo.ListByReportIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	report.Result.Violations = nonNil(violations[id])

	return report, nil
}

// ListReports returns report summaries; their results carry no violations.
func (vs *ValidationService) ListReports(ctx context.Context, filter entity.ReportFilter) ([]*entity.Report, error) {
	const op = "service.ListReports"

	ctx, cancel := context.WithTimeout(ctx, _defaultContextTimeout)
	defer cancel()

	reports, err := vs.reportRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reports, nil
}

func (vs *ValidationService) Stats(ctx context.Context) ([]entity.KindStats, error) {
	const op = "service.Stats"

	ctx, cancel := context.WithTimeout(ctx, _defaultContextTimeout)
	defer cancel()

	stats, err := vs.reportRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return stats, nil
}

// RestoreCache loads the limit most recent reports into the cache.
func (vs *ValidationService) RestoreCache(ctx context.Context, limit uint64) error {
	const op = "service.RestoreCache"
	log := vs.logger.Ctx(ctx)

	log.LogAttrs(ctx, logger.InfoLevel, "starting cache restoration from database",
		logger.Int64("limit", int64(limit)),
	)

	reports, err := vs.reportRepo.List(ctx, entity.ReportFilter{Limit: limit})
	if err != nil {
		return fmt.Errorf("%s: list reports: %w", op, err)
	}
	if len(reports) == 0 {
		log.LogAttrs(ctx, logger.InfoLevel, "no reports in database to restore cache")
		return nil
	}

	ids := make([]uuid.UUID, 0, len(reports))
	for _, r := range reports {
		ids = append(ids, r.ID)
	}

	violations, err := vs.violationRepo.ListByReportIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("%s: list violations: %w", op, err)
	}

	// Oldest first, so the newest reports end up most recently used.
	for i := len(reports) - 1; i >= 0; i-- {
		r := reports[i]
		r.Result.Violations = nonNil(violations[r.ID])
		vs.cache.Put(r.ID, r, vs.cacheTTL)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "cache restoration finished",
		logger.Int("restored_to_cache", len(reports)),
	)

	return nil
}

func (vs *ValidationService) observe(report *entity.Report, elapsed time.Duration) {
	kind := report.Kind.String()

	outcome := _outcomeValid
	if !report.Result.IsValid {
		outcome = _outcomeInvalid
	}
	vs.metrics.Record(kind, string(report.Source), outcome)
	for _, v := range report.Result.Violations {
		vs.metrics.Violation(kind, v.Shape, string(v.Severity))
	}
	vs.metrics.ObserveDuration(kind, elapsed)
}

func (vs *ValidationService) warnIfSlow(ctx context.Context, op string, kind entity.Kind, start time.Time) {
	if elapsed := time.Since(start); elapsed > _slowOperation {
		vs.logger.LogAttrs(ctx, logger.WarnLevel, "slow service operation",
			logger.String("op", op),
			logger.String("kind", kind.String()),
			logger.Duration("duration", elapsed),
		)
	}
}

// ElementReportID derives the report id of one batch element.
func ElementReportID(batchID uuid.UUID, kind entity.Kind, index int) uuid.UUID {
	return uuid.NewSHA1(batchID, []byte(fmt.Sprintf("%s/%d", kind, index)))
}

func batchSubjectKey(b *entity.BatchRequest, kind entity.Kind, index int) string {
	switch kind {
	case entity.KindShipper:
		return b.Shippers[index].SubjectKey()
	case entity.KindBooking:
		return b.Bookings[index].SubjectKey()
	case entity.KindPrediction:
		return b.Predictions[index].SubjectKey()
	case entity.KindRoute:
		return b.Routes[index].SubjectKey()
	default:
		return ""
	}
}

func nonNil(v []entity.Violation) []entity.Violation {
	if v == nil {
		return []entity.Violation{}
	}
	return v
}
